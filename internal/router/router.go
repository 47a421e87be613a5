package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	LogEnquiry(c *ginext.Context)
	AvailabilityChanged(c *ginext.Context)
	ClientContactAttempted(c *ginext.Context)
	ExternalBookingDetected(c *ginext.Context)
	ReviewAlert(c *ginext.Context)
	GetDashboard(c *ginext.Context)
	GenerateReport(c *ginext.Context)
	ReactivateDJ(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Enquiries
		api.POST("/enquiries", h.LogEnquiry)

		// Collaborator event intake
		api.POST("/events/availability-change", h.AvailabilityChanged)
		api.POST("/events/client-contact", h.ClientContactAttempted)
		api.POST("/events/external-booking", h.ExternalBookingDetected)

		// Review workflow
		api.POST("/alerts/:id/review", h.ReviewAlert)

		// Reporting
		api.GET("/dashboard", h.GetDashboard)
		api.GET("/reports", h.GenerateReport)

		// Profiles
		api.POST("/djs/:id/reactivate", h.ReactivateDJ)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
