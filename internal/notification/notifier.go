package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
	"github.com/PushtoStartCo/safeguards/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	SendGridAPIKey string
	FromName       string
	FromAddress    string
	AdminEmail     string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	AdminPhone       string

	TelegramBotToken string
	TelegramChatID   int64

	Timeout time.Duration
}

// AdminNotifier fans admin alerts out to e-mail, SMS and the ops Telegram
// channel. Every channel degrades to a logged no-op when unconfigured;
// delivery failures are logged and never returned to the caller.
type AdminNotifier struct {
	cfg     Config
	email   *sendgrid.Client
	sms     *twilio.RestClient
	bot     *tgbotapi.BotAPI
	timeout time.Duration
	logger  logger.Logger
}

func NewAdminNotifier(cfg Config, log logger.Logger) (*AdminNotifier, error) {
	n := &AdminNotifier{cfg: cfg, timeout: cfg.Timeout, logger: log}
	if n.timeout <= 0 {
		n.timeout = 10 * time.Second
	}

	if cfg.SendGridAPIKey != "" {
		n.email = sendgrid.NewSendClient(cfg.SendGridAPIKey)
	} else {
		log.Warn("sendgrid api key is empty, email notifications disabled")
	}

	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		n.sms = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	} else {
		log.Warn("twilio credentials are empty, sms notifications disabled")
	}

	if cfg.TelegramBotToken != "" {
		bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
		if err != nil {
			return nil, fmt.Errorf("create telegram bot: %w", err)
		}
		n.bot = bot
	} else {
		log.Warn("telegram bot token is empty, ops channel disabled")
	}

	return n, nil
}

func (n *AdminNotifier) SendAdminAlert(ctx context.Context, dj *domain.DJ, kind domain.AlertKind, severity domain.Severity, details map[string]any) {
	subject := fmt.Sprintf("[%s] %s — %s", strings.ToUpper(string(severity)), kind, dj.Name)
	body := n.formatAlertBody(dj, kind, details)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	n.sendEmail(ctx, subject, body)
	n.sendTelegram(ctx, subject+"\n"+body)
}

func (n *AdminNotifier) SendImmediateAlert(ctx context.Context, dj *domain.DJ, kind domain.AlertKind, reason string) {
	subject := fmt.Sprintf("[URGENT] %s — %s", kind, dj.Name)
	body := fmt.Sprintf("DJ: %s (%s)\nReason: %s", dj.Name, dj.ID, reason)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	n.sendEmail(ctx, subject, body)
	n.sendSMS(fmt.Sprintf("%s: %s (%s)", kind, dj.Name, reason))
	n.sendTelegram(ctx, subject+"\n"+body)
}

func (n *AdminNotifier) SendReviewReminder(ctx context.Context, alert *domain.Alert) {
	subject := fmt.Sprintf("[REMINDER] escalated alert %s still unaddressed", alert.ID)
	body := fmt.Sprintf("Alert %s (kind %s, DJ %s) was escalated over an hour ago and is still awaiting investigation.",
		alert.ID, alert.Kind, alert.DJID)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	n.sendEmail(ctx, subject, body)
	n.sendTelegram(ctx, subject)
}

func (n *AdminNotifier) formatAlertBody(dj *domain.DJ, kind domain.AlertKind, details map[string]any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "DJ: %s (%s)\nKind: %s\n", dj.Name, dj.ID, kind)
	for k, v := range details {
		fmt.Fprintf(&b, "%s: %v\n", k, v)
	}
	return b.String()
}

func (n *AdminNotifier) sendEmail(ctx context.Context, subject, body string) {
	if n.email == nil || n.cfg.AdminEmail == "" {
		n.logger.Debug("email notification skipped (disabled)", logger.String("subject", subject))
		return
	}

	from := mail.NewEmail(n.cfg.FromName, n.cfg.FromAddress)
	to := mail.NewEmail("", n.cfg.AdminEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	if _, err := n.email.SendWithContext(ctx, message); err != nil {
		n.logger.Error("failed to send email notification",
			logger.String("subject", subject),
			logger.String("error", err.Error()),
		)
	}
}

func (n *AdminNotifier) sendSMS(body string) {
	if n.sms == nil || n.cfg.AdminPhone == "" {
		n.logger.Debug("sms notification skipped (disabled)")
		return
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(n.cfg.AdminPhone)
	params.SetFrom(n.cfg.TwilioFromNumber)
	params.SetBody(body)

	if _, err := n.sms.Api.CreateMessage(params); err != nil {
		n.logger.Error("failed to send sms notification",
			logger.String("error", err.Error()),
		)
	}
}

func (n *AdminNotifier) sendTelegram(ctx context.Context, text string) {
	if n.bot == nil || n.cfg.TelegramChatID == 0 {
		n.logger.Debug("telegram notification skipped (disabled)")
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("telegram notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.cfg.TelegramChatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.cfg.TelegramChatID),
			logger.String("error", err.Error()),
		)
	}
}
