package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server        ServerConfig        `yaml:"server"        validate:"required"`
	Logger        LoggerConfig        `yaml:"logger"        validate:"required"`
	Gin           GinConfig           `yaml:"gin"           validate:"required"`
	Postgres      PostgresConfig      `yaml:"postgres"      validate:"required"`
	Scheduler     SchedulerConfig     `yaml:"scheduler"     validate:"required"`
	Safeguards    SafeguardsConfig    `yaml:"safeguards"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"safeguards"   validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type SchedulerConfig struct {
	Interval          time.Duration `yaml:"interval"           env:"SCHEDULER_INTERVAL"           env-default:"1m"         validate:"required,gt=0"`
	DetectorSchedule  string        `yaml:"detector_schedule"  env:"SCHEDULER_DETECTOR_SCHEDULE"  env-default:"0 3 * * *"  validate:"required"`
	RetentionSchedule string        `yaml:"retention_schedule" env:"SCHEDULER_RETENTION_SCHEDULE" env-default:"30 4 * * *" validate:"required"`
}

// SafeguardsConfig — пороги и окна детекторов. Нулевые значения
// заменяются дефолтами на стороне сервисов.
type SafeguardsConfig struct {
	HighSeverityWindow  time.Duration `yaml:"high_severity_window"  env:"SG_HIGH_SEVERITY_WINDOW"  env-default:"48h"`
	SuspensionThreshold int           `yaml:"suspension_threshold"  env:"SG_SUSPENSION_THRESHOLD"  env-default:"3"`
	SuspensionWindow    time.Duration `yaml:"suspension_window"     env:"SG_SUSPENSION_WINDOW"     env-default:"168h"`
	PatternWindow       time.Duration `yaml:"pattern_window"        env:"SG_PATTERN_WINDOW"        env-default:"720h"`
	PatternThreshold    int           `yaml:"pattern_threshold"     env:"SG_PATTERN_THRESHOLD"     env-default:"3"`
	RatioWindow         time.Duration `yaml:"ratio_window"          env:"SG_RATIO_WINDOW"          env-default:"2160h"`
	RatioMinUnavailable int           `yaml:"ratio_min_unavailable" env:"SG_RATIO_MIN_UNAVAILABLE" env-default:"10"`
	RatioLimit          float64       `yaml:"ratio_limit"           env:"SG_RATIO_LIMIT"           env-default:"5"`
	DirectWindow        time.Duration `yaml:"direct_window"         env:"SG_DIRECT_WINDOW"         env-default:"720h"`
	DirectThreshold     int           `yaml:"direct_threshold"      env:"SG_DIRECT_THRESHOLD"      env-default:"3"`
	LowRetention        time.Duration `yaml:"low_retention"         env:"SG_LOW_RETENTION"         env-default:"4320h"`
	DashboardCacheTTL   time.Duration `yaml:"dashboard_cache_ttl"   env:"SG_DASHBOARD_CACHE_TTL"   env-default:"30s"`
}

type NotificationsConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"NOTIFY_TIMEOUT" env-default:"10s"`

	SendGridAPIKey string `yaml:"sendgrid_api_key" env:"SENDGRID_API_KEY"   env-default:""`
	FromName       string `yaml:"from_name"        env:"NOTIFY_FROM_NAME"   env-default:"Safeguards"`
	FromAddress    string `yaml:"from_address"     env:"NOTIFY_FROM_ADDR"   env-default:"safeguards@localhost"`
	AdminEmail     string `yaml:"admin_email"      env:"NOTIFY_ADMIN_EMAIL" env-default:""`

	TwilioAccountSID string `yaml:"twilio_account_sid" env:"TWILIO_ACCOUNT_SID" env-default:""`
	TwilioAuthToken  string `yaml:"twilio_auth_token"  env:"TWILIO_AUTH_TOKEN"  env-default:""`
	TwilioFromNumber string `yaml:"twilio_from_number" env:"TWILIO_FROM_NUMBER" env-default:""`
	AdminPhone       string `yaml:"admin_phone"        env:"NOTIFY_ADMIN_PHONE" env-default:""`

	TelegramBotToken string `yaml:"telegram_bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	TelegramChatID   int64  `yaml:"telegram_chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`

	TaskWebhookURL string `yaml:"task_webhook_url" env:"TASK_WEBHOOK_URL" env-default:""`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
