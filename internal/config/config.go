package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Quiz     QuizConfig     `mapstructure:"quiz"     validate:"required"`
	API      APIConfig      `mapstructure:"api"      validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url"                       validate:"required,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gte=1"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=1"`
}

// QuizConfig contains the quiz session policy.
type QuizConfig struct {
	MaxQuestionsPerSession int `mapstructure:"max_questions_per_session" validate:"gte=1"`
}

// APIConfig contains settings of the HTTP API surface.
type APIConfig struct {
	QuestionsPerPage int      `mapstructure:"questions_per_page" validate:"gte=1,lte=100"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"    validate:"required,min=1"`
}
