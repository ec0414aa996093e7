package config

type Config struct {
	App      AppConfig      `env-prefix:"APP_"`
	HTTP     HTTPConfig     `env-prefix:"HTTP_"`
	Database DatabaseConfig `env-prefix:"DB_"`
}

type AppConfig struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Pretty   bool   `env:"PRETTY" env-default:"false"`
	// Migrate applies the embedded schema migrations on startup.
	Migrate bool `env:"MIGRATE" env-default:"true"`
}

type HTTPConfig struct {
	Addr           string   `env:"ADDR" env-default:":8888"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-default:"http://localhost:5173" env-separator:","`
}

type DatabaseConfig struct {
	Port     string `env:"PORT" env-default:"5432"`
	Host     string `env:"HOST" env-default:"localhost"`
	Name     string `env:"NAME" env-default:"postgres"`
	User     string `env:"USER" env-default:"user"`
	Password string `env:"PASSWORD" env-required:"true"`

	RetryAttempts uint  `env:"RETRY_ATTEMPTS" env-default:"3"`
	MaxConns      int32 `env:"MAX_CONNS" env-default:"5"`
}
