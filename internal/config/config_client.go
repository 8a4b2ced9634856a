package config

import (
	"time"
)

// ClientEnvPrefix prefixes every environment variable read by the client.
const ClientEnvPrefix = "BEICHEN_"

// ClientAdapter holds the settings of the outbound HTTP client.
type ClientAdapter struct {
	// BaseURL is the root of the management system API.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8891"`
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

// ClientCredentials are the account used for automatic login.
type ClientCredentials struct {
	Email    string `env:"EMAIL" envDefault:"admin@beichen.com"`
	Password string `env:"PASSWORD" envDefault:"admin123"`
}

// Endpoints is the table of API paths consumed by the client. Paths may carry
// a query string.
type Endpoints struct {
	Login            string `env:"LOGIN" envDefault:"/api/auth/login"`
	DailyObservation string `env:"DAILY_OBSERVATION" envDefault:"/api/records"`
	DutyReport       string `env:"DUTY_REPORT" envDefault:"/api/duty-reports"`
	Campus           string `env:"CAMPUS" envDefault:"/api/campus"`
	Classes          string `env:"CLASSES" envDefault:"/api/classes"`
	Teachers         string `env:"TEACHERS" envDefault:"/api/users?role=TEACHER&pageSize=1000"`
	Leaders          string `env:"LEADERS" envDefault:"/api/users?role=LEADER&pageSize=1000"`
}

// ClientStorage holds the location of the persistent token store.
type ClientStorage struct {
	// TokenDSN is the go-sqlite3 data source of the token store.
	TokenDSN string `env:"TOKEN_DSN" envDefault:"beichen-client.db"`
}

// ClientConfig is the top-level client configuration.
type ClientConfig struct {
	Adapter     ClientAdapter     `envPrefix:"ADAPTER_"`
	Credentials ClientCredentials `envPrefix:"AUTH_"`
	Endpoints   Endpoints         `envPrefix:"ENDPOINT_"`
	Storage     ClientStorage     `envPrefix:"STORAGE_"`
	Log         Log               `envPrefix:"LOG_"`

	// ConfigFilePath is the optional config file. Env: BEICHEN_CONFIG.
	ConfigFilePath string `env:"CONFIG"`
}

// GetClientConfig builds and validates the client configuration. A non-empty
// path takes precedence over BEICHEN_CONFIG.
func GetClientConfig(path string) (*ClientConfig, error) {
	return newConfigBuilder(ClientEnvPrefix, clientFileConfig).
		withDotEnv().
		withEnv().
		withFile(func(cfg *ClientConfig) string {
			if path != "" {
				return path
			}
			return cfg.ConfigFilePath
		}).
		build((*ClientConfig).validate)
}
