package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, authorities), security settings
// - default: Values common across all environments (timezone, timeout, fees, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Store   StoreConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Program ProgramConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

const (
	StoreBackendBadger   = "badger"
	StoreBackendPostgres = "postgres"
)

type StoreConfig struct {
	Backend    string `envconfig:"STORE_BACKEND" default:"badger"`
	BadgerPath string `envconfig:"BADGER_PATH" default:"./data/ledger"`
	InMemory   bool   `envconfig:"BADGER_IN_MEMORY" default:"false"`
	MaxRetries int    `envconfig:"STORE_MAX_RETRIES" default:"3"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// ProgramConfig holds the fixed parameters of the issuance program.
// Amounts are in whole currency units and converted to base units on load.
type ProgramConfig struct {
	RootAuthority           string        `envconfig:"ROOT_AUTHORITY" required:"true"`
	ProtocolPayer           string        `envconfig:"PROTOCOL_PAYER" required:"true"`
	ProtocolFee             string        `envconfig:"PROTOCOL_FEE" default:"0.1"`
	AirdropFee              string        `envconfig:"AIRDROP_FEE" default:"0.075"`
	AdminDeposit            string        `envconfig:"ADMIN_DEPOSIT" default:"0.00103"`
	AdminActivationCooldown time.Duration `envconfig:"ADMIN_ACTIVATION_COOLDOWN" default:"0s"`
	GrantMaxTTL             time.Duration `envconfig:"GRANT_MAX_TTL" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	switch cfg.Store.Backend {
	case StoreBackendBadger, StoreBackendPostgres:
	default:
		return Config{}, fmt.Errorf("unsupported STORE_BACKEND %q", cfg.Store.Backend)
	}
	return cfg, nil
}

// Well-known test identities. Neither has a usable private key.
const (
	TestRootAuthority = "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"
	TestProtocolPayer = "8opHzTAnfzRpPEx21XtnrVTX28YQuCpAjcn1PczScKh"
)

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Store: StoreConfig{
			Backend:    StoreBackendBadger,
			InMemory:   true,
			MaxRetries: 3,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Program: ProgramConfig{
			RootAuthority: TestRootAuthority,
			ProtocolPayer: TestProtocolPayer,
			ProtocolFee:   "0.1",
			AirdropFee:    "0.075",
			AdminDeposit:  "0.00103",
			GrantMaxTTL:   24 * time.Hour,
		},
	}
}
