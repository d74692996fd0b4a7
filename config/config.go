package config

import (
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	HTTPPort    string `envconfig:"HTTP_PORT"    default:":8081"`
	GrpcPort    string `envconfig:"GRPC_PORT"    default:":50051"`
	LogLevel    string `envconfig:"LOG_LEVEL"    default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT"   default:"json"`
	LogFile     string `envconfig:"LOG_FILE"`

	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS"    default:"25"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS"    default:"25"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
}

var (
	config Config
	once   sync.Once
)

// LoadConfig reads .env (if present) and the environment once per process.
// A missing DATABASE_URL is fatal.
func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		cfg, err := load()
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}
		config = *cfg

		logger.Infof("Configuration loaded: HTTP Port=%s, GRPC Port=%s, LogLevel=%s",
			config.HTTPPort, config.GrpcPort, config.LogLevel)
		logger.Info("Configuration loaded: DatabaseURL is set")
	})
	return &config
}

func load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("Error loading .env file (but continuing): %v", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
