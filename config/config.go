package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every runtime setting. It is built once in main and passed
// explicitly to the constructors that need it.
type Config struct {
	Port            string
	GinMode         string
	APIPrefix       string
	DBDriver        string
	DBDSN           string
	DBMaxIdleConns  int
	DBMaxOpenConns  int
	LogLevel        string
	LogFormat       string
	CORSOrigins     []string
	PasswordHasher  string
	PBKDF2Iter      int
	SeedOnStart     bool
	ShutdownTimeout time.Duration
}

var defaults = map[string]interface{}{
	"PORT":               "8000",
	"GIN_MODE":           "debug",
	"API_PREFIX":         "/api",
	"DB_DRIVER":          "mysql",
	"DB_DSN":             "root:@tcp(127.0.0.1:3306)/enapu?charset=utf8mb4&parseTime=True&loc=Local",
	"DB_MAX_IDLE_CONNS":  10,
	"DB_MAX_OPEN_CONNS":  50,
	"LOG_LEVEL":          "info",
	"LOG_FORMAT":         "text",
	"CORS_ALLOW_ORIGINS": "*",
	"PASSWORD_HASHER":    "pbkdf2_sha256",
	"PBKDF2_ITERATIONS":  1000000,
	"SEED_ON_START":      false,
	"SHUTDOWN_TIMEOUT":   "10s",
}

// Load reads an optional .env file, then the file named by CONFIG_FILE if
// set, and finally the process environment, which wins over both.
func Load() (Config, error) {
	// a missing .env is normal outside development
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:            v.GetString("PORT"),
		GinMode:         v.GetString("GIN_MODE"),
		APIPrefix:       v.GetString("API_PREFIX"),
		DBDriver:        strings.ToLower(v.GetString("DB_DRIVER")),
		DBDSN:           v.GetString("DB_DSN"),
		DBMaxIdleConns:  v.GetInt("DB_MAX_IDLE_CONNS"),
		DBMaxOpenConns:  v.GetInt("DB_MAX_OPEN_CONNS"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
		CORSOrigins:     splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		PasswordHasher:  v.GetString("PASSWORD_HASHER"),
		PBKDF2Iter:      v.GetInt("PBKDF2_ITERATIONS"),
		SeedOnStart:     v.GetBool("SEED_ON_START"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported GIN_MODE %q", c.GinMode)
	}
	switch c.PasswordHasher {
	case "pbkdf2_sha256", "bcrypt":
	default:
		return fmt.Errorf("unsupported PASSWORD_HASHER %q", c.PasswordHasher)
	}
	if c.PasswordHasher == "pbkdf2_sha256" && c.PBKDF2Iter <= 0 {
		return fmt.Errorf("PBKDF2_ITERATIONS must be positive")
	}
	if !strings.HasPrefix(c.APIPrefix, "/") {
		return fmt.Errorf("API_PREFIX must start with /")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Testing returns a configuration backed by a private in-memory SQLite
// database with a cheap password hasher.
func Testing(dsn string) Config {
	return Config{
		Port:            "0",
		GinMode:         "test",
		APIPrefix:       "/api",
		DBDriver:        "sqlite",
		DBDSN:           dsn,
		DBMaxIdleConns:  1,
		DBMaxOpenConns:  1,
		LogLevel:        "error",
		LogFormat:       "text",
		CORSOrigins:     []string{"*"},
		PasswordHasher:  "pbkdf2_sha256",
		PBKDF2Iter:      1000,
		ShutdownTimeout: time.Second,
	}
}
