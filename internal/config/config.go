package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"

	// PlaceholderSessionSecret is the value shipped in sample .env files.
	PlaceholderSessionSecret = "change-me-in-production"
	minSessionSecretLength   = 16
)

var ErrInsecureSessionSecret = errors.New("SESSION_SECRET must be set to a private value of at least 16 characters")

type Config struct {
	AppPort           string
	DbDriver          string
	SqlitePath        string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	SessionSecret     string
	SessionTTL        time.Duration
	AuditLogPath      string
	TranslationFolder string
	DevConsole        bool
	BcryptCost        int
	TrustedProxies    []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		DbDriver:          strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		SqlitePath:        getEnv("SQLITE_PATH", "todo0.db"),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "todo0"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "todo0"),
		DbName:            getEnv("MYSQL_DATABASE", "todo0"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		SessionSecret:     strings.TrimSpace(os.Getenv("SESSION_SECRET")),
		SessionTTL:        getDuration("SESSION_TTL", 8*time.Hour),
		AuditLogPath:      getEnv("AUDIT_LOG_PATH", "audit.log"),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		DevConsole:        getBool("DEV_CONSOLE", false),
		BcryptCost:        getInt("BCRYPT_COST", 10),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

// ValidateForServe checks the settings the web server cannot run without.
// Session tokens carry the roles, so a known secret would let anyone sign
// an administrator session.
func (c *Config) ValidateForServe() error {
	if c.SessionSecret == "" || c.SessionSecret == PlaceholderSessionSecret || len(c.SessionSecret) < minSessionSecretLength {
		return ErrInsecureSessionSecret
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func getInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
