package sqlfixture

import (
	"net"
	"os"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Options holds the MySQL server connection settings
type Options struct {
	Host     string
	Port     string
	User     string
	Password string
	Prefix   string // Scratch database names start with Prefix + "_"
}

// OptionsFromEnv reads DB_HOST, DB_PORT, DB_USERNAME, DB_PASSWORD and
// DB_DATABASE_PREFIX, loading envFile into the environment first if it exists.
func OptionsFromEnv(envFile string) Options {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			// .env file might not exist, that's okay - use environment variables
			_ = err
		}
	}

	return Options{
		Host:     getenv("DB_HOST", "127.0.0.1"),
		Port:     getenv("DB_PORT", "3306"),
		User:     getenv("DB_USERNAME", "root"),
		Password: os.Getenv("DB_PASSWORD"),
		Prefix:   getenv("DB_DATABASE_PREFIX", "testing"),
	}
}

func getenv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// DSN returns the data source name for database, or for the server alone
// when database is empty
func (o Options) DSN(database string) string {
	cfg := mysql.NewConfig()
	cfg.User = o.User
	cfg.Passwd = o.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(o.Host, o.Port)
	cfg.DBName = database
	return cfg.FormatDSN()
}

// NewDatabaseName returns a fresh scratch database name
func (o Options) NewDatabaseName() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return o.Prefix + "_" + id[:12]
}

// isValidDatabaseName validates database name (basic check)
func isValidDatabaseName(name string) bool {
	// Only allow alphanumeric, underscore, and specific patterns
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	// Check for SQL injection patterns
	invalidChars := []string{"'", "\"", "`", ";", "--", "/*", "*/", "DROP", "DELETE", "TRUNCATE"}
	upperName := strings.ToUpper(name)
	for _, char := range invalidChars {
		if strings.Contains(upperName, char) {
			return false
		}
	}
	return true
}
