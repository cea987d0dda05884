// Package mysqldb gives test suites a scratch MySQL database.
//
// A suite embeds Fixture in its fixture type; every case then runs against a
// database of its own that is created before the case and dropped after it:
//
//	type Accounts struct{ mysqldb.Fixture }
//
//	func init() {
//		unit.SuiteTest("Insert", func(a *Accounts) {
//			_, err := a.DB.Exec("CREATE TABLE t (id INT)")
//			unit.Check(err == nil)
//		})
//	}
//
// The server is taken from DB_HOST, DB_PORT, DB_USERNAME and DB_PASSWORD,
// read from the environment after loading EnvFile.
package mysqldb

import (
	"net"
	"os"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment variables read by LoadSettings.
const (
	EnvHost     = "DB_HOST"
	EnvPort     = "DB_PORT"
	EnvUser     = "DB_USERNAME"
	EnvPassword = "DB_PASSWORD"
	EnvPrefix   = "DB_DATABASE"
)

const (
	defaultPort   = "3306"
	defaultUser   = "root"
	defaultPrefix = "ytf_test"
)

// ErrNotConfigured is returned when no database server is configured.
var ErrNotConfigured = errors.New("mysqldb: " + EnvHost + " is not set")

// Settings locate the MySQL server scratch databases are created on.
type Settings struct {
	Host     string
	Port     string
	User     string
	Password string
	// Prefix starts the name of every scratch database.
	Prefix string
}

// LoadSettings loads envFile, when it exists, and reads the server settings
// from the environment. Variables already set win over the file.
func LoadSettings(envFile string) (Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Settings{}, errors.Wrapf(err, "mysqldb: loading %s", envFile)
		}
	}

	s := Settings{
		Host:     os.Getenv(EnvHost),
		Port:     getenv(EnvPort, defaultPort),
		User:     getenv(EnvUser, defaultUser),
		Password: os.Getenv(EnvPassword),
		Prefix:   getenv(EnvPrefix, defaultPrefix),
	}
	if s.Host == "" {
		return Settings{}, ErrNotConfigured
	}
	return s, nil
}

// DSN returns the driver data source name for database name, or for the
// server itself when name is empty.
func (s Settings) DSN(name string) string {
	cfg := mysql.NewConfig()
	cfg.User = s.User
	cfg.Passwd = s.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(s.Host, s.Port)
	cfg.DBName = name
	return cfg.FormatDSN()
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
