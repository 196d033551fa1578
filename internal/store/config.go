package store

import (
	"net"
	"net/url"
	"strconv"

	v "github.com/go-ozzo/ozzo-validation/v4"
)

// adminDatabase is the maintenance database every Postgres server carries.
const adminDatabase = "postgres"

// Config defines configurations to connect database
type Config struct {
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port"`
	Username           string `mapstructure:"username"`
	Password           string `mapstructure:"password"`
	DatabaseName       string `mapstructure:"database_name"`
	RequireSSL         bool   `mapstructure:"require_ssl"`
	Automigrate        bool   `mapstructure:"automigrate"`
	MaxOpenConnections int    `mapstructure:"max_open_connections"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections"`
}

// Validate rejects settings that can't form a connection string.
func (c *Config) Validate() error {
	return v.ValidateStruct(c,
		v.Field(&c.Host, v.Required),
		v.Field(&c.Port, v.Required, v.Min(1), v.Max(65535)),
		v.Field(&c.Username, v.Required),
		v.Field(&c.DatabaseName, v.Required),
		v.Field(&c.MaxOpenConnections, v.Min(0)),
		v.Field(&c.MaxIdleConnections, v.Min(0)),
	)
}

// ConnectionString points at the configured database.
func (c Config) ConnectionString() string {
	return c.connectionURL(c.DatabaseName)
}

// ConnectionStringWithoutDB points at the server's administrative database,
// used to create and drop databases.
func (c Config) ConnectionStringWithoutDB() string {
	return c.connectionURL(adminDatabase)
}

func (c Config) connectionURL(database string) string {
	sslMode := "disable"
	if c.RequireSSL {
		sslMode = "require"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Username, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + database,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String()
}
