package dbconn

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

// BuildDSN returns the database/sql driver name and the DSN for the
// credentials.
func BuildDSN(c *Credentials) (string, string, error) {
	driver, err := c.driver()
	if err != nil {
		return "", "", err
	}

	switch driver {
	case DriverSQLServer:
		return "sqlserver", sqlServerDSN(c), nil
	case DriverPostgres:
		return "postgres", postgresDSN(c), nil
	case DriverMySQL:
		return "mysql", mysqlDSN(c), nil
	case DriverHANA:
		return "hdb", hanaDSN(c), nil
	}
	return "", "", fmt.Errorf("unsupported driver: %q", c.Driver)
}

// sqlServerDSN builds a go-mssqldb URL. SERVER may be host, host:port or
// host\instance; the instance name goes into the URL path.
func sqlServerDSN(c *Credentials) string {
	host := c.Server
	instance := ""
	if i := strings.IndexByte(host, '\\'); i >= 0 {
		host, instance = host[:i], host[i+1:]
	}

	u := &url.URL{
		Scheme: "sqlserver",
		User:   url.UserPassword(c.Username, c.Password),
		Host:   host,
	}
	if instance != "" {
		u.Path = "/" + instance
	}

	q := url.Values{}
	q.Set("database", c.Database)
	q.Set("encrypt", "disable")
	q.Set("dial timeout", strconv.Itoa(int(connectTimeout/time.Second)))
	u.RawQuery = q.Encode()
	return u.String()
}

// postgresDSN builds a lib/pq keyword/value conninfo string.
func postgresDSN(c *Credentials) string {
	host := c.Server
	port := ""
	if h, p, err := net.SplitHostPort(c.Server); err == nil {
		host, port = h, p
	}

	var b strings.Builder
	fmt.Fprintf(&b, "host=%s", pqValue(host))
	if port != "" {
		fmt.Fprintf(&b, " port=%s", pqValue(port))
	}
	fmt.Fprintf(&b, " user=%s password=%s dbname=%s sslmode=disable connect_timeout=%d",
		pqValue(c.Username), pqValue(c.Password), pqValue(c.Database), int(connectTimeout/time.Second))
	return b.String()
}

// pqValue quotes a conninfo value per the lib/pq keyword/value rules.
func pqValue(s string) string {
	if s != "" && !strings.ContainsAny(s, ` '\`) {
		return s
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}

// mysqlDSN goes through the driver's own Config type, which handles
// credential escaping.
func mysqlDSN(c *Credentials) string {
	cfg := mysql.NewConfig()
	cfg.User = c.Username
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = c.Server
	cfg.DBName = c.Database
	cfg.Timeout = connectTimeout
	cfg.ParseTime = true
	return cfg.FormatDSN()
}

// hanaDSN builds a go-hdb URL. DATABASE selects the default schema, the way
// SAP installations address company databases.
func hanaDSN(c *Credentials) string {
	u := &url.URL{
		Scheme: "hdb",
		User:   url.UserPassword(c.Username, c.Password),
		Host:   c.Server,
	}

	q := url.Values{}
	q.Set("defaultSchema", c.Database)
	q.Set("timeout", strconv.Itoa(int(connectTimeout/time.Second)))
	u.RawQuery = q.Encode()
	return u.String()
}
