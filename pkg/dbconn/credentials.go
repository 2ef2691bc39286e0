package dbconn

import "fmt"

// Driver names accepted in the DRIVER field.
const (
	DriverSQLServer = "sqlserver"
	DriverPostgres  = "postgres"
	DriverMySQL     = "mysql"
	DriverHANA      = "hana"
)

// Credentials carries the connection parameters of one request. The
// uppercase JSON keys are the wire contract of the UI.
type Credentials struct {
	Driver   string `json:"DRIVER"`
	Server   string `json:"SERVER"`
	Database string `json:"DATABASE"`
	Username string `json:"USERNAME"`
	Password string `json:"PASSWORD"`
}

func (c *Credentials) Validate() error {
	if c.Server == "" || c.Database == "" || c.Username == "" {
		return fmt.Errorf("SERVER, DATABASE and USERNAME are required")
	}
	_, err := c.driver()
	return err
}

// driver normalizes the DRIVER field. An empty field selects SQL Server,
// which is what the UI speaks by default.
func (c *Credentials) driver() (string, error) {
	switch c.Driver {
	case "", DriverSQLServer, "mssql":
		return DriverSQLServer, nil
	case DriverPostgres, "postgresql":
		return DriverPostgres, nil
	case DriverMySQL:
		return DriverMySQL, nil
	case DriverHANA, "hdb":
		return DriverHANA, nil
	}
	return "", fmt.Errorf("unsupported driver: %q", c.Driver)
}
