package scanner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"

	"github.com/efuentes/discover/internal/device"
	"github.com/go-sql-driver/mysql"
)

// CheckMySQL checks mysql availability. Missing credentials are a distinct
// configuration failure and never result in a connection attempt. On an
// open port it connects and runs a trivial version query.
func (s *ProbeScanner) CheckMySQL(ctx context.Context, d device.Device) (bool, []string) {
	user := d.MySQLUser
	password := d.MySQLPassword

	if user == "" {
		user = s.conf.MySQL.User
		password = s.conf.MySQL.Password
	}

	if user == "" {
		return false, []string{"(mysql) No MySQL user provided"}
	}

	open, errs := s.IsPortOpen(ctx, d, mysqlPort)

	if !open {
		return false, append(errs, "(mysql) Port closed")
	}

	timeout := s.timeout(s.conf.Timeouts.MySQL)

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/mysql?timeout=%s&readTimeout=%s",
		user,
		password,
		d.Host,
		mysqlPort,
		timeout,
		timeout,
	)

	db, err := sql.Open("mysql", dsn)

	if err != nil {
		return false, append(errs, fmt.Sprintf("(mysql) %s", err))
	}

	defer db.Close()

	var version string

	if err := db.QueryRowContext(ctx, "SELECT VERSION()").Scan(&version); err != nil {
		return false, append(errs, mysqlErrorString(err))
	}

	return true, errs
}

// mysqlErrorString converts a driver error into a tagged diagnostic,
// distinguishing authentication, connection, and query failures
func mysqlErrorString(err error) string {
	var driverErr *mysql.MySQLError

	if errors.As(err, &driverErr) {
		// ER_ACCESS_DENIED_ERROR and ER_DBACCESS_DENIED_ERROR
		if driverErr.Number == 1045 || driverErr.Number == 1044 {
			return fmt.Sprintf("(mysql) Access denied: %s", driverErr)
		}

		return fmt.Sprintf("(mysql) Query failed: %s", driverErr)
	}

	var netErr net.Error

	if errors.As(err, &netErr) {
		return fmt.Sprintf("(mysql) Connection failed: %s", netErr)
	}

	return fmt.Sprintf("(mysql) %s", err)
}
