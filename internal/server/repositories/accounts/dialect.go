package accounts

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Dialect captures the differences between the supported SQL backends.
type Dialect struct {
	Name string

	// placeholder renders the n-th (1-based) bind parameter.
	placeholder func(n int) string
	// isUniqueViolation recognises the driver's duplicate-key error.
	isUniqueViolation func(err error) bool
}

var (
	Postgres = Dialect{
		Name:              "postgres",
		placeholder:       func(n int) string { return "$" + strconv.Itoa(n) },
		isUniqueViolation: isPgUniqueViolation,
	}
	SQLite = Dialect{
		Name:              "sqlite",
		placeholder:       func(int) string { return "?" },
		isUniqueViolation: isSQLiteUniqueViolation,
	}
	MySQL = Dialect{
		Name:              "mysql",
		placeholder:       func(int) string { return "?" },
		isUniqueViolation: isMySQLUniqueViolation,
	}
)

// bind replaces each "?" in q with the dialect's placeholder.
func (d Dialect) bind(q string) string {
	var sb strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			sb.WriteString(d.placeholder(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func isPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isMySQLUniqueViolation(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1062
}

func isSQLiteUniqueViolation(err error) bool {
	var sqErr *sqlite.Error
	if !errors.As(err, &sqErr) {
		return false
	}
	switch sqErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		return strings.Contains(sqErr.Error(), "UNIQUE constraint failed")
	}
	return false
}
