package database

// The driver packages imported here also register themselves with database/sql.
import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Dialect captures the few places where the supported SQL engines disagree:
// driver name, placeholder syntax, column types, upserts and how a
// uniqueness violation is reported.
type Dialect struct {
	Name       string
	DriverName string
	// Returning reports whether INSERT ... RETURNING is available.
	Returning bool

	autoIncrementPK string
	realType        string
	textKeyType     string
	timestampType   string
	positional      bool
}

var (
	SQLite = Dialect{
		Name:            "sqlite",
		DriverName:      "sqlite",
		Returning:       true,
		autoIncrementPK: "INTEGER PRIMARY KEY AUTOINCREMENT",
		realType:        "REAL",
		textKeyType:     "TEXT",
		timestampType:   "TIMESTAMP",
	}
	Postgres = Dialect{
		Name:            "postgres",
		DriverName:      "postgres",
		Returning:       true,
		autoIncrementPK: "BIGSERIAL PRIMARY KEY",
		realType:        "DOUBLE PRECISION",
		textKeyType:     "TEXT",
		timestampType:   "TIMESTAMP",
		positional:      true,
	}
	MySQL = Dialect{
		Name:            "mysql",
		DriverName:      "mysql",
		autoIncrementPK: "BIGINT AUTO_INCREMENT PRIMARY KEY",
		realType:        "DOUBLE",
		textKeyType:     "VARCHAR(64)",
		timestampType:   "DATETIME",
	}
)

// DialectFor resolves a DATABASE_DRIVER value.
func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "postgresql", "pg":
		return Postgres, nil
	case "mysql", "mariadb":
		return MySQL, nil
	}
	return Dialect{}, fmt.Errorf("unsupported database driver %q", name)
}

// Rebind rewrites '?' placeholders to the dialect's syntax.
// Queries must not contain literal question marks.
func (d Dialect) Rebind(query string) string {
	if !d.positional {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// UpsertSuffix returns the clause appended to an INSERT so that a conflict on
// conflictColumn overwrites updateColumns.
func (d Dialect) UpsertSuffix(conflictColumn string, updateColumns ...string) string {
	sets := make([]string, 0, len(updateColumns))
	if d.Name == MySQL.Name {
		for _, c := range updateColumns {
			sets = append(sets, fmt.Sprintf("%s = VALUES(%s)", c, c))
		}
		return " ON DUPLICATE KEY UPDATE " + strings.Join(sets, ", ")
	}
	for _, c := range updateColumns {
		sets = append(sets, fmt.Sprintf("%s = excluded.%s", c, c))
	}
	return fmt.Sprintf(" ON CONFLICT (%s) DO UPDATE SET %s", conflictColumn, strings.Join(sets, ", "))
}

// IsUniqueViolation reports whether err is a primary key or unique constraint
// violation raised by any of the supported drivers.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" // unique_violation
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062 // ER_DUP_ENTRY
	}
	return false
}

// IsRetryableConflict reports whether a write lost a race with a concurrent
// writer and may succeed if repeated: a uniqueness violation, a deadlock or a
// lock wait timeout (mysql 1213/1205, postgres 40001/40P01).
func IsRetryableConflict(err error) bool {
	if IsUniqueViolation(err) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205
	}
	return false
}
