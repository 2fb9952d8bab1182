package sqldb

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Dialect captures the SQL differences between the supported engines.
type Dialect struct {
	Name string
	// DriverName is the database/sql driver registered for the engine.
	DriverName string
}

var (
	SQLite   = Dialect{Name: "sqlite", DriverName: "sqlite"}
	Postgres = Dialect{Name: "postgres", DriverName: "pgx"}
)

// DialectFor resolves a DB_DRIVER value.
func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", name)
	}
}

// Rebind rewrites ? placeholders into the engine's native form.
func (d Dialect) Rebind(query string) string {
	if d.Name != Postgres.Name {
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

// TableExistsQuery returns a query yielding one row per matching table name.
func (d Dialect) TableExistsQuery() string {
	if d.Name == Postgres.Name {
		return `SELECT table_name FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = $1`
	}
	return `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`
}

func (d Dialect) columnType(t ColumnType) string {
	pg := d.Name == Postgres.Name
	switch t {
	case TypePK:
		if pg {
			return "BIGSERIAL PRIMARY KEY"
		}
		return "INTEGER PRIMARY KEY AUTOINCREMENT"
	case TypeInt:
		return "INTEGER"
	case TypeRef:
		if pg {
			return "BIGINT"
		}
		return "INTEGER"
	case TypeBool:
		return "BOOLEAN"
	case TypeTime:
		if pg {
			return "TIMESTAMPTZ"
		}
		return "DATETIME"
	default:
		return "TEXT"
	}
}

// CreateTableSQL renders the DDL for t.
func (d Dialect) CreateTableSQL(t Table) string {
	defs := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		def := c.Name + " " + d.columnType(c.Type)
		if c.NotNull {
			def += " NOT NULL"
		}
		if c.Unique {
			def += " UNIQUE"
		}
		if c.Default != "" {
			def += " DEFAULT " + c.Default
		}
		if c.References != "" {
			def += " REFERENCES " + c.References + " ON DELETE CASCADE"
		}
		defs = append(defs, def)
	}
	return "CREATE TABLE " + t.Name + " (\n\t" + strings.Join(defs, ",\n\t") + "\n)"
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure on
// either engine.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
