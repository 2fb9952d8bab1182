package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tattoostudio/studio-manager/internal/core/domain"
	"github.com/tattoostudio/studio-manager/internal/core/ports"
)

// openMemoryDB returns an empty in-memory SQLite database. A single pooled
// connection keeps every caller on the same in-memory instance.
func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open(SQLite.DriverName, ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func tableCount(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('users', 'clients', 'artists', 'sessions')`).Scan(&n))
	return n
}

func TestProvisioner_EnsureSchema_CreatesThenReportsExisting(t *testing.T) {
	db := openMemoryDB(t)
	fixed := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	p := NewProvisioner(db, SQLite, zerolog.Nop())
	p.now = func() time.Time { return fixed }

	first, err := p.EnsureSchema(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ports.ProvisionSuccess, first.Status)
	assert.Equal(t, []string{"users", "clients", "artists", "sessions"}, first.Created)
	assert.Empty(t, first.Existing)
	assert.Equal(t, fixed, first.Timestamp)
	assert.False(t, first.AllExisted())
	assert.Equal(t, 4, tableCount(t, db))

	second, err := p.EnsureSchema(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ports.ProvisionSuccess, second.Status)
	assert.Empty(t, second.Created)
	assert.Equal(t, TableNames(), second.Existing)
	assert.True(t, second.AllExisted())
	assert.Equal(t, 4, tableCount(t, db))
}

func TestProvisioner_EnsureSchema_CreatesOnlyMissingTables(t *testing.T) {
	db := openMemoryDB(t)
	_, err := db.Exec(SQLite.CreateTableSQL(Schema[0]))
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO users (name, email, password_hash) VALUES ('A', 'a@x.com', 'h')`)
	require.NoError(t, err)

	res, err := NewProvisioner(db, SQLite, zerolog.Nop()).EnsureSchema(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"users"}, res.Existing)
	assert.Equal(t, []string{"clients", "artists", "sessions"}, res.Created)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n))
	assert.Equal(t, 1, n, "existing rows must survive provisioning")
}

func TestProvisioner_EnsureSchema_NilDatabase(t *testing.T) {
	res, err := NewProvisioner(nil, SQLite, zerolog.Nop()).EnsureSchema(context.Background())
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, domain.ErrDatabaseNotConfigured))
}

func TestProvisioner_EnsureSchema_ClosedDatabaseIsReportedAsFailure(t *testing.T) {
	db, err := sql.Open(SQLite.DriverName, ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	res, err := NewProvisioner(db, SQLite, zerolog.Nop()).EnsureSchema(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ports.ProvisionFailure, res.Status)
	assert.NotEmpty(t, res.Error)
	assert.Empty(t, res.Created)
}

func TestProvisioner_EnsureSchema_ConcurrentCreateCountsAsExisting(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	p := NewProvisioner(db, SQLite, zerolog.Nop())
	p.tables = Schema[:1]

	mock.ExpectQuery(`SELECT name FROM sqlite_master`).
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"name"}))
	mock.ExpectExec(`CREATE TABLE users`).
		WillReturnError(errors.New("table users already exists"))
	mock.ExpectQuery(`SELECT name FROM sqlite_master`).
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("users"))

	res, err := p.EnsureSchema(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ports.ProvisionSuccess, res.Status)
	assert.Equal(t, []string{"users"}, res.Existing)
	assert.Empty(t, res.Created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProvisioner_EnsureSchema_CreateFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	p := NewProvisioner(db, Postgres, zerolog.Nop())
	p.tables = Schema[:2]

	mock.ExpectQuery(`SELECT table_name FROM information_schema.tables`).
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectExec(`CREATE TABLE users`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT table_name FROM information_schema.tables`).
		WithArgs("clients").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectExec(`CREATE TABLE clients`).
		WillReturnError(errors.New("permission denied for schema public"))
	mock.ExpectQuery(`SELECT table_name FROM information_schema.tables`).
		WithArgs("clients").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	res, err := p.EnsureSchema(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ports.ProvisionFailure, res.Status)
	assert.Equal(t, []string{"users"}, res.Created)
	assert.Contains(t, res.Error, "permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProvisioner_EnsureSchema_InspectFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT name FROM sqlite_master`).
		WithArgs("users").
		WillReturnError(errors.New("disk I/O error"))

	res, err := NewProvisioner(db, SQLite, zerolog.Nop()).EnsureSchema(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ports.ProvisionFailure, res.Status)
	assert.Contains(t, res.Error, "inspect users")
	assert.NoError(t, mock.ExpectationsWereMet())
}
