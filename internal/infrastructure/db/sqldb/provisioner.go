package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tattoostudio/studio-manager/internal/core/domain"
	"github.com/tattoostudio/studio-manager/internal/core/ports"
)

// Provisioner creates any missing entity table. Existing tables are never
// altered, so running it repeatedly is safe.
type Provisioner struct {
	db      *sql.DB
	dialect Dialect
	tables  []Table
	log     zerolog.Logger
	now     func() time.Time
}

func NewProvisioner(db *sql.DB, dialect Dialect, log zerolog.Logger) *Provisioner {
	return &Provisioner{db: db, dialect: dialect, tables: Schema, log: log, now: time.Now}
}

// EnsureSchema walks the schema in order, creating tables that are absent.
// It holds one connection for the whole run.
func (p *Provisioner) EnsureSchema(ctx context.Context) (*ports.ProvisionResult, error) {
	if p.db == nil {
		return nil, domain.ErrDatabaseNotConfigured
	}

	result := &ports.ProvisionResult{
		Created:   []string{},
		Existing:  []string{},
		Timestamp: p.now().UTC(),
	}

	conn, err := p.db.Conn(ctx)
	if err != nil {
		return p.fail(result, fmt.Errorf("acquire connection: %w", err)), nil
	}
	defer conn.Close()

	for _, table := range p.tables {
		exists, err := p.tableExists(ctx, conn, table.Name)
		if err != nil {
			return p.fail(result, fmt.Errorf("inspect %s: %w", table.Name, err)), nil
		}
		if exists {
			result.Existing = append(result.Existing, table.Name)
			continue
		}

		if _, err := conn.ExecContext(ctx, p.dialect.CreateTableSQL(table)); err != nil {
			// Another provisioner may have created it since the check.
			if again, checkErr := p.tableExists(ctx, conn, table.Name); checkErr == nil && again {
				result.Existing = append(result.Existing, table.Name)
				continue
			}
			return p.fail(result, fmt.Errorf("create %s: %w", table.Name, err)), nil
		}
		result.Created = append(result.Created, table.Name)
	}

	result.Status = ports.ProvisionSuccess
	if len(result.Created) == 0 {
		p.log.Info().Msg("database schema already exists")
	} else {
		p.log.Info().Strs("created_tables", result.Created).Msg("database schema provisioned")
	}
	return result, nil
}

func (p *Provisioner) tableExists(ctx context.Context, conn *sql.Conn, name string) (bool, error) {
	var found string
	err := conn.QueryRowContext(ctx, p.dialect.TableExistsQuery(), name).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (p *Provisioner) fail(result *ports.ProvisionResult, err error) *ports.ProvisionResult {
	p.log.Error().Err(err).Strs("created_tables", result.Created).Msg("database provisioning failed")
	result.Status = ports.ProvisionFailure
	result.Error = err.Error()
	return result
}
