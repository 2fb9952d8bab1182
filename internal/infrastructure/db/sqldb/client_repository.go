package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tattoostudio/studio-manager/internal/core/domain"
)

const clientColumns = `id, name, phone, address, allergies, medical_info, qr_id`

type ClientRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewClientRepository(db *sql.DB, dialect Dialect) *ClientRepository {
	return &ClientRepository{db: db, dialect: dialect}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := r.dialect.Rebind(`
		INSERT INTO clients (name, phone, address, allergies, medical_info, qr_id)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	err := r.db.QueryRowContext(ctx, query,
		c.Name,
		nullString(c.Phone),
		nullString(c.Address),
		nullString(c.Allergies),
		nullString(c.MedicalInfo),
		nullString(c.QRID),
	).Scan(&c.ID)
	if isUniqueViolation(err) {
		return domain.ErrClientExists
	}
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	query := r.dialect.Rebind(`SELECT ` + clientColumns + ` FROM clients WHERE id = ?`)

	c, err := scanClient(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find client: %w", err)
	}
	return c, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	clients := []*domain.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clients: %w", err)
	}
	return clients, nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	query := r.dialect.Rebind(`
		UPDATE clients
		SET name = ?, phone = ?, address = ?, allergies = ?, medical_info = ?, qr_id = ?
		WHERE id = ?
	`)

	res, err := r.db.ExecContext(ctx, query,
		c.Name,
		nullString(c.Phone),
		nullString(c.Address),
		nullString(c.Allergies),
		nullString(c.MedicalInfo),
		nullString(c.QRID),
		c.ID,
	)
	if isUniqueViolation(err) {
		return domain.ErrClientExists
	}
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return expectOneRow(res, domain.ErrClientNotFound)
}

func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM clients WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return expectOneRow(res, domain.ErrClientNotFound)
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var c domain.Client
	var phone, address, allergies, medical, qrID sql.NullString
	if err := row.Scan(&c.ID, &c.Name, &phone, &address, &allergies, &medical, &qrID); err != nil {
		return nil, err
	}
	c.Phone = phone.String
	c.Address = address.String
	c.Allergies = allergies.String
	c.MedicalInfo = medical.String
	c.QRID = qrID.String
	return &c, nil
}
