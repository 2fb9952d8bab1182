package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tattoostudio/studio-manager/internal/core/domain"
)

const sessionColumns = `id, client_id, artist_id, date, status, notes`

type SessionRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewSessionRepository(db *sql.DB, dialect Dialect) *SessionRepository {
	return &SessionRepository{db: db, dialect: dialect}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := r.dialect.Rebind(`
		INSERT INTO sessions (client_id, artist_id, date, status, notes)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`)

	err := r.db.QueryRowContext(ctx, query,
		s.ClientID,
		s.ArtistID,
		s.Date.UTC(),
		string(s.Status),
		nullString(s.Notes),
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id int64) (*domain.Session, error) {
	query := r.dialect.Rebind(`SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`)

	s, err := scanSession(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	return s, nil
}

func (r *SessionRepository) List(ctx context.Context) ([]*domain.Session, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+sessionColumns+` FROM sessions ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := []*domain.Session{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

func (r *SessionRepository) Update(ctx context.Context, s *domain.Session) error {
	query := r.dialect.Rebind(`
		UPDATE sessions
		SET client_id = ?, artist_id = ?, date = ?, status = ?, notes = ?
		WHERE id = ?
	`)

	res, err := r.db.ExecContext(ctx, query,
		s.ClientID,
		s.ArtistID,
		s.Date.UTC(),
		string(s.Status),
		nullString(s.Notes),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return expectOneRow(res, domain.ErrSessionNotFound)
}

func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM sessions WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return expectOneRow(res, domain.ErrSessionNotFound)
}

func scanSession(row rowScanner) (*domain.Session, error) {
	var (
		s      domain.Session
		status string
		notes  sql.NullString
	)
	if err := row.Scan(&s.ID, &s.ClientID, &s.ArtistID, &s.Date, &status, &notes); err != nil {
		return nil, err
	}
	s.Date = s.Date.UTC()
	s.Status = domain.SessionStatus(status)
	s.Notes = notes.String
	return &s, nil
}
