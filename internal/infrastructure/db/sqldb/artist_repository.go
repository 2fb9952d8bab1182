package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tattoostudio/studio-manager/internal/core/domain"
)

const artistColumns = `id, name, phone, email, bio, portfolio`

type ArtistRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewArtistRepository(db *sql.DB, dialect Dialect) *ArtistRepository {
	return &ArtistRepository{db: db, dialect: dialect}
}

func (r *ArtistRepository) Create(ctx context.Context, a *domain.Artist) error {
	query := r.dialect.Rebind(`
		INSERT INTO artists (name, phone, email, bio, portfolio)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`)

	err := r.db.QueryRowContext(ctx, query,
		a.Name,
		nullString(a.Phone),
		nullString(a.Email),
		nullString(a.Bio),
		nullString(a.Portfolio),
	).Scan(&a.ID)
	if isUniqueViolation(err) {
		return domain.ErrArtistExists
	}
	if err != nil {
		return fmt.Errorf("insert artist: %w", err)
	}
	return nil
}

func (r *ArtistRepository) FindByID(ctx context.Context, id int64) (*domain.Artist, error) {
	query := r.dialect.Rebind(`SELECT ` + artistColumns + ` FROM artists WHERE id = ?`)

	a, err := scanArtist(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find artist: %w", err)
	}
	return a, nil
}

func (r *ArtistRepository) List(ctx context.Context) ([]*domain.Artist, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+artistColumns+` FROM artists ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	artists := []*domain.Artist{}
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}
	return artists, nil
}

func (r *ArtistRepository) Update(ctx context.Context, a *domain.Artist) error {
	query := r.dialect.Rebind(`
		UPDATE artists
		SET name = ?, phone = ?, email = ?, bio = ?, portfolio = ?
		WHERE id = ?
	`)

	res, err := r.db.ExecContext(ctx, query,
		a.Name,
		nullString(a.Phone),
		nullString(a.Email),
		nullString(a.Bio),
		nullString(a.Portfolio),
		a.ID,
	)
	if isUniqueViolation(err) {
		return domain.ErrArtistExists
	}
	if err != nil {
		return fmt.Errorf("update artist: %w", err)
	}
	return expectOneRow(res, domain.ErrArtistNotFound)
}

func (r *ArtistRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM artists WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete artist: %w", err)
	}
	return expectOneRow(res, domain.ErrArtistNotFound)
}

func scanArtist(row rowScanner) (*domain.Artist, error) {
	var a domain.Artist
	var phone, email, bio, portfolio sql.NullString
	if err := row.Scan(&a.ID, &a.Name, &phone, &email, &bio, &portfolio); err != nil {
		return nil, err
	}
	a.Phone = phone.String
	a.Email = email.String
	a.Bio = bio.String
	a.Portfolio = portfolio.String
	return &a, nil
}
