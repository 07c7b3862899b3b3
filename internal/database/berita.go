package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"osisweb/internal/util"

	"github.com/jackc/pgx/v5"
)

// Berita is a news post.
type Berita struct {
	ID               int64
	Judul            string
	Konten           string
	TanggalPublikasi time.Time
	Gambar           []string
	Role             Role
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

const beritaColumns = `id, judul, konten, tanggal_publikasi, gambar, role, created_at, updated_at`

func scanBerita(row pgx.Row) (Berita, error) {
	var b Berita
	err := row.Scan(&b.ID, &b.Judul, &b.Konten, &b.TanggalPublikasi, &b.Gambar, &b.Role, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

type ListBeritaParams struct {
	Role util.Optional[Role]
}

func (db *Database) ListBerita(ctx context.Context, params ListBeritaParams) ([]Berita, error) {
	var query strings.Builder
	query.WriteString(`SELECT ` + beritaColumns + ` FROM tbl_berita`)
	var args []any
	if params.Role.IsSet {
		query.WriteString(` WHERE role = $1`)
		args = append(args, params.Role.Val)
	}
	query.WriteString(` ORDER BY tanggal_publikasi DESC`)

	rows, err := db.Pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("database: failed to list berita: %w", err)
	}
	defer rows.Close()

	var beritas []Berita
	for rows.Next() {
		b, err := scanBerita(rows)
		if err != nil {
			return nil, fmt.Errorf("database: failed to scan berita: %w", err)
		}
		beritas = append(beritas, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database: failed to iterate berita: %w", err)
	}

	return beritas, nil
}

func (db *Database) GetBeritaByID(ctx context.Context, id int64) (Berita, error) {
	b, err := scanBerita(db.Pool.QueryRow(ctx, `SELECT `+beritaColumns+` FROM tbl_berita WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return b, ErrBeritaNotFound
		}
		return b, fmt.Errorf("database: failed to scan berita: %w", err)
	}
	return b, nil
}

type CreateBeritaParams struct {
	Judul  string
	Konten string
	Gambar []string
	Role   Role
}

func (db *Database) CreateBerita(ctx context.Context, params CreateBeritaParams) (Berita, error) {
	now := time.Now().UTC()
	berita := Berita{
		Judul:            params.Judul,
		Konten:           params.Konten,
		TanggalPublikasi: now,
		Gambar:           params.Gambar,
		Role:             params.Role,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if berita.Gambar == nil {
		berita.Gambar = []string{}
	}

	err := db.Pool.QueryRow(ctx, `INSERT INTO tbl_berita (judul, konten, tanggal_publikasi, gambar, role, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		berita.Judul, berita.Konten, berita.TanggalPublikasi, berita.Gambar, berita.Role, berita.CreatedAt, berita.UpdatedAt).Scan(&berita.ID)
	if err != nil {
		return berita, fmt.Errorf("database: failed to insert berita (judul=%s): %w", berita.Judul, err)
	}
	return berita, nil
}

type UpdateBeritaParams struct {
	Judul  util.Optional[string]
	Konten util.Optional[string]
	Gambar util.Optional[[]string]
}

func (db *Database) UpdateBeritaByID(ctx context.Context, id int64, params UpdateBeritaParams) error {
	var query strings.Builder
	query.WriteString(`UPDATE tbl_berita SET updated_at = $1`)
	args := []any{time.Now().UTC()}
	argNum := 2

	if params.Judul.IsSet {
		query.WriteString(fmt.Sprintf(", judul = $%d", argNum))
		args = append(args, params.Judul.Val)
		argNum++
	}
	if params.Konten.IsSet {
		query.WriteString(fmt.Sprintf(", konten = $%d", argNum))
		args = append(args, params.Konten.Val)
		argNum++
	}
	if params.Gambar.IsSet {
		query.WriteString(fmt.Sprintf(", gambar = $%d", argNum))
		args = append(args, params.Gambar.Val)
		argNum++
	}

	query.WriteString(fmt.Sprintf(" WHERE id = $%d", argNum))
	args = append(args, id)

	tag, err := db.Pool.Exec(ctx, query.String(), args...)
	if err != nil {
		return fmt.Errorf("database: failed to update berita (id=%d): %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBeritaNotFound
	}
	return nil
}

func (db *Database) DeleteBeritaByID(ctx context.Context, id int64) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM tbl_berita WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("database: failed to delete berita (id=%d): %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBeritaNotFound
	}
	return nil
}
