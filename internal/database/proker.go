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

type ProkerStatus string

const (
	ProkerStatusBerlangsung  ProkerStatus = "Berlangsung"
	ProkerStatusDirencanakan ProkerStatus = "Direncanakan"
	ProkerStatusSelesai      ProkerStatus = "Selesai"
)

// Proker is a work program. Gambar is the ordered list of image URLs in
// upload order; it is replaced wholesale when new files are uploaded and
// retained otherwise.
type Proker struct {
	ID           int64
	Nama         string
	Deskripsi    string
	TanggalMulai time.Time
	Gambar       []string
	Divisi       string
	Status       ProkerStatus
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const prokerColumns = `id, nama, deskripsi, tanggal_mulai, gambar, divisi, status, role, created_at, updated_at`

func scanProker(row pgx.Row) (Proker, error) {
	var p Proker
	err := row.Scan(&p.ID, &p.Nama, &p.Deskripsi, &p.TanggalMulai, &p.Gambar, &p.Divisi, &p.Status, &p.Role, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

type ListProkerParams struct {
	// Role empty lists across both organizations (public endpoint).
	Role util.Optional[Role]
}

func (db *Database) ListProker(ctx context.Context, params ListProkerParams) ([]Proker, error) {
	var query strings.Builder
	query.WriteString(`SELECT ` + prokerColumns + ` FROM tbl_proker`)
	var args []any
	if params.Role.IsSet {
		query.WriteString(` WHERE role = $1`)
		args = append(args, params.Role.Val)
	}
	query.WriteString(` ORDER BY tanggal_mulai DESC`)

	rows, err := db.Pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("database: failed to list proker: %w", err)
	}
	defer rows.Close()

	var prokers []Proker
	for rows.Next() {
		p, err := scanProker(rows)
		if err != nil {
			return nil, fmt.Errorf("database: failed to scan proker: %w", err)
		}
		prokers = append(prokers, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database: failed to iterate proker: %w", err)
	}

	return prokers, nil
}

func (db *Database) GetProkerByID(ctx context.Context, id int64) (Proker, error) {
	p, err := scanProker(db.Pool.QueryRow(ctx, `SELECT `+prokerColumns+` FROM tbl_proker WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p, ErrProkerNotFound
		}
		return p, fmt.Errorf("database: failed to scan proker: %w", err)
	}
	return p, nil
}

type CreateProkerParams struct {
	Nama         string
	Deskripsi    string
	TanggalMulai time.Time
	Gambar       []string
	Divisi       string
	Status       ProkerStatus
	Role         Role
}

func (db *Database) CreateProker(ctx context.Context, params CreateProkerParams) (Proker, error) {
	now := time.Now().UTC()
	proker := Proker{
		Nama:         params.Nama,
		Deskripsi:    params.Deskripsi,
		TanggalMulai: params.TanggalMulai,
		Gambar:       params.Gambar,
		Divisi:       params.Divisi,
		Status:       params.Status,
		Role:         params.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if proker.Gambar == nil {
		proker.Gambar = []string{}
	}

	err := db.Pool.QueryRow(ctx, `INSERT INTO tbl_proker (nama, deskripsi, tanggal_mulai, gambar, divisi, status, role, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		proker.Nama, proker.Deskripsi, proker.TanggalMulai, proker.Gambar, proker.Divisi, proker.Status, proker.Role, proker.CreatedAt, proker.UpdatedAt).Scan(&proker.ID)
	if err != nil {
		return proker, fmt.Errorf("database: failed to insert proker (nama=%s): %w", proker.Nama, err)
	}
	return proker, nil
}

type UpdateProkerParams struct {
	Nama         util.Optional[string]
	Deskripsi    util.Optional[string]
	TanggalMulai util.Optional[time.Time]
	Gambar       util.Optional[[]string]
	Divisi       util.Optional[string]
	Status       util.Optional[ProkerStatus]
}

func (db *Database) UpdateProkerByID(ctx context.Context, id int64, params UpdateProkerParams) error {
	var query strings.Builder
	query.WriteString(`UPDATE tbl_proker SET updated_at = $1`)
	args := []any{time.Now().UTC()}
	argNum := 2

	if params.Nama.IsSet {
		query.WriteString(fmt.Sprintf(", nama = $%d", argNum))
		args = append(args, params.Nama.Val)
		argNum++
	}
	if params.Deskripsi.IsSet {
		query.WriteString(fmt.Sprintf(", deskripsi = $%d", argNum))
		args = append(args, params.Deskripsi.Val)
		argNum++
	}
	if params.TanggalMulai.IsSet {
		query.WriteString(fmt.Sprintf(", tanggal_mulai = $%d", argNum))
		args = append(args, params.TanggalMulai.Val)
		argNum++
	}
	if params.Gambar.IsSet {
		query.WriteString(fmt.Sprintf(", gambar = $%d", argNum))
		args = append(args, params.Gambar.Val)
		argNum++
	}
	if params.Divisi.IsSet {
		query.WriteString(fmt.Sprintf(", divisi = $%d", argNum))
		args = append(args, params.Divisi.Val)
		argNum++
	}
	if params.Status.IsSet {
		query.WriteString(fmt.Sprintf(", status = $%d", argNum))
		args = append(args, params.Status.Val)
		argNum++
	}

	query.WriteString(fmt.Sprintf(" WHERE id = $%d", argNum))
	args = append(args, id)

	tag, err := db.Pool.Exec(ctx, query.String(), args...)
	if err != nil {
		return fmt.Errorf("database: failed to update proker (id=%d): %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProkerNotFound
	}
	return nil
}

func (db *Database) DeleteProkerByID(ctx context.Context, id int64) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM tbl_proker WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("database: failed to delete proker (id=%d): %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProkerNotFound
	}
	return nil
}
