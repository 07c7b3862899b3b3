package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"osisweb/internal/util"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Member struct {
	ID        int64
	Nama      string
	NISN      string
	Jabatan   string
	URLFoto   string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

const memberColumns = `id, nama, nisn, jabatan, url_foto, role, created_at, updated_at`

func scanMember(row pgx.Row) (Member, error) {
	var m Member
	err := row.Scan(&m.ID, &m.Nama, &m.NISN, &m.Jabatan, &m.URLFoto, &m.Role, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

type ListMembersParams struct {
	// Role empty lists members of both organizations (public endpoint).
	Role util.Optional[Role]
}

func (db *Database) ListMembers(ctx context.Context, params ListMembersParams) ([]Member, error) {
	var query strings.Builder
	query.WriteString(`SELECT ` + memberColumns + ` FROM tbl_member`)
	var args []any
	if params.Role.IsSet {
		query.WriteString(` WHERE role = $1`)
		args = append(args, params.Role.Val)
	}
	query.WriteString(` ORDER BY id`)

	rows, err := db.Pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("database: failed to list members: %w", err)
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("database: failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database: failed to iterate members: %w", err)
	}

	return members, nil
}

func (db *Database) GetMemberByID(ctx context.Context, id int64) (Member, error) {
	m, err := scanMember(db.Pool.QueryRow(ctx, `SELECT `+memberColumns+` FROM tbl_member WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return m, ErrMemberNotFound
		}
		return m, fmt.Errorf("database: failed to scan member: %w", err)
	}
	return m, nil
}

type CreateMemberParams struct {
	Nama    string
	NISN    string
	Jabatan string
	URLFoto string
	Role    Role
}

func (db *Database) CreateMember(ctx context.Context, params CreateMemberParams) (Member, error) {
	now := time.Now().UTC()
	member := Member{
		Nama:      params.Nama,
		NISN:      params.NISN,
		Jabatan:   params.Jabatan,
		URLFoto:   params.URLFoto,
		Role:      params.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := db.Pool.QueryRow(ctx, `INSERT INTO tbl_member (nama, nisn, jabatan, url_foto, role, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		member.Nama, member.NISN, member.Jabatan, member.URLFoto, member.Role, member.CreatedAt, member.UpdatedAt).Scan(&member.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return member, ErrDuplicateNISN
		}
		return member, fmt.Errorf("database: failed to insert member (nisn=%s): %w", member.NISN, err)
	}
	return member, nil
}

type UpdateMemberParams struct {
	Nama    util.Optional[string]
	NISN    util.Optional[string]
	Jabatan util.Optional[string]
	URLFoto util.Optional[string]
}

func (db *Database) UpdateMemberByID(ctx context.Context, id int64, params UpdateMemberParams) error {
	var query strings.Builder
	query.WriteString(`UPDATE tbl_member SET updated_at = $1`)
	args := []any{time.Now().UTC()}
	argNum := 2

	if params.Nama.IsSet {
		query.WriteString(fmt.Sprintf(", nama = $%d", argNum))
		args = append(args, params.Nama.Val)
		argNum++
	}
	if params.NISN.IsSet {
		query.WriteString(fmt.Sprintf(", nisn = $%d", argNum))
		args = append(args, params.NISN.Val)
		argNum++
	}
	if params.Jabatan.IsSet {
		query.WriteString(fmt.Sprintf(", jabatan = $%d", argNum))
		args = append(args, params.Jabatan.Val)
		argNum++
	}
	if params.URLFoto.IsSet {
		query.WriteString(fmt.Sprintf(", url_foto = $%d", argNum))
		args = append(args, params.URLFoto.Val)
		argNum++
	}

	query.WriteString(fmt.Sprintf(" WHERE id = $%d", argNum))
	args = append(args, id)

	tag, err := db.Pool.Exec(ctx, query.String(), args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateNISN
		}
		return fmt.Errorf("database: failed to update member (id=%d): %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (db *Database) DeleteMemberByID(ctx context.Context, id int64) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM tbl_member WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("database: failed to delete member (id=%d): %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
