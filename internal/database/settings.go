package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// SettingKeyTahun is the active-period setting, one logical row per
// (kunci, role) pair.
const SettingKeyTahun = "tahun_kepengurusan"

type Setting struct {
	ID    int64
	Kunci string
	Nilai string
	Role  Role
}

// ListSettings returns every setting row for both organizations.
func (db *Database) ListSettings(ctx context.Context) ([]Setting, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id, kunci, nilai, role FROM tbl_settings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("database: failed to list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.ID, &s.Kunci, &s.Nilai, &s.Role); err != nil {
			return nil, fmt.Errorf("database: failed to scan setting: %w", err)
		}
		settings = append(settings, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database: failed to iterate settings: %w", err)
	}

	return settings, nil
}

func (db *Database) GetSetting(ctx context.Context, kunci string, role Role) (Setting, error) {
	var s Setting
	err := db.Pool.QueryRow(ctx, `SELECT id, kunci, nilai, role FROM tbl_settings WHERE kunci = $1 AND role = $2`, kunci, role).
		Scan(&s.ID, &s.Kunci, &s.Nilai, &s.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return s, ErrSettingNotFound
		}
		return s, fmt.Errorf("database: failed to scan setting: %w", err)
	}
	return s, nil
}

// UpdateSetting changes the value of an existing row; a missing row is an
// error, not an upsert.
func (db *Database) UpdateSetting(ctx context.Context, kunci string, role Role, nilai string) error {
	tag, err := db.Pool.Exec(ctx, `UPDATE tbl_settings SET nilai = $1 WHERE kunci = $2 AND role = $3`, nilai, kunci, role)
	if err != nil {
		return fmt.Errorf("database: failed to update setting (kunci=%s): %w", kunci, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSettingNotFound
	}
	return nil
}
