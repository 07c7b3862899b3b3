package settings

import (
	"context"
	"log/slog"

	"osisweb/internal/database"
)

type Store interface {
	ListSettings(ctx context.Context) ([]database.Setting, error)
	GetSetting(ctx context.Context, kunci string, role database.Role) (database.Setting, error)
	UpdateSetting(ctx context.Context, kunci string, role database.Role, nilai string) error
}

type Manager struct {
	Logger *slog.Logger
	Store  Store
}

func NewManager(logger *slog.Logger, store Store) Manager {
	return Manager{Logger: logger, Store: store}
}

// GetTahun returns the caller's active period setting.
func (m *Manager) GetTahun(ctx context.Context, role database.Role) (database.Setting, error) {
	return m.Store.GetSetting(ctx, database.SettingKeyTahun, role)
}

// UpdateTahun sets the caller's active period and returns the updated row.
// The row is seeded by migration; updating never creates one.
func (m *Manager) UpdateTahun(ctx context.Context, role database.Role, nilai string) (database.Setting, error) {
	if err := m.Store.UpdateSetting(ctx, database.SettingKeyTahun, role, nilai); err != nil {
		return database.Setting{}, err
	}
	return m.Store.GetSetting(ctx, database.SettingKeyTahun, role)
}

// ListPublic returns the settings of both organizations so the public site
// can show each one's active period.
func (m *Manager) ListPublic(ctx context.Context) ([]database.Setting, error) {
	return m.Store.ListSettings(ctx)
}
