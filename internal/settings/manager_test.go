package settings

import (
	"context"
	"log/slog"
	"testing"

	"osisweb/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	rows map[database.Role]database.Setting
}

func newFakeStore(rows ...database.Setting) *fakeStore {
	s := &fakeStore{rows: make(map[database.Role]database.Setting)}
	for _, row := range rows {
		s.rows[row.Role] = row
	}
	return s
}

func (s *fakeStore) ListSettings(_ context.Context) ([]database.Setting, error) {
	var out []database.Setting
	for _, row := range s.rows {
		out = append(out, row)
	}
	return out, nil
}

func (s *fakeStore) GetSetting(_ context.Context, kunci string, role database.Role) (database.Setting, error) {
	row, ok := s.rows[role]
	if !ok || row.Kunci != kunci {
		return database.Setting{}, database.ErrSettingNotFound
	}
	return row, nil
}

func (s *fakeStore) UpdateSetting(_ context.Context, kunci string, role database.Role, nilai string) error {
	row, ok := s.rows[role]
	if !ok || row.Kunci != kunci {
		return database.ErrSettingNotFound
	}
	row.Nilai = nilai
	s.rows[role] = row
	return nil
}

func testManager(store Store) Manager {
	return NewManager(slog.New(slog.DiscardHandler), store)
}

func TestGetTahunScopedToRole(t *testing.T) {
	store := newFakeStore(
		database.Setting{ID: 1, Kunci: database.SettingKeyTahun, Nilai: "2024/2025", Role: database.RoleOSIS},
		database.Setting{ID: 2, Kunci: database.SettingKeyTahun, Nilai: "2023/2024", Role: database.RoleMPK},
	)
	manager := testManager(store)

	setting, err := manager.GetTahun(context.Background(), database.RoleOSIS)
	require.NoError(t, err)
	assert.Equal(t, "2024/2025", setting.Nilai)
}

func TestUpdateTahunReturnsUpdatedRow(t *testing.T) {
	store := newFakeStore(database.Setting{ID: 1, Kunci: database.SettingKeyTahun, Nilai: "2024/2025", Role: database.RoleOSIS})
	manager := testManager(store)

	setting, err := manager.UpdateTahun(context.Background(), database.RoleOSIS, "2025/2026")
	require.NoError(t, err)
	assert.Equal(t, "2025/2026", setting.Nilai)
}

func TestUpdateTahunMissingRowIsNotAnUpsert(t *testing.T) {
	store := newFakeStore()
	manager := testManager(store)

	_, err := manager.UpdateTahun(context.Background(), database.RoleOSIS, "2025/2026")
	assert.ErrorIs(t, err, database.ErrSettingNotFound)
	assert.Empty(t, store.rows)
}
