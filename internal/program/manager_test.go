package program

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"osisweb/internal/database"
	"osisweb/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	prokers map[int64]database.Proker
	nextID  int64
}

func newFakeStore(prokers ...database.Proker) *fakeStore {
	s := &fakeStore{prokers: make(map[int64]database.Proker), nextID: 1}
	for _, p := range prokers {
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
		s.prokers[p.ID] = p
	}
	return s
}

func (s *fakeStore) ListProker(_ context.Context, params database.ListProkerParams) ([]database.Proker, error) {
	var out []database.Proker
	for _, p := range s.prokers {
		if params.Role.IsSet && p.Role != params.Role.Val {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *fakeStore) GetProkerByID(_ context.Context, id int64) (database.Proker, error) {
	p, ok := s.prokers[id]
	if !ok {
		return database.Proker{}, database.ErrProkerNotFound
	}
	return p, nil
}

func (s *fakeStore) CreateProker(_ context.Context, params database.CreateProkerParams) (database.Proker, error) {
	p := database.Proker{
		ID:           s.nextID,
		Nama:         params.Nama,
		Deskripsi:    params.Deskripsi,
		TanggalMulai: params.TanggalMulai,
		Gambar:       params.Gambar,
		Divisi:       params.Divisi,
		Status:       params.Status,
		Role:         params.Role,
	}
	if p.Gambar == nil {
		p.Gambar = []string{}
	}
	s.prokers[p.ID] = p
	s.nextID++
	return p, nil
}

func (s *fakeStore) UpdateProkerByID(_ context.Context, id int64, params database.UpdateProkerParams) error {
	p, ok := s.prokers[id]
	if !ok {
		return database.ErrProkerNotFound
	}
	p.Nama = params.Nama.UnwrapOr(p.Nama)
	p.Deskripsi = params.Deskripsi.UnwrapOr(p.Deskripsi)
	p.TanggalMulai = params.TanggalMulai.UnwrapOr(p.TanggalMulai)
	p.Gambar = params.Gambar.UnwrapOr(p.Gambar)
	p.Divisi = params.Divisi.UnwrapOr(p.Divisi)
	p.Status = params.Status.UnwrapOr(p.Status)
	s.prokers[id] = p
	return nil
}

func (s *fakeStore) DeleteProkerByID(_ context.Context, id int64) error {
	if _, ok := s.prokers[id]; !ok {
		return database.ErrProkerNotFound
	}
	delete(s.prokers, id)
	return nil
}

func testManager(store Store) Manager {
	return NewManager(slog.New(slog.DiscardHandler), store)
}

func TestCreateTagsCallersRole(t *testing.T) {
	store := newFakeStore()
	manager := testManager(store)

	created, err := manager.Create(context.Background(), database.RoleMPK, CreateParams{
		Nama:         "Sidang Pleno",
		Deskripsi:    "Evaluasi program kerja",
		TanggalMulai: time.Now(),
		Divisi:       "Komisi A",
	})
	require.NoError(t, err)

	assert.Equal(t, database.RoleMPK, created.Role)
	assert.Equal(t, database.ProkerStatusBerlangsung, created.Status)
}

func TestUpdateWithoutImagesKeepsStoredList(t *testing.T) {
	store := newFakeStore(database.Proker{
		ID:     1,
		Nama:   "LDKS",
		Gambar: []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
		Role:   database.RoleOSIS,
	})
	manager := testManager(store)

	updated, err := manager.Update(context.Background(), database.RoleOSIS, 1, UpdateParams{
		Nama: util.Some("LDKS 2025"),
	})
	require.NoError(t, err)

	assert.Equal(t, "LDKS 2025", updated.Nama)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}, updated.Gambar)
}

func TestUpdateWithImagesReplacesWholeList(t *testing.T) {
	store := newFakeStore(database.Proker{
		ID:     1,
		Gambar: []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
		Role:   database.RoleOSIS,
	})
	manager := testManager(store)

	updated, err := manager.Update(context.Background(), database.RoleOSIS, 1, UpdateParams{
		Gambar: util.Some([]string{"https://cdn.example.com/c.jpg"}),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://cdn.example.com/c.jpg"}, updated.Gambar)
}

func TestUpdateForeignRoleLooksLikeMissing(t *testing.T) {
	store := newFakeStore(database.Proker{ID: 4, Role: database.RoleMPK})
	manager := testManager(store)
	ctx := context.Background()

	_, missingErr := manager.Update(ctx, database.RoleOSIS, 99, UpdateParams{})
	_, foreignErr := manager.Update(ctx, database.RoleOSIS, 4, UpdateParams{})

	assert.ErrorIs(t, missingErr, database.ErrProkerNotFound)
	assert.ErrorIs(t, foreignErr, database.ErrProkerNotFound)
}

func TestDeleteForeignRoleLooksLikeMissing(t *testing.T) {
	store := newFakeStore(database.Proker{ID: 4, Role: database.RoleMPK})
	manager := testManager(store)

	assert.ErrorIs(t, manager.Delete(context.Background(), database.RoleOSIS, 4), database.ErrProkerNotFound)
	assert.Contains(t, store.prokers, int64(4))
}

func TestListFiltersByRole(t *testing.T) {
	store := newFakeStore(
		database.Proker{ID: 1, Role: database.RoleOSIS},
		database.Proker{ID: 2, Role: database.RoleMPK},
	)
	manager := testManager(store)

	mine, err := manager.List(context.Background(), database.RoleOSIS)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(1), mine[0].ID)

	everyone, err := manager.ListPublic(context.Background())
	require.NoError(t, err)
	assert.Len(t, everyone, 2)
}
