package news

import (
	"context"
	"log/slog"

	"osisweb/internal/database"
	"osisweb/internal/util"
)

type Store interface {
	ListBerita(ctx context.Context, params database.ListBeritaParams) ([]database.Berita, error)
	GetBeritaByID(ctx context.Context, id int64) (database.Berita, error)
	CreateBerita(ctx context.Context, params database.CreateBeritaParams) (database.Berita, error)
	UpdateBeritaByID(ctx context.Context, id int64, params database.UpdateBeritaParams) error
	DeleteBeritaByID(ctx context.Context, id int64) error
}

type Manager struct {
	Logger *slog.Logger
	Store  Store
}

func NewManager(logger *slog.Logger, store Store) Manager {
	return Manager{Logger: logger, Store: store}
}

// List returns the role's news posts, newest publication first.
func (m *Manager) List(ctx context.Context, role database.Role) ([]database.Berita, error) {
	return m.Store.ListBerita(ctx, database.ListBeritaParams{Role: util.Some(role)})
}

// ListPublic returns posts of both organizations for the landing page.
func (m *Manager) ListPublic(ctx context.Context) ([]database.Berita, error) {
	return m.Store.ListBerita(ctx, database.ListBeritaParams{})
}

type CreateParams struct {
	Judul  string
	Konten string
	Gambar []string
}

// Create publishes a post immediately; the publication timestamp is the
// insert time.
func (m *Manager) Create(ctx context.Context, role database.Role, params CreateParams) (database.Berita, error) {
	return m.Store.CreateBerita(ctx, database.CreateBeritaParams{
		Judul:  params.Judul,
		Konten: params.Konten,
		Gambar: params.Gambar,
		Role:   role,
	})
}

type UpdateParams struct {
	Judul  util.Optional[string]
	Konten util.Optional[string]
	// Gambar unset keeps the stored image list; set replaces it wholesale.
	Gambar util.Optional[[]string]
}

// Update changes one of the caller's posts. A post owned by the other
// role answers exactly like a missing id. The publication timestamp never
// changes on edit.
func (m *Manager) Update(ctx context.Context, role database.Role, id int64, params UpdateParams) (database.Berita, error) {
	existing, err := m.Store.GetBeritaByID(ctx, id)
	if err != nil {
		return database.Berita{}, err
	}
	if existing.Role != role {
		return database.Berita{}, database.ErrBeritaNotFound
	}

	if err := m.Store.UpdateBeritaByID(ctx, id, database.UpdateBeritaParams{
		Judul:  params.Judul,
		Konten: params.Konten,
		Gambar: params.Gambar,
	}); err != nil {
		return database.Berita{}, err
	}

	return m.Store.GetBeritaByID(ctx, id)
}

func (m *Manager) Delete(ctx context.Context, role database.Role, id int64) error {
	existing, err := m.Store.GetBeritaByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Role != role {
		return database.ErrBeritaNotFound
	}

	return m.Store.DeleteBeritaByID(ctx, id)
}
