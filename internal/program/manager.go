package program

import (
	"context"
	"log/slog"
	"time"

	"osisweb/internal/database"
	"osisweb/internal/util"
)

type Store interface {
	ListProker(ctx context.Context, params database.ListProkerParams) ([]database.Proker, error)
	GetProkerByID(ctx context.Context, id int64) (database.Proker, error)
	CreateProker(ctx context.Context, params database.CreateProkerParams) (database.Proker, error)
	UpdateProkerByID(ctx context.Context, id int64, params database.UpdateProkerParams) error
	DeleteProkerByID(ctx context.Context, id int64) error
}

type Manager struct {
	Logger *slog.Logger
	Store  Store
}

func NewManager(logger *slog.Logger, store Store) Manager {
	return Manager{Logger: logger, Store: store}
}

// List returns the role's work programs, newest start date first.
func (m *Manager) List(ctx context.Context, role database.Role) ([]database.Proker, error) {
	return m.Store.ListProker(ctx, database.ListProkerParams{Role: util.Some(role)})
}

// ListPublic returns programs of both organizations for the landing page.
func (m *Manager) ListPublic(ctx context.Context) ([]database.Proker, error) {
	return m.Store.ListProker(ctx, database.ListProkerParams{})
}

type CreateParams struct {
	Nama         string
	Deskripsi    string
	TanggalMulai time.Time
	Gambar       []string
	Divisi       string
	Status       database.ProkerStatus
}

func (m *Manager) Create(ctx context.Context, role database.Role, params CreateParams) (database.Proker, error) {
	if params.Status == "" {
		params.Status = database.ProkerStatusBerlangsung
	}

	return m.Store.CreateProker(ctx, database.CreateProkerParams{
		Nama:         params.Nama,
		Deskripsi:    params.Deskripsi,
		TanggalMulai: params.TanggalMulai,
		Gambar:       params.Gambar,
		Divisi:       params.Divisi,
		Status:       params.Status,
		Role:         role,
	})
}

type UpdateParams struct {
	Nama         util.Optional[string]
	Deskripsi    util.Optional[string]
	TanggalMulai util.Optional[time.Time]
	// Gambar unset keeps the stored image list; set replaces it wholesale.
	Gambar util.Optional[[]string]
	Divisi util.Optional[string]
	Status util.Optional[database.ProkerStatus]
}

// Update changes one of the caller's programs. A program owned by the
// other role answers exactly like a missing id.
func (m *Manager) Update(ctx context.Context, role database.Role, id int64, params UpdateParams) (database.Proker, error) {
	existing, err := m.Store.GetProkerByID(ctx, id)
	if err != nil {
		return database.Proker{}, err
	}
	if existing.Role != role {
		return database.Proker{}, database.ErrProkerNotFound
	}

	if err := m.Store.UpdateProkerByID(ctx, id, database.UpdateProkerParams{
		Nama:         params.Nama,
		Deskripsi:    params.Deskripsi,
		TanggalMulai: params.TanggalMulai,
		Gambar:       params.Gambar,
		Divisi:       params.Divisi,
		Status:       params.Status,
	}); err != nil {
		return database.Proker{}, err
	}

	return m.Store.GetProkerByID(ctx, id)
}

func (m *Manager) Delete(ctx context.Context, role database.Role, id int64) error {
	existing, err := m.Store.GetProkerByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Role != role {
		return database.ErrProkerNotFound
	}

	return m.Store.DeleteProkerByID(ctx, id)
}
