package member

import (
	"context"
	"log/slog"

	"osisweb/internal/database"
	"osisweb/internal/util"
)

// DefaultPhotoURL is used when a member is created without a photo upload.
const DefaultPhotoURL = "https://via.placeholder.com/150"

type Store interface {
	ListMembers(ctx context.Context, params database.ListMembersParams) ([]database.Member, error)
	GetMemberByID(ctx context.Context, id int64) (database.Member, error)
	CreateMember(ctx context.Context, params database.CreateMemberParams) (database.Member, error)
	UpdateMemberByID(ctx context.Context, id int64, params database.UpdateMemberParams) error
	DeleteMemberByID(ctx context.Context, id int64) error
}

type Manager struct {
	Logger *slog.Logger
	Store  Store
}

func NewManager(logger *slog.Logger, store Store) Manager {
	return Manager{Logger: logger, Store: store}
}

// List returns the role's members in display order.
func (m *Manager) List(ctx context.Context, role database.Role) ([]database.Member, error) {
	members, err := m.Store.ListMembers(ctx, database.ListMembersParams{Role: util.Some(role)})
	if err != nil {
		return nil, err
	}
	SortMembers(members)
	return members, nil
}

// ListPublic returns members of both organizations in store order. The
// public profile page filters and groups them per organization on its own.
func (m *Manager) ListPublic(ctx context.Context) ([]database.Member, error) {
	return m.Store.ListMembers(ctx, database.ListMembersParams{})
}

type CreateParams struct {
	Nama    string
	NISN    string
	Jabatan string
	URLFoto string
}

// Create adds a member under the caller's role. The role is never taken
// from the request body.
func (m *Manager) Create(ctx context.Context, role database.Role, params CreateParams) (database.Member, error) {
	if params.URLFoto == "" {
		params.URLFoto = DefaultPhotoURL
	}

	return m.Store.CreateMember(ctx, database.CreateMemberParams{
		Nama:    params.Nama,
		NISN:    params.NISN,
		Jabatan: params.Jabatan,
		URLFoto: params.URLFoto,
		Role:    role,
	})
}

type UpdateParams struct {
	Nama    util.Optional[string]
	NISN    util.Optional[string]
	Jabatan util.Optional[string]
	URLFoto util.Optional[string]
}

// Update changes the supplied fields of one of the caller's members. A
// member owned by the other role answers exactly like a missing id.
func (m *Manager) Update(ctx context.Context, role database.Role, id int64, params UpdateParams) (database.Member, error) {
	existing, err := m.Store.GetMemberByID(ctx, id)
	if err != nil {
		return database.Member{}, err
	}
	if existing.Role != role {
		return database.Member{}, database.ErrMemberNotFound
	}

	if err := m.Store.UpdateMemberByID(ctx, id, database.UpdateMemberParams{
		Nama:    params.Nama,
		NISN:    params.NISN,
		Jabatan: params.Jabatan,
		URLFoto: params.URLFoto,
	}); err != nil {
		return database.Member{}, err
	}

	return m.Store.GetMemberByID(ctx, id)
}

// Delete removes one of the caller's members; same conflation as Update.
func (m *Manager) Delete(ctx context.Context, role database.Role, id int64) error {
	existing, err := m.Store.GetMemberByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Role != role {
		return database.ErrMemberNotFound
	}

	return m.Store.DeleteMemberByID(ctx, id)
}
