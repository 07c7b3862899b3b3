package qna

import (
	"context"
	"log/slog"
	"strings"

	"osisweb/internal/database"
	"osisweb/internal/util"
)

// ReplyDelimiter separates reply blocks inside the legacy combined answer
// field. Older clients render the joined string as-is.
const ReplyDelimiter = "\n---\n"

// JoinReplies flattens a reply list into the legacy combined answer. No
// replies yields an unset value, which serializes as null.
func JoinReplies(replies []database.QnaReply) util.Optional[string] {
	if len(replies) == 0 {
		return util.None[string]()
	}

	parts := make([]string, len(replies))
	for i, r := range replies {
		parts[i] = r.Isi
	}
	return util.Some(strings.Join(parts, ReplyDelimiter))
}

// SplitAnswer is the inverse of JoinReplies for callers that only hold the
// combined string.
func SplitAnswer(answer string) []string {
	if answer == "" {
		return nil
	}
	return strings.Split(answer, ReplyDelimiter)
}

type Store interface {
	ListUnansweredQna(ctx context.Context, role database.Role) ([]database.Qna, error)
	ListQnaByItem(ctx context.Context, itemType database.QnaItemType, itemID int64) ([]database.Qna, error)
	GetQnaByID(ctx context.Context, id int64) (database.Qna, error)
	CreateQna(ctx context.Context, params database.CreateQnaParams) (database.Qna, error)
	CreateQnaReply(ctx context.Context, qnaID int64, isi string) (database.QnaReply, error)
	DeleteQnaByID(ctx context.Context, id int64) error
}

type Manager struct {
	Logger *slog.Logger
	Store  Store
}

func NewManager(logger *slog.Logger, store Store) Manager {
	return Manager{Logger: logger, Store: store}
}

type SubmitParams struct {
	ItemID      int64
	ItemType    database.QnaItemType
	NamaPenanya string
	Pertanyaan  string
	// Role comes from the visitor form and is validated before it gets
	// here; it routes the question to one organization's inbox.
	Role database.Role
}

// Submit files a visitor question against a proker or berita item.
func (m *Manager) Submit(ctx context.Context, params SubmitParams) (database.Qna, error) {
	return m.Store.CreateQna(ctx, database.CreateQnaParams{
		ItemID:      params.ItemID,
		ItemType:    params.ItemType,
		NamaPenanya: params.NamaPenanya,
		Pertanyaan:  params.Pertanyaan,
		Role:        params.Role,
	})
}

// Unanswered returns the role's reply-less questions, oldest first.
func (m *Manager) Unanswered(ctx context.Context, role database.Role) ([]database.Qna, error) {
	return m.Store.ListUnansweredQna(ctx, role)
}

// ListByItem returns the public thread for one item, both organizations,
// oldest first, replies attached.
func (m *Manager) ListByItem(ctx context.Context, itemType database.QnaItemType, itemID int64) ([]database.Qna, error) {
	return m.Store.ListQnaByItem(ctx, itemType, itemID)
}

// Answer appends a reply to one of the caller's questions and returns the
// refreshed question. A question owned by the other role answers exactly
// like a missing id.
func (m *Manager) Answer(ctx context.Context, role database.Role, id int64, isi string) (database.Qna, error) {
	existing, err := m.Store.GetQnaByID(ctx, id)
	if err != nil {
		return database.Qna{}, err
	}
	if existing.Role != role {
		return database.Qna{}, database.ErrQnaNotFound
	}

	if _, err := m.Store.CreateQnaReply(ctx, id, isi); err != nil {
		return database.Qna{}, err
	}

	return m.Store.GetQnaByID(ctx, id)
}

// Delete removes one of the caller's questions together with its replies.
func (m *Manager) Delete(ctx context.Context, role database.Role, id int64) error {
	existing, err := m.Store.GetQnaByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Role != role {
		return database.ErrQnaNotFound
	}

	return m.Store.DeleteQnaByID(ctx, id)
}
