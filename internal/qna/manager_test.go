package qna

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"osisweb/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinReplies(t *testing.T) {
	t.Run("no replies is null", func(t *testing.T) {
		assert.False(t, JoinReplies(nil).IsSet)
	})

	t.Run("single reply is the reply text", func(t *testing.T) {
		joined := JoinReplies([]database.QnaReply{{Isi: "X"}})
		require.True(t, joined.IsSet)
		assert.Equal(t, "X", joined.Val)
	})

	t.Run("two replies join with the delimiter", func(t *testing.T) {
		joined := JoinReplies([]database.QnaReply{{Isi: "X"}, {Isi: "Y"}})
		require.True(t, joined.IsSet)
		assert.Equal(t, "X"+ReplyDelimiter+"Y", joined.Val)
	})
}

func TestSplitAnswerInvertsJoin(t *testing.T) {
	replies := []database.QnaReply{{Isi: "X"}, {Isi: "Y"}}
	joined := JoinReplies(replies)

	blocks := SplitAnswer(joined.Val)

	require.Len(t, blocks, 2)
	assert.Equal(t, "X", blocks[0])
	assert.Equal(t, "Y", blocks[1])
	assert.Nil(t, SplitAnswer(""))
}

type fakeStore struct {
	questions map[int64]database.Qna
	replies   map[int64][]database.QnaReply
	nextID    int64
}

func newFakeStore(questions ...database.Qna) *fakeStore {
	s := &fakeStore{
		questions: make(map[int64]database.Qna),
		replies:   make(map[int64][]database.QnaReply),
		nextID:    1,
	}
	for _, q := range questions {
		if q.ID >= s.nextID {
			s.nextID = q.ID + 1
		}
		s.questions[q.ID] = q
	}
	return s
}

func (s *fakeStore) ListUnansweredQna(_ context.Context, role database.Role) ([]database.Qna, error) {
	var out []database.Qna
	for _, q := range s.questions {
		if q.Role == role && len(s.replies[q.ID]) == 0 {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *fakeStore) ListQnaByItem(_ context.Context, itemType database.QnaItemType, itemID int64) ([]database.Qna, error) {
	var out []database.Qna
	for _, q := range s.questions {
		if q.ItemType == itemType && q.ItemID == itemID {
			q.Replies = s.replies[q.ID]
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *fakeStore) GetQnaByID(_ context.Context, id int64) (database.Qna, error) {
	q, ok := s.questions[id]
	if !ok {
		return database.Qna{}, database.ErrQnaNotFound
	}
	q.Replies = s.replies[id]
	return q, nil
}

func (s *fakeStore) CreateQna(_ context.Context, params database.CreateQnaParams) (database.Qna, error) {
	q := database.Qna{
		ID:           s.nextID,
		ItemID:       params.ItemID,
		ItemType:     params.ItemType,
		NamaPenanya:  params.NamaPenanya,
		Pertanyaan:   params.Pertanyaan,
		TanggalTanya: time.Now(),
		Role:         params.Role,
	}
	s.questions[q.ID] = q
	s.nextID++
	return q, nil
}

func (s *fakeStore) CreateQnaReply(_ context.Context, qnaID int64, isi string) (database.QnaReply, error) {
	q, ok := s.questions[qnaID]
	if !ok {
		return database.QnaReply{}, database.ErrQnaNotFound
	}

	reply := database.QnaReply{ID: s.nextID, QnaID: qnaID, Isi: isi, CreatedAt: time.Now()}
	s.nextID++
	s.replies[qnaID] = append(s.replies[qnaID], reply)

	if !q.TanggalJawab.IsSet {
		q.TanggalJawab.IsSet = true
		q.TanggalJawab.Val = reply.CreatedAt
		s.questions[qnaID] = q
	}

	return reply, nil
}

func (s *fakeStore) DeleteQnaByID(_ context.Context, id int64) error {
	if _, ok := s.questions[id]; !ok {
		return database.ErrQnaNotFound
	}
	delete(s.questions, id)
	delete(s.replies, id)
	return nil
}

func testManager(store Store) Manager {
	return NewManager(slog.New(slog.DiscardHandler), store)
}

func TestAnswerAppendsRepliesInOrder(t *testing.T) {
	store := newFakeStore(database.Qna{ID: 1, Role: database.RoleOSIS})
	manager := testManager(store)
	ctx := context.Background()

	first, err := manager.Answer(ctx, database.RoleOSIS, 1, "X")
	require.NoError(t, err)
	second, err := manager.Answer(ctx, database.RoleOSIS, 1, "Y")
	require.NoError(t, err)

	require.Len(t, second.Replies, 2)
	assert.Equal(t, "X", second.Replies[0].Isi)
	assert.Equal(t, "Y", second.Replies[1].Isi)

	joined := JoinReplies(second.Replies)
	require.True(t, joined.IsSet)
	assert.Equal(t, "X"+ReplyDelimiter+"Y", joined.Val)

	// The answered timestamp keeps the first reply's time.
	require.True(t, second.TanggalJawab.IsSet)
	assert.Equal(t, first.TanggalJawab.Val, second.TanggalJawab.Val)
}

func TestAnswerForeignRoleLooksLikeMissing(t *testing.T) {
	store := newFakeStore(database.Qna{ID: 1, Role: database.RoleMPK})
	manager := testManager(store)
	ctx := context.Background()

	_, missingErr := manager.Answer(ctx, database.RoleOSIS, 99, "X")
	_, foreignErr := manager.Answer(ctx, database.RoleOSIS, 1, "X")

	assert.ErrorIs(t, missingErr, database.ErrQnaNotFound)
	assert.ErrorIs(t, foreignErr, database.ErrQnaNotFound)
	assert.Empty(t, store.replies[1])
}

func TestUnansweredExcludesRepliedQuestions(t *testing.T) {
	store := newFakeStore(
		database.Qna{ID: 1, Role: database.RoleOSIS},
		database.Qna{ID: 2, Role: database.RoleOSIS},
		database.Qna{ID: 3, Role: database.RoleMPK},
	)
	manager := testManager(store)
	ctx := context.Background()

	_, err := manager.Answer(ctx, database.RoleOSIS, 1, "done")
	require.NoError(t, err)

	open, err := manager.Unanswered(ctx, database.RoleOSIS)
	require.NoError(t, err)

	require.Len(t, open, 1)
	assert.Equal(t, int64(2), open[0].ID)
}

func TestDeleteForeignRoleLooksLikeMissing(t *testing.T) {
	store := newFakeStore(database.Qna{ID: 5, Role: database.RoleMPK})
	manager := testManager(store)

	assert.ErrorIs(t, manager.Delete(context.Background(), database.RoleOSIS, 5), database.ErrQnaNotFound)
	assert.Contains(t, store.questions, int64(5))
}

func TestSubmitKeepsClientRole(t *testing.T) {
	store := newFakeStore()
	manager := testManager(store)

	q, err := manager.Submit(context.Background(), SubmitParams{
		ItemID:      10,
		ItemType:    database.QnaItemTypeProker,
		NamaPenanya: "Pengunjung",
		Pertanyaan:  "Kapan acara dimulai?",
		Role:        database.RoleMPK,
	})
	require.NoError(t, err)
	assert.Equal(t, database.RoleMPK, q.Role)
}
