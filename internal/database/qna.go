package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"osisweb/internal/util"

	"github.com/jackc/pgx/v5"
)

type QnaItemType string

const (
	QnaItemTypeProker QnaItemType = "proker"
	QnaItemTypeBerita QnaItemType = "berita"
)

func ParseQnaItemType(s string) (QnaItemType, error) {
	switch QnaItemType(s) {
	case QnaItemTypeProker, QnaItemTypeBerita:
		return QnaItemType(s), nil
	default:
		return "", fmt.Errorf("database: unknown qna item type %q", s)
	}
}

// Qna is a visitor question attached to a proker or berita item. Replies
// are an ordered sub-collection; TanggalJawab records the first reply time
// and stays untouched by later replies.
type Qna struct {
	ID           int64
	ItemID       int64
	ItemType     QnaItemType
	NamaPenanya  string
	Pertanyaan   string
	TanggalTanya time.Time
	TanggalJawab util.Optional[time.Time]
	Role         Role
	Replies      []QnaReply
}

type QnaReply struct {
	ID        int64
	QnaID     int64
	Isi       string
	CreatedAt time.Time
}

const qnaColumns = `id, item_id, item_type, nama_penanya, pertanyaan, tanggal_tanya, tanggal_jawab, role`

func scanQna(row pgx.Row) (Qna, error) {
	var q Qna
	err := row.Scan(&q.ID, &q.ItemID, &q.ItemType, &q.NamaPenanya, &q.Pertanyaan, &q.TanggalTanya, &q.TanggalJawab, &q.Role)
	return q, err
}

// loadReplies attaches replies, in insertion order, to the given questions.
func (db *Database) loadReplies(ctx context.Context, questions []Qna) error {
	if len(questions) == 0 {
		return nil
	}

	ids := make([]int64, len(questions))
	byID := make(map[int64]*Qna, len(questions))
	for i := range questions {
		ids[i] = questions[i].ID
		byID[questions[i].ID] = &questions[i]
	}

	rows, err := db.Pool.Query(ctx, `SELECT id, qna_id, isi, created_at FROM tbl_qna_reply WHERE qna_id = ANY($1) ORDER BY created_at, id`, ids)
	if err != nil {
		return fmt.Errorf("database: failed to list qna replies: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r QnaReply
		if err := rows.Scan(&r.ID, &r.QnaID, &r.Isi, &r.CreatedAt); err != nil {
			return fmt.Errorf("database: failed to scan qna reply: %w", err)
		}
		q := byID[r.QnaID]
		q.Replies = append(q.Replies, r)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("database: failed to iterate qna replies: %w", err)
	}

	return nil
}

// ListUnansweredQna returns the role's questions that have no replies yet,
// oldest first.
func (db *Database) ListUnansweredQna(ctx context.Context, role Role) ([]Qna, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+qnaColumns+` FROM tbl_qna q WHERE role = $1 AND NOT EXISTS (SELECT 1 FROM tbl_qna_reply r WHERE r.qna_id = q.id) ORDER BY tanggal_tanya ASC`, role)
	if err != nil {
		return nil, fmt.Errorf("database: failed to list unanswered qna: %w", err)
	}
	defer rows.Close()

	var questions []Qna
	for rows.Next() {
		q, err := scanQna(rows)
		if err != nil {
			return nil, fmt.Errorf("database: failed to scan qna: %w", err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database: failed to iterate qna: %w", err)
	}

	return questions, nil
}

// ListQnaByItem returns every question on one proker/berita item, across
// both roles, oldest first, replies attached.
func (db *Database) ListQnaByItem(ctx context.Context, itemType QnaItemType, itemID int64) ([]Qna, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+qnaColumns+` FROM tbl_qna WHERE item_type = $1 AND item_id = $2 ORDER BY tanggal_tanya ASC`, itemType, itemID)
	if err != nil {
		return nil, fmt.Errorf("database: failed to list qna by item: %w", err)
	}
	defer rows.Close()

	var questions []Qna
	for rows.Next() {
		q, err := scanQna(rows)
		if err != nil {
			return nil, fmt.Errorf("database: failed to scan qna: %w", err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database: failed to iterate qna: %w", err)
	}

	if err := db.loadReplies(ctx, questions); err != nil {
		return nil, err
	}

	return questions, nil
}

func (db *Database) GetQnaByID(ctx context.Context, id int64) (Qna, error) {
	q, err := scanQna(db.Pool.QueryRow(ctx, `SELECT `+qnaColumns+` FROM tbl_qna WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return q, ErrQnaNotFound
		}
		return q, fmt.Errorf("database: failed to scan qna: %w", err)
	}

	questions := []Qna{q}
	if err := db.loadReplies(ctx, questions); err != nil {
		return q, err
	}

	return questions[0], nil
}

type CreateQnaParams struct {
	ItemID      int64
	ItemType    QnaItemType
	NamaPenanya string
	Pertanyaan  string
	Role        Role
}

func (db *Database) CreateQna(ctx context.Context, params CreateQnaParams) (Qna, error) {
	qna := Qna{
		ItemID:       params.ItemID,
		ItemType:     params.ItemType,
		NamaPenanya:  params.NamaPenanya,
		Pertanyaan:   params.Pertanyaan,
		TanggalTanya: time.Now().UTC(),
		Role:         params.Role,
	}

	err := db.Pool.QueryRow(ctx, `INSERT INTO tbl_qna (item_id, item_type, nama_penanya, pertanyaan, tanggal_tanya, role) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		qna.ItemID, qna.ItemType, qna.NamaPenanya, qna.Pertanyaan, qna.TanggalTanya, qna.Role).Scan(&qna.ID)
	if err != nil {
		return qna, fmt.Errorf("database: failed to insert qna: %w", err)
	}
	return qna, nil
}

// CreateQnaReply appends a reply. The question's tanggal_jawab is filled
// only if still empty, so it keeps the first-reply time. Single-statement
// atomicity only; two concurrent replies both survive as rows, ordering by
// created_at.
func (db *Database) CreateQnaReply(ctx context.Context, qnaID int64, isi string) (QnaReply, error) {
	reply := QnaReply{
		QnaID:     qnaID,
		Isi:       isi,
		CreatedAt: time.Now().UTC(),
	}

	err := db.Pool.QueryRow(ctx, `INSERT INTO tbl_qna_reply (qna_id, isi, created_at) VALUES ($1, $2, $3) RETURNING id`,
		reply.QnaID, reply.Isi, reply.CreatedAt).Scan(&reply.ID)
	if err != nil {
		return reply, fmt.Errorf("database: failed to insert qna reply (qna_id=%d): %w", qnaID, err)
	}

	if _, err := db.Pool.Exec(ctx, `UPDATE tbl_qna SET tanggal_jawab = $1 WHERE id = $2 AND tanggal_jawab IS NULL`, reply.CreatedAt, qnaID); err != nil {
		return reply, fmt.Errorf("database: failed to mark qna answered (id=%d): %w", qnaID, err)
	}

	return reply, nil
}

func (db *Database) DeleteQnaByID(ctx context.Context, id int64) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM tbl_qna WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("database: failed to delete qna (id=%d): %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrQnaNotFound
	}
	return nil
}
