package api

import (
	"encoding/json"
	"testing"
	"time"

	"osisweb/internal/database"
	"osisweb/internal/qna"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTanggal(t *testing.T) {
	t.Run("bare date", func(t *testing.T) {
		parsed, err := parseTanggal("2025-03-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("rfc3339", func(t *testing.T) {
		parsed, err := parseTanggal("2025-03-01T08:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC), parsed)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := parseTanggal("01-03-2025")
		assert.Error(t, err)
	})
}

func TestQnaResponseJawabanNullWithoutReplies(t *testing.T) {
	body, err := json.Marshal(newQnaResponse(database.Qna{
		ID:         1,
		ItemID:     2,
		ItemType:   database.QnaItemTypeProker,
		Pertanyaan: "Kapan mulai?",
		Role:       database.RoleOSIS,
	}))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Nil(t, decoded["jawaban"])
	assert.Nil(t, decoded["tanggal_jawab"])
}

func TestQnaResponseJoinsRepliesForLegacyField(t *testing.T) {
	resp := newQnaResponse(database.Qna{
		ID:   1,
		Role: database.RoleOSIS,
		Replies: []database.QnaReply{
			{ID: 10, Isi: "X"},
			{ID: 11, Isi: "Y"},
		},
	})

	require.True(t, resp.Jawaban.IsSet)
	assert.Equal(t, "X"+qna.ReplyDelimiter+"Y", resp.Jawaban.Val)
	require.Len(t, resp.Replies, 2)
	assert.Equal(t, "X", resp.Replies[0].Isi)
	assert.Equal(t, "Y", resp.Replies[1].Isi)
}

func TestProkerResponseNeverReturnsNullImageList(t *testing.T) {
	body, err := json.Marshal(newProkerResponse(database.Proker{ID: 1}))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, []any{}, decoded["gambar"])
}

func TestGroupedResponseSplitsLeadership(t *testing.T) {
	grouped := groupedResponse([]database.Member{
		{Nama: "Anggota B", Jabatan: "Anggota"},
		{Nama: "Wakil", Jabatan: "Wakil Ketua 1"},
		{Nama: "Ketua", Jabatan: "Ketua OSIS Umum"},
		{Nama: "Anggota A", Jabatan: "Anggota"},
	})

	require.Len(t, grouped.PengurusInti, 2)
	assert.Equal(t, "Ketua OSIS Umum", grouped.PengurusInti[0].Jabatan)
	assert.Equal(t, "Wakil Ketua 1", grouped.PengurusInti[1].Jabatan)

	require.Len(t, grouped.Anggota, 2)
	assert.Equal(t, "Anggota A", grouped.Anggota[0].Nama)
	assert.Equal(t, "Anggota B", grouped.Anggota[1].Nama)
}
