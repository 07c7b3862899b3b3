package api

import (
	"time"

	"osisweb/internal/database"
	"osisweb/internal/qna"
	"osisweb/internal/util"
)

// The JSON field names below are the wire contract of the existing
// frontend; timestamps keep the camelCase createdAt/updatedAt names.

type prokerResponse struct {
	ID           int64                 `json:"id"`
	Nama         string                `json:"nama"`
	Deskripsi    string                `json:"deskripsi"`
	TanggalMulai time.Time             `json:"tanggal_mulai"`
	Gambar       []string              `json:"gambar"`
	Divisi       string                `json:"divisi"`
	Status       database.ProkerStatus `json:"status"`
	Role         database.Role         `json:"role"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

func newProkerResponse(p database.Proker) prokerResponse {
	if p.Gambar == nil {
		p.Gambar = []string{}
	}
	return prokerResponse{
		ID:           p.ID,
		Nama:         p.Nama,
		Deskripsi:    p.Deskripsi,
		TanggalMulai: p.TanggalMulai,
		Gambar:       p.Gambar,
		Divisi:       p.Divisi,
		Status:       p.Status,
		Role:         p.Role,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func newProkerListResponse(prokers []database.Proker) []prokerResponse {
	out := make([]prokerResponse, len(prokers))
	for i, p := range prokers {
		out[i] = newProkerResponse(p)
	}
	return out
}

type beritaResponse struct {
	ID               int64         `json:"id"`
	Judul            string        `json:"judul"`
	Konten           string        `json:"konten"`
	TanggalPublikasi time.Time     `json:"tanggal_publikasi"`
	Gambar           []string      `json:"gambar"`
	Role             database.Role `json:"role"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

func newBeritaResponse(b database.Berita) beritaResponse {
	if b.Gambar == nil {
		b.Gambar = []string{}
	}
	return beritaResponse{
		ID:               b.ID,
		Judul:            b.Judul,
		Konten:           b.Konten,
		TanggalPublikasi: b.TanggalPublikasi,
		Gambar:           b.Gambar,
		Role:             b.Role,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func newBeritaListResponse(beritas []database.Berita) []beritaResponse {
	out := make([]beritaResponse, len(beritas))
	for i, b := range beritas {
		out[i] = newBeritaResponse(b)
	}
	return out
}

type memberResponse struct {
	ID        int64         `json:"id"`
	Nama      string        `json:"nama"`
	NISN      string        `json:"nisn"`
	Jabatan   string        `json:"jabatan"`
	URLFoto   string        `json:"url_foto"`
	Role      database.Role `json:"role"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func newMemberResponse(m database.Member) memberResponse {
	return memberResponse{
		ID:        m.ID,
		Nama:      m.Nama,
		NISN:      m.NISN,
		Jabatan:   m.Jabatan,
		URLFoto:   m.URLFoto,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func newMemberListResponse(members []database.Member) []memberResponse {
	out := make([]memberResponse, len(members))
	for i, m := range members {
		out[i] = newMemberResponse(m)
	}
	return out
}

type groupedMemberResponse struct {
	PengurusInti []memberResponse `json:"pengurus_inti"`
	Anggota      []memberResponse `json:"anggota"`
}

type qnaReplyResponse struct {
	ID        int64     `json:"id"`
	Isi       string    `json:"isi"`
	CreatedAt time.Time `json:"created_at"`
}

// qnaResponse carries both the reply sub-collection and the legacy
// jawaban field, which is the replies joined with the fixed delimiter and
// null while no reply exists.
type qnaResponse struct {
	ID           int64                    `json:"id"`
	ItemID       int64                    `json:"item_id"`
	ItemType     database.QnaItemType     `json:"item_type"`
	NamaPenanya  string                   `json:"nama_penanya"`
	Pertanyaan   string                   `json:"pertanyaan"`
	Jawaban      util.Optional[string]    `json:"jawaban"`
	TanggalTanya time.Time                `json:"tanggal_tanya"`
	TanggalJawab util.Optional[time.Time] `json:"tanggal_jawab"`
	Role         database.Role            `json:"role"`
	Replies      []qnaReplyResponse       `json:"replies"`
}

func newQnaResponse(q database.Qna) qnaResponse {
	replies := make([]qnaReplyResponse, len(q.Replies))
	for i, r := range q.Replies {
		replies[i] = qnaReplyResponse{ID: r.ID, Isi: r.Isi, CreatedAt: r.CreatedAt}
	}
	return qnaResponse{
		ID:           q.ID,
		ItemID:       q.ItemID,
		ItemType:     q.ItemType,
		NamaPenanya:  q.NamaPenanya,
		Pertanyaan:   q.Pertanyaan,
		Jawaban:      qna.JoinReplies(q.Replies),
		TanggalTanya: q.TanggalTanya,
		TanggalJawab: q.TanggalJawab,
		Role:         q.Role,
		Replies:      replies,
	}
}

func newQnaListResponse(questions []database.Qna) []qnaResponse {
	out := make([]qnaResponse, len(questions))
	for i, q := range questions {
		out[i] = newQnaResponse(q)
	}
	return out
}

type settingResponse struct {
	ID    int64         `json:"id"`
	Kunci string        `json:"kunci"`
	Nilai string        `json:"nilai"`
	Role  database.Role `json:"role"`
}

func newSettingResponse(s database.Setting) settingResponse {
	return settingResponse{ID: s.ID, Kunci: s.Kunci, Nilai: s.Nilai, Role: s.Role}
}

func newSettingListResponse(settings []database.Setting) []settingResponse {
	out := make([]settingResponse, len(settings))
	for i, s := range settings {
		out[i] = newSettingResponse(s)
	}
	return out
}
