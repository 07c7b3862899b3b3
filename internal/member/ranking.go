package member

import (
	"sort"
	"strings"

	"osisweb/internal/database"
)

// rankGeneral is the rank of anyone whose title matches no leadership
// pattern.
const rankGeneral = 99

// Rank maps a jabatan title to its display priority. Matching is a
// case-insensitive substring check. The deputy pattern is checked first:
// "Wakil Ketua 1" contains "ketua 1" but is a deputy, not the
// first vice chair.
func Rank(jabatan string) int {
	title := strings.ToLower(jabatan)

	switch {
	case strings.Contains(title, "wakil"):
		return 5
	case strings.Contains(title, "ketua osis"):
		return 1
	case strings.Contains(title, "ketua 1"):
		return 2
	case strings.Contains(title, "ketua 2"):
		return 3
	case strings.Contains(title, "ketua mpk"):
		return 4
	default:
		return rankGeneral
	}
}

// SortMembers orders members for display: rank first, then name.
func SortMembers(members []database.Member) {
	sort.SliceStable(members, func(i, j int) bool {
		ri, rj := Rank(members[i].Jabatan), Rank(members[j].Jabatan)
		if ri != rj {
			return ri < rj
		}
		return members[i].Nama < members[j].Nama
	})
}

// Buckets are the two separately rendered groups: the leadership cards and
// the general member grid.
type Buckets struct {
	Leadership []database.Member
	General    []database.Member
}

// Bucketize sorts members and splits them into the leadership and general
// groups. Both groups keep the display order.
func Bucketize(members []database.Member) Buckets {
	sorted := make([]database.Member, len(members))
	copy(sorted, members)
	SortMembers(sorted)

	var b Buckets
	for _, m := range sorted {
		if Rank(m.Jabatan) < rankGeneral {
			b.Leadership = append(b.Leadership, m)
		} else {
			b.General = append(b.General, m)
		}
	}
	return b
}
