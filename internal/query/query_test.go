package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stamped struct {
	name string
	at   time.Time
}

func TestFilter(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	even := Filter(items, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)

	none := Filter(items, func(n int) bool { return n > 10 })
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestSortByTimeDesc(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	items := []stamped{
		{name: "oldest", at: base},
		{name: "newest", at: base.Add(2 * time.Hour)},
		{name: "middle", at: base.Add(time.Hour)},
	}

	sorted := SortByTimeDesc(items, func(s stamped) time.Time { return s.at })

	assert.Equal(t, "newest", sorted[0].name)
	assert.Equal(t, "middle", sorted[1].name)
	assert.Equal(t, "oldest", sorted[2].name)
}

func TestSortByTimeDesc_ZeroTimestampsSortLast(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	items := []stamped{
		{name: "unstamped-a"},
		{name: "stamped", at: base},
		{name: "unstamped-b"},
	}

	sorted := SortByTimeDesc(items, func(s stamped) time.Time { return s.at })

	assert.Equal(t, "stamped", sorted[0].name)
	// Stable sort keeps the relative order of equal (zero) timestamps.
	assert.Equal(t, "unstamped-a", sorted[1].name)
	assert.Equal(t, "unstamped-b", sorted[2].name)
}

func TestSortByTimeDesc_Stable(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	items := []stamped{
		{name: "first", at: at},
		{name: "second", at: at},
		{name: "third", at: at},
	}

	sorted := SortByTimeDesc(items, func(s stamped) time.Time { return s.at })

	assert.Equal(t, "first", sorted[0].name)
	assert.Equal(t, "second", sorted[1].name)
	assert.Equal(t, "third", sorted[2].name)
}

func TestLimit(t *testing.T) {
	items := []int{1, 2, 3}

	assert.Equal(t, []int{1, 2}, Limit(items, 2))
	assert.Equal(t, []int{1, 2, 3}, Limit(items, 3))
	assert.Equal(t, []int{1, 2, 3}, Limit(items, 10))
	assert.Empty(t, Limit(items, 0))
	assert.Empty(t, Limit(items, -1))
}
