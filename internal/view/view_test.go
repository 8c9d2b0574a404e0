package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type row struct {
	ID    string
	Name  string
	Total float64
	Date  time.Time
}

var byName = ByString(func(r row) string { return r.Name })

func TestSort_Ascending(t *testing.T) {
	rows := []row{{Name: "charlie"}, {Name: "alice"}, {Name: "bob"}}

	sorted := Sort(rows, byName, Ascending)

	assert.Equal(t, "alice", sorted[0].Name)
	assert.Equal(t, "bob", sorted[1].Name)
	assert.Equal(t, "charlie", sorted[2].Name)
	// input untouched
	assert.Equal(t, "charlie", rows[0].Name)
}

func TestSort_ToggleReversesDistinctKeys(t *testing.T) {
	rows := []row{{Total: 12.5}, {Total: 3}, {Total: 99}, {Total: 40}}
	byTotal := ByNumber(func(r row) float64 { return r.Total })

	asc := Sort(rows, byTotal, Ascending)
	desc := Sort(rows, byTotal, Ascending.Toggle())

	for i := range asc {
		assert.Equal(t, asc[i].Total, desc[len(desc)-1-i].Total)
	}
}

func TestSort_StableForEqualKeys(t *testing.T) {
	rows := []row{
		{ID: "1", Name: "same"},
		{ID: "2", Name: "same"},
		{ID: "3", Name: "same"},
	}

	sorted := Sort(rows, byName, Descending)

	assert.Equal(t, "1", sorted[0].ID)
	assert.Equal(t, "2", sorted[1].ID)
	assert.Equal(t, "3", sorted[2].ID)
}

func TestSort_ByTime(t *testing.T) {
	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(48 * time.Hour)
	rows := []row{{ID: "n", Date: newer}, {ID: "o", Date: older}}

	sorted := Sort(rows, ByTime(func(r row) time.Time { return r.Date }), Ascending)

	assert.Equal(t, "o", sorted[0].ID)
	assert.Equal(t, "n", sorted[1].ID)
}

func TestFilter_CaseInsensitive(t *testing.T) {
	rows := []row{
		{ID: "ORD1", Name: "John Smith"},
		{ID: "ORD2", Name: "Jane Doe"},
	}
	fields := func(r row) []string { return []string{r.ID, r.Name} }

	upper := Filter(rows, "SMITH", fields)
	lower := Filter(rows, "smith", fields)

	assert.Len(t, upper, 1)
	assert.Equal(t, upper, lower)
	assert.Equal(t, "ORD1", upper[0].ID)
}

func TestFilter_MatchesAcrossFields(t *testing.T) {
	rows := []row{
		{ID: "ORD1", Name: "John Smith"},
		{ID: "ord2-smith", Name: "Jane Doe"},
	}
	fields := func(r row) []string { return []string{r.ID, r.Name} }

	got := Filter(rows, "smith", fields)

	assert.Len(t, got, 2)
}

func TestFilter_BlankTermKeepsEverything(t *testing.T) {
	rows := []row{{ID: "a"}, {ID: "b"}}
	fields := func(r row) []string { return []string{r.ID} }

	assert.Len(t, Filter(rows, "", fields), 2)
	assert.Len(t, Filter(rows, "   ", fields), 2)
}

func TestFilter_EmptyFieldsNeverMatch(t *testing.T) {
	rows := []row{{ID: "a"}}
	fields := func(r row) []string { return []string{"", ""} }

	assert.Empty(t, Filter(rows, "anything", fields))
}
