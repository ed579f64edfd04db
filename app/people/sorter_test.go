package people

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func namesOf(people []PersonResponse) []string {
	names := make([]string, len(people))
	for i := range people {
		names[i] = people[i].Name
	}
	return names
}

func TestSortPeople_ByName(t *testing.T) {
	people := []PersonResponse{
		{Name: "luis"},
		{Name: "Ana"},
		{Name: "Carmen"},
	}

	t.Run("Ascending is case-insensitive", func(t *testing.T) {
		sorted := SortPeople(people, SortByName, Ascending)

		assert.Equal(t, []string{"Ana", "Carmen", "luis"}, namesOf(sorted))
	})

	t.Run("Descending is the exact reverse", func(t *testing.T) {
		asc := SortPeople(people, SortByName, Ascending)
		desc := SortPeople(people, SortByName, Descending)

		require.Len(t, desc, len(asc))
		for i := range asc {
			assert.Equal(t, asc[i].Name, desc[len(desc)-1-i].Name)
		}
	})

	t.Run("Input slice is not mutated", func(t *testing.T) {
		_ = SortPeople(people, SortByName, Ascending)

		assert.Equal(t, []string{"luis", "Ana", "Carmen"}, namesOf(people))
	})
}

func TestSortPeople_Stability(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	people := []PersonResponse{
		{ID: first, Name: "Ana", Email: "ana.1@example.com"},
		{ID: second, Name: "Ana", Email: "ana.2@example.com"},
		{Name: "Luis"},
	}

	sorted := SortPeople(people, SortByName, Ascending)

	require.Len(t, sorted, 3)
	assert.Equal(t, first, sorted[0].ID, "equal keys keep their input order")
	assert.Equal(t, second, sorted[1].ID)
}

func TestSortPeople_ByDateOfBirth(t *testing.T) {
	older := time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC)
	younger := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	people := []PersonResponse{
		{Name: "Young", DateOfBirth: &younger},
		{Name: "NoDate"},
		{Name: "Old", DateOfBirth: &older},
	}

	sorted := SortPeople(people, SortByDateOfBirth, Ascending)

	assert.Equal(t, []string{"NoDate", "Old", "Young"}, namesOf(sorted), "nil sorts first")
}

func TestSortPeople_ByAge(t *testing.T) {
	people := []PersonResponse{
		{Name: "Mid", Age: floatPtr(40)},
		{Name: "Young", Age: floatPtr(20)},
		{Name: "Unknown"},
	}

	sorted := SortPeople(people, SortByAge, Descending)

	assert.Equal(t, []string{"Mid", "Young", "Unknown"}, namesOf(sorted))
}

func TestSortPeople_ByReceivesNewsletters(t *testing.T) {
	people := []PersonResponse{
		{Name: "Subscribed", ReceivesNewsletters: true},
		{Name: "Not"},
	}

	sorted := SortPeople(people, SortByReceivesNewsletters, Ascending)

	assert.Equal(t, []string{"Not", "Subscribed"}, namesOf(sorted))
}

func TestSortPeople_UnknownField(t *testing.T) {
	people := []PersonResponse{
		{Name: "Luis"},
		{Name: "Ana"},
	}

	sorted := SortPeople(people, "ShoeSize", Ascending)

	assert.Equal(t, []string{"Luis", "Ana"}, namesOf(sorted), "unrecognized field leaves the order alone")
}
