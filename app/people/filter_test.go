package people

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asolis/contactbook/models"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestSearchPredicate_Name(t *testing.T) {
	pred := searchPredicate(SearchByName, "an")
	require.NotNil(t, pred)

	assert.True(t, pred(&models.Person{Name: "Ana"}))
	assert.True(t, pred(&models.Person{Name: "HANNAH"}), "match is case-insensitive")
	assert.False(t, pred(&models.Person{Name: "Luis"}))
	assert.True(t, pred(&models.Person{Name: ""}), "empty field always matches")
}

func TestSearchPredicate_Email(t *testing.T) {
	pred := searchPredicate(SearchByEmail, "@example.com")
	require.NotNil(t, pred)

	assert.True(t, pred(&models.Person{Email: "ana@example.com"}))
	assert.False(t, pred(&models.Person{Email: "ana@other.org"}))
	assert.True(t, pred(&models.Person{Email: ""}), "empty field always matches")
}

func TestSearchPredicate_DateOfBirth(t *testing.T) {
	dob := time.Date(1990, time.March, 2, 0, 0, 0, 0, time.UTC)

	t.Run("Matches against the rendered date", func(t *testing.T) {
		pred := searchPredicate(SearchByDateOfBirth, "march")
		require.NotNil(t, pred)

		assert.True(t, pred(&models.Person{DateOfBirth: &dob}), "02 March 1990 contains march")
		assert.False(t, pred(&models.Person{DateOfBirth: timePtr(time.Date(1990, time.May, 2, 0, 0, 0, 0, time.UTC))}))
	})

	t.Run("Day and year are searchable too", func(t *testing.T) {
		pred := searchPredicate(SearchByDateOfBirth, "1990")
		require.NotNil(t, pred)

		assert.True(t, pred(&models.Person{DateOfBirth: &dob}))
	})

	t.Run("Missing date always matches", func(t *testing.T) {
		pred := searchPredicate(SearchByDateOfBirth, "march")
		require.NotNil(t, pred)

		assert.True(t, pred(&models.Person{}))
	})
}

func TestSearchPredicate_Gender(t *testing.T) {
	pred := searchPredicate(SearchByGender, "male")
	require.NotNil(t, pred)

	assert.True(t, pred(&models.Person{Gender: "Male"}))
	assert.True(t, pred(&models.Person{Gender: "MALE"}))
	assert.False(t, pred(&models.Person{Gender: "Female"}), "equality, not substring")
	assert.True(t, pred(&models.Person{Gender: ""}), "empty field always matches")
}

func TestSearchPredicate_CountryName(t *testing.T) {
	pred := searchPredicate(SearchByCountryName, "costa")
	require.NotNil(t, pred)

	assert.True(t, pred(&models.Person{Country: &models.Country{Name: "Costa Rica"}}))
	assert.False(t, pred(&models.Person{Country: &models.Country{Name: "Chile"}}))
	assert.True(t, pred(&models.Person{}), "missing association always matches")
	assert.True(t, pred(&models.Person{Country: &models.Country{}}), "empty name always matches")
}

func TestSearchPredicate_Address(t *testing.T) {
	pred := searchPredicate(SearchByAddress, "central")
	require.NotNil(t, pred)

	assert.True(t, pred(&models.Person{Address: "Av. Central 12"}))
	assert.False(t, pred(&models.Person{Address: "Calle 5"}))
	assert.True(t, pred(&models.Person{Address: ""}), "empty field always matches")
}

func TestSearchPredicate_UnknownField(t *testing.T) {
	assert.Nil(t, searchPredicate("ShoeSize", "42"))
	assert.Nil(t, searchPredicate("", "anything"))
}
