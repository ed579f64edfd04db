package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMergeStrategy(t *testing.T) {
	tests := []struct {
		name        string
		mode        string
		want        string
		expectedErr error
	}{
		{"Default is replace", "", MergeModeReplace, nil},
		{"Replace", "replace", MergeModeReplace, nil},
		{"Patch", "patch", MergeModePatch, nil},
		{"Mixed case", " Patch ", MergeModePatch, nil},
		{"Unknown", "upsert", "", ErrUnknownMergeStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseMergeStrategy(tt.mode)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Name())
		})
	}
}

func TestReplaceStrategy_Merge(t *testing.T) {
	id := uuid.New()
	countryID := uuid.New()
	dob := time.Date(1990, 3, 2, 0, 0, 0, 0, time.UTC)
	tin := "AB123456"

	existing := &Person{
		ID:                  id,
		Name:                "Ana",
		Email:               "ana@example.com",
		DateOfBirth:         &dob,
		Gender:              GenderFemale.String(),
		CountryID:           &countryID,
		Address:             "Av. Central 12",
		ReceivesNewsletters: true,
		TaxID:               &tin,
		Country:             &Country{ID: countryID, Name: "Costa Rica"},
	}
	incoming := &Person{
		ID:   id,
		Name: "Ana Maria",
	}

	merged, err := ReplaceStrategy{}.Merge(existing, incoming)
	require.NoError(t, err)

	assert.Equal(t, id, merged.ID)
	assert.Equal(t, "Ana Maria", merged.Name)
	assert.Equal(t, "", merged.Email)
	assert.Nil(t, merged.DateOfBirth)
	assert.Nil(t, merged.CountryID)
	assert.Nil(t, merged.TaxID)
	assert.False(t, merged.ReceivesNewsletters)
	assert.Nil(t, merged.Country)

	// inputs untouched
	assert.Equal(t, "Ana", existing.Name)
	assert.Equal(t, "", incoming.Email)
}

func TestPatchStrategy_Merge(t *testing.T) {
	id := uuid.New()
	countryID := uuid.New()
	dob := time.Date(1990, 3, 2, 0, 0, 0, 0, time.UTC)

	existing := &Person{
		ID:                  id,
		Name:                "Ana",
		Email:               "ana@example.com",
		DateOfBirth:         &dob,
		Gender:              GenderFemale.String(),
		CountryID:           &countryID,
		Address:             "Av. Central 12",
		ReceivesNewsletters: true,
	}
	incoming := &Person{
		ID:   id,
		Name: "Ana Maria",
	}

	merged, err := PatchStrategy{}.Merge(existing, incoming)
	require.NoError(t, err)

	assert.Equal(t, id, merged.ID)
	assert.Equal(t, "Ana Maria", merged.Name)
	assert.Equal(t, "ana@example.com", merged.Email)
	require.NotNil(t, merged.DateOfBirth)
	assert.True(t, dob.Equal(*merged.DateOfBirth))
	require.NotNil(t, merged.CountryID)
	assert.Equal(t, countryID, *merged.CountryID)
	assert.Equal(t, "Av. Central 12", merged.Address)

	// A false boolean is a zero value under patch and cannot clear the
	// stored flag.
	assert.True(t, merged.ReceivesNewsletters)
}
