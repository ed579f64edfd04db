package people

import (
	"sort"
	"strings"
	"time"
)

// SortOrder selects the direction of a sort.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// Sortable field names.
const (
	SortByName                = "PersonName"
	SortByEmail               = "PersonEmail"
	SortByDateOfBirth         = "DateOfBirth"
	SortByAge                 = "Age"
	SortByGender              = "Gender"
	SortByCountryName         = "CountryName"
	SortByAddress             = "Address"
	SortByReceivesNewsletters = "ReceivesNewsletters"
)

// SortPeople reorders an already-materialized list without mutating it.
// The sort is stable so ties keep their input order, which keeps paging
// deterministic. An unrecognized field returns the input unchanged.
func SortPeople(people []PersonResponse, sortBy string, order SortOrder) []PersonResponse {
	less := lessFunc(sortBy)
	if less == nil {
		return people
	}

	sorted := make([]PersonResponse, len(people))
	copy(sorted, people)

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == Descending {
			return less(&sorted[j], &sorted[i])
		}
		return less(&sorted[i], &sorted[j])
	})
	return sorted
}

func lessFunc(sortBy string) func(a, b *PersonResponse) bool {
	switch sortBy {
	case SortByName:
		return func(a, b *PersonResponse) bool { return lessFold(a.Name, b.Name) }
	case SortByEmail:
		return func(a, b *PersonResponse) bool { return lessFold(a.Email, b.Email) }
	case SortByDateOfBirth:
		return func(a, b *PersonResponse) bool { return lessTimePtr(a.DateOfBirth, b.DateOfBirth) }
	case SortByAge:
		return func(a, b *PersonResponse) bool { return lessFloatPtr(a.Age, b.Age) }
	case SortByGender:
		return func(a, b *PersonResponse) bool { return lessFold(a.Gender, b.Gender) }
	case SortByCountryName:
		return func(a, b *PersonResponse) bool { return lessFold(a.CountryName, b.CountryName) }
	case SortByAddress:
		return func(a, b *PersonResponse) bool { return lessFold(a.Address, b.Address) }
	case SortByReceivesNewsletters:
		return func(a, b *PersonResponse) bool {
			return !a.ReceivesNewsletters && b.ReceivesNewsletters
		}
	}
	return nil
}

// lessFold is a case-insensitive ordinal comparison.
func lessFold(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

// Nil sorts before any value, so people missing the field group together
// at the ascending front.
func lessTimePtr(a, b *time.Time) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return a.Before(*b)
}

func lessFloatPtr(a, b *float64) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return *a < *b
}
