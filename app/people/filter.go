package people

import (
	"strings"

	"github.com/asolis/contactbook/models"
)

// Searchable field names. Exactly one field is searchable per call.
const (
	SearchByName        = "PersonName"
	SearchByEmail       = "PersonEmail"
	SearchByDateOfBirth = "DateOfBirth"
	SearchByGender      = "Gender"
	SearchByCountryName = "CountryName"
	SearchByAddress     = "Address"
)

// dateOfBirthLayout is how dates render before the substring match,
// e.g. "02 January 2006".
const dateOfBirthLayout = "02 January 2006"

// containsFold reports a case-insensitive substring match.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// vacuous wraps a field accessor into a predicate that matches whenever
// the field is empty. A record is never excluded merely because the
// searched field holds no data; that policy is deliberate.
func vacuous(match func(*models.Person) bool, empty func(*models.Person) bool) func(*models.Person) bool {
	return func(p *models.Person) bool {
		if empty(p) {
			return true
		}
		return match(p)
	}
}

// searchPredicate builds the row predicate for a searchable field, or
// returns nil for an unrecognized field (callers fall back to the full
// list).
func searchPredicate(searchBy, query string) func(*models.Person) bool {
	switch searchBy {
	case SearchByName:
		return vacuous(
			func(p *models.Person) bool { return containsFold(p.Name, query) },
			func(p *models.Person) bool { return p.Name == "" },
		)
	case SearchByEmail:
		return vacuous(
			func(p *models.Person) bool { return containsFold(p.Email, query) },
			func(p *models.Person) bool { return p.Email == "" },
		)
	case SearchByDateOfBirth:
		return vacuous(
			func(p *models.Person) bool {
				return containsFold(p.DateOfBirth.Format(dateOfBirthLayout), query)
			},
			func(p *models.Person) bool { return p.DateOfBirth == nil },
		)
	case SearchByGender:
		// Equality, not substring: searching "male" must not match
		// "Female".
		return vacuous(
			func(p *models.Person) bool { return strings.EqualFold(p.Gender, query) },
			func(p *models.Person) bool { return p.Gender == "" },
		)
	case SearchByCountryName:
		return vacuous(
			func(p *models.Person) bool { return containsFold(p.Country.Name, query) },
			func(p *models.Person) bool { return p.Country == nil || p.Country.Name == "" },
		)
	case SearchByAddress:
		return vacuous(
			func(p *models.Person) bool { return containsFold(p.Address, query) },
			func(p *models.Person) bool { return p.Address == "" },
		)
	}
	return nil
}
