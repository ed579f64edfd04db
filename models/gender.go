package models

import "strings"

// Gender is the closed set of accepted gender values. The store keeps a
// plain varchar; conversion happens only at the DTO/entity edge.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// ParseGender maps a free-form string onto the Gender set,
// case-insensitively. The empty string is allowed and stays empty; the
// attribute is optional.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "male":
		return GenderMale, nil
	case "female":
		return GenderFemale, nil
	case "other":
		return GenderOther, nil
	}
	return "", ErrInvalidGender
}

func (g Gender) String() string {
	return string(g)
}

// Valid reports whether g is empty or one of the accepted values.
func (g Gender) Valid() bool {
	_, err := ParseGender(string(g))
	return err == nil
}
