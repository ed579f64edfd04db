package people

import (
	"time"

	"github.com/google/uuid"

	"github.com/asolis/contactbook/internal/validator"
	"github.com/asolis/contactbook/models"
)

// PersonAddRequest represents the request to create a person.
type PersonAddRequest struct {
	Name                string        `json:"name"`
	Email               string        `json:"email"`
	DateOfBirth         *time.Time    `json:"date_of_birth"`
	Gender              models.Gender `json:"gender"`
	CountryID           *uuid.UUID    `json:"country_id"`
	Address             string        `json:"address"`
	ReceivesNewsletters bool          `json:"receives_newsletters"`
}

// Validate records every violated rule; nothing short-circuits.
func (r *PersonAddRequest) Validate(v *validator.Validator) bool {
	v.Check(validator.NotBlank(r.Name), "name", "name is required")
	v.Check(validator.MaxRunes(r.Name, 40), "name", "name must be at most 40 characters")
	v.Check(r.Email != "", "email", "email is required")
	v.Check(r.Email == "" || validator.IsEmail(r.Email), "email", "email is invalid")
	v.Check(validator.MaxRunes(r.Email, 40), "email", "email must be at most 40 characters")
	v.Check(validator.MaxRunes(r.Address, 200), "address", "address must be at most 200 characters")
	v.Check(r.Gender.Valid(), "gender", "gender must be Male, Female or Other")
	return v.Valid()
}

// ToPerson converts the request to a Person entity.
func (r *PersonAddRequest) ToPerson() *models.Person {
	return &models.Person{
		Name:                r.Name,
		Email:               r.Email,
		DateOfBirth:         r.DateOfBirth,
		Gender:              r.Gender.String(),
		CountryID:           r.CountryID,
		Address:             r.Address,
		ReceivesNewsletters: r.ReceivesNewsletters,
	}
}

// PersonUpdateRequest represents the request to update a person.
type PersonUpdateRequest struct {
	ID                  uuid.UUID     `json:"id"`
	Name                string        `json:"name"`
	Email               string        `json:"email"`
	DateOfBirth         *time.Time    `json:"date_of_birth"`
	Gender              models.Gender `json:"gender"`
	CountryID           *uuid.UUID    `json:"country_id"`
	Address             string        `json:"address"`
	ReceivesNewsletters bool          `json:"receives_newsletters"`
}

// Validate applies the same rules as PersonAddRequest.
func (r *PersonUpdateRequest) Validate(v *validator.Validator) bool {
	add := PersonAddRequest{
		Name:    r.Name,
		Email:   r.Email,
		Gender:  r.Gender,
		Address: r.Address,
	}
	return add.Validate(v)
}

// ToPerson converts the request to a Person entity carrying the target id.
func (r *PersonUpdateRequest) ToPerson() *models.Person {
	return &models.Person{
		ID:                  r.ID,
		Name:                r.Name,
		Email:               r.Email,
		DateOfBirth:         r.DateOfBirth,
		Gender:              r.Gender.String(),
		CountryID:           r.CountryID,
		Address:             r.Address,
		ReceivesNewsletters: r.ReceivesNewsletters,
	}
}

// PersonResponse represents the response for person data, with the age
// computed and the country name resolved for display.
type PersonResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	DateOfBirth         *time.Time `json:"date_of_birth"`
	Gender              string     `json:"gender"`
	CountryID           *uuid.UUID `json:"country_id"`
	CountryName         string     `json:"country_name"`
	Address             string     `json:"address"`
	Age                 *float64   `json:"age"`
	ReceivesNewsletters bool       `json:"receives_newsletters"`
}

// ToPersonResponse converts a models.Person to PersonResponse
func ToPersonResponse(person *models.Person) *PersonResponse {
	return &PersonResponse{
		ID:                  person.ID,
		Name:                person.Name,
		Email:               person.Email,
		DateOfBirth:         person.DateOfBirth,
		Gender:              person.Gender,
		CountryID:           person.CountryID,
		CountryName:         person.CountryName(),
		Address:             person.Address,
		Age:                 person.Age(),
		ReceivesNewsletters: person.ReceivesNewsletters,
	}
}

// ToPersonResponseList converts a slice of models.Person to PersonResponse
func ToPersonResponseList(persons []models.Person) []PersonResponse {
	responses := make([]PersonResponse, len(persons))
	for i := range persons {
		responses[i] = *ToPersonResponse(&persons[i])
	}
	return responses
}
