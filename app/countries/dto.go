package countries

import (
	"time"

	"github.com/asolis/contactbook/models"
	"github.com/google/uuid"
)

// CountryAddRequest represents the request to create a country. Name is a
// pointer so an absent name can be told apart from an empty one.
type CountryAddRequest struct {
	Name *string `json:"name"`
}

// CountryResponse represents the response for country data
type CountryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCountryResponse converts a models.Country to CountryResponse
func ToCountryResponse(country *models.Country) *CountryResponse {
	return &CountryResponse{
		ID:        country.ID,
		Name:      country.Name,
		CreatedAt: country.CreatedAt,
	}
}

// ToCountryResponseList converts a slice of models.Country to CountryResponse
func ToCountryResponseList(countries []models.Country) []CountryResponse {
	responses := make([]CountryResponse, len(countries))
	for i := range countries {
		responses[i] = *ToCountryResponse(&countries[i])
	}
	return responses
}
