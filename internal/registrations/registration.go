// Package registrations persists loyalty registrations confirmed on the
// summary page and serves them back through the JSON API.
package registrations

import (
	"time"

	"github.com/JaimeStill/loyalty-lab/internal/formdata"
	"github.com/google/uuid"
)

// Registration is a submitted copy of a session's form state.
type Registration struct {
	ID          uuid.UUID `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	Name        string    `json:"name"`
	Birthday    string    `json:"birthday"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCommand contains the data needed to create a registration.
type CreateCommand struct {
	PhoneNumber string `json:"phone_number"`
	Name        string `json:"name"`
	Birthday    string `json:"birthday"`
	Email       string `json:"email"`
}

// CommandFromForm copies a form-state snapshot into a CreateCommand.
func CommandFromForm(fd formdata.FormData) CreateCommand {
	return CreateCommand{
		PhoneNumber: fd.PhoneNumber,
		Name:        fd.Registration.Name,
		Birthday:    fd.Registration.Birthday,
		Email:       fd.Registration.Email,
	}
}
