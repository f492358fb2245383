package registrations

import (
	"context"

	"github.com/JaimeStill/loyalty-lab/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the interface for registration persistence.
type System interface {
	// List returns a page of registrations, optionally filtered by a search
	// term matched against name, email, and phone number.
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Registration], error)

	// Find returns a single registration.
	Find(ctx context.Context, id uuid.UUID) (*Registration, error)

	// Create stores a new registration.
	Create(ctx context.Context, cmd CreateCommand) (*Registration, error)
}
