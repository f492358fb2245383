package api

import "github.com/JaimeStill/loyalty-lab/internal/registrations"

// Domain holds the domain systems exposed through the API.
type Domain struct {
	Registrations registrations.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Registrations: registrations.New(
			runtime.Database.Connection(),
			runtime.Logger,
			runtime.Pagination,
		),
	}
}
