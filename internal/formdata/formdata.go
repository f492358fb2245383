// Package formdata holds the visitor's in-progress registration: a phone
// number and the registration fields entered across the loyalty pages.
//
// Each visitor session owns exactly one State. Page handlers receive the
// handle through the request context rather than a package-level variable,
// so every page in a session reads and writes the same instance.
package formdata

import "sync"

// RegistrationData is the record entered on the registration page.
type RegistrationData struct {
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
	Email    string `json:"email"`
}

// FormData is a point-in-time copy of a State.
type FormData struct {
	PhoneNumber  string           `json:"phone_number"`
	Registration RegistrationData `json:"registration_data"`
}

// State is the shared form-state handle for one session. Writes are
// unconditional; no field is validated.
type State struct {
	mu   sync.RWMutex
	data FormData
}

// New returns a State with every field empty.
func New() *State {
	return &State{}
}

func (s *State) PhoneNumber() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.PhoneNumber
}

func (s *State) SetPhoneNumber(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.PhoneNumber = v
}

func (s *State) Registration() RegistrationData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Registration
}

// SetRegistration replaces all three registration fields.
func (s *State) SetRegistration(r RegistrationData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Registration = r
}

func (s *State) SetName(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Registration.Name = v
}

func (s *State) SetBirthday(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Registration.Birthday = v
}

func (s *State) SetEmail(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Registration.Email = v
}

// Snapshot returns a copy of the current values.
func (s *State) Snapshot() FormData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}
