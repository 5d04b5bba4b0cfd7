package service

import (
	"strings"

	"github.com/pageza/mixmaster/backend/internal/model"
	"github.com/pageza/mixmaster/backend/internal/store"
)

// Onboard stores the welcome-screen answers and marks onboarding done.
func (s *MixService) Onboard(name string, dob model.DOB) model.Profile {
	s.awaitStore()
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	s.store.Set(store.KeyOnboarded, true)
	s.store.Set(store.KeyProfileName, name)
	s.store.Set(store.KeyProfileDOB, dob)
	return s.profile()
}

// Onboarded reports whether the welcome screen was completed.
func (s *MixService) Onboarded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var done bool
	s.store.Get(store.KeyOnboarded, &done)
	return done
}

// Profile returns the stored profile, filling an empty name from the
// onboarding answers.
func (s *MixService) Profile() model.Profile {
	s.awaitStore()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile()
}

func (s *MixService) profile() model.Profile {
	var p model.Profile
	s.store.Get(store.KeyProfile, &p)
	if p.Name != "" {
		return p
	}

	var name string
	if !s.store.Get(store.KeyProfileName, &name) || name == "" {
		return p
	}
	p.Name = name
	p.DOB = nil
	var dob model.DOB
	if s.store.Get(store.KeyProfileDOB, &dob) {
		p.DOB = &dob
	}
	s.store.Set(store.KeyProfile, p)
	return p
}
