package mocks

import (
	"github.com/pageza/mixmaster/backend/internal/catalog"
	"github.com/pageza/mixmaster/backend/internal/model"
	"github.com/pageza/mixmaster/backend/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockMixService is a mock implementation of service.IMixService
type MockMixService struct {
	mock.Mock
}

var _ service.IMixService = (*MockMixService)(nil)

func recipes(v interface{}) []model.Recipe {
	if v == nil {
		return nil
	}
	return v.([]model.Recipe)
}

func (m *MockMixService) Categories() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockMixService) Search(query, category string) []model.Recipe {
	return recipes(m.Called(query, category).Get(0))
}

func (m *MockMixService) Home(query, category string) *service.Home {
	args := m.Called(query, category)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*service.Home)
}

func (m *MockMixService) Browse(query string) []model.Recipe {
	return recipes(m.Called(query).Get(0))
}

func (m *MockMixService) Random() (model.Recipe, error) {
	args := m.Called()
	return args.Get(0).(model.Recipe), args.Error(1)
}

func (m *MockMixService) Spotlight(limit int) []model.Recipe {
	return recipes(m.Called(limit).Get(0))
}

func (m *MockMixService) Recipe(id string) (model.Recipe, error) {
	args := m.Called(id)
	return args.Get(0).(model.Recipe), args.Error(1)
}

func (m *MockMixService) Open(id string, servings int) (*service.Detail, error) {
	args := m.Called(id, servings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Detail), args.Error(1)
}

func (m *MockMixService) CreateRecipe(in catalog.CreateInput) (model.Recipe, error) {
	args := m.Called(in)
	return args.Get(0).(model.Recipe), args.Error(1)
}

func (m *MockMixService) ToggleFavorite(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMixService) SubmitRating(id string, value int) (*service.RatingSummary, error) {
	args := m.Called(id, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RatingSummary), args.Error(1)
}

func (m *MockMixService) PostComment(id, text string) ([]string, error) {
	args := m.Called(id, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMixService) ShareText(id string) (string, error) {
	args := m.Called(id)
	return args.String(0), args.Error(1)
}

func (m *MockMixService) Library() *service.Library {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*service.Library)
}

func (m *MockMixService) RecordSearch(text string) []string {
	return m.Called(text).Get(0).([]string)
}

func (m *MockMixService) RecentSearches() []string {
	return m.Called().Get(0).([]string)
}

func (m *MockMixService) Onboard(name string, dob model.DOB) model.Profile {
	return m.Called(name, dob).Get(0).(model.Profile)
}

func (m *MockMixService) Onboarded() bool {
	return m.Called().Bool(0)
}

func (m *MockMixService) Profile() model.Profile {
	return m.Called().Get(0).(model.Profile)
}
