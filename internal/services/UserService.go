package services

import (
	"dsatrack/internal/models"
	"dsatrack/internal/providers"
	"strings"

	"github.com/google/uuid"
)

type UserInput struct {
	Name string `json:"name" validate:"required|maxLen:100"`
}

type UserServiceInterface interface {
	Create(in UserInput) (*models.User, error)
	Get(userID string) (*models.User, error)
}

type UserService struct {
	store *models.DocumentStore
	clock providers.Clock
}

func (s *UserService) Create(in UserInput) (*models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(&in); err != nil {
		return nil, err
	}
	u := &models.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		CreatedAt: s.clock.Now(),
	}
	s.store.PutUser(u)
	return u, nil
}

func (s *UserService) Get(userID string) (*models.User, error) {
	u, ok := s.store.UserByID(userID)
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func NewUserService(store *models.DocumentStore, clock providers.Clock) UserServiceInterface {
	return &UserService{store: store, clock: clock}
}
