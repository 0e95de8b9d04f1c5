package services

import (
	"errors"

	"github.com/bloom-app/bloom-server/internal/models"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrUserLoadFailed = errors.New("load user failed")
	ErrUserSaveFailed = errors.New("save user failed")
)

type UserRepository interface {
	FindByID(id string) (models.User, bool, error)
	FindByEmail(email string) (models.User, bool, error)
	List() ([]models.User, error)
	Create(user *models.User) error
	DeleteByID(id string) error
}

// UserService backs the legacy admin surface; the mobile app itself never
// creates users, the identity provider does.
type UserService struct {
	users UserRepository
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

func (service *UserService) Create(email string, name string) (models.User, error) {
	candidate, err := models.NewUser(email, name)
	if err != nil {
		return models.User{}, err
	}

	_, taken, err := service.users.FindByEmail(candidate.Email)
	if err != nil {
		return models.User{}, ErrUserLoadFailed
	}
	if taken {
		return models.User{}, ErrEmailTaken
	}

	if err := service.users.Create(&candidate); err != nil {
		return models.User{}, ErrUserSaveFailed
	}
	return candidate, nil
}

func (service *UserService) List() ([]models.User, error) {
	users, err := service.users.List()
	if err != nil {
		return nil, ErrUserLoadFailed
	}
	return users, nil
}

func (service *UserService) Get(id string) (models.User, error) {
	user, found, err := service.users.FindByID(id)
	if err != nil {
		return models.User{}, ErrUserLoadFailed
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (service *UserService) Delete(id string) error {
	_, found, err := service.users.FindByID(id)
	if err != nil {
		return ErrUserLoadFailed
	}
	if !found {
		return ErrUserNotFound
	}
	if err := service.users.DeleteByID(id); err != nil {
		return ErrUserSaveFailed
	}
	return nil
}
