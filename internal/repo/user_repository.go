package repo

import (
	"errors"

	"github.com/rogerio-castellano/freshtrack/internal/models"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("unique constraint violation: username already exists")
)

type UserRepository interface {
	GetByUsername(username string) (models.User, error)
	CreateUser(u models.User) (models.User, error)
}
