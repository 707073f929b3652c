package repository

import "github.com/jcastro/llantera-api/internal/domain/entity"

// UserRepository define el puerto de persistencia de usuarios.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	UpdatePassword(id, passwordHash string) error
	UpdateStatus(id, status string) error
	List() ([]*entity.User, error)
}
