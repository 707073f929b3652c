package usecase

import (
	"github.com/jcastro/llantera-api/internal/application/dto"
	"github.com/jcastro/llantera-api/internal/domain"
	"github.com/jcastro/llantera-api/internal/domain/entity"
	"github.com/jcastro/llantera-api/internal/domain/repository"
)

// UserUseCase administración de usuarios, solo para rol admin.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista todos los usuarios registrados.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			RealName:  u.RealName,
			Phone:     u.Phone,
			Email:     u.Email,
			Role:      u.Role,
			Status:    u.Status,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}
	return out, nil
}

// UpdateStatus habilita o deshabilita a un usuario.
func (uc *UserUseCase) UpdateStatus(id, status string) error {
	if status != entity.UserActive && status != entity.UserDisabled {
		return domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.UpdateStatus(id, status)
}
