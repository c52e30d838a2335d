package repository

import "github.com/gulfwms/wms-api/internal/domain/entity"

// UserRepository persistence port for User accounts.
type UserRepository interface {
	Create(u *entity.User) error
	FindByUsername(username string) (*entity.User, error)
}
