// Package userrepo persists user accounts.
package userrepo

import (
	"time"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserDTO is the users row. Permissions are stored by name in a text[] column.
type UserDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name         string         `gorm:"type:varchar(255);not null"`
	Email        string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string         `gorm:"type:varchar(255);not null"`
	Role         string         `gorm:"type:varchar(20);not null;index"`
	Permissions  pq.StringArray `gorm:"type:text[];not null"`
	CreatedAt    time.Time      `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *account.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         string(u.Role()),
		Permissions:  pq.StringArray(u.Permissions().Names()),
		CreatedAt:    u.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := access.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return account.RestoreUser(id, dto.Name, dto.Email, dto.PasswordHash, role,
		access.PermissionsFromNames(dto.Permissions), dto.CreatedAt)
}
