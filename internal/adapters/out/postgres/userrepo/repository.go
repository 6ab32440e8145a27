package userrepo

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
//
// The connection must be opened with gorm.Config{TranslateError: true} so a
// duplicate e-mail surfaces as gorm.ErrDuplicatedKey.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Add(ctx context.Context, user *account.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%s is already registered", user.Email()))
		}
		return err
	}
	return nil
}

// Update rewrites the mutable fields: name, permissions and password hash.
func (r *GormUserRepository) Update(ctx context.Context, user *account.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":          dto.Name,
			"password_hash": dto.PasswordHash,
			"permissions":   dto.Permissions,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", user.ID().String())
	}
	return nil
}

// Delete removes the user; the sessions table cascades.
func (r *GormUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&UserDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", id.String())
	}
	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "user", id.String(), "id = ?", id.Bytes())
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	email = account.NormalizeEmail(email)
	return r.first(ctx, "email", email, "email = ?", email)
}

// ListByRole returns the users of the given roles ordered by name.
func (r *GormUserRepository) ListByRole(ctx context.Context, roles ...access.Role) ([]*account.User, error) {
	if len(roles) == 0 {
		return []*account.User{}, nil
	}

	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}

	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Where("role IN ?", names).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	users := make([]*account.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *GormUserRepository) first(ctx context.Context, param string, id any, query string, args ...any) (*account.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, id)
		}
		return nil, err
	}
	return toDomain(dto)
}
