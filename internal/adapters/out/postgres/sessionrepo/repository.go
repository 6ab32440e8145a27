// Package sessionrepo persists login sessions.
package sessionrepo

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionDTO is the sessions row.
type SessionDTO struct {
	Token     string    `gorm:"type:varchar(64);primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

func (SessionDTO) TableName() string {
	return "sessions"
}

// GormSessionRepository implements SessionRepository using GORM.
type GormSessionRepository struct {
	db *gorm.DB
}

func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

func (r *GormSessionRepository) Add(ctx context.Context, session account.Session) error {
	dto := SessionDTO{
		Token:     session.Token(),
		UserID:    session.UserID().Bytes(),
		ExpiresAt: session.ExpiresAt(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormSessionRepository) Get(ctx context.Context, token string) (account.Session, error) {
	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.Session{}, errs.NewObjectNotFoundError("session", "token")
		}
		return account.Session{}, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return account.Session{}, err
	}
	return account.RestoreSession(dto.Token, userID, dto.ExpiresAt)
}

func (r *GormSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&SessionDTO{}, "expires_at <= ?", now)
	return result.RowsAffected, result.Error
}
