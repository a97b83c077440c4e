package repositories

import (
	"context"

	"github.com/ecogauge/back/internal/models"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}

type ReportRepository interface {
	Save(ctx context.Context, token string, report *models.Report) error
	GetByToken(ctx context.Context, token string) (*models.Report, error)
	Delete(ctx context.Context, token string) error
}
