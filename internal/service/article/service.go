// Package article implements the article mutation pipeline: validation,
// authorization, persistence, owner enrichment, and change notification.
package article

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/articlehub/backend/internal/domain"
)

// articleRepo defines the article repository interface needed by the service.
type articleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	List(ctx context.Context) ([]domain.Article, error)
	Create(ctx context.Context, a *domain.Article) (*domain.Article, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ArticleUpdateParams) (*domain.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// userRepo defines the user repository interface needed for owner enrichment.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// notifier defines the change-notification interface. Publish must never
// block or fail the calling mutation.
type notifier interface {
	Publish(event string, data any)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements article operations.
type Service struct {
	log      *slog.Logger
	articles articleRepo
	users    userRepo
	notifier notifier
	tx       txManager
}

// NewService creates a new article service instance.
func NewService(logger *slog.Logger, articles articleRepo, users userRepo, notifier notifier, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "article"),
		articles: articles,
		users:    users,
		notifier: notifier,
		tx:       tx,
	}
}
