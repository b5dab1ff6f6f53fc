package article

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/articlehub/backend/internal/domain"
	"github.com/articlehub/backend/pkg/ctxutil"
)

// Delete removes an article. Privileged principals only; authorization
// is decided before any storage access. On success EventDeleted is
// published carrying only the article ID.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	principal, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return fmt.Errorf("article.Delete: %w", domain.ErrUnauthorized)
	}

	if err := domain.Authorize(principal, domain.ActionDelete); err != nil {
		return fmt.Errorf("article.Delete: %w", err)
	}

	if err := s.articles.Delete(ctx, id); err != nil {
		return fmt.Errorf("article.Delete: %w", err)
	}

	s.notifier.Publish(EventDeleted, Deleted{ID: id})

	s.log.InfoContext(ctx, "article deleted",
		slog.String("article_id", id.String()),
		slog.String("actor_id", principal.ID.String()),
	)

	return nil
}
