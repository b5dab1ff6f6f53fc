package article

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/articlehub/backend/internal/domain"
	"github.com/articlehub/backend/pkg/ctxutil"
)

// Update applies a partial update to an article. Privileged principals
// only; the authorization decision is made before any storage access,
// so a denied caller gets the same answer whether or not the article
// exists. No event is published for updates.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*Result, error) {
	principal, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("article.Update: %w", domain.ErrUnauthorized)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := domain.Authorize(principal, domain.ActionUpdate); err != nil {
		return nil, fmt.Errorf("article.Update: %w", err)
	}

	var updated *domain.Article
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Read first so a concurrent delete between existence check and
		// update cannot produce a half-applied result.
		if _, err := s.articles.GetByID(txCtx, id); err != nil {
			return err
		}

		a, err := s.articles.Update(txCtx, id, input.params())
		if err != nil {
			return err
		}
		updated = a
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("article.Update: %w", err)
	}

	result, err := s.enrich(ctx, updated)
	if err != nil {
		return nil, fmt.Errorf("article.Update: %w", err)
	}

	s.log.InfoContext(ctx, "article updated",
		slog.String("article_id", id.String()),
		slog.String("actor_id", principal.ID.String()),
	)

	return result, nil
}
