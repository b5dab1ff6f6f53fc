package article

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/articlehub/backend/internal/domain"
	"github.com/articlehub/backend/pkg/ctxutil"
)

// Create persists a new article owned by the authenticated principal
// and publishes EventCreated with the enriched result. Any principal
// may create; ownership is fixed to the actor and any client-supplied
// owner is ignored before this point.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Result, error) {
	principal, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("article.Create: %w", domain.ErrUnauthorized)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := domain.Authorize(principal, domain.ActionCreate); err != nil {
		return nil, fmt.Errorf("article.Create: %w", err)
	}

	created, err := s.articles.Create(ctx, &domain.Article{
		ID:      uuid.New(),
		OwnerID: principal.ID,
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("article.Create: %w", err)
	}

	result, err := s.enrich(ctx, created)
	if err != nil {
		return nil, fmt.Errorf("article.Create: %w", err)
	}

	// Notify only after the mutation fully succeeded.
	s.notifier.Publish(EventCreated, result)

	s.log.InfoContext(ctx, "article created",
		slog.String("article_id", created.ID.String()),
		slog.String("owner_id", principal.ID.String()),
	)

	return result, nil
}
