package article

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/articlehub/backend/internal/domain"
	"github.com/articlehub/backend/pkg/ctxutil"
)

// Get returns one article with its owner resolved. Any authenticated
// principal may read; results carry owner emails, so anonymous callers
// are rejected.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Result, error) {
	if _, ok := ctxutil.PrincipalFromCtx(ctx); !ok {
		return nil, fmt.Errorf("article.Get: %w", domain.ErrUnauthorized)
	}

	a, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("article.Get: %w", err)
	}

	result, err := s.enrich(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("article.Get: %w", err)
	}

	return result, nil
}
