package article

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/articlehub/backend/internal/domain"
	"github.com/articlehub/backend/pkg/ctxutil"
)

// List returns all articles with owners resolved, newest first. Owners
// are fetched once per distinct ID. Any authenticated principal may
// read; anonymous callers are rejected.
func (s *Service) List(ctx context.Context) ([]Result, error) {
	if _, ok := ctxutil.PrincipalFromCtx(ctx); !ok {
		return nil, fmt.Errorf("article.List: %w", domain.ErrUnauthorized)
	}

	articles, err := s.articles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("article.List: %w", err)
	}

	owners := make(map[uuid.UUID]domain.Owner, len(articles))
	results := make([]Result, 0, len(articles))

	for i := range articles {
		a := &articles[i]

		owner, ok := owners[a.OwnerID]
		if !ok {
			u, err := s.users.GetByID(ctx, a.OwnerID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return nil, fmt.Errorf("article %s references missing owner %s: %w",
						a.ID, a.OwnerID, domain.ErrDataIntegrity)
				}
				return nil, fmt.Errorf("article.List resolve owner %s: %w", a.OwnerID, err)
			}
			owner = u.Owner()
			owners[a.OwnerID] = owner
		}

		results = append(results, *toResult(a, owner))
	}

	return results, nil
}
