package article

import (
	"context"
	"errors"
	"fmt"

	"github.com/articlehub/backend/internal/domain"
)

// enrich resolves the article's owner and builds the client-facing
// Result. A stored article whose owner cannot be found is a broken
// reference, not a client error: it surfaces as ErrDataIntegrity.
func (s *Service) enrich(ctx context.Context, a *domain.Article) (*Result, error) {
	owner, err := s.users.GetByID(ctx, a.OwnerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("article %s references missing owner %s: %w",
				a.ID, a.OwnerID, domain.ErrDataIntegrity)
		}
		return nil, fmt.Errorf("resolve owner %s: %w", a.OwnerID, err)
	}

	return toResult(a, owner.Owner()), nil
}
