package auth

import (
	"context"
	"fmt"

	"github.com/articlehub/backend/internal/domain"
)

// ValidateToken checks an access token and returns the principal it
// carries. Used by the auth middleware. The ctx parameter is accepted
// for interface symmetry; validation itself is purely local.
func (s *Service) ValidateToken(_ context.Context, token string) (domain.Principal, error) {
	p, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return p, nil
}
