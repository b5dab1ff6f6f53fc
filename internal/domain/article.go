package domain

import (
	"time"

	"github.com/google/uuid"
)

// Article is a stored article document. OwnerID references the user
// who created it; it is set from the authenticated principal at
// creation time and never changes afterwards.
type Article struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ArticleUpdateParams carries the partial-update fields for an article.
// Only title and content are updatable; a nil field is left unchanged.
// Ownership is immutable, so there is deliberately no owner field here.
type ArticleUpdateParams struct {
	Title   *string
	Content *string
}
