package article

import (
	"time"

	"github.com/google/uuid"

	"github.com/articlehub/backend/internal/domain"
)

// Event names published to the change-notification hub.
// There is deliberately no update event.
const (
	EventCreated = "article:create"
	EventDeleted = "article:delete"
)

// Result is the enriched article returned to clients. The same value is
// published on EventCreated, so HTTP responses and event payloads can
// never drift apart.
type Result struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Owner     OwnerView `json:"owner"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnerView is the sanitized owner projection embedded in Result.
type OwnerView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Deleted is the payload published on EventDeleted. It carries only the
// identifier; the rest of the article is already gone.
type Deleted struct {
	ID uuid.UUID `json:"id"`
}

func toResult(a *domain.Article, owner domain.Owner) *Result {
	return &Result{
		ID:      a.ID,
		Title:   a.Title,
		Content: a.Content,
		Owner: OwnerView{
			ID:    owner.ID,
			Name:  owner.Name,
			Email: owner.Email,
		},
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
