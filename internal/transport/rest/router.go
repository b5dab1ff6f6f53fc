package rest

import "net/http"

// NewRouter assembles all REST routes on a ServeMux using method patterns.
// Middleware (request ID, logging, recovery, CORS, auth) wraps the whole
// mux at server assembly time.
func NewRouter(articles *ArticleHandler, auth *AuthHandler, health *HealthHandler, events *EventsHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", auth.Register)
	mux.HandleFunc("POST /auth/login", auth.Login)

	mux.HandleFunc("POST /articles", articles.Create)
	mux.HandleFunc("GET /articles", articles.List)
	mux.HandleFunc("GET /articles/{id}", articles.Get)
	mux.HandleFunc("PUT /articles/{id}", articles.Update)
	mux.HandleFunc("DELETE /articles/{id}", articles.Delete)

	mux.Handle("GET /events", events)

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)

	return mux
}
