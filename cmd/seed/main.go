// Command seed provisions a privileged user. Privileged accounts cannot
// be created through the API, so operators run this against the target
// database when bootstrapping an environment.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/articlehub/backend/internal/adapter/postgres"
	userrepo "github.com/articlehub/backend/internal/adapter/postgres/user"
	"github.com/articlehub/backend/internal/app"
	"github.com/articlehub/backend/internal/config"
	"github.com/articlehub/backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email for the privileged user (required)")
	name := flag.String("name", "Administrator", "display name")
	password := flag.String("password", "", "password for the privileged user (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), cfg.Auth.PasswordHashCost)
	if err != nil {
		logger.Error("hash password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	users := userrepo.New(pool)
	created, err := users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        *email,
		Name:         *name,
		PasswordHash: string(hash),
		Role:         domain.RolePrivileged,
	})
	if err != nil {
		logger.Error("create privileged user",
			slog.String("email", *email),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	logger.Info("privileged user created",
		slog.String("user_id", created.ID.String()),
		slog.String("email", created.Email),
	)
}
