package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/campushq/registrar/internal/app/models"
	appRepos "github.com/campushq/registrar/internal/app/repositories"
	"github.com/campushq/registrar/internal/config"
	"github.com/campushq/registrar/internal/pkg/apperrors"
	"github.com/campushq/registrar/internal/pkg/auth"
)

// CreateDefaultData creates the default admin account if it doesn't exist,
// so a fresh deployment has a way in.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.ExistsByUsername(ctx, cfg.Seed.AdminEmail)
	if err != nil {
		return fmt.Errorf("error checking default admin: %w", err)
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("error hashing default admin password: %w", err)
	}

	admin := &appModels.User{
		Username:  cfg.Seed.AdminEmail,
		Password:  hashed,
		FirstName: cfg.Seed.AdminName,
		Email:     cfg.Seed.AdminEmail,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		// A concurrent boot may have won the race; that's fine.
		if errors.Is(err, apperrors.ErrAccountExists) {
			return nil
		}
		return fmt.Errorf("error creating default admin: %w", err)
	}

	lgr.Info().Str("username", admin.Username).Msg("Default admin account created")
	return nil
}
