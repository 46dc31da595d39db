// Command seed provisions a local database: schema, demo catalog, and an
// initial admin user. Intended for development and demos, not production.
package main

import (
	"context"
	"errors"

	"invencost/internal/config"
	"invencost/internal/infra"
	"invencost/internal/model"
	"invencost/internal/repository"
	"invencost/internal/service"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	if err := infra.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	productRepo := repository.NewProductRepository(db)

	if err := ensureAdmin(ctx, userRepo); err != nil {
		log.Fatal().Err(err).Msg("failed to create admin user")
	}

	seeder := service.NewSeedService(ingredientRepo, productRepo)
	if err := seeder.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed catalog")
	}

	log.Info().Msg("seed completed")
}

func ensureAdmin(ctx context.Context, repo repository.UserRepository) error {
	_, err := repo.FindByUsername(ctx, "admin")
	if err == nil {
		return nil // already present
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 12)
	if err != nil {
		return err
	}
	admin := &model.User{
		Username:     "admin",
		Email:        "admin@invencost.local",
		PasswordHash: string(hash),
		Roles:        []string{model.RoleUser, model.RoleAdmin},
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}
	log.Info().Str("username", "admin").Msg("admin user created")
	return nil
}
