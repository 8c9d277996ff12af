// Command createadmin provisions the workshop's login and its default
// workshop info. Running it twice is safe.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"workshop-invoicing-backend/internal/config"
	"workshop-invoicing-backend/internal/logging"
	"workshop-invoicing-backend/internal/models"
	"workshop-invoicing-backend/internal/repository"
	"workshop-invoicing-backend/internal/services/auth"
	"workshop-invoicing-backend/internal/services/workshop"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type options struct {
	Username string
	Email    string
	Password string
}

func defaultWorkshop() workshop.UpdateInput {
	name := "AUTO MASTER"
	tagline := "MAINTENANCE CENTER"
	services := []string{"Denting", "Painting", "Mechanic", "A.C", "Auto Electrician", "Computer Scanner"}
	return workshop.UpdateInput{Name: &name, Tagline: &tagline, Services: &services}
}

func main() {
	_ = godotenv.Load()

	var (
		opts   options
		driver string
		dsn    string
		verify bool
	)
	flag.StringVar(&opts.Username, "username", envOr("ADMIN_USERNAME", "admin"), "admin username")
	flag.StringVar(&opts.Email, "email", os.Getenv("ADMIN_EMAIL"), "admin email")
	flag.StringVar(&opts.Password, "password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	flag.StringVar(&driver, "db-driver", envOr("DB_DRIVER", config.DriverPostgres), "postgres or sqlite")
	flag.StringVar(&dsn, "database-url", os.Getenv("DATABASE_URL"), "database connection string")
	flag.BoolVar(&verify, "verify", false, "only report whether the admin and its workshop info exist")
	flag.Parse()

	log := logging.New(envOr("LOG_LEVEL", "info"))
	if dsn == "" {
		log.Fatal("DATABASE_URL or -database-url is required")
	}

	db, err := config.OpenDB(driver, dsn, logger.Warn)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := repository.Migrate(db); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if verify {
		err = verifyAdmin(ctx, db, log, opts)
	} else {
		err = ensureAdmin(ctx, db, log, opts)
	}
	if err != nil {
		log.WithError(err).Fatal("createadmin failed")
	}
}

// ensureAdmin creates the user unless it already exists, then gives it the
// default workshop info if it has none.
func ensureAdmin(ctx context.Context, db *gorm.DB, log logrus.FieldLogger, opts options) error {
	users := repository.NewUserRepository(db)
	authService := auth.NewAuthService(users, "unused", time.Hour)
	workshopService := workshop.NewWorkshopService(repository.NewWorkshopRepository(db), log)

	user, err := authService.CreateUser(ctx, opts.Username, opts.Email, opts.Password)
	switch {
	case errors.Is(err, auth.ErrUserExists):
		log.WithField("username", opts.Username).Info("admin user already exists")
		if user, err = findAdmin(ctx, users, opts); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		log.WithFields(logrus.Fields{"id": user.ID, "username": user.Username, "email": user.Email}).
			Info("admin user created")
	}

	_, err = workshopService.Get(ctx, user.ID)
	if err == nil {
		log.Info("workshop info already exists")
		return nil
	}
	if !errors.Is(err, workshop.ErrNotFound) {
		return err
	}

	info, err := workshopService.Update(ctx, user.ID, defaultWorkshop())
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"id": info.ID, "name": info.Name}).Info("workshop info created")
	return nil
}

func verifyAdmin(ctx context.Context, db *gorm.DB, log logrus.FieldLogger, opts options) error {
	user, err := findAdmin(ctx, repository.NewUserRepository(db), opts)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("admin user not found")
	}
	if err != nil {
		return err
	}

	info, err := repository.NewWorkshopRepository(db).GetByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	entry := log.WithFields(logrus.Fields{
		"id":                user.ID,
		"username":          user.Username,
		"email":             user.Email,
		"has_workshop_info": info != nil,
	})
	if info != nil {
		entry = entry.WithFields(logrus.Fields{"workshop_name": info.Name, "tagline": info.Tagline})
	}
	entry.Info("admin user found")
	return nil
}

func findAdmin(ctx context.Context, users *repository.UserRepository, opts options) (*models.User, error) {
	user, err := users.FindByIdentifier(ctx, opts.Username)
	if errors.Is(err, repository.ErrNotFound) && opts.Email != "" {
		return users.FindByIdentifier(ctx, opts.Email)
	}
	return user, err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
