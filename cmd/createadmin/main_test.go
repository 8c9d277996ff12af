package main

import (
	"context"
	"io"
	"testing"

	"workshop-invoicing-backend/internal/models"
	"workshop-invoicing-backend/internal/repository"
	"workshop-invoicing-backend/internal/testutil"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	opts := options{Username: "admin", Email: "owner@example.com", Password: "long-enough"}

	require.NoError(t, ensureAdmin(ctx, db, quietLogger(), opts))
	require.NoError(t, ensureAdmin(ctx, db, quietLogger(), opts))

	var users, infos int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.WorkshopInfo{}).Count(&infos).Error)
	assert.EqualValues(t, 1, users)
	assert.EqualValues(t, 1, infos)

	user, err := repository.NewUserRepository(db).FindByIdentifier(ctx, "admin")
	require.NoError(t, err)
	info, err := repository.NewWorkshopRepository(db).GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "AUTO MASTER", info.Name)
	assert.Contains(t, info.ServiceList, "Auto Electrician")

	require.NoError(t, verifyAdmin(ctx, db, quietLogger(), opts))
}

func TestEnsureAdmin_KeepsExistingWorkshopInfo(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, db, "admin", "owner@example.com", "long-enough")

	repo := repository.NewWorkshopRepository(db)
	require.NoError(t, repo.Save(ctx, &models.WorkshopInfo{ID: uuid.New(), UserID: user.ID, Name: "Custom"}))

	require.NoError(t, ensureAdmin(ctx, db, quietLogger(), options{Username: "admin", Email: "owner@example.com", Password: "long-enough"}))

	info, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Custom", info.Name)
}

func TestVerifyAdmin_Missing(t *testing.T) {
	db := testutil.NewDB(t)

	err := verifyAdmin(context.Background(), db, quietLogger(), options{Username: "admin"})
	assert.ErrorContains(t, err, "admin user not found")
}
