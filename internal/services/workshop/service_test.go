package workshop

import (
	"context"
	"io"
	"testing"

	"workshop-invoicing-backend/internal/repository"
	"workshop-invoicing-backend/internal/testutil"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*WorkshopService, uuid.UUID) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "admin", "admin@example.com", "secret")

	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewWorkshopService(repository.NewWorkshopRepository(db), log), user.ID
}

func strPtr(s string) *string { return &s }

func TestGet_NotFound(t *testing.T) {
	svc, userID := newTestService(t)

	_, err := svc.Get(context.Background(), userID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_CreatesOnFirstUse(t *testing.T) {
	svc, userID := newTestService(t)
	ctx := context.Background()

	info, err := svc.Update(ctx, userID, UpdateInput{
		Name:    strPtr("AUTO MASTER"),
		Tagline: strPtr("Denting & Painting"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, info.ID)
	assert.Equal(t, userID, info.UserID)

	got, err := svc.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, info.ID, got.ID)
	assert.Equal(t, "AUTO MASTER", got.Name)
	assert.Equal(t, "Denting & Painting", got.Tagline)
	assert.NotNil(t, got.ServiceList)
	assert.Empty(t, got.ServiceList)
}

func TestUpdate_PartialKeepsOtherFields(t *testing.T) {
	svc, userID := newTestService(t)
	ctx := context.Background()

	services := []string{"Denting", "Painting"}
	_, err := svc.Update(ctx, userID, UpdateInput{
		Name:     strPtr("AUTO MASTER"),
		Phone:    strPtr("0300-0000000"),
		Services: &services,
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, userID, UpdateInput{Phone: strPtr("0311-1111111")})
	require.NoError(t, err)

	got, err := svc.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "AUTO MASTER", got.Name)
	assert.Equal(t, "0311-1111111", got.Phone)
	assert.Equal(t, []string{"Denting", "Painting"}, got.ServiceList)
}

func TestUpdate_ServicesRoundTrip(t *testing.T) {
	svc, userID := newTestService(t)
	ctx := context.Background()

	lists := [][]string{
		{"Denting", "Painting", "Mechanic", "Auto Electrician", "A.C", "Computer Scanning"},
		{`with "quotes"`, "comma, inside", "  padded  "},
		{},
	}
	for _, want := range lists {
		list := want
		_, err := svc.Update(ctx, userID, UpdateInput{Services: &list})
		require.NoError(t, err)

		got, err := svc.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, want, got.ServiceList)
	}
}
