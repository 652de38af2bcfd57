package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raasdandiya/checkout/internal/adapter/store/memory"
	"github.com/raasdandiya/checkout/internal/core/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	sess := domain.NewWizardSession("s1")
	sess.BookingID = "b-42"
	sess.Step = domain.StepContact

	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestStore_GetMissing(t *testing.T) {
	store := memory.New()

	_, err := store.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_Delete(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.NewWizardSession("s1")))
	require.NoError(t, store.Delete(ctx, "s1"))

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_DeleteExpired(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	stale := domain.NewWizardSession("stale")
	stale.UpdatedAt = time.Now().Add(-1 * time.Hour)
	require.NoError(t, store.Save(ctx, stale))

	fresh := domain.NewWizardSession("fresh")
	require.NoError(t, store.Save(ctx, fresh))

	removed, err := store.DeleteExpired(ctx, time.Now().Add(-30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = store.Get(ctx, "stale")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = store.Get(ctx, "fresh")
	assert.NoError(t, err)
}
