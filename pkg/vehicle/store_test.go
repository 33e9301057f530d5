package vehicle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Get before Put returns nil", func(t *testing.T) {
		store := NewMemoryStore()

		record, err := store.Get(ctx, "session-1")

		assert.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("Put then Get returns the record", func(t *testing.T) {
		store := NewMemoryStore()
		stored := Record{Color: "Red", LicensePlate: "ABC123", ReceiveNotifications: true}

		assert.NoError(t, store.Put(ctx, "session-1", stored))
		record, err := store.Get(ctx, "session-1")

		assert.NoError(t, err)
		assert.Equal(t, &stored, record)
	})

	t.Run("second Put overwrites the slot", func(t *testing.T) {
		store := NewMemoryStore()

		assert.NoError(t, store.Put(ctx, "session-1", Record{Color: "Red", LicensePlate: "ABC123"}))
		assert.NoError(t, store.Put(ctx, "session-1", Record{Color: "Blue", LicensePlate: "XYZ789"}))
		record, err := store.Get(ctx, "session-1")

		assert.NoError(t, err)
		assert.Equal(t, "Blue", record.Color)
		assert.Equal(t, "XYZ789", record.LicensePlate)
	})

	t.Run("slots are isolated per session", func(t *testing.T) {
		store := NewMemoryStore()

		assert.NoError(t, store.Put(ctx, "session-1", Record{Color: "Red"}))
		record, err := store.Get(ctx, "session-2")

		assert.NoError(t, err)
		assert.Nil(t, record)
	})
}
