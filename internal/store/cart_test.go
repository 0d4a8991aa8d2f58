package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ndanilkin/minimarket/internal/models"
	"github.com/ndanilkin/minimarket/internal/transport"
)

func seedProducts(t *testing.T, db *gorm.DB, titles ...string) []models.Product {
	t.Helper()
	catalog := &CatalogStore{DB: db}
	out := make([]models.Product, 0, len(titles))
	for _, title := range titles {
		prod, err := catalog.Create(context.Background(), 1, transport.CreateProductRequest{Title: title, Price: 1})
		require.NoError(t, err)
		out = append(out, *prod)
	}
	return out
}

func TestCartStore_Add_Idempotent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	cart := &CartStore{DB: db}
	ctx := context.Background()
	prods := seedProducts(t, db, "Chair")

	require.NoError(t, cart.Add(ctx, prods[0].ID))
	require.NoError(t, cart.Add(ctx, prods[0].ID))

	items, err := cart.Contents(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, prods[0].ID, items[0].ID)
}

func TestCartStore_Contents_AddOrder(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	cart := &CartStore{DB: db}
	ctx := context.Background()
	prods := seedProducts(t, db, "Chair", "Lamp", "Desk")

	// Added in reverse of catalog order; contents follow add order.
	require.NoError(t, cart.Add(ctx, prods[2].ID))
	require.NoError(t, cart.Add(ctx, prods[0].ID))
	require.NoError(t, cart.Add(ctx, prods[1].ID))

	items, err := cart.Contents(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Desk", items[0].Title)
	assert.Equal(t, "Chair", items[1].Title)
	assert.Equal(t, "Lamp", items[2].Title)
}

func TestCartStore_Remove_AbsentIsNoOp(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	cart := &CartStore{DB: db}
	ctx := context.Background()
	prods := seedProducts(t, db, "Chair")

	require.NoError(t, cart.Add(ctx, prods[0].ID))
	require.NoError(t, cart.Remove(ctx, 999))

	items, err := cart.Contents(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, cart.Remove(ctx, prods[0].ID))
	items, err = cart.Contents(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartStore_Clear(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	cart := &CartStore{DB: db}
	ctx := context.Background()
	prods := seedProducts(t, db, "Chair", "Lamp")

	for _, p := range prods {
		require.NoError(t, cart.Add(ctx, p.ID))
	}
	require.NoError(t, cart.Clear(ctx))

	items, err := cart.Contents(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
