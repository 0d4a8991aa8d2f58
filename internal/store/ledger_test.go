package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_Checkout_SnapshotsInCartOrder(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ledger := &Ledger{DB: db}
	ctx := context.Background()
	prods := seedProducts(t, db, "Chair", "Lamp")

	purchases, err := ledger.Checkout(ctx, 3, prods)
	require.NoError(t, err)
	require.Len(t, purchases, 2)

	assert.Equal(t, "Chair", purchases[0].Title)
	assert.Equal(t, "Lamp", purchases[1].Title)
	assert.Equal(t, prods[0].ID, purchases[0].ProductID)
	assert.Equal(t, uint(3), purchases[0].BuyerID)
	assert.Equal(t, purchases[0].PurchasedAt, purchases[1].PurchasedAt)
	assert.False(t, purchases[0].PurchasedAt.IsZero())
}

func TestLedger_Checkout_EmptyCart(t *testing.T) {
	t.Parallel()

	ledger := &Ledger{DB: newTestDB(t)}

	_, err := ledger.Checkout(context.Background(), 1, nil)
	require.ErrorIs(t, err, ErrEmptyCart)

	history, err := ledger.History(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestLedger_History_AppendOnlyAcrossCheckouts(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ledger := &Ledger{DB: db}
	ctx := context.Background()
	prods := seedProducts(t, db, "Chair", "Lamp", "Desk")

	_, err := ledger.Checkout(ctx, 1, prods[:1])
	require.NoError(t, err)
	_, err = ledger.Checkout(ctx, 2, prods[1:])
	require.NoError(t, err)

	history, err := ledger.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "Chair", history[0].Title)
	assert.Equal(t, "Lamp", history[1].Title)
	assert.Equal(t, "Desk", history[2].Title)
}
