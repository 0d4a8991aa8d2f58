package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndanilkin/minimarket/internal/models"
	"github.com/ndanilkin/minimarket/internal/store"
)

func TestLoad_MissingFileIsEmptyStart(t *testing.T) {
	t.Parallel()

	db, err := store.Open()
	require.NoError(t, err)
	accounts := &store.AccountStore{DB: db}
	catalog := &store.CatalogStore{DB: db}

	err = Load(context.Background(), accounts, catalog, filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	items, err := catalog.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoad_UsersAndProducts(t *testing.T) {
	t.Parallel()

	db, err := store.Open()
	require.NoError(t, err)
	accounts := &store.AccountStore{DB: db}
	catalog := &store.CatalogStore{DB: db}

	path := filepath.Join(t.TempDir(), "seed.json")
	payload := `{
		"users": [
			{"email": "a@x.com", "password": "pw", "username": "alice"},
			{"email": "b@x.com", "password": "pw", "username": "bob"}
		],
		"products": [
			{"title": "Chair", "price": 10, "category": "Furniture", "seller_email": "a@x.com"},
			{"title": "Lamp", "price": 5, "image": "/images/lamp.jpg", "seller_email": "b@x.com"},
			{"title": "Orphan", "price": 1, "seller_email": "ghost@x.com"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	ctx := context.Background()
	require.NoError(t, Load(ctx, accounts, catalog, path))

	alice, err := accounts.FindByCredentials(ctx, "a@x.com", "pw")
	require.NoError(t, err)

	items, err := catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2, "product with unknown seller is skipped")

	assert.Equal(t, "Chair", items[0].Title)
	assert.Equal(t, alice.ID, items[0].SellerID)
	assert.Equal(t, models.DefaultProductImage, items[0].Image)
	assert.Equal(t, "/images/lamp.jpg", items[1].Image)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Parallel()

	db, err := store.Open()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	err = Load(context.Background(), &store.AccountStore{DB: db}, &store.CatalogStore{DB: db}, path)
	require.Error(t, err)
}
