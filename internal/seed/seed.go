package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ndanilkin/minimarket/internal/logging"
	"github.com/ndanilkin/minimarket/internal/store"
	"github.com/ndanilkin/minimarket/internal/transport"
)

// Data is the shape of the seed file: the initial accounts and listings
// loaded once at process start.
type Data struct {
	Users    []User    `json:"users"`
	Products []Product `json:"products"`
}

type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type Product struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	SellerEmail string  `json:"seller_email"`
}

// Load feeds the seed file through the stores. A missing file means an
// empty marketplace, not a failure. Products whose seller email matches
// no seeded user are skipped, keeping the seller invariant intact.
func Load(ctx context.Context, accounts *store.AccountStore, catalog *store.CatalogStore, path string) error {
	l := logging.FromContext(ctx).With("svc", "seed", "path", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.Info("seed_skipped", "reason", "file not found")
			return nil
		}
		return fmt.Errorf("read seed file: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	sellers := make(map[string]uint, len(data.Users))
	for _, u := range data.Users {
		user, err := accounts.Register(ctx, u.Email, u.Password, u.Username)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", u.Email, err)
		}
		sellers[user.Email] = user.ID
	}

	for _, p := range data.Products {
		sellerID, found := sellers[p.SellerEmail]
		if !found {
			l.Warn("seed_product_skipped", "title", p.Title, "seller_email", p.SellerEmail)
			continue
		}
		req := transport.CreateProductRequest{
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price,
			Category:    p.Category,
			Image:       p.Image,
		}
		if _, err := catalog.Create(ctx, sellerID, req); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Title, err)
		}
	}

	l.Info("seed_loaded", "users", len(data.Users), "products", len(data.Products))
	return nil
}
