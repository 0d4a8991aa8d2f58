package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ndanilkin/minimarket/internal/models"
)

// CartStore holds the active session's cart: an ordered set of products
// keyed by product id.
type CartStore struct {
	DB *gorm.DB
}

// Add inserts the product unless it is already in the cart.
func (s *CartStore) Add(ctx context.Context, productID uint) error {
	var item models.CartItem
	err := s.DB.WithContext(ctx).Where("product_id = ?", productID).First(&item).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.DB.WithContext(ctx).Create(&models.CartItem{ProductID: productID}).Error
}

// Remove drops the entry; an absent entry is a no-op.
func (s *CartStore) Remove(ctx context.Context, productID uint) error {
	return s.DB.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&models.CartItem{}).Error
}

func (s *CartStore) Clear(ctx context.Context) error {
	return s.DB.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.CartItem{}).Error
}

// Contents returns the held products in the order they were added.
func (s *CartStore) Contents(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	err := s.DB.WithContext(ctx).
		Model(&models.Product{}).
		Joins("JOIN cart_items ON cart_items.product_id = products.id").
		Order("cart_items.id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
