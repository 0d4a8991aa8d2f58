package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ndanilkin/minimarket/internal/models"
)

// Ledger is the append-only record of completed purchases. It is
// process-global: history accumulates across sign-ins.
type Ledger struct {
	DB *gorm.DB
}

// Checkout snapshots every given product into a purchase record, all
// stamped with the same checkout time, in the given order.
func (l *Ledger) Checkout(ctx context.Context, buyerID uint, items []models.Product) ([]models.Purchase, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	now := time.Now()
	purchases := make([]models.Purchase, 0, len(items))
	for _, p := range items {
		purchases = append(purchases, models.Purchase{
			ProductID:   p.ID,
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price,
			Category:    p.Category,
			Image:       p.Image,
			SellerID:    p.SellerID,
			BuyerID:     buyerID,
			PurchasedAt: now,
		})
	}

	if err := l.DB.WithContext(ctx).Create(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

func (l *Ledger) History(ctx context.Context) ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := l.DB.WithContext(ctx).Order("id ASC").Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}
