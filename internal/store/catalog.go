package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ndanilkin/minimarket/internal/models"
	"github.com/ndanilkin/minimarket/internal/transport"
)

// CatalogStore does not check seller identity on Patch and Delete; the
// session controller confirms ownership before calling them.
type CatalogStore struct {
	DB *gorm.DB
}

func (s *CatalogStore) Get(ctx context.Context, id uint) (*models.Product, error) {
	var prod models.Product
	if err := s.DB.WithContext(ctx).First(&prod, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &prod, nil
}

func (s *CatalogStore) Create(ctx context.Context, sellerID uint, req transport.CreateProductRequest) (*models.Product, error) {
	image := req.Image
	if image == "" {
		image = models.DefaultProductImage
	}

	prod := models.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       image,
		SellerID:    sellerID,
	}
	if err := s.DB.WithContext(ctx).Create(&prod).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

// Patch merges the set fields. An absent or empty image keeps the prior
// image and falls back to the placeholder only when there is none.
func (s *CatalogStore) Patch(ctx context.Context, id uint, req transport.PatchProductRequest) (*models.Product, error) {
	var prod models.Product
	if err := s.DB.WithContext(ctx).First(&prod, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		prod.Title = *req.Title
	}
	if req.Description != nil {
		prod.Description = *req.Description
	}
	if req.Price != nil {
		prod.Price = *req.Price
	}
	if req.Category != nil {
		prod.Category = *req.Category
	}
	if req.Image != nil && *req.Image != "" {
		prod.Image = *req.Image
	}
	if prod.Image == "" {
		prod.Image = models.DefaultProductImage
	}

	if err := s.DB.WithContext(ctx).Save(&prod).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

// Delete is idempotent: removing an absent product is not an error.
func (s *CatalogStore) Delete(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Delete(&models.Product{}, id).Error
}

func (s *CatalogStore) List(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
