package services

import (
	"context"

	"gorm.io/gorm"

	"boba-pos/models"
)

type CatalogService interface {
	ListMenu(ctx context.Context) ([]models.MenuItem, error)
	ListInventory(ctx context.Context) ([]models.InventoryItem, error)
}

type catalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) CatalogService {
	return &catalogService{db: db}
}

func (s *catalogService) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.WithContext(ctx).Order("category, name").Find(&items).Error
	return items, err
}

func (s *catalogService) ListInventory(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := s.db.WithContext(ctx).Order("name").Find(&items).Error
	return items, err
}
