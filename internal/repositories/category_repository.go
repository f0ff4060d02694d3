package repositories

import (
	"errors"
	"fmt"
	"strings"

	"money-monitor/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

// GetAll retrieves the quick-pick list in creation order
func (r *categoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("created_at ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// Ensure inserts the label if it is not already present. The list is a
// set keyed by label equality; duplicates are never created.
func (r *categoryRepository) Ensure(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.ErrCategoryNameRequired
	}

	var existing models.Category
	err := r.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check category: %w", err)
	}

	if err := r.db.Create(&models.Category{Name: name}).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Delete removes the label from the quick-pick list. Transactions already
// using the label are left untouched.
func (r *categoryRepository) Delete(name string) error {
	result := r.db.Delete(&models.Category{Name: name})
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
