package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrCategoryNameRequired = errors.New("category name is required")
)

// DefaultCategories seeds the quick-pick list on first run. The list grows
// automatically whenever a transaction introduces a label not yet present.
var DefaultCategories = []string{
	"Food",
	"Games",
	"Savings Goal",
	"Gifts",
	"Entertainment",
	"Allowance",
	"Chores",
	"Other",
}

// Category is a single quick-pick label. Removing a category never touches
// transactions already using the label; it only shrinks the pick list.
type Category struct {
	Name      string    `gorm:"type:varchar(50);primary_key" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrCategoryNameRequired
	}
	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}
