package cart

import (
	"context"

	"gorm.io/gorm"

	"github.com/nvelasco/cartify-backend/pkg/db/models"
)

// CartItemStore manages persistent cart items.
type CartItemStore struct {
	db *gorm.DB
}

// NewCartItemStore binds the store to the provided GORM handle.
func NewCartItemStore(db *gorm.DB) *CartItemStore {
	return &CartItemStore{db: db}
}

// WithTx scopes the store to the provided transaction.
func (s *CartItemStore) WithTx(tx *gorm.DB) CartItemRepository {
	if tx == nil {
		return s
	}
	return &CartItemStore{db: tx}
}

// FindByIDAndCart returns the item only when it belongs to the given cart.
// An item id alone is not a valid lookup key.
func (s *CartItemStore) FindByIDAndCart(ctx context.Context, itemID, cartID int64) (*models.CartItem, error) {
	var item models.CartItem
	err := s.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts the provided item.
func (s *CartItemStore) Create(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Save persists field mutations on the item.
func (s *CartItemStore) Save(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes the item row.
func (s *CartItemStore) Delete(ctx context.Context, item *models.CartItem) error {
	return s.db.WithContext(ctx).Delete(item).Error
}
