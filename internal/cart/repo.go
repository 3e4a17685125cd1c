package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nvelasco/cartify-backend/pkg/db/models"
)

// CartStore encapsulates cart aggregate persistence.
type CartStore struct {
	db *gorm.DB
}

// NewCartStore binds the store to the provided GORM handle.
func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

// WithTx scopes the store to the provided transaction.
func (s *CartStore) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return s
	}
	return &CartStore{db: tx}
}

// Create persists a new empty cart with a freshly generated code.
func (s *CartStore) Create(ctx context.Context) (*models.Cart, error) {
	cart := &models.Cart{
		Code:  uuid.NewString(),
		Items: []models.CartItem{},
	}
	if err := s.db.WithContext(ctx).Create(cart).Error; err != nil {
		return nil, err
	}
	return cart, nil
}

// FindByID returns the cart with its items eagerly loaded in insertion order.
func (s *CartStore) FindByID(ctx context.Context, id int64) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id")
		}).
		Where("id = ?", id).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// ListAll returns every cart with items eagerly loaded.
func (s *CartStore) ListAll(ctx context.Context) ([]models.Cart, error) {
	var carts []models.Cart
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id")
		}).
		Order("carts.id").
		Find(&carts).Error
	if err != nil {
		return nil, err
	}
	return carts, nil
}

// Save persists the cart row. Items are persisted individually through the
// item store, so associations are omitted here.
func (s *CartStore) Save(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	err := s.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(cart).Error
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// Delete removes the cart and all of its items. Items are deleted explicitly
// so the cascade holds on engines where the FK constraint is not enforced.
func (s *CartStore) Delete(ctx context.Context, cart *models.Cart) error {
	if err := s.db.WithContext(ctx).
		Where("cart_id = ?", cart.ID).
		Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(cart).Error
}
