package cart

import (
	"context"

	"gorm.io/gorm"

	"github.com/nvelasco/cartify-backend/pkg/db/models"
)

// TxRunner executes fn inside a storage transaction, rolling back on error.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// CartRepository defines the persistence surface for cart aggregates.
type CartRepository interface {
	WithTx(tx *gorm.DB) CartRepository
	Create(ctx context.Context) (*models.Cart, error)
	FindByID(ctx context.Context, id int64) (*models.Cart, error)
	ListAll(ctx context.Context) ([]models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) (*models.Cart, error)
	Delete(ctx context.Context, cart *models.Cart) error
}

// CartItemRepository defines persistence for single items scoped to a cart.
type CartItemRepository interface {
	WithTx(tx *gorm.DB) CartItemRepository
	FindByIDAndCart(ctx context.Context, itemID, cartID int64) (*models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) (*models.CartItem, error)
	Save(ctx context.Context, item *models.CartItem) (*models.CartItem, error)
	Delete(ctx context.Context, item *models.CartItem) error
}
