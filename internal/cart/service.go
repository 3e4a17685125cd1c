package cart

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/nvelasco/cartify-backend/pkg/db"
	"github.com/nvelasco/cartify-backend/pkg/db/models"
	pkgerrors "github.com/nvelasco/cartify-backend/pkg/errors"
	"github.com/nvelasco/cartify-backend/pkg/logger"
)

// Service exposes the transactional cart use-cases consumed by the API layer.
type Service interface {
	CreateCart(ctx context.Context) (*models.Cart, error)
	GetCart(ctx context.Context, id int64) (*models.Cart, error)
	ListCarts(ctx context.Context) ([]models.Cart, error)
	DeleteCart(ctx context.Context, id int64) error
	AddItem(ctx context.Context, cartID int64, input ItemInput) (*models.Cart, error)
	UpdateItem(ctx context.Context, cartID, itemID int64, input ItemUpdate) (*models.Cart, error)
	RemoveItem(ctx context.Context, cartID, itemID int64) (*models.Cart, error)
}

// ItemInput carries pre-validated field values for a new item.
type ItemInput struct {
	Code     string
	Name     string
	Price    int
	Quantity int
}

// ItemUpdate carries partial field updates; nil fields stay untouched.
type ItemUpdate struct {
	Code     *string
	Name     *string
	Price    *int
	Quantity *int
}

type service struct {
	carts CartRepository
	items CartItemRepository
	tx    TxRunner
	logg  *logger.Logger
}

// NewService builds a cart service backed by the provided stack.
func NewService(carts CartRepository, items CartItemRepository, tx TxRunner, logg *logger.Logger) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if items == nil {
		return nil, fmt.Errorf("cart item repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{
		carts: carts,
		items: items,
		tx:    tx,
		logg:  logg,
	}, nil
}

func (s *service) CreateCart(ctx context.Context) (*models.Cart, error) {
	cart, err := s.carts.Create(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "creating cart")
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithCartID(ctx, cart.ID), "cart created")
	}
	return cart, nil
}

func (s *service) GetCart(ctx context.Context, id int64) (*models.Cart, error) {
	cart, err := s.carts.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "loading cart")
	}
	return cart, nil
}

func (s *service) ListCarts(ctx context.Context) ([]models.Cart, error) {
	carts, err := s.carts.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "listing carts")
	}
	return carts, nil
}

func (s *service) DeleteCart(ctx context.Context, id int64) error {
	cart, err := s.GetCart(ctx, id)
	if err != nil {
		return err
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.carts.WithTx(tx).Delete(ctx, cart)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "deleting cart")
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithCartID(ctx, id), "cart deleted")
	}
	return nil
}

func (s *service) AddItem(ctx context.Context, cartID int64, input ItemInput) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	item := &models.CartItem{
		CartID:   cart.ID,
		Code:     input.Code,
		Name:     input.Name,
		Price:    input.Price,
		Quantity: input.Quantity,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if _, err := s.items.WithTx(tx).Create(ctx, item); err != nil {
			return err
		}
		cart.AddItem(item)
		_, err := s.carts.WithTx(tx).Save(ctx, cart)
		return err
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "adding cart item")
	}
	return s.GetCart(ctx, cartID)
}

func (s *service) UpdateItem(ctx context.Context, cartID, itemID int64, input ItemUpdate) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.FindByIDAndCart(ctx, itemID, cartID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "loading cart item")
	}

	if input.Code != nil {
		item.Code = *input.Code
	}
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if _, err := s.items.WithTx(tx).Save(ctx, item); err != nil {
			return err
		}
		_, err := s.carts.WithTx(tx).Save(ctx, cart)
		return err
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "updating cart item")
	}
	return s.GetCart(ctx, cartID)
}

func (s *service) RemoveItem(ctx context.Context, cartID, itemID int64) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.FindByIDAndCart(ctx, itemID, cartID)
	if err != nil {
		if db.IsNotFound(err) {
			// removing an absent item leaves the cart untouched
			return cart, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "loading cart item")
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		cart.RemoveItem(item)
		if err := s.items.WithTx(tx).Delete(ctx, item); err != nil {
			return err
		}
		_, err := s.carts.WithTx(tx).Save(ctx, cart)
		return err
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "removing cart item")
	}
	return s.GetCart(ctx, cartID)
}
