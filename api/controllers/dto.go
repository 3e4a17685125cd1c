package controllers

import (
	"time"

	"github.com/nvelasco/cartify-backend/pkg/db/models"
)

type cartItemResponse struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Price     int       `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

type cartResponse struct {
	ID         int64              `json:"id"`
	Code       string             `json:"code"`
	TotalPrice int                `json:"totalPrice"`
	Items      []cartItemResponse `json:"items"`
	CreatedAt  time.Time          `json:"createdAt"`
}

func newCartItemResponse(item models.CartItem) cartItemResponse {
	return cartItemResponse{
		ID:        item.ID,
		Code:      item.Code,
		Name:      item.Name,
		Price:     item.Price,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
	}
}

func newCartResponse(cart *models.Cart) cartResponse {
	items := make([]cartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, newCartItemResponse(item))
	}
	return cartResponse{
		ID:         cart.ID,
		Code:       cart.Code,
		TotalPrice: cart.TotalPrice(),
		Items:      items,
		CreatedAt:  cart.CreatedAt,
	}
}

func newCartListResponse(carts []models.Cart) []cartResponse {
	out := make([]cartResponse, 0, len(carts))
	for i := range carts {
		cart := carts[i]
		out = append(out, newCartResponse(&cart))
	}
	return out
}
