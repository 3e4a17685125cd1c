package controllers

import (
	"net/http"

	"github.com/nvelasco/cartify-backend/api/hypermedia"
	"github.com/nvelasco/cartify-backend/api/responses"
	"github.com/nvelasco/cartify-backend/api/validators"
	cartsvc "github.com/nvelasco/cartify-backend/internal/cart"
	pkgerrors "github.com/nvelasco/cartify-backend/pkg/errors"
	"github.com/nvelasco/cartify-backend/pkg/logger"
)

type addItemRequest struct {
	Code     string `json:"code" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Price    int    `json:"price" validate:"required,gt=0"`
	Quantity *int   `json:"quantity" validate:"required,gte=0"`
}

type updateItemRequest struct {
	Code     *string `json:"code"`
	Name     *string `json:"name"`
	Price    *int    `json:"price" validate:"omitempty,gt=0"`
	Quantity *int    `json:"quantity" validate:"omitempty,gte=0"`
}

// CartItemAdd handles POST /api/v1/carts/{cartID}/items.
func CartItemAdd(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		cartID, err := pathID(r, "cartID")
		if err != nil {
			writeNotFoundDocument(w, r, "")
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.AddItem(r.Context(), cartID, cartsvc.ItemInput{
			Code:     payload.Code,
			Name:     payload.Name,
			Price:    payload.Price,
			Quantity: *payload.Quantity,
		})
		if err != nil {
			if pkgerrors.IsNotFound(err) {
				writeNotFoundDocument(w, r, "")
				return
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		links := hypermedia.NewBuilder(r).ItemAddedLinks(cart.ID)
		responses.WriteSuccessStatus(w, http.StatusCreated, hypermedia.CartDocument(links, newCartResponse(cart)))
	}
}

// CartItemUpdate handles PUT /api/v1/carts/{cartID}/items/{itemID}.
// Absent body fields leave the item's values untouched.
func CartItemUpdate(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		cartID, err := pathID(r, "cartID")
		if err != nil {
			writeNotFoundDocument(w, r, "Cart not found.")
			return
		}
		itemID, err := pathID(r, "itemID")
		if err != nil {
			writeNotFoundDocument(w, r, "Cart item not found.")
			return
		}

		var payload updateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.UpdateItem(r.Context(), cartID, itemID, cartsvc.ItemUpdate{
			Code:     payload.Code,
			Name:     payload.Name,
			Price:    payload.Price,
			Quantity: payload.Quantity,
		})
		if err != nil {
			if pkgerrors.IsNotFound(err) {
				writeNotFoundDocument(w, r, notFoundMessage(err))
				return
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		links := hypermedia.NewBuilder(r).ItemLinks(cart.ID, itemID, http.MethodPut, "Update Item")
		responses.WriteSuccess(w, hypermedia.CartDocument(links, newCartResponse(cart)))
	}
}

// CartItemDelete handles DELETE /api/v1/carts/{cartID}/items/{itemID}.
// Deleting an item the cart does not hold returns the cart unchanged.
func CartItemDelete(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		cartID, err := pathID(r, "cartID")
		if err != nil {
			writeNotFoundDocument(w, r, "Cart not found.")
			return
		}
		itemID, err := pathID(r, "itemID")
		if err != nil {
			writeNotFoundDocument(w, r, "Cart not found.")
			return
		}

		cart, err := svc.RemoveItem(r.Context(), cartID, itemID)
		if err != nil {
			if pkgerrors.IsNotFound(err) {
				writeNotFoundDocument(w, r, "Cart not found.")
				return
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		links := hypermedia.NewBuilder(r).ItemLinks(cart.ID, itemID, http.MethodDelete, "Delete Item")
		responses.WriteSuccess(w, hypermedia.CartDocument(links, newCartResponse(cart)))
	}
}

func notFoundMessage(err error) string {
	if typed := pkgerrors.As(err); typed != nil && typed.Message() != "" {
		return typed.Message() + "."
	}
	return ""
}
