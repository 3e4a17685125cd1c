package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nvelasco/cartify-backend/api/hypermedia"
	"github.com/nvelasco/cartify-backend/api/responses"
	cartsvc "github.com/nvelasco/cartify-backend/internal/cart"
	pkgerrors "github.com/nvelasco/cartify-backend/pkg/errors"
	"github.com/nvelasco/cartify-backend/pkg/logger"
)

// CartCreate handles POST /api/v1/carts.
func CartCreate(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		cart, err := svc.CreateCart(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		links := hypermedia.NewBuilder(r).CartCreatedLinks(cart.ID)
		responses.WriteSuccessStatus(w, http.StatusCreated, hypermedia.CartDocument(links, newCartResponse(cart)))
	}
}

// CartList handles GET /api/v1/carts.
func CartList(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		carts, err := svc.ListCarts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		links := hypermedia.NewBuilder(r).CollectionLinks()
		responses.WriteSuccess(w, hypermedia.CollectionDocument(links, newCartListResponse(carts)))
	}
}

// CartShow handles GET /api/v1/carts/{cartID}.
func CartShow(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
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

		cart, err := svc.GetCart(r.Context(), cartID)
		if err != nil {
			if pkgerrors.IsNotFound(err) {
				writeNotFoundDocument(w, r, "")
				return
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		links := hypermedia.NewBuilder(r).CartLinks(cart.ID)
		responses.WriteSuccess(w, hypermedia.CartDocument(links, newCartResponse(cart)))
	}
}

// CartDelete handles DELETE /api/v1/carts/{cartID}. A successful delete
// responds 204 with no body.
func CartDelete(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
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

		if err := svc.DeleteCart(r.Context(), cartID); err != nil {
			if pkgerrors.IsNotFound(err) {
				writeNotFoundDocument(w, r, "")
				return
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func writeNotFoundDocument(w http.ResponseWriter, r *http.Request, message string) {
	links := hypermedia.NewBuilder(r).BaseLinks()
	responses.WriteSuccessStatus(w, http.StatusNotFound, hypermedia.NotFoundDocument(links, message))
}
