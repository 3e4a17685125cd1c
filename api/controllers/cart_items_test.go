package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cartsvc "github.com/nvelasco/cartify-backend/internal/cart"
	"github.com/nvelasco/cartify-backend/pkg/db/models"
	pkgerrors "github.com/nvelasco/cartify-backend/pkg/errors"
)

func TestCartItemAddSuccess(t *testing.T) {
	var gotInput cartsvc.ItemInput
	svc := stubCartService{
		addItem: func(_ context.Context, cartID int64, input cartsvc.ItemInput) (*models.Cart, error) {
			gotInput = input
			return sampleCart(), nil
		},
	}
	handler := CartItemAdd(svc, nil)

	body := `{"code":"SKU-1","name":"Widget","price":50,"quantity":3}`
	req := httptest.NewRequest(http.MethodPost, "http://cartify.test/api/v1/carts/5/items", strings.NewReader(body))
	req = withURLParams(req, map[string]string{"cartID": "5"})
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if gotInput.Code != "SKU-1" || gotInput.Quantity != 3 {
		t.Fatalf("unexpected input: %+v", gotInput)
	}

	envelope := decodeDocument(t, resp)
	if envelope.Data.Cart == nil || envelope.Data.Cart.TotalPrice != 170 {
		t.Fatalf("expected updated cart, got %+v", envelope.Data.Cart)
	}
	if envelope.Data.Links[0].Rel != "self" || envelope.Data.Links[0].Method != http.MethodPost {
		t.Fatalf("expected add-item self link, got %+v", envelope.Data.Links[0])
	}
}

func TestCartItemAddZeroQuantityAllowed(t *testing.T) {
	svc := stubCartService{cart: sampleCart()}
	handler := CartItemAdd(svc, nil)

	body := `{"code":"SKU-1","name":"Widget","price":50,"quantity":0}`
	req := httptest.NewRequest(http.MethodPost, "http://cartify.test/api/v1/carts/5/items", strings.NewReader(body))
	req = withURLParams(req, map[string]string{"cartID": "5"})
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCartItemAddValidationFailure(t *testing.T) {
	handler := CartItemAdd(stubCartService{cart: sampleCart()}, nil)

	body := `{"code":"SKU-1","price":-1}`
	req := httptest.NewRequest(http.MethodPost, "http://cartify.test/api/v1/carts/5/items", strings.NewReader(body))
	req = withURLParams(req, map[string]string{"cartID": "5"})
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	var payload struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if payload.Error.Code != string(pkgerrors.CodeValidation) {
		t.Fatalf("unexpected code: %s", payload.Error.Code)
	}
	if payload.Error.Details["name"] != "is required" {
		t.Fatalf("expected name detail, got %+v", payload.Error.Details)
	}
}

func TestCartItemAddMissingCart(t *testing.T) {
	svc := stubCartService{
		addItem: func(context.Context, int64, cartsvc.ItemInput) (*models.Cart, error) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart not found")
		},
	}
	handler := CartItemAdd(svc, nil)

	body := `{"code":"SKU-1","name":"Widget","price":50,"quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "http://cartify.test/api/v1/carts/99/items", strings.NewReader(body))
	req = withURLParams(req, map[string]string{"cartID": "99"})
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
	envelope := decodeDocument(t, resp)
	if envelope.Data.Type != nil {
		t.Fatalf("expected null _type")
	}
}

func TestCartItemUpdatePartialBody(t *testing.T) {
	var gotUpdate cartsvc.ItemUpdate
	svc := stubCartService{
		updateItem: func(_ context.Context, cartID, itemID int64, input cartsvc.ItemUpdate) (*models.Cart, error) {
			gotUpdate = input
			return sampleCart(), nil
		},
	}
	handler := CartItemUpdate(svc, nil)

	req := httptest.NewRequest(http.MethodPut, "http://cartify.test/api/v1/carts/5/items/1", strings.NewReader(`{"quantity":7}`))
	req = withURLParams(req, map[string]string{"cartID": "5", "itemID": "1"})
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if gotUpdate.Quantity == nil || *gotUpdate.Quantity != 7 {
		t.Fatalf("expected quantity update, got %+v", gotUpdate)
	}
	if gotUpdate.Code != nil || gotUpdate.Name != nil || gotUpdate.Price != nil {
		t.Fatalf("expected untouched fields to stay nil: %+v", gotUpdate)
	}
}

func TestCartItemUpdateMissingItem(t *testing.T) {
	svc := stubCartService{
		updateItem: func(context.Context, int64, int64, cartsvc.ItemUpdate) (*models.Cart, error) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
		},
	}
	handler := CartItemUpdate(svc, nil)

	req := httptest.NewRequest(http.MethodPut, "http://cartify.test/api/v1/carts/5/items/42", strings.NewReader(`{"quantity":7}`))
	req = withURLParams(req, map[string]string{"cartID": "5", "itemID": "42"})
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
	envelope := decodeDocument(t, resp)
	if envelope.Data.Error != "cart item not found." {
		t.Fatalf("unexpected message: %q", envelope.Data.Error)
	}
}

func TestCartItemDeleteReturnsUpdatedCart(t *testing.T) {
	handler := CartItemDelete(stubCartService{cart: sampleCart()}, nil)

	req := httptest.NewRequest(http.MethodDelete, "http://cartify.test/api/v1/carts/5/items/1", nil)
	req = withURLParams(req, map[string]string{"cartID": "5", "itemID": "1"})
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	envelope := decodeDocument(t, resp)
	if envelope.Data.Type == nil || *envelope.Data.Type != "Cart" {
		t.Fatalf("expected Cart document")
	}
	if envelope.Data.Links[0].Method != http.MethodDelete {
		t.Fatalf("expected delete self link, got %+v", envelope.Data.Links[0])
	}
}

func TestCartItemDeleteAbsentItemStillOK(t *testing.T) {
	// The service treats removing an unknown item as a no-op.
	cart := sampleCart()
	svc := stubCartService{
		removeItem: func(context.Context, int64, int64) (*models.Cart, error) {
			return cart, nil
		},
	}
	handler := CartItemDelete(svc, nil)

	req := httptest.NewRequest(http.MethodDelete, "http://cartify.test/api/v1/carts/5/items/777", nil)
	req = withURLParams(req, map[string]string{"cartID": "5", "itemID": "777"})
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
