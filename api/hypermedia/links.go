// Package hypermedia builds the _type/_links documents returned by the
// cart API. Link construction is presentation-only and stays out of the
// domain layer.
package hypermedia

import (
	"fmt"
	"net/http"
)

// Link is a single hypermedia affordance.
type Link struct {
	Href   string `json:"href"`
	Method string `json:"method"`
	Rel    string `json:"rel"`
	Title  string `json:"title"`
}

// Document is the response shape shared by all cart endpoints. Type is a
// pointer so not-found documents can render `"_type": null`.
type Document struct {
	Type  *string `json:"_type"`
	Links []Link  `json:"_links"`
	Cart  any     `json:"cart,omitempty"`
	Items any     `json:"items,omitempty"`
	Error string  `json:"error,omitempty"`
}

const (
	TypeCart           = "Cart"
	TypeCartCollection = "CartCollection"

	cartsPath = "/api/v1/carts"
)

// Builder renders absolute hrefs rooted at the request's scheme and host.
type Builder struct {
	base string
}

func NewBuilder(r *http.Request) *Builder {
	scheme := "http"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS != nil {
		scheme = "https"
	}
	return &Builder{base: scheme + "://" + r.Host}
}

func (b *Builder) cartsURL() string {
	return b.base + cartsPath
}

func (b *Builder) cartURL(cartID int64) string {
	return fmt.Sprintf("%s/%d", b.cartsURL(), cartID)
}

func (b *Builder) itemsURL(cartID int64) string {
	return b.cartURL(cartID) + "/items"
}

func (b *Builder) itemURL(cartID, itemID int64) string {
	return fmt.Sprintf("%s/%d", b.itemsURL(cartID), itemID)
}

func (b *Builder) listCartsLink(rel, title string) Link {
	return Link{Href: b.cartsURL(), Method: http.MethodGet, Rel: rel, Title: title}
}

func (b *Builder) createCartLink(rel, title string) Link {
	return Link{Href: b.cartsURL(), Method: http.MethodPost, Rel: rel, Title: title}
}

func (b *Builder) showCartLink(cartID int64, rel, title string) Link {
	return Link{Href: b.cartURL(cartID), Method: http.MethodGet, Rel: rel, Title: title}
}

func (b *Builder) deleteCartLink(cartID int64, rel, title string) Link {
	return Link{Href: b.cartURL(cartID), Method: http.MethodDelete, Rel: rel, Title: title}
}

func (b *Builder) addItemLink(cartID int64, rel, title string) Link {
	return Link{Href: b.itemsURL(cartID), Method: http.MethodPost, Rel: rel, Title: title}
}

// BaseLinks is the fallback link set used on not-found documents and
// anywhere no concrete cart exists.
func (b *Builder) BaseLinks() []Link {
	return []Link{
		b.listCartsLink("carts", "All Carts"),
		b.createCartLink("new-cart", "Add Cart"),
	}
}

// CartCreatedLinks covers a freshly created cart.
func (b *Builder) CartCreatedLinks(cartID int64) []Link {
	return []Link{
		b.createCartLink("self", "New Cart"),
		b.showCartLink(cartID, "cart", "Show Cart"),
		b.listCartsLink("carts", "All Carts"),
		b.deleteCartLink(cartID, "cart-delete", "Delete Cart"),
		b.addItemLink(cartID, "item-add", "Add Item"),
	}
}

// CartLinks covers a shown cart.
func (b *Builder) CartLinks(cartID int64) []Link {
	return []Link{
		b.showCartLink(cartID, "self", "Cart"),
		b.deleteCartLink(cartID, "cart-delete", "Delete Cart"),
		b.listCartsLink("carts", "All Carts"),
	}
}

// CollectionLinks covers the cart list.
func (b *Builder) CollectionLinks() []Link {
	return []Link{
		b.listCartsLink("self", "Carts"),
		b.createCartLink("new-cart", "New Cart"),
	}
}

// ItemAddedLinks covers a cart returned after an item was appended.
func (b *Builder) ItemAddedLinks(cartID int64) []Link {
	return []Link{
		b.addItemLink(cartID, "self", "Add Item"),
		b.showCartLink(cartID, "cart", "Show Cart"),
		b.deleteCartLink(cartID, "cart-delete", "Delete Cart"),
		b.listCartsLink("carts", "All Carts"),
	}
}

// ItemLinks covers a cart returned after an item update or removal.
func (b *Builder) ItemLinks(cartID, itemID int64, selfMethod, selfTitle string) []Link {
	links := []Link{
		{Href: b.itemURL(cartID, itemID), Method: selfMethod, Rel: "self", Title: selfTitle},
	}
	if selfMethod != http.MethodDelete {
		links = append(links, Link{Href: b.itemURL(cartID, itemID), Method: http.MethodDelete, Rel: "item-delete", Title: "Delete Item"})
	}
	return append(links,
		b.addItemLink(cartID, "item-add", "Add Item"),
		b.showCartLink(cartID, "cart", "Show Cart"),
		b.deleteCartLink(cartID, "cart-delete", "Delete Cart"),
		b.listCartsLink("carts", "All Carts"),
	)
}

// CartDocument wraps a cart payload.
func CartDocument(links []Link, cart any) Document {
	typ := TypeCart
	return Document{Type: &typ, Links: links, Cart: cart}
}

// CollectionDocument wraps the cart list payload.
func CollectionDocument(links []Link, items any) Document {
	typ := TypeCartCollection
	return Document{Type: &typ, Links: links, Items: items}
}

// NotFoundDocument renders `"_type": null` with the base affordances and
// an optional message.
func NotFoundDocument(links []Link, message string) Document {
	return Document{Type: nil, Links: links, Error: message}
}
