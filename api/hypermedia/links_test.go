package hypermedia

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderUsesRequestHost(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "http://cartify.test/api/v1/carts", nil)
	b := NewBuilder(req)

	links := b.CartLinks(7)
	require.Len(t, links, 3)
	assert.Equal(t, "http://cartify.test/api/v1/carts/7", links[0].Href)
	assert.Equal(t, "GET", links[0].Method)
	assert.Equal(t, "self", links[0].Rel)
	assert.Equal(t, "http://cartify.test/api/v1/carts", links[2].Href)
}

func TestBuilderHonorsForwardedProto(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "http://cartify.test/api/v1/carts", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	b := NewBuilder(req)

	links := b.BaseLinks()
	require.Len(t, links, 2)
	assert.Equal(t, "https://cartify.test/api/v1/carts", links[0].Href)
}

func TestCartCreatedLinksAffordances(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("POST", "http://cartify.test/api/v1/carts", nil)
	links := NewBuilder(req).CartCreatedLinks(3)

	rels := make([]string, 0, len(links))
	for _, l := range links {
		rels = append(rels, l.Rel)
	}
	assert.Equal(t, []string{"self", "cart", "carts", "cart-delete", "item-add"}, rels)
	assert.Equal(t, "http://cartify.test/api/v1/carts/3/items", links[4].Href)
	assert.Equal(t, "POST", links[4].Method)
}

func TestItemLinksOmitDuplicateDeleteWhenSelfIsDelete(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("DELETE", "http://cartify.test/api/v1/carts/3/items/9", nil)
	b := NewBuilder(req)

	deleteLinks := b.ItemLinks(3, 9, "DELETE", "Delete Item")
	for _, l := range deleteLinks[1:] {
		assert.NotEqual(t, "item-delete", l.Rel)
	}

	updateLinks := b.ItemLinks(3, 9, "PUT", "Update Item")
	assert.Equal(t, "item-delete", updateLinks[1].Rel)
	assert.Equal(t, "http://cartify.test/api/v1/carts/3/items/9", updateLinks[1].Href)
}

func TestNotFoundDocumentRendersNullType(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "http://cartify.test/api/v1/carts/99", nil)
	doc := NotFoundDocument(NewBuilder(req).BaseLinks(), "cart not found")

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	val, present := decoded["_type"]
	require.True(t, present)
	assert.Nil(t, val)
	assert.Equal(t, "cart not found", decoded["error"])
	assert.NotContains(t, decoded, "cart")
}

func TestCartDocumentShape(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "http://cartify.test/api/v1/carts/1", nil)
	doc := CartDocument(NewBuilder(req).CartLinks(1), map[string]any{"id": 1})

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, TypeCart, decoded["_type"])
	assert.NotEmpty(t, decoded["_links"])
	assert.NotNil(t, decoded["cart"])
}
