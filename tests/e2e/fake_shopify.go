//go:build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"frame-pricing/tests/common/dbtest"
)

// FakeShopify answers the admin GraphQL operations the gateway sends and
// keeps an in-memory catalog of created products.
type FakeShopify struct {
	server *httptest.Server

	mu        sync.Mutex
	nextID    int
	products  map[string]string // legacy id -> title
	created   int
	deleted   []string
	failOnDel map[string]bool
}

func NewFakeShopify(t *testing.T) *FakeShopify {
	t.Helper()

	f := &FakeShopify{}
	f.Reset()
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *FakeShopify) URL() string {
	return f.server.URL
}

func (f *FakeShopify) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID = 7000
	f.products = make(map[string]string)
	f.created = 0
	f.deleted = nil
	f.failOnDel = make(map[string]bool)
}

// Seed registers an existing product so a later delete succeeds.
func (f *FakeShopify) Seed(productID, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[productID] = title
}

func (f *FakeShopify) FailDelete(productID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failOnDel[productID] = true
}

func (f *FakeShopify) CreatedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.created
}

func (f *FakeShopify) Deleted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

func (f *FakeShopify) Has(productID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.products[productID]
	return ok
}

type fakeRequest struct {
	Query     string          `json:"query"`
	Variables json.RawMessage `json:"variables"`
}

func (f *FakeShopify) handle(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("X-Shopify-Access-Token") != dbtest.TestAccessToken {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req fakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var data any
	switch {
	case strings.Contains(req.Query, "createTempProduct"):
		data = f.create(req.Variables)
	case strings.Contains(req.Query, "query publications"):
		data = map[string]any{"publications": map[string]any{"nodes": []map[string]any{
			{"id": "gid://shopify/Publication/1", "name": "Online Store"},
		}}}
	case strings.Contains(req.Query, "publishTempProduct"):
		data = f.publish(req.Variables)
	case strings.Contains(req.Query, "deleteTempProduct"):
		data = f.delete(req.Variables)
	default:
		writeJSON(w, map[string]any{"errors": []map[string]any{{"message": "unknown operation"}}})
		return
	}
	writeJSON(w, map[string]any{"data": data})
}

func (f *FakeShopify) create(raw json.RawMessage) any {
	var vars struct {
		Input struct {
			Title    string `json:"title"`
			Variants []struct {
				Price string `json:"price"`
			} `json:"variants"`
		} `json:"input"`
	}
	_ = json.Unmarshal(raw, &vars)

	f.mu.Lock()
	f.nextID++
	id := fmt.Sprintf("%d", f.nextID)
	f.products[id] = vars.Input.Title
	f.created++
	f.mu.Unlock()

	price := ""
	if len(vars.Input.Variants) > 0 {
		price = vars.Input.Variants[0].Price
	}
	return map[string]any{"productSet": map[string]any{
		"product": map[string]any{
			"id":     "gid://shopify/Product/" + id,
			"title":  vars.Input.Title,
			"handle": "custom-frame-" + id,
			"variants": map[string]any{"nodes": []map[string]any{
				{"id": "gid://shopify/ProductVariant/9" + id, "price": price},
			}},
		},
		"userErrors": []any{},
	}}
}

func (f *FakeShopify) publish(raw json.RawMessage) any {
	var vars struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(raw, &vars)
	handle := "custom-frame-" + vars.ID[strings.LastIndex(vars.ID, "/")+1:]
	return map[string]any{"publishablePublish": map[string]any{
		"publishable": map[string]any{"onlineStoreUrl": "https://" + dbtest.TestShop + "/products/" + handle},
		"userErrors":  []any{},
	}}
}

func (f *FakeShopify) delete(raw json.RawMessage) any {
	var vars struct {
		Input struct {
			ID string `json:"id"`
		} `json:"input"`
	}
	_ = json.Unmarshal(raw, &vars)
	id := vars.Input.ID[strings.LastIndex(vars.Input.ID, "/")+1:]

	f.mu.Lock()
	defer f.mu.Unlock()
	_, exists := f.products[id]
	if f.failOnDel[id] || !exists {
		return map[string]any{"productDelete": map[string]any{
			"deletedProductId": nil,
			"userErrors":       []map[string]any{{"field": []string{"id"}, "message": "Product does not exist"}},
		}}
	}
	delete(f.products, id)
	f.deleted = append(f.deleted, id)
	return map[string]any{"productDelete": map[string]any{
		"deletedProductId": vars.Input.ID,
		"userErrors":       []any{},
	}}
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}
