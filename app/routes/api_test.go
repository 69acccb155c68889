package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ahmadsvu/stationery-hub-frontend/app/routes"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/adminsession"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/backend"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/cart"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/catalog"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/checkout"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/probe"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/router"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/statefile"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/testkit"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/ws"
)

func testHandler(t *testing.T) http.Handler {
	t.Helper()

	files, err := statefile.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	client := backend.NewWithOrigin("http://backend.test")
	cartStore := cart.NewStore(&cart.MemoryDriver{})

	deps := routes.Deps{
		Backend:   client,
		Cart:      cartStore,
		Provider:  catalog.NewProvider(client, nil),
		Checkout:  checkout.NewAggregator(cartStore, client),
		Sessions:  adminsession.NewManager(client, files),
		Prober:    probe.NewWithCadence(client, 0, 0),
		StatusHub: ws.NewHub(),
	}

	r := router.New()
	routes.RegisterAPI(r, deps)
	return r.Handler()
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	parsed := map[string]any{}
	if rec.Body.Len() > 0 {
		json.Unmarshal(rec.Body.Bytes(), &parsed) //nolint:errcheck
	}
	return rec, parsed
}

func TestProductsFallBackToSamples(t *testing.T) {
	mt := &testkit.MockTransport{}
	defer mt.Install()()

	h := testHandler(t)

	// The unstubbed transport answers 404, so the provider degrades to
	// the built-in samples.
	rec, body := doJSON(t, h, http.MethodGet, "/api/products", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	data := body["data"].(map[string]any)
	if data["source"] != "sample" {
		t.Fatalf("source = %v, want sample", data["source"])
	}
	if products := data["products"].([]any); len(products) != 3 {
		t.Fatalf("got %d sample products, want 3", len(products))
	}
}

func TestProductsQueryFilter(t *testing.T) {
	mt := &testkit.MockTransport{}
	mt.Stub("GET", "/product/get", 200, `[
		{"_id":"1","name":"Premium Notebook","description":"Hardcover","price":24.99,"category":"Notebooks"},
		{"_id":"2","name":"Fountain Pen Set","description":"Three nibs","price":45.99,"category":"Pens"}
	]`)
	defer mt.Install()()

	h := testHandler(t)

	rec, body := doJSON(t, h, http.MethodGet, "/api/products?q=pen", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	data := body["data"].(map[string]any)
	products := data["products"].([]any)
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	first := products[0].(map[string]any)
	if first["name"] != "Fountain Pen Set" {
		t.Fatalf("name = %v", first["name"])
	}
}

func TestCartFlow(t *testing.T) {
	mt := &testkit.MockTransport{}
	defer mt.Install()()

	h := testHandler(t)

	rec, _ := doJSON(t, h, http.MethodPost, "/api/cart/items",
		`{"_id":"1","name":"Premium Notebook","price":24.99,"category":"Notebooks"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("add status = %d (%s)", rec.Code, rec.Body.String())
	}

	// Same product again merges into one line with quantity 2.
	doJSON(t, h, http.MethodPost, "/api/cart/items",
		`{"_id":"1","name":"Premium Notebook","price":24.99,"category":"Notebooks"}`)

	rec, body := doJSON(t, h, http.MethodGet, "/api/cart", "")
	data := body["data"].(map[string]any)
	if data["count"].(float64) != 2 {
		t.Fatalf("count = %v, want 2", data["count"])
	}
	if items := data["items"].([]any); len(items) != 1 {
		t.Fatalf("lines = %d, want 1", len(items))
	}

	rec, _ = doJSON(t, h, http.MethodPut, "/api/cart/items/1", `{"quantity":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d", rec.Code)
	}

	_, body = doJSON(t, h, http.MethodGet, "/api/cart", "")
	data = body["data"].(map[string]any)
	if data["count"].(float64) != 0 {
		t.Fatalf("count after zero-quantity update = %v, want 0", data["count"])
	}
}

func TestCheckoutSubmit(t *testing.T) {
	mt := &testkit.MockTransport{}
	mt.Stub("POST", "/api/sendorder", 201, `{"message":"order received"}`)
	defer mt.Install()()

	h := testHandler(t)

	doJSON(t, h, http.MethodPost, "/api/cart/items",
		`{"_id":"2","name":"Fountain Pen Set","price":45.99,"category":"Pens"}`)

	rec, body := doJSON(t, h, http.MethodPost, "/api/checkout",
		`{"name":"Ahmad","phone":"0999123456","address":"Old Town 12","area":"Tartous"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d (%s)", rec.Code, rec.Body.String())
	}

	data := body["data"].(map[string]any)
	if data["total"].(float64) != 50.99 {
		t.Fatalf("total = %v, want 50.99", data["total"])
	}

	// Cart is empty after a confirmed order.
	_, body = doJSON(t, h, http.MethodGet, "/api/cart", "")
	if body["data"].(map[string]any)["count"].(float64) != 0 {
		t.Fatal("cart not cleared after checkout")
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	mt := &testkit.MockTransport{}
	defer mt.Install()()

	h := testHandler(t)

	rec, _ := doJSON(t, h, http.MethodPost, "/api/checkout",
		`{"name":"Ahmad","phone":"0999123456","address":"Old Town 12","area":"Tartous"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	mt.AssertNotCalled(t, "POST", "/api/sendorder")
}

func TestAdminEndpointsRequireSession(t *testing.T) {
	mt := &testkit.MockTransport{}
	defer mt.Install()()

	h := testHandler(t)

	rec, _ := doJSON(t, h, http.MethodGet, "/api/admin/orders", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAdminLoginAndGuardedCall(t *testing.T) {
	mt := &testkit.MockTransport{}
	mt.Stub("POST", "/admin/login", 200, `{"admin":{"username":"ahmad","role":"admin"}}`)
	mt.Stub("GET", "/api/getorders", 200, `{"orders":[]}`)
	defer mt.Install()()

	h := testHandler(t)

	rec, _ := doJSON(t, h, http.MethodPost, "/api/admin/login",
		`{"username":"ahmad","password":"secret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d (%s)", rec.Code, rec.Body.String())
	}

	cookie := ""
	for _, c := range rec.Result().Cookies() {
		if c.Name == "admin_session" {
			cookie = c.Value
		}
	}
	if cookie == "" {
		t.Fatal("no session cookie set")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: cookie})
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusOK {
		t.Fatalf("guarded call status = %d (%s)", rec2.Code, rec2.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	h := testHandler(t)

	rec, _ := doJSON(t, h, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
