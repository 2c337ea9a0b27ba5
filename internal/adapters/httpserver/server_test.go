package httpserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/atelier/internal/app"
)

// client drives the handler directly, replaying cookies so consecutive
// requests share one session like a browser would.
type client struct {
	t       *testing.T
	handler http.Handler
	cookies []*http.Cookie
}

func newClient(t *testing.T) *client {
	t.Helper()
	application, err := app.NewApp()
	require.NoError(t, err)
	return &client{t: t, handler: application.HTTPHandler()}
}

func (c *client) do(method, target string, form url.Values, json bool) *httptest.ResponseRecorder {
	c.t.Helper()
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if json {
		req.Header.Set("Accept", "application/json")
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	if set := rec.Result().Cookies(); len(set) > 0 {
		c.cookies = set
	}
	return rec
}

func (c *client) get(target string) *httptest.ResponseRecorder {
	return c.do(http.MethodGet, target, nil, false)
}

func (c *client) post(target string, form url.Values) *httptest.ResponseRecorder {
	return c.do(http.MethodPost, target, form, false)
}

func (c *client) postJSON(target string, form url.Values) map[string]any {
	c.t.Helper()
	rec := c.do(http.MethodPost, target, form, true)
	require.Equal(c.t, http.StatusOK, rec.Code, rec.Body.String())
	var out map[string]any
	require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (c *client) cartState() map[string]any {
	c.t.Helper()
	rec := c.do(http.MethodGet, "/api/cart", nil, true)
	require.Equal(c.t, http.StatusOK, rec.Code)
	var out map[string]any
	require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHomeByDefault(t *testing.T) {
	c := newClient(t)
	rec := c.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "SILENCE")
}

func TestNavigateEachView(t *testing.T) {
	c := newClient(t)
	for view, marker := range map[string]string{
		"SHOP":     "THE ARCHIVE",
		"LOOKBOOK": "LOOKBOOK",
		"JOURNAL":  "JOURNAL",
		"ABOUT":    "ABOUT",
		"CONTACT":  "CONTACT",
		"HOME":     "SILENCE",
	} {
		rec := c.post("/navigate", url.Values{"view": {view}})
		require.Equal(t, http.StatusFound, rec.Code)
		page := c.get("/")
		require.Equal(t, http.StatusOK, page.Code)
		assert.Contains(t, page.Body.String(), marker, "view %s", view)
	}
}

func TestNavigateUnknownFallsBackToHome(t *testing.T) {
	c := newClient(t)
	c.post("/navigate", url.Values{"view": {"SHOP"}})
	c.post("/navigate", url.Values{"view": {"CHECKOUT"}})
	page := c.get("/")
	assert.Contains(t, page.Body.String(), "SILENCE")
}

func TestAddToCartNeverMerges(t *testing.T) {
	c := newClient(t)

	res := c.postJSON("/cart/add", url.Values{"product_id": {"h1"}, "size": {"M"}})
	assert.Equal(t, 1.0, res["count"])

	res = c.postJSON("/cart/add", url.Values{"product_id": {"h1"}, "size": {"M"}})
	assert.Equal(t, 2.0, res["count"])
	assert.Equal(t, 370.0, res["subtotal"])

	// The drawer is open and nothing is selected after an add.
	page := c.get("/")
	assert.Contains(t, page.Body.String(), "YOUR SELECTION (2)")
}

func TestAddToCartValidation(t *testing.T) {
	c := newClient(t)

	rec := c.post("/cart/add", url.Values{"product_id": {"h1"}, "size": {"XXL"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.post("/cart/add", url.Values{"product_id": {"zz9"}, "size": {"M"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.Equal(t, 0.0, c.cartState()["count"])
}

func TestRemoveAndUpdate(t *testing.T) {
	c := newClient(t)
	res := c.postJSON("/cart/add", url.Values{"product_id": {"h1"}, "size": {"M"}})
	entryID := res["entry_id"].(string)
	c.postJSON("/cart/add", url.Values{"product_id": {"d1"}, "size": {"S"}})

	// Removing an unknown id is a no-op.
	res = c.postJSON("/cart/remove", url.Values{"entry_id": {"missing"}})
	assert.Equal(t, 2.0, res["count"])

	// Negative delta removes the row.
	res = c.postJSON("/cart/update", url.Values{"entry_id": {entryID}, "delta": {"-1"}})
	assert.Equal(t, 1.0, res["count"])
	assert.Equal(t, 250.0, res["subtotal"])
}

func TestUpdateIncrementDuplicatesRow(t *testing.T) {
	c := newClient(t)
	res := c.postJSON("/cart/add", url.Values{"product_id": {"j1"}, "size": {"L"}})
	entryID := res["entry_id"].(string)

	res = c.postJSON("/cart/update", url.Values{"entry_id": {entryID}, "delta": {"1"}})
	assert.Equal(t, 2.0, res["count"])
	assert.Equal(t, 1300.0, res["subtotal"])
}

func TestSearchResults(t *testing.T) {
	c := newClient(t)

	rec := c.get("/search/results?q=")
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 0.0, out["count"])

	rec = c.get("/search/results?q=hood")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Contains(t, rec.Body.String(), "Heavyweight Acid Wash Zip")
	assert.Contains(t, out["label"], "RESULTS FOUND")

	rec = c.get("/search/results?q=nonexistent-xyz")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 0.0, out["count"])
	assert.Equal(t, "0 RESULTS FOUND", out["label"])
}

func TestAPICatalogCategoryFilter(t *testing.T) {
	c := newClient(t)
	rec := c.get("/api/catalog?category=Denim")
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 5.0, out["total"])

	rec = c.get("/api/catalog?category=All")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 38.0, out["total"])
}

func TestOverlayEndpoints(t *testing.T) {
	c := newClient(t)
	c.postJSON("/search/open", nil)
	c.postJSON("/product/select", url.Values{"product_id": {"t1"}})

	page := c.get("/")
	body := page.Body.String()
	// Search modal and product detail render together; no exclusivity.
	assert.Contains(t, body, "SEARCH ARCHIVE")
	assert.Contains(t, body, "Pleated Wide Trouser")

	c.postJSON("/search/close", nil)
	c.postJSON("/product/close", nil)
	page = c.get("/")
	assert.NotContains(t, page.Body.String(), "SEARCH ARCHIVE")
}

func TestCheckoutStub(t *testing.T) {
	c := newClient(t)

	rec := c.post("/checkout", nil)
	assert.Equal(t, http.StatusFound, rec.Code, "empty cart bounces back")

	c.postJSON("/cart/add", url.Values{"product_id": {"h1"}, "size": {"M"}})
	rec = c.post("/checkout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Demo Mode")

	// Checkout never clears the cart.
	assert.Equal(t, 1.0, c.cartState()["count"])
}

func TestContactForm(t *testing.T) {
	c := newClient(t)

	rec := c.post("/contact", url.Values{"name": {"Ana"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "All fields are required.")

	rec = c.post("/contact", url.Values{
		"name":    {"Ana"},
		"email":   {"ana@example.com"},
		"message": {"Where is my order?"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Message Sent")
}

func TestSessionsAreIsolated(t *testing.T) {
	a := newClient(t)
	b := newClient(t)

	a.postJSON("/cart/add", url.Values{"product_id": {"h1"}, "size": {"M"}})
	assert.Equal(t, 1.0, a.cartState()["count"])
	assert.Equal(t, 0.0, b.cartState()["count"])
}

func TestForgedCookieGetsFreshSession(t *testing.T) {
	c := newClient(t)
	c.postJSON("/cart/add", url.Values{"product_id": {"h1"}, "size": {"M"}})
	c.cookies = []*http.Cookie{{Name: "atelier_sid", Value: "bogus.bogus"}}
	assert.Equal(t, 0.0, c.cartState()["count"])
}
