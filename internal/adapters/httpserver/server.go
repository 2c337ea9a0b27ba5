package httpserver

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/rs/zerolog/log"

	"github.com/phenrril/atelier/internal/catalog"
	"github.com/phenrril/atelier/internal/domain"
	"github.com/phenrril/atelier/internal/session"
	"github.com/phenrril/atelier/internal/usecase"
)

type Server struct {
	mux      *http.ServeMux
	tmpl     *template.Template
	catalog  *usecase.CatalogUC
	store    *usecase.StoreUC
	sessions *session.Store
	decoder  *schema.Decoder
	validate *validator.Validate
}

func New(t *template.Template, c *usecase.CatalogUC, st *usecase.StoreUC, sessions *session.Store) http.Handler {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	s := &Server{
		mux:      http.NewServeMux(),
		tmpl:     t,
		catalog:  c,
		store:    st,
		sessions: sessions,
		decoder:  dec,
		validate: validator.New(),
	}
	s.routes()
	return Chain(s.mux,
		SecurityAndStaticCache,
		Gzip,
		RequestID,
		Recovery,
		Logging,
		RateLimit(240),
	)
}

func (s *Server) routes() {
	s.mux.Handle("/public/", http.StripPrefix("/public/", http.FileServer(http.Dir("public"))))

	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/navigate", s.handleNavigate)

	s.mux.HandleFunc("/cart/add", s.handleCartAdd)
	s.mux.HandleFunc("/cart/remove", s.handleCartRemove)
	s.mux.HandleFunc("/cart/update", s.handleCartUpdate)
	s.mux.HandleFunc("/cart/open", s.overlayHandler(func(sess *session.Session) { sess.OpenCart() }))
	s.mux.HandleFunc("/cart/close", s.overlayHandler(func(sess *session.Session) { sess.CloseCart() }))

	s.mux.HandleFunc("/search/open", s.overlayHandler(func(sess *session.Session) { sess.OpenSearch() }))
	s.mux.HandleFunc("/search/close", s.overlayHandler(func(sess *session.Session) { sess.CloseSearch() }))
	s.mux.HandleFunc("/search/results", s.handleSearchResults)

	s.mux.HandleFunc("/product/select", s.handleProductSelect)
	s.mux.HandleFunc("/product/close", s.overlayHandler(func(sess *session.Session) { sess.ClearSelection() }))

	s.mux.HandleFunc("/api/catalog", s.apiCatalog)
	s.mux.HandleFunc("/api/cart", s.apiCart)

	s.mux.HandleFunc("/checkout", s.handleCheckout)
	s.mux.HandleFunc("/contact", s.handleContact)
}

var viewTemplates = map[domain.View]string{
	domain.ViewHome:     "home.html",
	domain.ViewShop:     "shop.html",
	domain.ViewLookbook: "lookbook.html",
	domain.ViewJournal:  "journal.html",
	domain.ViewAbout:    "about.html",
	domain.ViewContact:  "contact.html",
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	sess := s.session(w, r)
	view := sess.ActiveView()
	data := s.pageData(sess)

	switch view {
	case domain.ViewHome:
		list := s.catalog.List(domain.CatalogFilter{})
		if len(list) > 8 {
			list = list[:8]
		}
		data["Products"] = list
		data["Collections"] = s.catalog.Collections()
	case domain.ViewShop:
		cat := r.URL.Query().Get("category")
		data["Products"] = s.catalog.List(domain.CatalogFilter{Category: cat})
		data["Categories"] = s.catalog.Categories()
		if cat == "" {
			cat = catalog.AllCategory
		}
		data["ActiveCategory"] = cat
	case domain.ViewLookbook:
		data["Collections"] = s.catalog.Collections()
		data["Products"] = s.catalog.List(domain.CatalogFilter{})
	case domain.ViewJournal:
		data["Posts"] = s.catalog.Posts()
	case domain.ViewContact:
		data["Status"] = "IDLE"
	}

	s.render(w, viewTemplates[view], data)
}

// handleNavigate switches the active view and bounces back to "/", which
// lands the visitor at the top of the new page. Unknown views fall back to
// HOME inside the session.
func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "form", http.StatusBadRequest)
		return
	}
	sess := s.session(w, r)
	sess.Navigate(r.FormValue("view"))
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "form", http.StatusBadRequest)
		return
	}
	sess := s.session(w, r)
	productID := r.FormValue("product_id")
	size := r.FormValue("size")

	entry, err := s.store.AddToCart(sess, productID, size)
	if err != nil {
		if errors.Is(err, usecase.ErrBadSize) {
			http.Error(w, "size", http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Error().Err(err).Str("product_id", productID).Msg("add to cart")
		http.Error(w, "cart", http.StatusInternalServerError)
		return
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]any{
			"entry_id": entry.EntryID,
			"count":    sess.Count(),
			"subtotal": sess.Subtotal(),
		})
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "form", http.StatusBadRequest)
		return
	}
	sess := s.session(w, r)
	sess.RemoveEntry(r.FormValue("entry_id"))
	s.cartResponse(w, r, sess)
}

func (s *Server) handleCartUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "form", http.StatusBadRequest)
		return
	}
	delta, err := strconv.Atoi(r.FormValue("delta"))
	if err != nil {
		http.Error(w, "delta", http.StatusBadRequest)
		return
	}
	sess := s.session(w, r)
	sess.AdjustEntry(r.FormValue("entry_id"), delta)
	s.cartResponse(w, r, sess)
}

func (s *Server) cartResponse(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]any{
			"count":    sess.Count(),
			"subtotal": sess.Subtotal(),
		})
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) overlayHandler(apply func(*session.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method", http.StatusMethodNotAllowed)
			return
		}
		sess := s.session(w, r)
		apply(sess)
		if wantsJSON(r) {
			writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
			return
		}
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

func (s *Server) handleProductSelect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "form", http.StatusBadRequest)
		return
	}
	sess := s.session(w, r)
	if err := s.store.SelectProduct(sess, r.FormValue("product_id")); err != nil {
		http.NotFound(w, r)
		return
	}
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// handleSearchResults recomputes the filter on every keystroke of the search
// modal. A blank query returns zero results by design.
func (s *Server) handleSearchResults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query().Get("q")
	results := s.catalog.Search(q)
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, map[string]any{
		"items": results,
		"count": len(results),
		"label": catalog.ResultsLabel(len(results)),
	})
}

func (s *Server) apiCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	list := s.catalog.List(domain.CatalogFilter{Category: r.URL.Query().Get("category")})
	writeJSON(w, http.StatusOK, map[string]any{"items": list, "total": len(list)})
}

func (s *Server) apiCart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	sess := s.session(w, r)
	writeJSON(w, http.StatusOK, map[string]any{
		"items":    sess.Entries(),
		"count":    sess.Count(),
		"subtotal": sess.Subtotal(),
	})
}

// handleCheckout always "succeeds": there is no payment processing behind
// it. An empty cart bounces straight back to the storefront.
func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	sess := s.session(w, r)
	if !s.store.Checkout(sess) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	data := s.pageData(sess)
	data["StatusMsg"] = "Processing Checkout... (Demo Mode)"
	s.render(w, "checkout.html", data)
}

type contactForm struct {
	Name    string `schema:"name" validate:"required"`
	Email   string `schema:"email" validate:"required,email"`
	Message string `schema:"message" validate:"required"`
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "form", http.StatusBadRequest)
		return
	}
	sess := s.session(w, r)
	sess.Navigate(string(domain.ViewContact))

	var form contactForm
	data := s.pageData(sess)
	if err := s.decoder.Decode(&form, r.PostForm); err != nil {
		data["Status"] = "IDLE"
		data["FormError"] = "Invalid form submission."
		s.render(w, "contact.html", data)
		return
	}
	if err := s.validate.Struct(form); err != nil {
		data["Status"] = "IDLE"
		data["FormError"] = "All fields are required."
		data["Form"] = form
		s.render(w, "contact.html", data)
		return
	}

	// Nothing is delivered anywhere; the form is a simulation.
	log.Info().Str("from", form.Email).Msg("contact message received")
	data["Status"] = "SENT"
	s.render(w, "contact.html", data)
}

// pageData builds the fields every template expects: the active view, the
// cart drawer contents and the overlay flags.
func (s *Server) pageData(sess *session.Session) map[string]any {
	data := map[string]any{
		"View":       sess.ActiveView(),
		"Entries":    sess.Entries(),
		"CartCount":  sess.Count(),
		"Subtotal":   sess.Subtotal(),
		"CartOpen":   sess.IsCartOpen(),
		"SearchOpen": sess.IsSearchOpen(),
		"Sizes":      domain.Sizes,
	}
	if p := sess.Selected(); p != nil {
		data["Selected"] = p
	}
	return data
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Error().Err(err).Str("tpl", name).Msg("render")
		http.Error(w, "tpl", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		r.Header.Get("X-Requested-With") == "fetch"
}

const sessionCookie = "atelier_sid"

func secretKey() []byte {
	k := os.Getenv("SESSION_KEY")
	if k == "" {
		k = "dev-insecure"
	}
	return []byte(k)
}

// session resolves the visitor's session from the signed cookie, creating a
// fresh one (and setting the cookie) when the cookie is missing, forged or
// points at a session the store no longer knows.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session.Session {
	if id, ok := readSessionID(r); ok {
		if sess, found := s.sessions.Get(id); found {
			return sess
		}
	}
	sess := s.sessions.Create()
	writeSessionID(w, sess.ID)
	return sess
}

func readSessionID(r *http.Request) (string, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return "", false
	}
	parts := strings.SplitN(c.Value, ".", 2)
	if len(parts) != 2 {
		return "", false
	}
	sig, _ := base64.RawURLEncoding.DecodeString(parts[0])
	payload, _ := base64.RawURLEncoding.DecodeString(parts[1])
	h := hmac.New(sha256.New, secretKey())
	h.Write(payload)
	if !hmac.Equal(sig, h.Sum(nil)) {
		return "", false
	}
	return string(payload), true
}

func writeSessionID(w http.ResponseWriter, id string) {
	h := hmac.New(sha256.New, secretKey())
	h.Write([]byte(id))
	sig := base64.RawURLEncoding.EncodeToString(h.Sum(nil))
	val := sig + "." + base64.RawURLEncoding.EncodeToString([]byte(id))
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    val,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
