package sessions

import (
	"encoding/gob"
	"log"
	"net/http"
	"time"

	"github.com/emballage/storefront/app/models"
	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "emballage-session"

	cartSessionKey   = "cart"
	userIDSessionKey = "userID"
)

func init() {
	gob.Register(models.Cart{})
	gob.Register(models.CartEntry{})
}

// Store is the session capability handlers and services depend on: the cart
// payload and the logged-in staff user, keyed by the request's cookie.
type Store interface {
	Cart(r *http.Request) models.Cart
	SaveCart(w http.ResponseWriter, r *http.Request, cart models.Cart) error
	ClearCart(w http.ResponseWriter, r *http.Request) error

	UserID(r *http.Request) uint
	SetUserID(w http.ResponseWriter, r *http.Request, userID uint) error
	ClearSession(w http.ResponseWriter, r *http.Request) error
}

type CookieStore struct {
	store *sessions.CookieStore
}

func NewCookieStore(keyPairs ...[]byte) *CookieStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(7 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieStore{store: store}
}

func (c *CookieStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		// A stale or tampered cookie still yields a usable empty session.
		log.Printf("Error decoding session: %v", err)
	}
	return session
}

func (c *CookieStore) Cart(r *http.Request) models.Cart {
	session := c.getSession(r)
	cart, ok := session.Values[cartSessionKey].(models.Cart)
	if !ok || cart == nil {
		return models.Cart{}
	}
	return cart
}

func (c *CookieStore) SaveCart(w http.ResponseWriter, r *http.Request, cart models.Cart) error {
	session := c.getSession(r)
	session.Values[cartSessionKey] = cart
	return session.Save(r, w)
}

func (c *CookieStore) ClearCart(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	delete(session.Values, cartSessionKey)
	return session.Save(r, w)
}

func (c *CookieStore) UserID(r *http.Request) uint {
	session := c.getSession(r)
	userID, ok := session.Values[userIDSessionKey].(uint)
	if !ok {
		return 0
	}
	return userID
}

func (c *CookieStore) SetUserID(w http.ResponseWriter, r *http.Request, userID uint) error {
	session := c.getSession(r)
	session.Values[userIDSessionKey] = userID
	return session.Save(r, w)
}

func (c *CookieStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
