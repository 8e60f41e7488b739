package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/EswarAdityaReddy/Foodie/configs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

type client struct {
	t     *testing.T
	r     *gin.Engine
	token string
}

func newTestServer(t *testing.T) *client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &configs.Config{
		DBDriver:        "sqlite",
		DBSource:        "file:" + t.Name() + "?mode=memory&cache=shared",
		JWTSecret:       "test-secret",
		JWTTTL:          time.Hour,
		SessionCapacity: 8,
		CORSOrigins:     []string{"*"},
	}
	db, err := configs.ConnectionDB(cfg)
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	require.NoError(t, configs.SeedCatalog(db))

	r, _, err := NewRouter(db, cfg, zap.NewNop())
	require.NoError(t, err)
	return &client{t: t, r: r}
}

func (c *client) do(method, path string, body any) (int, envelope) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)

	var env envelope
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func (c *client) startSession() {
	c.t.Helper()
	code, env := c.do(http.MethodPost, "/sessions", nil)
	require.Equal(c.t, http.StatusCreated, code)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(c.t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(c.t, data.Token)
	c.token = data.Token
}

type cartBody struct {
	Items []struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
	} `json:"items"`
	RestaurantID *string `json:"restaurantId"`
	Totals       struct {
		TotalItems int    `json:"totalItems"`
		TotalPrice string `json:"totalPrice"`
	} `json:"totals"`
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func TestCatalogRoutes(t *testing.T) {
	c := newTestServer(t)

	code, env := c.do(http.MethodGet, "/restaurants?category=c5", nil)
	require.Equal(t, http.StatusOK, code)
	list := decode[struct {
		Items []struct {
			ID         string `json:"id"`
			PriceLabel string `json:"priceLabel"`
		} `json:"items"`
	}](t, env.Data)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "r1", list.Items[0].ID)
	assert.Equal(t, "₹₹", list.Items[0].PriceLabel)
	assert.Equal(t, "r5", list.Items[1].ID)

	code, _ = c.do(http.MethodGet, "/restaurants?category=c99", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, env = c.do(http.MethodGet, "/restaurants/r1/menu", nil)
	require.Equal(t, http.StatusOK, code)
	menu := decode[struct {
		Sections []struct {
			ID string `json:"id"`
		} `json:"sections"`
	}](t, env.Data)
	require.Len(t, menu.Sections, 3)
	assert.Equal(t, "pizzas", menu.Sections[0].ID)

	code, _ = c.do(http.MethodGet, "/restaurants/r99", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestSessionRequired(t *testing.T) {
	c := newTestServer(t)

	code, env := c.do(http.MethodGet, "/cart", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.OK)

	c.token = "not-a-jwt"
	code, _ = c.do(http.MethodGet, "/cart", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestCartFlow(t *testing.T) {
	c := newTestServer(t)
	c.startSession()

	code, env := c.do(http.MethodPost, "/cart/items", gin.H{"menuItemId": "m1"})
	require.Equal(t, http.StatusOK, code, env.Error)
	code, env = c.do(http.MethodPost, "/cart/items", gin.H{"menuItemId": "m1"})
	require.Equal(t, http.StatusOK, code, env.Error)

	added := decode[struct {
		Result string   `json:"result"`
		Cart   cartBody `json:"cart"`
	}](t, env.Data)
	assert.Equal(t, "applied", added.Result)
	require.Len(t, added.Cart.Items, 1)
	assert.Equal(t, 2, added.Cart.Items[0].Quantity)
	assert.Equal(t, "598", added.Cart.Totals.TotalPrice)

	// item from another restaurant
	code, env = c.do(http.MethodPost, "/cart/items", gin.H{"menuItemId": "m5"})
	require.Equal(t, http.StatusConflict, code)
	conflict := decode[struct {
		Result string   `json:"result"`
		Cart   cartBody `json:"cart"`
	}](t, env.Data)
	assert.Equal(t, "needs_confirmation", conflict.Result)
	assert.Equal(t, "r1", *conflict.Cart.RestaurantID)

	code, env = c.do(http.MethodPost, "/cart/items", gin.H{"menuItemId": "m5", "onConflict": "keep"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "aborted", decode[struct {
		Result string `json:"result"`
	}](t, env.Data).Result)

	code, env = c.do(http.MethodPost, "/cart/items", gin.H{"menuItemId": "m5", "onConflict": "replace"})
	require.Equal(t, http.StatusOK, code)
	replaced := decode[struct {
		Result string   `json:"result"`
		Cart   cartBody `json:"cart"`
	}](t, env.Data)
	assert.Equal(t, "replaced", replaced.Result)
	assert.Equal(t, "r2", *replaced.Cart.RestaurantID)

	code, env = c.do(http.MethodPatch, "/cart/items/m5", gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, code, env.Error)
	cart := decode[cartBody](t, env.Data)
	assert.Empty(t, cart.Items)
	assert.Nil(t, cart.RestaurantID)

	code, _ = c.do(http.MethodPost, "/cart/items", gin.H{"menuItemId": "zzz"})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = c.do(http.MethodPost, "/cart/items", gin.H{"menuItemId": "m1", "onConflict": "maybe"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestDiscoveryRoutes(t *testing.T) {
	c := newTestServer(t)
	c.startSession()

	code, env := c.do(http.MethodPost, "/discovery/categories/c5", nil)
	require.Equal(t, http.StatusOK, code)
	view := decode[struct {
		Heading     string `json:"heading"`
		Restaurants []struct {
			ID string `json:"id"`
		} `json:"restaurants"`
	}](t, env.Data)
	assert.Equal(t, "Best Italian", view.Heading)
	assert.Len(t, view.Restaurants, 2)

	code, env = c.do(http.MethodPut, "/discovery/search", gin.H{"query": "planet"})
	require.Equal(t, http.StatusOK, code)
	view = decode[struct {
		Heading     string `json:"heading"`
		Restaurants []struct {
			ID string `json:"id"`
		} `json:"restaurants"`
	}](t, env.Data)
	require.Len(t, view.Restaurants, 1)
	assert.Equal(t, "r1", view.Restaurants[0].ID)
}

func TestCheckoutAndProfile(t *testing.T) {
	c := newTestServer(t)
	c.startSession()

	code, _ := c.do(http.MethodPost, "/cart/items", gin.H{"menuItemId": "m9"})
	require.Equal(t, http.StatusOK, code)

	code, _ = c.do(http.MethodPost, "/cart/checkout", gin.H{"address": "1 Road", "paymentMethod": "card"})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, env := c.do(http.MethodPost, "/auth/login", gin.H{"email": "jane@example.com", "password": "x"})
	require.Equal(t, http.StatusOK, code, env.Error)
	user := decode[struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}](t, env.Data)
	assert.Equal(t, "John Doe", user.Name)
	assert.Equal(t, "jane@example.com", user.Email)

	code, env = c.do(http.MethodPost, "/cart/checkout", gin.H{"address": "1 Road", "paymentMethod": "card"})
	require.Equal(t, http.StatusCreated, code, env.Error)
	order := decode[struct {
		ID         string `json:"id"`
		Restaurant string `json:"restaurant"`
		Status     string `json:"status"`
	}](t, env.Data)
	assert.Equal(t, "Burger King", order.Restaurant)
	assert.Equal(t, "Placed", order.Status)

	code, env = c.do(http.MethodGet, "/profile/orders", nil)
	require.Equal(t, http.StatusOK, code)
	orders := decode[struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}](t, env.Data)
	require.Len(t, orders.Items, 4)
	assert.Equal(t, order.ID, orders.Items[0].ID)

	code, _ = c.do(http.MethodPost, "/profile/addresses", gin.H{"address": "9 Lane"})
	assert.Equal(t, http.StatusCreated, code)
	code, _ = c.do(http.MethodDelete, "/profile/addresses/7", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = c.do(http.MethodPost, "/auth/logout", nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = c.do(http.MethodGet, "/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestLoginAcceptsAnyCredentials(t *testing.T) {
	c := newTestServer(t)
	c.startSession()

	code, env := c.do(http.MethodPost, "/auth/login", gin.H{"email": "not-an-email", "password": "x"})
	require.Equal(t, http.StatusOK, code, env.Error)

	code, _ = c.do(http.MethodPost, "/auth/login", gin.H{"password": "x"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCheckoutDefaultsToFirstAddress(t *testing.T) {
	c := newTestServer(t)
	c.startSession()

	code, _ := c.do(http.MethodPost, "/auth/login", gin.H{"email": "a@b.c", "password": "x"})
	require.Equal(t, http.StatusOK, code)
	code, _ = c.do(http.MethodPost, "/cart/items", gin.H{"menuItemId": "m21"})
	require.Equal(t, http.StatusOK, code)

	code, env := c.do(http.MethodPost, "/cart/checkout", gin.H{"paymentMethod": "cash", "instructions": "leave at door"})
	require.Equal(t, http.StatusCreated, code, env.Error)
	order := decode[struct {
		Address      string `json:"address"`
		Instructions string `json:"instructions"`
	}](t, env.Data)
	assert.Equal(t, "123 Main St, Anytown, USA", order.Address)
	assert.Equal(t, "leave at door", order.Instructions)
}

func TestFavoritesRoutes(t *testing.T) {
	c := newTestServer(t)
	c.startSession()

	code, env := c.do(http.MethodPost, "/favorites/r5", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decode[struct {
		IsFavorite bool `json:"isFavorite"`
	}](t, env.Data).IsFavorite)

	code, env = c.do(http.MethodGet, "/favorites", nil)
	require.Equal(t, http.StatusOK, code)
	favs := decode[struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}](t, env.Data)
	require.Len(t, favs.Items, 1)
	assert.Equal(t, "r5", favs.Items[0].ID)

	code, _ = c.do(http.MethodPost, "/favorites/r99", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestSignupReturnsEmptyAddressList(t *testing.T) {
	c := newTestServer(t)
	c.startSession()

	code, env := c.do(http.MethodPost, "/auth/signup", gin.H{"name": "Ann", "email": "ann@example.com", "password": "pw"})
	require.Equal(t, http.StatusCreated, code, env.Error)
	assert.Contains(t, string(env.Data), `"addresses":[]`)

	code, env = c.do(http.MethodGet, "/profile", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"addresses":[]`)
}
