package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/TheLiloji/UberV3-sub000/configs"
	"github.com/TheLiloji/UberV3-sub000/routes"
)

type env struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
	Token string          `json:"token"`
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	require.NoError(t, configs.SeedRestaurants(db))

	cfg := &configs.Config{
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
		UploadDir: t.TempDir(),
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, env) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var e env
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e), "body: %s", w.Body.String())
	return w, e
}

func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": email, "password": "secret123",
		"firstName": "Jean", "lastName": "Dupont",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, e := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, e.Token)
	return e.Token
}

func validAddress() gin.H {
	return gin.H{
		"label":          "Maison",
		"address":        "3 rue de la Paix, Paris",
		"deliveryMethod": "dropoff",
		"deliveryOption": "door",
		"icon":           "home",
		"coordinates":    gin.H{"latitude": 48.86, "longitude": 2.33},
	}
}

// ----- Auth -----

func TestRegisterLoginProfile(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "jean@example.com")

	w, e := doJSON(t, r, http.MethodGet, "/api/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var user struct {
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &user))
	assert.Equal(t, "jean@example.com", user.Email)
	assert.Equal(t, "Jean", user.FirstName)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := newTestServer(t)
	registerAndLogin(t, r, "jean@example.com")

	w, e := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "jean@example.com", "password": "secret123",
		"firstName": "Jean", "lastName": "Dupont",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, e.Error, "already registered")
}

func TestLoginWrongPassword(t *testing.T) {
	r := newTestServer(t)
	registerAndLogin(t, r, "jean@example.com")

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "jean@example.com", "password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	r := newTestServer(t)

	for _, path := range []string{"/api/auth/profile", "/api/addresses", "/api/payment-methods", "/api/orders", "/api/restaurants"} {
		w, _ := doJSON(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w, _ := doJSON(t, r, http.MethodGet, "/api/auth/profile", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// ----- Addresses -----

func TestAddressLifecycle(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "jean@example.com")

	w, e := doJSON(t, r, http.MethodPost, "/api/addresses", token, validAddress())
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &created))
	require.NotZero(t, created.ID)

	// the freshly created address comes back with its fields intact
	w, e = doJSON(t, r, http.MethodGet, "/api/addresses", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []struct {
		ID             uint   `json:"id"`
		Label          string `json:"label"`
		Address        string `json:"address"`
		DeliveryMethod string `json:"deliveryMethod"`
		Icon           string `json:"icon"`
		Coordinates    struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"coordinates"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "Maison", list[0].Label)
	assert.Equal(t, "dropoff", list[0].DeliveryMethod)
	assert.Equal(t, "home", list[0].Icon)
	assert.InDelta(t, 48.86, list[0].Coordinates.Latitude, 1e-9)

	// delete removes it from the listing
	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/addresses/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, e = doJSON(t, r, http.MethodGet, "/api/addresses", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(e.Data, &list))
	assert.Empty(t, list)

	// deleting again is a 404, not a silent no-op
	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/addresses/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddressValidation(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "jean@example.com")

	for name, mutate := range map[string]func(gin.H){
		"missing label":       func(b gin.H) { delete(b, "label") },
		"missing address":     func(b gin.H) { delete(b, "address") },
		"missing method":      func(b gin.H) { delete(b, "deliveryMethod") },
		"bad method":          func(b gin.H) { b["deliveryMethod"] = "teleport" },
		"missing icon":        func(b gin.H) { delete(b, "icon") },
		"missing coordinates": func(b gin.H) { delete(b, "coordinates") },
	} {
		body := validAddress()
		mutate(body)
		w, _ := doJSON(t, r, http.MethodPost, "/api/addresses", token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
}

func TestAddressOwnership(t *testing.T) {
	r := newTestServer(t)
	alice := registerAndLogin(t, r, "alice@example.com")
	bob := registerAndLogin(t, r, "bob@example.com")

	w, e := doJSON(t, r, http.MethodPost, "/api/addresses", alice, validAddress())
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &created))

	// bob sees nothing and cannot delete alice's address
	w, e = doJSON(t, r, http.MethodGet, "/api/addresses", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal(e.Data, &list))
	assert.Empty(t, list)

	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/addresses/%d", created.ID), bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// still there for alice
	w, e = doJSON(t, r, http.MethodGet, "/api/addresses", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(e.Data, &list))
	assert.Len(t, list, 1)
}

// ----- Payment methods -----

type paymentMethodOut struct {
	ID        uint   `json:"ID"`
	Type      string `json:"type"`
	Label     string `json:"label"`
	IsDefault bool   `json:"isDefault"`
}

func createPaymentMethod(t *testing.T, r *gin.Engine, token, label string) uint {
	t.Helper()
	w, e := doJSON(t, r, http.MethodPost, "/api/payment-methods", token, gin.H{
		"type": "card", "label": label, "icon": "credit-card",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var pm paymentMethodOut
	require.NoError(t, json.Unmarshal(e.Data, &pm))
	return pm.ID
}

func listPaymentMethods(t *testing.T, r *gin.Engine, token string) []paymentMethodOut {
	t.Helper()
	w, e := doJSON(t, r, http.MethodGet, "/api/payment-methods", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var out []paymentMethodOut
	require.NoError(t, json.Unmarshal(e.Data, &out))
	return out
}

func TestPaymentMethodDefaultToggle(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "jean@example.com")

	createPaymentMethod(t, r, token, "Visa •••• 4242")
	b := createPaymentMethod(t, r, token, "Mastercard •••• 1881")
	c := createPaymentMethod(t, r, token, "PayPal")

	countDefaults := func() (int, uint) {
		n, id := 0, uint(0)
		for _, pm := range listPaymentMethods(t, r, token) {
			if pm.IsDefault {
				n++
				id = pm.ID
			}
		}
		return n, id
	}

	w, _ := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/payment-methods/%d/default", b), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	n, id := countDefaults()
	assert.Equal(t, 1, n)
	assert.Equal(t, b, id)

	// toggling another target moves the single default
	w, _ = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/payment-methods/%d/default", c), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	n, id = countDefaults()
	assert.Equal(t, 1, n)
	assert.Equal(t, c, id)

	// unknown target is a 404 and leaves the default untouched
	w, _ = doJSON(t, r, http.MethodPut, "/api/payment-methods/9999/default", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	n, id = countDefaults()
	assert.Equal(t, 1, n)
	assert.Equal(t, c, id)
}

func TestPaymentMethodDelete(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "jean@example.com")

	id := createPaymentMethod(t, r, token, "Visa •••• 4242")

	w, _ := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/payment-methods/%d", id), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, listPaymentMethods(t, r, token))

	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/payment-methods/%d", id), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ----- Orders -----

func checkoutPayload() gin.H {
	return gin.H{
		"orderNumber": "483920",
		"date":        "17/05/2024 19:30",
		"items": []gin.H{
			{
				"id": "1", "name": "Classic Cheese", "price": 10.0, "quantity": 2,
				"restaurantId": "A",
				"options": []gin.H{
					{"name": "Sauce", "choiceId": "bbq", "choiceName": "Barbecue", "choicePrice": 0.5},
				},
			},
			{"id": "2", "name": "California x6", "price": 5.0, "quantity": 1, "restaurantId": "B"},
		},
		"address":       validAddress(),
		"paymentMethod": "Visa •••• 4242",
		"subtotal":      25.0,
		"deliveryFees":  5.5,
		"total":         30.5,
		"restaurants": []gin.H{
			{"restaurantId": "A", "name": "Burger Factory", "subtotal": 20.0, "deliveryFee": 2.5},
			{"restaurantId": "B", "name": "Sushi Yama", "subtotal": 5.0, "deliveryFee": 3.0},
		},
	}
}

type orderOut struct {
	ID          uint    `json:"ID"`
	OrderNumber string  `json:"orderNumber"`
	Status      string  `json:"status"`
	Total       float64 `json:"total"`
	Items       []struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
		Options  []struct {
			ChoiceName string `json:"choiceName"`
		} `json:"options"`
	} `json:"items"`
	Restaurants []struct {
		Name        string  `json:"name"`
		Subtotal    float64 `json:"subtotal"`
		DeliveryFee float64 `json:"deliveryFee"`
	} `json:"restaurants"`
}

func TestOrderCreateAndList(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "jean@example.com")

	w, e := doJSON(t, r, http.MethodPost, "/api/orders", token, checkoutPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var created orderOut
	require.NoError(t, json.Unmarshal(e.Data, &created))
	assert.Equal(t, "En préparation", created.Status)
	assert.Equal(t, "483920", created.OrderNumber)

	w, e = doJSON(t, r, http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []orderOut
	require.NoError(t, json.Unmarshal(e.Data, &list))
	require.Len(t, list, 1)
	o := list[0]
	assert.InDelta(t, 30.5, o.Total, 1e-9)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "Classic Cheese", o.Items[0].Name)
	require.Len(t, o.Items[0].Options, 1)
	assert.Equal(t, "Barbecue", o.Items[0].Options[0].ChoiceName)
	require.Len(t, o.Restaurants, 2)
	assert.InDelta(t, 2.5, o.Restaurants[0].DeliveryFee, 1e-9)
}

func TestOrderValidation(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "jean@example.com")

	body := checkoutPayload()
	body["items"] = []gin.H{}
	w, _ := doJSON(t, r, http.MethodPost, "/api/orders", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = checkoutPayload()
	delete(body, "address")
	w, _ = doJSON(t, r, http.MethodPost, "/api/orders", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Submitting the same checkout payload twice creates two distinct
// orders: there is no idempotency key. Known gap, asserted here as the
// current behavior.
func TestDuplicateCheckoutCreatesTwoOrders(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "jean@example.com")

	for i := 0; i < 2; i++ {
		w, _ := doJSON(t, r, http.MethodPost, "/api/orders", token, checkoutPayload())
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, e := doJSON(t, r, http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []orderOut
	require.NoError(t, json.Unmarshal(e.Data, &list))
	require.Len(t, list, 2)
	assert.Equal(t, list[0].OrderNumber, list[1].OrderNumber)
	assert.NotEqual(t, list[0].ID, list[1].ID)
}

// ----- Reference data -----

func TestRestaurantsAndMenu(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "jean@example.com")

	w, e := doJSON(t, r, http.MethodGet, "/api/restaurants", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var restaurants []struct {
		ID          uint    `json:"ID"`
		Name        string  `json:"name"`
		DeliveryFee float64 `json:"deliveryFee"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &restaurants))
	require.Len(t, restaurants, 3)
	assert.Equal(t, "Chez Marco", restaurants[0].Name)
	assert.InDelta(t, 2.5, restaurants[0].DeliveryFee, 1e-9)

	w, e = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/restaurant?restaurantId=%d", restaurants[0].ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &detail))
	assert.Equal(t, "Chez Marco", detail.Name)

	w, e = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/menu?restaurantId=%d", restaurants[0].ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var menu []struct {
		Kind    string  `json:"kind"`
		Name    string  `json:"name"`
		Price   float64 `json:"price"`
		Options []struct {
			Name    string `json:"name"`
			Choices []struct {
				Name  string  `json:"name"`
				Price float64 `json:"price"`
			} `json:"choices"`
		} `json:"options"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &menu))
	require.Len(t, menu, 5)

	// sections interleave with items in display order
	assert.Equal(t, "section", menu[0].Kind)
	assert.Equal(t, "Pizzas", menu[0].Name)
	assert.Equal(t, "item", menu[1].Kind)
	assert.Equal(t, "Margherita", menu[1].Name)
	require.Len(t, menu[1].Options, 1)
	require.Len(t, menu[1].Options[0].Choices, 2)
	assert.Equal(t, "section", menu[3].Kind)

	// sections are not orderable and carry no price
	assert.Zero(t, menu[0].Price)

	w, _ = doJSON(t, r, http.MethodGet, "/api/menu?restaurantId=9999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/menu", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
