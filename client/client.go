// Package client is the app-side API layer: one HTTP client with a
// fixed timeout, a persisted bearer token, and typed wrappers for every
// backend route. Failed calls are reported as *APIError; there is no
// retry logic.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/TheLiloji/UberV3-sub000/client/checkout"
)

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
}

// New builds a client for the given backend base URL, e.g.
// "https://api.example.com". The HTTP timeout is 10 seconds.
func New(baseURL string, tokens TokenStore) *Client {
	if tokens == nil {
		tokens = &MemoryTokenStore{}
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		tokens:  tokens,
	}
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// envelope mirrors the backend's response wrapper.
type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

func (c *Client) do(method, path string, body, out any, authed bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token, err := c.tokens.Token()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	return decode(res, out)
}

func decode(res *http.Response, out any) error {
	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return &APIError{StatusCode: res.StatusCode, Message: "invalid response"}
	}
	if res.StatusCode >= 400 {
		return &APIError{StatusCode: res.StatusCode, Message: env.Error}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

// ----- Auth -----

type User struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	AvatarURL string `json:"avatarUrl"`
}

type RegisterIn struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

func (c *Client) Register(in RegisterIn) (*User, error) {
	var u User
	if err := c.do(http.MethodPost, "/api/auth/register", in, &u, false); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login authenticates and persists the returned token for later calls.
func (c *Client) Login(email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, &APIError{StatusCode: res.StatusCode, Message: "invalid response"}
	}
	if res.StatusCode >= 400 {
		return nil, &APIError{StatusCode: res.StatusCode, Message: env.Error}
	}

	if err := c.tokens.SetToken(env.Token); err != nil {
		return nil, err
	}

	var u User
	if err := json.Unmarshal(env.User, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Logout drops the stored token.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

func (c *Client) Profile() (*User, error) {
	var u User
	if err := c.do(http.MethodGet, "/api/auth/profile", nil, &u, true); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateAccountIn carries the editable profile fields; empty fields are
// left unchanged. Avatar, when set, is uploaded as a multipart file.
type UpdateAccountIn struct {
	FirstName  string
	LastName   string
	Email      string
	AvatarName string
	Avatar     io.Reader
}

func (c *Client) UpdateAccount(in UpdateAccountIn) (*User, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"firstName": in.FirstName,
		"lastName":  in.LastName,
		"email":     in.Email,
	}
	for k, v := range fields {
		if v == "" {
			continue
		}
		if err := w.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	if in.Avatar != nil {
		fw, err := w.CreateFormFile("avatar", in.AvatarName)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(fw, in.Avatar); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPut, c.baseURL+"/api/auth/account", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	token, err := c.tokens.Token()
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var u User
	if err := decode(res, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ----- Addresses -----

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Address struct {
	ID                   uint        `json:"id"`
	Label                string      `json:"label"`
	Address              string      `json:"address"`
	DeliveryInstructions string      `json:"deliveryInstructions,omitempty"`
	DeliveryMethod       string      `json:"deliveryMethod"`
	DeliveryOption       string      `json:"deliveryOption,omitempty"`
	Icon                 string      `json:"icon"`
	Coordinates          Coordinates `json:"coordinates"`
}

func (c *Client) Addresses() ([]Address, error) {
	var out []Address
	if err := c.do(http.MethodGet, "/api/addresses", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAddress(a Address) (*Address, error) {
	var out Address
	if err := c.do(http.MethodPost, "/api/addresses", a, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAddress(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/addresses/%d", id), nil, nil, true)
}

// ----- Payment methods -----

type PaymentMethod struct {
	ID        uint   `json:"ID"`
	Type      string `json:"type"`
	Label     string `json:"label"`
	Icon      string `json:"icon"`
	IsDefault bool   `json:"isDefault"`
}

func (c *Client) PaymentMethods() ([]PaymentMethod, error) {
	var out []PaymentMethod
	if err := c.do(http.MethodGet, "/api/payment-methods", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePaymentMethod(pm PaymentMethod) (*PaymentMethod, error) {
	var out PaymentMethod
	if err := c.do(http.MethodPost, "/api/payment-methods", pm, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePaymentMethod(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/payment-methods/%d", id), nil, nil, true)
}

func (c *Client) SetDefaultPaymentMethod(id uint) (*PaymentMethod, error) {
	var out PaymentMethod
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/payment-methods/%d/default", id), nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// ----- Orders -----

// OrderSummary is what the order history screen renders.
type OrderSummary struct {
	ID           uint    `json:"ID"`
	OrderNumber  string  `json:"orderNumber"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	Subtotal     float64 `json:"subtotal"`
	DeliveryFees float64 `json:"deliveryFees"`
	Total        float64 `json:"total"`
}

// CreateOrder posts the checkout payload. The cart should be cleared
// only after this returns without error; on failure the cart is kept so
// the user can resubmit (which creates a second order, a known gap).
func (c *Client) CreateOrder(o checkout.Order) (*OrderSummary, error) {
	var out OrderSummary
	if err := c.do(http.MethodPost, "/api/orders", o, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Orders() ([]OrderSummary, error) {
	var out []OrderSummary
	if err := c.do(http.MethodGet, "/api/orders", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// ----- Reference data -----

type Restaurant struct {
	ID           uint    `json:"ID"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Category     string  `json:"category"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"deliveryTime"`
	DeliveryFee  float64 `json:"deliveryFee"`
	Address      string  `json:"address"`
}

// MenuEntry is one row of a restaurant's menu; Kind distinguishes
// section headers from orderable items.
type MenuEntry struct {
	ID          uint    `json:"ID"`
	Kind        string  `json:"kind"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Options     []struct {
		Name     string `json:"name"`
		Required bool   `json:"required"`
		Choices  []struct {
			Name  string  `json:"name"`
			Price float64 `json:"price"`
		} `json:"choices"`
	} `json:"options,omitempty"`
}

func (c *Client) Restaurants() ([]Restaurant, error) {
	var out []Restaurant
	if err := c.do(http.MethodGet, "/api/restaurants", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Restaurant(id uint) (*Restaurant, error) {
	var out Restaurant
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/restaurant?restaurantId=%d", id), nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Menu(restaurantID uint) ([]MenuEntry, error) {
	var out []MenuEntry
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/menu?restaurantId=%d", restaurantID), nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// FeeTable builds the delivery fee lookup used by checkout from the
// restaurant reference data.
func FeeTable(restaurants []Restaurant) checkout.FeeTable {
	t := make(checkout.FeeTable, len(restaurants))
	for _, r := range restaurants {
		t[fmt.Sprint(r.ID)] = r.DeliveryFee
	}
	return t
}
