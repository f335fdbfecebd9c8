package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoptui/store"
)

func TestFetchProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "title": "Mug", "price": 10.95, "image": "https://img/mug.png"},
			{"id": 2, "title": "Cap", "price": 5, "image": "https://img/cap.png"}
		]`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second, nil)
	products, err := c.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Mug", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("10.95")))
	assert.Equal(t, "https://img/mug.png", products[0].ImageURL)
}

func TestFetchProductsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second, nil)
	_, err := c.FetchProducts(context.Background())
	assert.ErrorContains(t, err, "unexpected status 500")
}

func TestSendOrder(t *testing.T) {
	var got struct {
		Products []struct {
			ProductID int `json:"productId"`
			Quantity  int `json:"quantity"`
		} `json:"products"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/carts", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 42}`))
	}))
	defer srv.Close()

	items := []store.CartItem{
		{ID: uuid.New(), Product: store.Product{ID: 7, Name: "Mug", Price: decimal.NewFromInt(10)}, Quantity: 2},
	}

	c := New(srv.URL, 2*time.Second, nil)
	message, err := c.SendOrder(context.Background(), items)
	require.NoError(t, err)
	assert.Equal(t, "Order #42 received.", message)

	require.Len(t, got.Products, 1)
	assert.Equal(t, 7, got.Products[0].ProductID)
	assert.Equal(t, 2, got.Products[0].Quantity)
}

func TestSendOrderServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second, nil)
	_, err := c.SendOrder(context.Background(), nil)
	assert.ErrorContains(t, err, "unexpected status 502")
}
