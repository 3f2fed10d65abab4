package shopclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/checkout"
	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/models"
)

func TestCreateOrder(t *testing.T) {
	var got checkout.OrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders/place", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Order placed successfully", "order_id": 7, "order_ref": "ref-7",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	ref, err := c.CreateOrder(context.Background(), checkout.OrderRequest{
		CustomerName:    "Asha",
		CustomerPhone:   "9876543210",
		ShippingAddress: "12 Beach Rd",
		Items:           []checkout.OrderLine{{ProductID: "p1", Quantity: 2}},
		TotalAmount:     1000,
	})

	require.NoError(t, err)
	assert.Equal(t, "ref-7", ref)
	assert.Equal(t, "Asha", got.CustomerName)
	assert.InDelta(t, 1000, got.TotalAmount, 0.001)
}

func TestCreateOrderServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "insufficient stock for product: Silk Saree"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).CreateOrder(context.Background(), checkout.OrderRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock")
}

func TestOrdersByPhone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/track/9876543210", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Order{{ID: 2, OrderRef: "ref-2"}, {ID: 1, OrderRef: "ref-1"}})
	}))
	defer srv.Close()

	orders, err := New(srv.URL).OrdersByPhone(context.Background(), "9876543210")

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ref-2", orders[0].OrderRef)
}

func TestOrdersByPhoneTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := New(srv.URL).OrdersByPhone(context.Background(), "9876543210")
	assert.Error(t, err)
}

func TestListProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Product{{ID: 1, Title: "Silk Saree", Price: 500}})
	}))
	defer srv.Close()

	products, err := New(srv.URL).ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Silk Saree", products[0].Title)
}

func TestListAllOrdersSendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/orders", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]models.Order{})
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListAllOrders(context.Background(), "tok-1")
	assert.NoError(t, err)
}

func TestUpdateOrderStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/admin/orders/7/status", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Dispatched", body["status"])
		json.NewEncoder(w).Encode(map[string]string{"message": "Order status updated successfully"})
	}))
	defer srv.Close()

	err := New(srv.URL).UpdateOrderStatus(context.Background(), 7, models.OrderStatusDispatched, "tok-1")
	assert.NoError(t, err)
}
