package ordercontroller

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestFetchOrdersByPhone(t *testing.T) {
	db, mock := newMockDB(t)

	created := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	orderRows := sqlmock.NewRows([]string{
		"id", "order_ref", "customer_name", "customer_phone",
		"shipping_address", "total_amount", "status", "created_at",
	}).AddRow(1, "ref-1", "Asha", "9876543210", "12 Beach Rd", 1300.0, "Pending", created)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders" WHERE customer_phone = $1 ORDER BY created_at DESC`)).
		WithArgs("9876543210").
		WillReturnRows(orderRows)

	itemRows := sqlmock.NewRows([]string{
		"id", "order_id", "product_id", "title", "unit_price", "quantity",
	}).
		AddRow(10, 1, "p1", "Silk Saree", 500.0, 2).
		AddRow(11, 1, "p2", "Cotton Kurti", 300.0, 1)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_items" WHERE "order_items"."order_id" = $1`)).
		WillReturnRows(itemRows)

	orders, err := FetchOrdersByPhone(db, "9876543210")

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ref-1", orders[0].OrderRef)
	assert.Equal(t, models.OrderStatusPending, orders[0].Status)
	require.Len(t, orders[0].Items, 2)
	assert.Equal(t, "Silk Saree", orders[0].Items[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchOrdersByPhoneNoResults(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders" WHERE customer_phone = $1`)).
		WithArgs("9999999999").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	orders, err := FetchOrdersByPhone(db, "9999999999")

	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderDeductsStock(t *testing.T) {
	db, mock := newMockDB(t)

	productCols := []string{"id", "title", "description", "price", "stock", "in_stock"}

	mock.ExpectBegin()
	// Tracked product: row-locked read, then the stock deduction.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(productCols).
			AddRow(1, "Silk Saree", "handwoven", 500.0, 5, true))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "products" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Untracked product: no stock column to deduct, so no UPDATE.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(productCols).
			AddRow(2, "Cotton Kurti", "block print", 300.0, nil, true))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "order_items"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10).AddRow(11))
	mock.ExpectCommit()

	order, err := PlaceOrder(db, PlaceOrderRequest{
		CustomerName:    "Asha",
		CustomerPhone:   "9876543210",
		ShippingAddress: "12 Beach Rd",
		Items: []OrderItemInput{
			{ProductID: "1", Quantity: 2},
			{ProductID: "2", Quantity: 1},
		},
		TotalAmount: 1300,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, order.OrderRef)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 1300.0, order.TotalAmount)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Silk Saree", order.Items[0].Title)
	assert.Equal(t, 500.0, order.Items[0].UnitPrice)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderInsufficientStockRollsBack(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "price", "stock", "in_stock"}).
			AddRow(1, "Silk Saree", 500.0, 1, true))
	mock.ExpectRollback()

	_, err := PlaceOrder(db, PlaceOrderRequest{
		CustomerName:    "Asha",
		CustomerPhone:   "9876543210",
		ShippingAddress: "12 Beach Rd",
		Items:           []OrderItemInput{{ProductID: "1", Quantity: 2}},
		TotalAmount:     1000,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock for product: Silk Saree")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderOutOfStockProduct(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "price", "stock", "in_stock"}).
			AddRow(1, "Silk Saree", 500.0, 0, false))
	mock.ExpectRollback()

	_, err := PlaceOrder(db, PlaceOrderRequest{
		CustomerName:    "Asha",
		CustomerPhone:   "9876543210",
		ShippingAddress: "12 Beach Rd",
		Items:           []OrderItemInput{{ProductID: "1", Quantity: 1}},
		TotalAmount:     500,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "product out of stock: Silk Saree")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatus(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders" SET "status"=$1 WHERE id = $2`)).
		WithArgs("Packed", "1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := UpdateOrderStatus(db, "1", models.OrderStatusPacked)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders" SET "status"=$1 WHERE id = $2`)).
		WithArgs("Packed", "42").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := UpdateOrderStatus(db, "42", models.OrderStatusPacked)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
