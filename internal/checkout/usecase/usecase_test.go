package usecase

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fekuna/omnipos-register-service/internal/checkout"
	"github.com/fekuna/omnipos-register-service/internal/checkout/dto"
	"github.com/fekuna/omnipos-register-service/internal/checkout/repository"
	"github.com/fekuna/omnipos-register-service/internal/model"
	"github.com/fekuna/omnipos-register-service/internal/store"
	"github.com/fekuna/omnipos-register-service/internal/store/snapshot"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCheckout(t *testing.T) (checkout.UseCase, *snapshot.Store) {
	t.Helper()
	st := snapshot.NewEmpty(&snapshot.Config{
		SnapshotPath: filepath.Join(t.TempDir(), "pos_db.json"),
	}, zap.NewNop())
	return NewCheckoutUseCase(repository.NewSnapshotRepository(st), zap.NewNop()), st
}

func seedProduct(t *testing.T, st *snapshot.Store, id string, price string, stock int) {
	t.Helper()
	require.NoError(t, st.Update(func(doc *store.Document) error {
		doc.Products = append(doc.Products, model.Product{
			ID:    id,
			Name:  "Product " + id,
			Price: decimal.RequireFromString(price),
			Stock: stock,
		})
		return nil
	}))
}

func seedCustomer(t *testing.T, st *snapshot.Store, id string, credit string) {
	t.Helper()
	require.NoError(t, st.Update(func(doc *store.Document) error {
		doc.Customers = append(doc.Customers, model.Customer{
			ID:     id,
			Name:   "Customer " + id,
			Credit: decimal.RequireFromString(credit),
		})
		return nil
	}))
}

func productStock(st *snapshot.Store, id string) int {
	stock := 0
	st.View(func(doc *store.Document) {
		for _, p := range doc.Products {
			if p.ID == id {
				stock = p.Stock
			}
		}
	})
	return stock
}

func TestCreateTransactionDecrementsStock(t *testing.T) {
	uc, st := newTestCheckout(t)
	seedProduct(t, st, "p1", "12", 10)

	_, err := uc.CreateTransaction(context.Background(), &dto.CreateTransactionInput{
		Items:    []model.LineItem{{ID: "p1", Name: "Cable", Price: decimal.RequireFromString("12"), Quantity: 2}},
		Subtotal: decimal.RequireFromString("24"),
		Total:    decimal.RequireFromString("24"),
		Cash:     decimal.RequireFromString("24"),
	})
	require.NoError(t, err)
	require.Equal(t, 8, productStock(st, "p1"))
}

func TestCreateTransactionAllowsNegativeStock(t *testing.T) {
	uc, st := newTestCheckout(t)
	seedProduct(t, st, "p1", "12", 1)

	_, err := uc.CreateTransaction(context.Background(), &dto.CreateTransactionInput{
		Items: []model.LineItem{{ID: "p1", Price: decimal.RequireFromString("12"), Quantity: 3}},
		Total: decimal.RequireFromString("36"),
	})
	require.NoError(t, err)
	require.Equal(t, -2, productStock(st, "p1"))
}

func TestCreateTransactionAppliesCreditPolicy(t *testing.T) {
	uc, st := newTestCheckout(t)
	seedCustomer(t, st, "c1", "0")

	_, err := uc.CreateTransaction(context.Background(), &dto.CreateTransactionInput{
		CustomerID: "c1",
		Total:      decimal.RequireFromString("100"),
		CreditUsed: decimal.RequireFromString("5"),
		NewCredit:  decimal.RequireFromString("20"),
	})
	require.NoError(t, err)

	st.View(func(doc *store.Document) {
		c := doc.Customers[0]
		require.True(t, c.Credit.Equal(decimal.RequireFromString("15")),
			"credit is %s", c.Credit)
		require.True(t, c.TotalPurchases.Equal(decimal.RequireFromString("100")))
	})
}

func TestCreateTransactionRejectsNonPositiveQuantity(t *testing.T) {
	uc, st := newTestCheckout(t)
	seedProduct(t, st, "p1", "12", 10)

	_, err := uc.CreateTransaction(context.Background(), &dto.CreateTransactionInput{
		Items: []model.LineItem{{ID: "p1", Quantity: 0}},
	})
	require.ErrorIs(t, err, store.ErrInvalidQuantity)

	// Validation failed before settlement: no stock movement, no log entry.
	require.Equal(t, 10, productStock(st, "p1"))
	txns, err := uc.ListTransactions(context.Background(), &dto.TransactionFilters{})
	require.NoError(t, err)
	require.Empty(t, txns)
}

func TestCreateTransactionSkipsUnknownProductsAndCustomers(t *testing.T) {
	uc, st := newTestCheckout(t)
	seedProduct(t, st, "p1", "12", 10)

	// Walk-in sale with one unknown line: the known product still moves and
	// the record still lands.
	txn, err := uc.CreateTransaction(context.Background(), &dto.CreateTransactionInput{
		CustomerID: "nobody",
		Items: []model.LineItem{
			{ID: "p1", Price: decimal.RequireFromString("12"), Quantity: 1},
			{ID: "ghost", Price: decimal.RequireFromString("1"), Quantity: 4},
		},
		Total: decimal.RequireFromString("16"),
	})
	require.NoError(t, err)
	require.Equal(t, model.TransactionTypeSale, txn.Type)
	require.Equal(t, 9, productStock(st, "p1"))

	txns, err := uc.ListTransactions(context.Background(), &dto.TransactionFilters{CustomerID: "nobody"})
	require.NoError(t, err)
	require.Len(t, txns, 1)
}

func TestCartMergesAndClamps(t *testing.T) {
	cart := checkout.NewCart(decimal.RequireFromString("0.1"))
	item := model.LineItem{ID: "p1", Name: "Cable", Price: decimal.RequireFromString("10"), Quantity: 1}

	cart.AddItem(item)
	cart.AddItem(item)
	require.Len(t, cart.Items(), 1)
	require.Equal(t, 2, cart.Items()[0].Quantity)

	require.True(t, cart.Subtotal().Equal(decimal.RequireFromString("20")))
	require.True(t, cart.Tax().Equal(decimal.RequireFromString("2")))
	require.True(t, cart.Total().Equal(decimal.RequireFromString("22")))

	cart.UpdateQuantity("p1", -1)
	require.Equal(t, 1, cart.Items()[0].Quantity)

	// Clamped at zero: the line disappears instead of going negative.
	cart.UpdateQuantity("p1", -5)
	require.True(t, cart.Empty())
}

func TestProcessCartSettlesAndClears(t *testing.T) {
	uc, st := newTestCheckout(t)
	seedProduct(t, st, "p1", "10", 5)
	seedCustomer(t, st, "c1", "0")

	cart := checkout.NewCart(decimal.RequireFromString("0.1"))
	cart.SetCustomer("c1")
	cart.AddItem(model.LineItem{ID: "p1", Name: "Cable", Price: decimal.RequireFromString("10"), Quantity: 2})

	txn, err := uc.ProcessCart(context.Background(), cart)
	require.NoError(t, err)
	require.True(t, txn.Subtotal.Equal(decimal.RequireFromString("20")))
	require.True(t, txn.Tax.Equal(decimal.RequireFromString("2")))
	require.True(t, txn.Total.Equal(decimal.RequireFromString("22")))
	require.True(t, txn.Cash.Equal(txn.Total))

	require.True(t, cart.Empty())
	require.Empty(t, cart.CustomerID())
	require.Equal(t, 3, productStock(st, "p1"))

	st.View(func(doc *store.Document) {
		require.True(t, doc.Customers[0].TotalPurchases.Equal(decimal.RequireFromString("22")))
	})
}
