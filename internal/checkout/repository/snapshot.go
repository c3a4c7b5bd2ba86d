package repository

import (
	"context"

	"github.com/fekuna/omnipos-register-service/internal/checkout/dto"
	"github.com/fekuna/omnipos-register-service/internal/model"
	"github.com/fekuna/omnipos-register-service/internal/store"
)

type SnapshotRepository struct {
	db store.Store
}

func NewSnapshotRepository(db store.Store) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Settle mutates customer and product state from their pre-transaction
// values and appends the record last, all inside one document update, so a
// single snapshot write carries the consistent result.
func (r *SnapshotRepository) Settle(_ context.Context, txn *model.Transaction) error {
	return r.db.Update(func(doc *store.Document) error {
		// Customer: purchase total, then the two-sided credit adjustment.
		// A missing customer is a walk-in sale; the record still lands.
		for i := range doc.Customers {
			if doc.Customers[i].ID == txn.CustomerID {
				c := &doc.Customers[i]
				c.TotalPurchases = c.TotalPurchases.Add(txn.Total)
				c.Credit = c.Credit.Sub(txn.CreditUsed).Add(txn.NewCredit)
				break
			}
		}

		// Stock: no floor, unknown product ids are skipped.
		for _, item := range txn.Items {
			for i := range doc.Products {
				if doc.Products[i].ID == item.ID {
					doc.Products[i].Stock -= item.Quantity
					break
				}
			}
		}

		doc.Transactions = append(doc.Transactions, *txn)
		return nil
	})
}

func (r *SnapshotRepository) FindAll(_ context.Context, f *dto.TransactionFilters) ([]model.Transaction, error) {
	var txns []model.Transaction
	r.db.View(func(doc *store.Document) {
		txns = make([]model.Transaction, 0, len(doc.Transactions))
		for _, t := range doc.Transactions {
			if f != nil && f.CustomerID != "" && t.CustomerID != f.CustomerID {
				continue
			}
			if f != nil && f.Type != "" && t.Type != f.Type {
				continue
			}
			txns = append(txns, t)
		}
	})
	return txns, nil
}
