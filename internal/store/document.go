package store

import "github.com/fekuna/omnipos-register-service/internal/model"

// Document is the whole persisted state: five collections serialized as a
// single JSON object. There is no version field, so readers must tolerate
// missing arrays (see Normalize).
type Document struct {
	Customers      []model.Customer      `json:"customers"`
	Products       []model.Product       `json:"products"`
	Services       []model.Service       `json:"services"`
	Transactions   []model.Transaction   `json:"transactions"`
	ServiceTickets []model.ServiceTicket `json:"serviceTickets"`
}

// Normalize defaults absent collections to empty slices so a partial or
// hand-edited snapshot never surfaces nil slices to callers.
func (d *Document) Normalize() {
	if d.Customers == nil {
		d.Customers = []model.Customer{}
	}
	if d.Products == nil {
		d.Products = []model.Product{}
	}
	if d.Services == nil {
		d.Services = []model.Service{}
	}
	if d.Transactions == nil {
		d.Transactions = []model.Transaction{}
	}
	if d.ServiceTickets == nil {
		d.ServiceTickets = []model.ServiceTicket{}
	}
}
