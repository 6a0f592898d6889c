package models

import "github.com/shopspring/decimal"

// OrderStatus mirrors the stored status of an order.
type OrderStatus string

// Order is the database representation of the order columns the ledger reads.
type Order struct {
	OrderID     string          `json:"orderID"`
	BranchID    string          `json:"branchID"`
	Status      OrderStatus     `json:"status"`
	Total       decimal.Decimal `json:"total"`
	PaymentType string          `json:"paymentType"`
}
