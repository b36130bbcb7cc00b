package models

import "time"

// ItemCategory distinguishes cash prizes from physical products.
type ItemCategory string

const (
	ItemCash    ItemCategory = "Cash"
	ItemProduct ItemCategory = "Product"
)

// InventoryItem is a won prize owned by the account. Created when a draw
// reveals a Win; removed when the item is sold or sent for delivery.
type InventoryItem struct {
	ID          string       `bson:"id" json:"id"`
	Name        string       `bson:"name" json:"name"`
	Category    ItemCategory `bson:"category" json:"category"`
	Value       float64      `bson:"value" json:"value"`
	LotteryName string       `bson:"lotteryName" json:"lotteryName"`
	ObtainedAt  time.Time    `bson:"obtainedAt" json:"obtainedAt"`
}

// SaleStatus is the settlement state of a pending sale.
type SaleStatus string

const (
	SalePending   SaleStatus = "Pending"
	SaleCompleted SaleStatus = "Completed"
)

// PendingSale is an inventory item that has been sold back and is waiting
// out its unlock timer before the money lands in the earning balance.
type PendingSale struct {
	ID         string     `bson:"id" json:"id"`
	Name       string     `bson:"name" json:"name"`
	Amount     float64    `bson:"amount" json:"amount"`
	SoldAt     time.Time  `bson:"soldAt" json:"soldAt"`
	UnlockTime time.Time  `bson:"unlockTime" json:"unlockTime"`
	Status     SaleStatus `bson:"status" json:"status"`
}
