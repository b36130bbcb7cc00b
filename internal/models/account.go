package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is the single per-user aggregate. Every money-moving operation
// reads the whole document, mutates it in memory and writes it back as a
// unit, guarded by the Version field (compare-and-swap on update).
type Account struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Phone          string             `bson:"phone" json:"phone"`
	PasswordHash   string             `bson:"passwordHash" json:"-"`
	PaymentMethod  string             `bson:"paymentMethod" json:"paymentMethod"` // "bkash" or "nagad"
	Balance        float64            `bson:"balance" json:"balance"`
	EarningBalance float64            `bson:"earningBalance" json:"earningBalance"`
	SpinCount      int                `bson:"spinCount" json:"spinCount"`
	LastSpinDate   string             `bson:"lastSpinDate" json:"lastSpinDate"`
	ActiveLottery  *LotterySession    `bson:"activeLottery,omitempty" json:"activeLottery,omitempty"`
	Inventory      []InventoryItem    `bson:"inventory" json:"inventory"`
	PendingSales   []PendingSale      `bson:"pendingSales" json:"pendingSales"`
	Investments    []Investment       `bson:"investments" json:"investments"`
	CryptoHoldings []CryptoHolding    `bson:"cryptoHoldings" json:"cryptoHoldings"`
	History        []HistoryRecord    `bson:"history" json:"history"`
	Version        int64              `bson:"version" json:"-"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HasActiveSession reports whether a lottery session is currently open.
func (a *Account) HasActiveSession() bool {
	return a.ActiveLottery != nil
}

// AddInventory prepends an item, newest first as the client renders it.
func (a *Account) AddInventory(item InventoryItem) {
	a.Inventory = append([]InventoryItem{item}, a.Inventory...)
}

// RemoveInventory removes the item with the given id and returns it.
func (a *Account) RemoveInventory(id string) (InventoryItem, bool) {
	for i, item := range a.Inventory {
		if item.ID == id {
			a.Inventory = append(a.Inventory[:i], a.Inventory[i+1:]...)
			return item, true
		}
	}
	return InventoryItem{}, false
}

// InventoryByID looks up an item without removing it.
func (a *Account) InventoryByID(id string) (InventoryItem, bool) {
	for _, item := range a.Inventory {
		if item.ID == id {
			return item, true
		}
	}
	return InventoryItem{}, false
}

// AppendHistory prepends a record, newest first as the client renders it.
func (a *Account) AppendHistory(rec HistoryRecord) {
	a.History = append([]HistoryRecord{rec}, a.History...)
}
