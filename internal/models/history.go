package models

import "time"

// HistoryType tags the action that produced a history record.
type HistoryType string

const (
	HistoryDeposit         HistoryType = "Deposit"
	HistoryWithdraw        HistoryType = "Withdraw"
	HistoryLoan            HistoryType = "Loan"
	HistorySpin            HistoryType = "Spin"
	HistoryLotteryPurchase HistoryType = "Lottery Purchase"
	HistoryItemSold        HistoryType = "Item Sold"
	HistoryDeliveryFee     HistoryType = "Delivery Fee"
	HistoryInvestment      HistoryType = "Investment"
	HistoryTradeBuy        HistoryType = "Trade Buy"
	HistoryTradeSell       HistoryType = "Trade Sell"
	HistoryGameTopup       HistoryType = "Game TopUp"
	HistoryDailyProfit     HistoryType = "Daily Profit"
)

// HistoryStatus is the settlement state of a history record.
type HistoryStatus string

const (
	HistoryPending  HistoryStatus = "Pending"
	HistorySuccess  HistoryStatus = "Success"
	HistoryRejected HistoryStatus = "Rejected"
)

// HistoryRecord is an append-only ledger entry. Records are never mutated
// after creation except for status transitions performed by settlement flows
// (e.g. a sold item unlocking).
type HistoryRecord struct {
	ID     string        `bson:"id" json:"id"`
	Type   HistoryType   `bson:"type" json:"type"`
	Amount float64       `bson:"amount" json:"amount"`
	Date   time.Time     `bson:"date" json:"date"`
	Status HistoryStatus `bson:"status" json:"status"`
	Method string        `bson:"method,omitempty" json:"method,omitempty"`
}
