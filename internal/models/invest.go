package models

import "time"

// InvestmentStatus is the lifecycle state of an investment.
type InvestmentStatus string

const (
	InvestmentActive    InvestmentStatus = "Active"
	InvestmentCompleted InvestmentStatus = "Completed"
)

// Investment is a purchased plan accruing a fixed daily return.
type Investment struct {
	ID             string           `bson:"id" json:"id"`
	PlanID         string           `bson:"planId" json:"planId"`
	PlanName       string           `bson:"planName" json:"planName"`
	InvestedAmount float64          `bson:"investedAmount" json:"investedAmount"`
	DailyReturn    float64          `bson:"dailyReturn" json:"dailyReturn"`
	StartDate      time.Time        `bson:"startDate" json:"startDate"`
	EndDate        time.Time        `bson:"endDate" json:"endDate"`
	LastClaimDate  string           `bson:"lastClaimDate" json:"lastClaimDate"` // calendar-day stamp, one claim per day
	Status         InvestmentStatus `bson:"status" json:"status"`
}

// CryptoHolding is a paper-trading position in one token.
type CryptoHolding struct {
	Symbol      string  `bson:"symbol" json:"symbol"`
	Amount      float64 `bson:"amount" json:"amount"`
	AvgBuyPrice float64 `bson:"avgBuyPrice" json:"avgBuyPrice"`
}
