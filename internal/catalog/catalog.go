// Package catalog holds the fixed product catalogs: lottery cards, spin wheel
// segments, investment plans, crypto tokens and game top-up products. None of
// these are persisted or user-editable.
package catalog

import "github.com/luckytaka/earning-app-backend/internal/models"

// Cards is the full lottery card catalog: 5 VIP cards at 500 and 5 Standard
// cards at 100.
var Cards = []models.CardDefinition{
	{ID: "vip1", Name: "Royal Chest", Tier: models.TierVIP, Price: 500, Icon: "fa-chess-king", Color: "from-yellow-400 to-amber-600", Prizes: []string{"iPhone 15", "5000 Tk", "Gold Ring"}},
	{ID: "vip2", Name: "Diamond Box", Tier: models.TierVIP, Price: 500, Icon: "fa-gem", Color: "from-cyan-400 to-blue-600", Prizes: []string{"Laptop", "3000 Tk", "Diamond"}},
	{ID: "vip3", Name: "Golden Egg", Tier: models.TierVIP, Price: 500, Icon: "fa-egg", Color: "from-yellow-300 to-yellow-500", Prizes: []string{"Smart TV", "2000 Tk", "Cash"}},
	{ID: "vip4", Name: "Platinum Case", Tier: models.TierVIP, Price: 500, Icon: "fa-briefcase", Color: "from-slate-300 to-slate-500", Prizes: []string{"Bike", "10000 Tk", "Watch"}},
	{ID: "vip5", Name: "Mystery Vault", Tier: models.TierVIP, Price: 500, Icon: "fa-dungeon", Color: "from-purple-500 to-indigo-600", Prizes: []string{"PS5", "5000 Tk", "Gadgets"}},
	{ID: "std1", Name: "Silver Pack", Tier: models.TierStandard, Price: 100, Icon: "fa-box-open", Color: "from-gray-300 to-gray-400", Prizes: []string{"200 Tk", "Headphones", "T-Shirt"}},
	{ID: "std2", Name: "Bronze Bag", Tier: models.TierStandard, Price: 100, Icon: "fa-shopping-bag", Color: "from-orange-700 to-orange-900", Prizes: []string{"150 Tk", "Cap", "Mug"}},
	{ID: "std3", Name: "Lucky Pouch", Tier: models.TierStandard, Price: 100, Icon: "fa-sack-dollar", Color: "from-green-500 to-emerald-700", Prizes: []string{"300 Tk", "Mobile Recharge", "Snacks"}},
	{ID: "std4", Name: "Starter Kit", Tier: models.TierStandard, Price: 100, Icon: "fa-toolbox", Color: "from-blue-400 to-blue-500", Prizes: []string{"120 Tk", "Pen Drive", "Notebook"}},
	{ID: "std5", Name: "Mini Chest", Tier: models.TierStandard, Price: 100, Icon: "fa-archive", Color: "from-teal-400 to-teal-600", Prizes: []string{"250 Tk", "Keychain", "Toy"}},
}

// CardByID looks up a card definition by its catalog id.
func CardByID(id string) (models.CardDefinition, bool) {
	for _, c := range Cards {
		if c.ID == id {
			return c, true
		}
	}
	return models.CardDefinition{}, false
}

// SpinSegment is one wedge of the spin wheel.
type SpinSegment struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// SpinSegments in wheel order. Two zero wedges keep the expected payout
// below the paid spin cost.
var SpinSegments = []SpinSegment{
	{Label: "0 Tk", Value: 0},
	{Label: "10 Tk", Value: 10},
	{Label: "50 Tk", Value: 50},
	{Label: "20 Tk", Value: 20},
	{Label: "0 Tk", Value: 0},
	{Label: "100 Tk", Value: 100},
}

// InvestmentPlan is a fixed daily-return plan.
type InvestmentPlan struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	DailyROI     float64 `json:"dailyRoi"`
	DurationDays int     `json:"duration"`
}

var InvestmentPlans = []InvestmentPlan{
	{ID: "plan1", Name: "Starter Plan", Amount: 500, DailyROI: 50, DurationDays: 7},
	{ID: "plan2", Name: "Pro Investor", Amount: 2000, DailyROI: 250, DurationDays: 30},
	{ID: "plan3", Name: "King Plan", Amount: 5000, DailyROI: 700, DurationDays: 30},
}

// PlanByID looks up an investment plan.
func PlanByID(id string) (InvestmentPlan, bool) {
	for _, p := range InvestmentPlans {
		if p.ID == id {
			return p, true
		}
	}
	return InvestmentPlan{}, false
}

// CryptoToken is a tradable paper token with its starting price.
type CryptoToken struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
}

var CryptoTokens = []CryptoToken{
	{Symbol: "BTC", Name: "Bitcoin", BasePrice: 65000},
	{Symbol: "ETH", Name: "Ethereum", BasePrice: 3500},
	{Symbol: "BNB", Name: "Binance", BasePrice: 600},
	{Symbol: "USDT", Name: "Tether", BasePrice: 1},
}

// GameProduct is a game top-up pack sold at a discount to market price.
type GameProduct struct {
	ID          string  `json:"id"`
	Game        string  `json:"game"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	MarketPrice float64 `json:"marketPrice"`
}

var GameProducts = []GameProduct{
	{ID: "ff1", Game: "Free Fire", Name: "115 Diamonds", Price: 85, MarketPrice: 100},
	{ID: "ff2", Game: "Free Fire", Name: "Weekly Member", Price: 155, MarketPrice: 190},
	{ID: "pubg1", Game: "PUBG Mobile", Name: "60 UC", Price: 95, MarketPrice: 120},
	{ID: "cod1", Game: "Call of Duty", Name: "80 CP", Price: 90, MarketPrice: 110},
}

// ProductByID looks up a game top-up product.
func ProductByID(id string) (GameProduct, bool) {
	for _, p := range GameProducts {
		if p.ID == id {
			return p, true
		}
	}
	return GameProduct{}, false
}
