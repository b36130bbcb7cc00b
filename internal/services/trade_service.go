package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"

	"github.com/luckytaka/earning-app-backend/internal/catalog"
	"github.com/luckytaka/earning-app-backend/internal/models"
	"github.com/luckytaka/earning-app-backend/internal/repositories"
	"github.com/luckytaka/earning-app-backend/pkg/lock"
	"github.com/luckytaka/earning-app-backend/pkg/notify"
)

// tradeFeeRate is the commission taken on both sides of a paper trade.
const tradeFeeRate = 0.02

// dustThreshold is the holding size below which a position is dropped
// after a sell.
const dustThreshold = 0.000001

// TokenQuote is a token with its current simulated price.
type TokenQuote struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

// PriceFeed simulates market prices as a random walk around each token's
// base price. Prices live in memory only; restarts reset to base.
type PriceFeed struct {
	mu     sync.Mutex
	rng    *rand.Rand
	prices map[string]float64
}

// NewPriceFeed creates a feed seeded at each token's base price.
func NewPriceFeed(rng *rand.Rand) *PriceFeed {
	prices := make(map[string]float64, len(catalog.CryptoTokens))
	for _, t := range catalog.CryptoTokens {
		prices[t.Symbol] = t.BasePrice
	}
	return &PriceFeed{rng: rng, prices: prices}
}

// Quotes advances every price one random-walk step of up to ±0.5% and
// returns the full board.
func (f *PriceFeed) Quotes() []TokenQuote {
	f.mu.Lock()
	defer f.mu.Unlock()

	quotes := make([]TokenQuote, 0, len(catalog.CryptoTokens))
	for _, t := range catalog.CryptoTokens {
		price := f.prices[t.Symbol] * (1 + (f.rng.Float64()-0.5)*0.01)
		f.prices[t.Symbol] = price
		quotes = append(quotes, TokenQuote{Symbol: t.Symbol, Name: t.Name, Price: price})
	}
	return quotes
}

// Price returns the current price for one token without advancing it.
func (f *PriceFeed) Price(symbol string) (float64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	price, ok := f.prices[symbol]
	return price, ok
}

// TradeService handles crypto paper-trading and game top-up purchases.
// Trades settle instantly at the feed price less commission; no real
// exchange is involved.
type TradeService struct {
	accountRepo repositories.AccountRepository
	locks       lock.Manager
	notifier    notify.Notifier
	feed        *PriceFeed
}

// NewTradeService creates a new TradeService
func NewTradeService(accountRepo repositories.AccountRepository, locks lock.Manager, notifier notify.Notifier, feed *PriceFeed) *TradeService {
	return &TradeService{
		accountRepo: accountRepo,
		locks:       locks,
		notifier:    notifier,
		feed:        feed,
	}
}

// Quotes returns the current price board.
func (s *TradeService) Quotes() []TokenQuote {
	return s.feed.Quotes()
}

// Buy debits the spend amount from the deposit balance and credits tokens
// at the current price less commission. Repeat buys merge into one holding
// at a volume-weighted average price.
func (s *TradeService) Buy(ctx context.Context, accountID primitive.ObjectID, symbol string, amount float64) (*models.CryptoHolding, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	price, ok := s.feed.Price(symbol)
	if !ok {
		return nil, ErrUnknownToken
	}

	release, err := s.locks.Acquire(ctx, accountID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to acquire account lock: %w", err)
	}
	defer release()

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if account.Balance < amount {
		return nil, ErrInsufficientFunds
	}

	tokens := (amount / price) * (1 - tradeFeeRate)
	account.Balance -= amount

	var holding *models.CryptoHolding
	for i := range account.CryptoHoldings {
		if account.CryptoHoldings[i].Symbol == symbol {
			holding = &account.CryptoHoldings[i]
			break
		}
	}
	if holding == nil {
		account.CryptoHoldings = append(account.CryptoHoldings, models.CryptoHolding{Symbol: symbol, AvgBuyPrice: price})
		holding = &account.CryptoHoldings[len(account.CryptoHoldings)-1]
	} else {
		total := holding.Amount + tokens
		holding.AvgBuyPrice = (holding.AvgBuyPrice*holding.Amount + price*tokens) / total
	}
	holding.Amount += tokens

	rec, err := newHistoryRecord(models.HistoryTradeBuy, amount, models.HistorySuccess, fmt.Sprintf("%s @ %.2f", symbol, price))
	if err != nil {
		return nil, err
	}
	account.AppendHistory(rec)

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save trade: %w", err)
	}

	slog.Info("Trade buy", "accountId", accountID.Hex(), "symbol", symbol, "spent", amount, "tokens", tokens)
	return holding, nil
}

// Sell converts tokens back to cash at the current price less commission
// and credits the proceeds to the earning balance. A residual position
// below the dust threshold is dropped.
func (s *TradeService) Sell(ctx context.Context, accountID primitive.ObjectID, symbol string, tokens float64) (float64, error) {
	if tokens <= 0 {
		return 0, ErrInvalidAmount
	}
	price, ok := s.feed.Price(symbol)
	if !ok {
		return 0, ErrUnknownToken
	}

	release, err := s.locks.Acquire(ctx, accountID.Hex())
	if err != nil {
		return 0, fmt.Errorf("failed to acquire account lock: %w", err)
	}
	defer release()

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to load account: %w", err)
	}

	idx := -1
	for i := range account.CryptoHoldings {
		if account.CryptoHoldings[i].Symbol == symbol {
			idx = i
			break
		}
	}
	if idx < 0 || account.CryptoHoldings[idx].Amount < tokens {
		return 0, ErrInsufficientFunds
	}

	proceeds := tokens * price * (1 - tradeFeeRate)
	account.CryptoHoldings[idx].Amount -= tokens
	if account.CryptoHoldings[idx].Amount < dustThreshold {
		account.CryptoHoldings = append(account.CryptoHoldings[:idx], account.CryptoHoldings[idx+1:]...)
	}
	account.EarningBalance += proceeds

	rec, err := newHistoryRecord(models.HistoryTradeSell, proceeds, models.HistorySuccess, fmt.Sprintf("%s @ %.2f", symbol, price))
	if err != nil {
		return 0, err
	}
	account.AppendHistory(rec)

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return 0, fmt.Errorf("failed to save trade: %w", err)
	}

	slog.Info("Trade sell", "accountId", accountID.Hex(), "symbol", symbol, "tokens", tokens, "proceeds", proceeds)
	return proceeds, nil
}

// Products returns the game top-up catalog.
func (s *TradeService) Products() []catalog.GameProduct {
	return catalog.GameProducts
}

// GameTopup debits a game top-up product from the deposit balance and
// records a pending order; the admin fulfils it in the game store.
func (s *TradeService) GameTopup(ctx context.Context, accountID primitive.ObjectID, productID, playerID string) error {
	product, ok := catalog.ProductByID(productID)
	if !ok {
		return ErrUnknownProduct
	}

	release, err := s.locks.Acquire(ctx, accountID.Hex())
	if err != nil {
		return fmt.Errorf("failed to acquire account lock: %w", err)
	}
	defer release()

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to load account: %w", err)
	}

	if account.Balance < product.Price {
		return ErrInsufficientFunds
	}

	account.Balance -= product.Price
	rec, err := newHistoryRecord(models.HistoryGameTopup, product.Price, models.HistoryPending, product.Game)
	if err != nil {
		return err
	}
	account.AppendHistory(rec)

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return fmt.Errorf("failed to save top-up: %w", err)
	}

	slog.Info("Game top-up ordered", "accountId", accountID.Hex(), "product", product.Name, "game", product.Game)
	s.notifier.Notify(fmt.Sprintf("🎮 *Game TopUp*\nUser: %s\nGame: %s\nPack: %s\nPlayer ID: `%s`\nPrice: %.0f Tk",
		account.Name, product.Game, product.Name, playerID, product.Price))

	return nil
}
