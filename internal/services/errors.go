package services

import "errors"

// User-recoverable precondition failures. These are checked synchronously
// before any mutation and never leave partial state behind.
var (
	// ErrSessionInProgress: purchase attempted while a lottery session is
	// active. The caller should be sent to the draw flow.
	ErrSessionInProgress = errors.New("a lottery session is already in progress")

	// ErrInsufficientFunds: the balance does not cover the requested amount.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNoActiveSession: draw attempted with no active lottery session.
	ErrNoActiveSession = errors.New("no active lottery session")

	// ErrUnknownCard: the card id is not in the catalog.
	ErrUnknownCard = errors.New("unknown lottery card")

	// ErrUnknownPlan: the investment plan id is not in the catalog.
	ErrUnknownPlan = errors.New("unknown investment plan")

	// ErrUnknownProduct: the game top-up product id is not in the catalog.
	ErrUnknownProduct = errors.New("unknown game product")

	// ErrUnknownToken: the crypto symbol is not tradable.
	ErrUnknownToken = errors.New("unknown crypto token")

	// ErrItemNotFound: the inventory item id is not owned by the account.
	ErrItemNotFound = errors.New("inventory item not found")

	// ErrAlreadyClaimed: the daily profit was already claimed today.
	ErrAlreadyClaimed = errors.New("daily profit already claimed today")

	// ErrMinimumBalance: the earning balance is below the withdrawal floor.
	ErrMinimumBalance = errors.New("earning balance below withdrawal minimum")

	// ErrInvalidAmount: a non-positive or malformed amount was submitted.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrEmailTaken: registration attempted with an existing email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials: login failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
