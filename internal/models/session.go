package models

// Outcome is the result of a single lottery draw.
type Outcome string

const (
	OutcomeWin  Outcome = "Win"
	OutcomeLoss Outcome = "Loss"
)

// SessionDraws is the fixed number of draws per purchased card.
const SessionDraws = 5

// LotterySession is the live state of one purchased lottery card between
// purchase and full draw-down. The outcome sequence and prize pool are fixed
// at creation and never mutated; only DrawsLeft changes, and the session is
// removed from the account the moment it reaches zero.
type LotterySession struct {
	CardID          string          `bson:"cardId" json:"cardId"`
	CardName        string          `bson:"cardName" json:"cardName"`
	Tier            Tier            `bson:"tier" json:"tier"`
	DrawsLeft       int             `bson:"drawsLeft" json:"drawsLeft"`
	OutcomeSequence []Outcome       `bson:"outcomeSequence" json:"outcomeSequence"`
	PrizePool       []InventoryItem `bson:"prizePool" json:"prizePool"`
	// PrizeByDraw maps each draw index to the id of the prize revealed there,
	// or "" for a Loss slot. Computed once at creation so settlement is a
	// direct lookup instead of a scan for an unclaimed id.
	PrizeByDraw []string `bson:"prizeByDraw" json:"prizeByDraw"`
}

// DrawIndex is the 0-based index into OutcomeSequence of the next draw.
func (s *LotterySession) DrawIndex() int {
	return SessionDraws - s.DrawsLeft
}

// PrizeForDraw returns the prize committed to the given draw index, if any.
func (s *LotterySession) PrizeForDraw(idx int) (InventoryItem, bool) {
	if idx < 0 || idx >= len(s.PrizeByDraw) || s.PrizeByDraw[idx] == "" {
		return InventoryItem{}, false
	}
	id := s.PrizeByDraw[idx]
	for _, p := range s.PrizePool {
		if p.ID == id {
			return p, true
		}
	}
	return InventoryItem{}, false
}

// Advance consumes one draw and returns the remaining count.
func (s *LotterySession) Advance() int {
	s.DrawsLeft--
	return s.DrawsLeft
}

// Exhausted reports whether all draws have been consumed.
func (s *LotterySession) Exhausted() bool {
	return s.DrawsLeft <= 0
}
