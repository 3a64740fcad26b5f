package engine

// Stock is a player's tradeable equity. Its price derives from the player's
// net worth; holdings map holder player id to units held. The registry is
// owned by the orchestrator, not by the player, because other players hold
// positions in it.
type Stock struct {
	PlayerID string         `json:"player_id"`
	Price    int            `json:"price"`
	Holdings map[string]int `json:"holdings"`
}

// NewStock creates an unheld stock for a player.
func NewStock(playerID string) *Stock {
	return &Stock{
		PlayerID: playerID,
		Price:    MinStockPrice,
		Holdings: make(map[string]int),
	}
}

// MinStockPrice keeps a share from ever being free.
const MinStockPrice = 1

// HeldBy returns the units the given holder owns.
func (s *Stock) HeldBy(holderID string) int {
	return s.Holdings[holderID]
}

// playerNetWorth is the fixed valuation formula: gold plus half the book
// value of routes (track plus train) plus half the book value of upgrades.
func playerNetWorth(p *Player) int {
	worth := p.Gold
	for _, r := range p.routes {
		worth += (r.GoldCost + r.TrainCost) / 2
	}
	for _, q := range p.queue {
		worth += (q.Route.GoldCost + q.Route.TrainCost) / 2
	}
	for _, u := range p.upgrades {
		worth += u.Cost / 2
	}
	return worth
}

// revalue recomputes the share price from the owner's net worth.
func (s *Stock) revalue(owner *Player) {
	owner.NetWorth = playerNetWorth(owner)
	s.Price = owner.NetWorth / StockPriceDivisor
	if s.Price < MinStockPrice {
		s.Price = MinStockPrice
	}
}
