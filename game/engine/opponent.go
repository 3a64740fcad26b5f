package engine

// GreedyPolicy is the default computer-opponent strategy: keep a gold buffer,
// expand the route network from owned cities toward the most profitable
// affordable destination, and pick up cheap upgrades once the network pays
// for itself. It is deterministic for a given game state.
type GreedyPolicy struct {
	// GoldBuffer is never spent; it covers upkeep swings.
	GoldBuffer int
	// MaxRoutes caps the network size (active plus queued).
	MaxRoutes int
	// UpgradeGold is the gold level above which upgrades become attractive.
	UpgradeGold int
}

// DefaultPolicy returns the policy computer players start with.
func DefaultPolicy() *GreedyPolicy {
	return &GreedyPolicy{
		GoldBuffer:  50,
		MaxRoutes:   8,
		UpgradeGold: 600,
	}
}

// Decide evaluates the current game state and may purchase one route and one
// upgrade per turn through the public orchestrator contracts.
func (g *GreedyPolicy) Decide(p *Player, info *TurnInfo, act Actions) {
	if act == nil || info == nil {
		return
	}

	if len(p.Routes())+len(p.QueuedRoutes()) < g.MaxRoutes {
		g.tryBuyRoute(p, act)
	}
	if p.Gold > g.UpgradeGold {
		g.tryBuyUpgrade(p, info, act)
	}
}

// tryBuyRoute picks the most profitable affordable proposal from any city
// the player already operates in, starting at the home city.
func (g *GreedyPolicy) tryBuyRoute(p *Player, act Actions) {
	trains := act.AdjustedTrains()
	if len(trains) == 0 {
		return
	}

	// Cheapest train that still carries cargo.
	chosen := trains[0]
	for _, t := range trains[1:] {
		if t.Cost < chosen.Cost && t.Train.CargoSpace > 0 {
			chosen = t
		}
	}

	budget := p.Gold - g.GoldBuffer

	var best *BuyableRoute
	bestIncome := 0
	for _, origin := range g.origins(p) {
		for _, pr := range act.PossibleRoutes(origin) {
			if pr.GoldCost+chosen.Cost > budget {
				continue
			}
			if g.hasRouteTo(p, pr.From, pr.To) {
				continue
			}
			cargo := BuildCargoPlan(pr.From, pr.To, chosen.Train)
			proposal := &BuyableRoute{
				From:      pr.From,
				To:        pr.To,
				Train:     chosen.Train,
				TrainCost: chosen.Cost,
				Cargo:     cargo,
				Distance:  pr.Distance,
				GoldCost:  pr.GoldCost,
				TurnCost:  pr.TurnCost,
			}
			income := (&Route{To: pr.To, Cargo: cargo}).IncomePerTurn()
			if best == nil || income > bestIncome {
				best = proposal
				bestIncome = income
			}
		}
	}

	if best != nil && bestIncome > 0 {
		act.BuyRoute(best)
	}
}

// tryBuyUpgrade buys the cheapest affordable catalog upgrade not yet owned.
func (g *GreedyPolicy) tryBuyUpgrade(p *Player, info *TurnInfo, act Actions) {
	owned := make(map[string]bool, len(p.Upgrades()))
	for _, u := range p.Upgrades() {
		owned[u.ID] = true
	}

	var cheapest *Upgrade
	for _, u := range info.Data.Upgrades {
		if owned[u.ID] || u.Cost > p.Gold-g.GoldBuffer {
			continue
		}
		if cheapest == nil || u.Cost < cheapest.Cost {
			cheapest = u
		}
	}

	if cheapest != nil {
		act.BuyUpgrade(cheapest.ID)
	}
}

// origins returns the cities the player can expand from: home first, then
// the far end of every active route.
func (g *GreedyPolicy) origins(p *Player) []*City {
	var cities []*City
	seen := make(map[string]bool)
	if p.HomeCity != nil {
		cities = append(cities, p.HomeCity)
		seen[p.HomeCity.ID] = true
	}
	for _, r := range p.Routes() {
		if !seen[r.To.ID] {
			cities = append(cities, r.To)
			seen[r.To.ID] = true
		}
	}
	return cities
}

// hasRouteTo reports whether the player already operates or queued a route
// between the two cities, in either direction.
func (g *GreedyPolicy) hasRouteTo(p *Player, from, to *City) bool {
	match := func(r *Route) bool {
		return (r.From.ID == from.ID && r.To.ID == to.ID) ||
			(r.From.ID == to.ID && r.To.ID == from.ID)
	}
	for _, r := range p.Routes() {
		if match(r) {
			return true
		}
	}
	for _, q := range p.QueuedRoutes() {
		if match(q.Route) {
			return true
		}
	}
	return false
}
