package engine

import "github.com/google/uuid"

// PlayerKind discriminates human-driven players from computer opponents.
type PlayerKind string

const (
	Human    PlayerKind = "human"
	Computer PlayerKind = "computer"
)

// Actions is the narrow view of the orchestrator a turn handler may use.
// Computer policies issue the same mutating calls a human could, through
// these public contracts only.
type Actions interface {
	PossibleRoutes(origin *City) []*PotentialRoute
	AdjustedTrains() []*AdjustedTrain
	BuyRoute(proposal *BuyableRoute) bool
	BuyUpgrade(upgradeID string) bool
	BuyStock(playerID string) bool
	SellStock(playerID string) bool
}

// Policy is a pluggable decision routine for computer players.
type Policy interface {
	Decide(p *Player, info *TurnInfo, act Actions)
}

// QueuedRoute is a paid-for route that is not yet operational.
type QueuedRoute struct {
	Route     *Route `json:"route"`
	TurnsLeft int    `json:"turns_left"`
}

// Player aggregates routes, upgrades, a finance ledger, and a pending route
// queue. Players are created at game start and never destroyed mid-game.
type Player struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Kind      PlayerKind `json:"kind"`
	Gold      int        `json:"gold"`
	BaseRange int        `json:"base_range"`
	HomeCity  *City      `json:"home_city"`
	NetWorth  int        `json:"net_worth"`

	routes   []*Route
	upgrades []*Upgrade
	queue    []*QueuedRoute
	finance  *Finance
	policy   Policy
}

// NewPlayer creates a player with an empty ledger. Computer players get the
// default opponent policy unless SetPolicy replaces it.
func NewPlayer(name string, kind PlayerKind, gold, baseRange int, home *City) *Player {
	p := &Player{
		ID:        uuid.NewString(),
		Name:      name,
		Kind:      kind,
		Gold:      gold,
		BaseRange: baseRange,
		HomeCity:  home,
		finance:   NewFinance(),
	}
	if kind == Computer {
		p.policy = DefaultPolicy()
	}
	return p
}

// Equals compares players by identity, not structure.
func (p *Player) Equals(other *Player) bool {
	return p == other
}

// Routes returns the player's active routes.
func (p *Player) Routes() []*Route {
	return p.routes
}

// QueuedRoutes returns routes that are paid for but not yet operational.
func (p *Player) QueuedRoutes() []*QueuedRoute {
	return p.queue
}

// Upgrades returns the player's owned upgrades in purchase order.
func (p *Player) Upgrades() []*Upgrade {
	return p.upgrades
}

// Finance returns the player's ledger.
func (p *Player) Finance() *Finance {
	return p.finance
}

// Range returns the player's maximum route distance including RangeIncrease
// upgrades.
func (p *Player) Range() int {
	return adjustedRange(p.BaseRange, p.upgrades)
}

// SetPolicy replaces the decision routine used on computer turns.
func (p *Player) SetPolicy(policy Policy) {
	p.policy = policy
}

// AddRouteToQueue enqueues a purchased route with its remaining build turns.
func (p *Player) AddRouteToQueue(route *Route, turnCost int) {
	p.queue = append(p.queue, &QueuedRoute{Route: route, TurnsLeft: turnCost})
}

// RemoveRouteFromQueue removes a queued route by id and returns it, or nil
// if the id is not in the queue. Active routes cannot be removed this way.
func (p *Player) RemoveRouteFromQueue(routeID string) *Route {
	for i, q := range p.queue {
		if q.Route.ID == routeID {
			p.queue = append(p.queue[:i], p.queue[i+1:]...)
			return q.Route
		}
	}
	return nil
}

// AddUpgrade grants an owned upgrade to the player.
func (p *Player) AddUpgrade(u *Upgrade) {
	p.upgrades = append(p.upgrades, u)
}

// AddRoute activates a route directly, bypassing the queue. Used during
// snapshot reconstruction.
func (p *Player) AddRoute(r *Route) {
	p.routes = append(p.routes, r)
}

// HandleTurn runs the player's per-turn tick: queued routes count down and
// activate at zero, active routes earn income and pay upkeep. For computer
// players the decision policy then acts through the provided Actions.
// Human decisions happen out-of-band via direct orchestrator calls.
func (p *Player) HandleTurn(info *TurnInfo, act Actions) {
	p.tickQueue()
	p.collectRouteEconomics()

	if p.Kind == Computer && p.policy != nil {
		p.policy.Decide(p, info, act)
	}
}

// tickQueue decrements remaining build turns and activates finished routes.
func (p *Player) tickQueue() {
	remaining := p.queue[:0]
	for _, q := range p.queue {
		q.TurnsLeft--
		if q.TurnsLeft <= 0 {
			p.routes = append(p.routes, q.Route)
			continue
		}
		remaining = append(remaining, q)
	}
	p.queue = remaining
}

// collectRouteEconomics applies income and upkeep for every active route and
// records both in the ledger.
func (p *Player) collectRouteEconomics() {
	for _, r := range p.routes {
		income := r.IncomePerTurn()
		upkeep := AdjustedUpkeep(r.Train, p.upgrades)

		p.Gold += income - upkeep
		if income > 0 {
			p.finance.AddIncome(CategoryRoute, r.ID, 1, income)
		}
		if upkeep > 0 {
			p.finance.AddExpense(CategoryUpkeep, r.ID, 1, upkeep)
		}
	}
}
