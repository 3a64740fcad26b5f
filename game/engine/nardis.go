package engine

import (
	"errors"
	"math/rand"
)

var (
	ErrNoPlayers  = errors.New("a game needs at least one player")
	ErrNoCatalog  = errors.New("a game needs static catalog data")
	ErrNilPlayer  = errors.New("player cannot be nil")
	ErrDuplicated = errors.New("duplicate player id")
)

// SnapshotSink receives the game snapshot at the end of every turn. The
// session layer injects one backed by real storage.
type SnapshotSink interface {
	Persist(Snapshot) error
}

// Game is the turn orchestrator: the authoritative aggregate of catalog
// data, players, stocks, and the turn counter. All operations are
// synchronous and single-threaded; a transaction either fully applies its
// effects or applies none.
type Game struct {
	data        *StaticData
	players     []*Player
	stocks      map[string]*Stock
	turn        int
	current     *Player
	victoryGold int
	rng         *rand.Rand
	sink        SnapshotSink
}

// NewGame assembles a game around generated catalog data and players. The
// first player in the list takes the first turn.
func NewGame(data *StaticData, players []*Player, seed int64) (*Game, error) {
	if data == nil {
		return nil, ErrNoCatalog
	}
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	g := &Game{
		data:        data,
		players:     players,
		stocks:      make(map[string]*Stock, len(players)),
		turn:        1,
		current:     players[0],
		victoryGold: DefaultVictoryGold,
		rng:         rand.New(rand.NewSource(seed)),
	}

	seen := make(map[string]bool, len(players))
	for _, p := range players {
		if p == nil {
			return nil, ErrNilPlayer
		}
		if seen[p.ID] {
			return nil, ErrDuplicated
		}
		seen[p.ID] = true
		g.stocks[p.ID] = NewStock(p.ID)
	}

	g.revalueStocks()
	return g, nil
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *Player {
	return g.current
}

// CurrentTurn returns the turn counter.
func (g *Game) CurrentTurn() int {
	return g.turn
}

// Players returns every player in turn order.
func (g *Game) Players() []*Player {
	return g.players
}

// Data returns the static catalog.
func (g *Game) Data() *StaticData {
	return g.data
}

// PlayerByID returns the player with the given id, or nil.
func (g *Game) PlayerByID(id string) *Player {
	for _, p := range g.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// StockFor returns the stock of the given player, or nil.
func (g *Game) StockFor(playerID string) *Stock {
	return g.stocks[playerID]
}

// SetVictoryGold overrides the victory threshold; used by configs.
func (g *Game) SetVictoryGold(gold int) {
	if gold > 0 {
		g.victoryGold = gold
	}
}

// AttachSink installs the storage boundary that receives the snapshot after
// every completed turn.
func (g *Game) AttachSink(sink SnapshotSink) {
	g.sink = sink
}

// StartTurn broadcasts the turn-start payload to every city, every resource,
// and then the current player. Cities tick before resources because resource
// drift reads city supply updated in the same pass; the order is
// load-bearing.
func (g *Game) StartTurn() {
	info := g.turnInfoFor(g.current)
	for _, c := range g.data.Cities {
		c.HandleTurn(info)
	}
	for _, r := range g.data.Resources {
		r.HandleTurn(info, g.rng)
	}
	g.current.HandleTurn(info, g.actionsFor(g.current))
}

// EndTurn runs every computer player's turn pass, revalues all stocks,
// advances the turn counter, and persists the resulting state. Each handler
// receives the acting player and a scoped Actions view explicitly; the
// current player is restored on every exit path, so a panicking policy can
// never leak a stale context even though the panic itself propagates.
func (g *Game) EndTurn() error {
	orig := g.current
	defer func() {
		g.current = orig
	}()

	for _, p := range g.players {
		if p.Kind != Computer || p.Equals(orig) {
			continue
		}
		g.current = p
		p.HandleTurn(g.turnInfoFor(p), g.actionsFor(p))
	}
	g.current = orig

	g.revalueStocks()
	g.turn++

	if g.sink != nil {
		return g.sink.Persist(g.Deconstruct())
	}
	return nil
}

// PossibleRoutes returns every catalog city reachable from origin within the
// current player's range, with costs computed for that player's upgrades.
func (g *Game) PossibleRoutes(origin *City) []*PotentialRoute {
	return g.possibleRoutesFor(g.current, origin)
}

// AdjustedTrains returns the catalog trains at the current player's prices.
func (g *Game) AdjustedTrains() []*AdjustedTrain {
	return g.adjustedTrainsFor(g.current)
}

// RouteCost returns the gold and turn cost of a route of the given distance
// for the current player.
func (g *Game) RouteCost(distance int) (goldCost, turnCost int) {
	return PotentialRouteCost(distance, g.current.Upgrades())
}

// Winner returns the first player in list order whose gold exceeds the
// victory threshold.
func (g *Game) Winner() (*Player, bool) {
	for _, p := range g.players {
		if p.Gold > g.victoryGold {
			return p, true
		}
	}
	return nil, false
}

// AddRouteToQueue purchases a route for the current player: constructs the
// route, deducts gold, records track and train expenses, and enqueues it
// with its turn cost. The purchase is atomic: if construction or the gold
// check fails, nothing is written.
func (g *Game) AddRouteToQueue(proposal *BuyableRoute) bool {
	return g.addRouteFor(g.current, proposal)
}

// RemoveRouteFromQueue cancels a queued (not yet active) route, refunds its
// price, and reverses the matching track and train expenses. Returns false
// with no partial effect if the route is not in the queue.
func (g *Game) RemoveRouteFromQueue(routeID, trainID string) bool {
	return g.removeRouteFor(g.current, routeID, trainID)
}

// AddUpgradeToPlayer grants the catalog upgrade to the current player and
// records its cost as a one-time expense. Returns false if the id is unknown
// or the player cannot afford it.
func (g *Game) AddUpgradeToPlayer(upgradeID string) bool {
	return g.addUpgradeFor(g.current, upgradeID)
}

// BuyStock buys one share of the given player's stock for the current
// player at the current price.
func (g *Game) BuyStock(playerID string) bool {
	return g.buyStockFor(g.current, playerID)
}

// SellStock sells one held share of the given player's stock.
func (g *Game) SellStock(playerID string) bool {
	return g.sellStockFor(g.current, playerID)
}

func (g *Game) turnInfoFor(p *Player) *TurnInfo {
	return &TurnInfo{
		Turn:     g.turn,
		Data:     g.data,
		Routes:   p.Routes(),
		Upgrades: p.Upgrades(),
	}
}

func (g *Game) possibleRoutesFor(p *Player, origin *City) []*PotentialRoute {
	if origin == nil {
		return nil
	}

	reach := p.Range()
	var routes []*PotentialRoute
	for _, c := range g.data.Cities {
		d := origin.DistanceTo(c)
		if d <= 0 || d > reach {
			continue
		}
		gold, turns := PotentialRouteCost(d, p.Upgrades())
		routes = append(routes, &PotentialRoute{
			From:     origin,
			To:       c,
			Distance: d,
			GoldCost: gold,
			TurnCost: turns,
		})
	}
	return routes
}

func (g *Game) adjustedTrainsFor(p *Player) []*AdjustedTrain {
	trains := make([]*AdjustedTrain, 0, len(g.data.Trains))
	for _, t := range g.data.Trains {
		trains = append(trains, &AdjustedTrain{
			Train: t,
			Cost:  AdjustedTrainCost(t, p.Upgrades()),
		})
	}
	return trains
}

func (g *Game) addRouteFor(p *Player, proposal *BuyableRoute) bool {
	if proposal == nil {
		return false
	}
	price := proposal.GoldCost + proposal.TrainCost
	if p.Gold < price {
		return false
	}

	route, err := NewRoute(proposal, g.turn)
	if err != nil {
		return false
	}

	p.Gold -= price
	p.Finance().AddExpense(CategoryTrack, route.ID, 1, proposal.GoldCost)
	p.Finance().AddExpense(CategoryTrain, proposal.Train.ID, 1, proposal.TrainCost)
	p.AddRouteToQueue(route, proposal.TurnCost)
	return true
}

func (g *Game) removeRouteFor(p *Player, routeID, trainID string) bool {
	var route *Route
	for _, q := range p.QueuedRoutes() {
		if q.Route.ID == routeID {
			route = q.Route
			break
		}
	}
	// The train id must match the queued route's train; otherwise the
	// ledger reversal below would target the wrong expense.
	if route == nil || route.Train.ID != trainID {
		return false
	}
	p.RemoveRouteFromQueue(routeID)

	p.Gold += route.GoldCost + route.TrainCost
	p.Finance().ReduceExpense(CategoryTrack, routeID, 1, route.GoldCost)
	p.Finance().ReduceExpense(CategoryTrain, trainID, 1, route.TrainCost)
	return true
}

func (g *Game) addUpgradeFor(p *Player, upgradeID string) bool {
	u := g.data.UpgradeByID(upgradeID)
	if u == nil || p.Gold < u.Cost {
		return false
	}

	p.Gold -= u.Cost
	p.AddUpgrade(u.Clone())
	p.Finance().AddExpense(CategoryUpgrade, u.ID, 1, u.Cost)
	return true
}

func (g *Game) buyStockFor(buyer *Player, playerID string) bool {
	s := g.stocks[playerID]
	if s == nil || buyer.Gold < s.Price {
		return false
	}

	buyer.Gold -= s.Price
	s.Holdings[buyer.ID]++
	return true
}

func (g *Game) sellStockFor(seller *Player, playerID string) bool {
	s := g.stocks[playerID]
	if s == nil || s.Holdings[seller.ID] == 0 {
		return false
	}

	s.Holdings[seller.ID]--
	if s.Holdings[seller.ID] == 0 {
		delete(s.Holdings, seller.ID)
	}
	seller.Gold += s.Price
	return true
}

// revalueStocks recomputes every player's net worth and share price. Runs
// after computer turns resolve and before persistence, so saved state always
// reflects post-turn valuations.
func (g *Game) revalueStocks() {
	for _, p := range g.players {
		if s := g.stocks[p.ID]; s != nil {
			s.revalue(p)
		}
	}
}

// actionsFor builds the scoped Actions view a turn handler receives.
func (g *Game) actionsFor(p *Player) Actions {
	return &playerActions{g: g, p: p}
}

// playerActions binds the orchestrator's public contracts to one acting
// player, so turn handlers never read shared mutable context.
type playerActions struct {
	g *Game
	p *Player
}

func (a *playerActions) PossibleRoutes(origin *City) []*PotentialRoute {
	return a.g.possibleRoutesFor(a.p, origin)
}

func (a *playerActions) AdjustedTrains() []*AdjustedTrain {
	return a.g.adjustedTrainsFor(a.p)
}

func (a *playerActions) BuyRoute(proposal *BuyableRoute) bool {
	return a.g.addRouteFor(a.p, proposal)
}

func (a *playerActions) BuyUpgrade(upgradeID string) bool {
	return a.g.addUpgradeFor(a.p, upgradeID)
}

func (a *playerActions) BuyStock(playerID string) bool {
	return a.g.buyStockFor(a.p, playerID)
}

func (a *playerActions) SellStock(playerID string) bool {
	return a.g.sellStockFor(a.p, playerID)
}
