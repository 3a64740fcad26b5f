package engine

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// Snapshot is the persisted form of a game: one key per category, each value
// a base64-encoded JSON array of plain records. The currentPlayer, turn, and
// activeGame keys hold plain strings.
type Snapshot map[string]string

// Snapshot keys. Loading fails fatally when KeyActiveGame is absent; there
// is no such thing as a partially-present save.
const (
	KeyTrains        = "trains"
	KeyUpgrades      = "upgrades"
	KeyResources     = "resources"
	KeyCities        = "cities"
	KeyPlayers       = "players"
	KeyCurrentPlayer = "currentPlayer"
	KeyTurn          = "turn"
	KeyActiveGame    = "activeGame"
)

var (
	ErrNoActiveGame  = errors.New("no active game marker in snapshot")
	ErrUnknownPlayer = errors.New("current player not found in snapshot")
)

// Plain record forms. Entities deconstruct to these; references become ids
// resolved again on load.

type resourceRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Value      int    `json:"value"`
	MinValue   int    `json:"minValue"`
	MaxValue   int    `json:"maxValue"`
	Volatility int    `json:"volatility"`
}

type cityResourceRecord struct {
	ResourceID string `json:"resourceId"`
	Amount     int    `json:"amount"`
	MaxAmount  int    `json:"maxAmount"`
	Regen      int    `json:"regen"`
}

type cityRecord struct {
	ID     string               `json:"id"`
	Name   string               `json:"name"`
	X      int                  `json:"x"`
	Y      int                  `json:"y"`
	Supply []cityResourceRecord `json:"supply"`
	Demand []cityResourceRecord `json:"demand"`
}

type trainRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Cost       int    `json:"cost"`
	Upkeep     int    `json:"upkeep"`
	Speed      int    `json:"speed"`
	CargoSpace int    `json:"cargoSpace"`
}

type upgradeRecord struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Kind  UpgradeKind `json:"kind"`
	Value float64     `json:"value"`
	Cost  int         `json:"cost"`
}

type cargoRecord struct {
	ResourceID string `json:"resourceId"`
	Amount     int    `json:"amount"`
}

type routeRecord struct {
	ID              string        `json:"id"`
	FromID          string        `json:"fromId"`
	ToID            string        `json:"toId"`
	TrainID         string        `json:"trainId"`
	TrainCost       int           `json:"trainCost"`
	Cargo           []cargoRecord `json:"cargo"`
	Distance        int           `json:"distance"`
	GoldCost        int           `json:"goldCost"`
	TurnCost        int           `json:"turnCost"`
	PurchasedOnTurn int           `json:"purchasedOnTurn"`
}

type queuedRouteRecord struct {
	Route     routeRecord `json:"route"`
	TurnsLeft int         `json:"turnsLeft"`
}

type playerRecord struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Kind          PlayerKind          `json:"kind"`
	Gold          int                 `json:"gold"`
	BaseRange     int                 `json:"baseRange"`
	HomeCityID    string              `json:"homeCityId"`
	Routes        []routeRecord       `json:"routes"`
	Queue         []queuedRouteRecord `json:"queue"`
	Upgrades      []upgradeRecord     `json:"upgrades"`
	Expenses      []FinanceEntry      `json:"expenses"`
	Incomes       []FinanceEntry      `json:"incomes"`
	StockHoldings map[string]int      `json:"stockHoldings"`
}

func encode(v any) string {
	b, _ := json.Marshal(v)
	return base64.StdEncoding.EncodeToString(b)
}

func decode(s string, v any) error {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return fmt.Errorf("decode snapshot value: %w", err)
	}
	return json.Unmarshal(b, v)
}

// Deconstruct serializes the full game state into a snapshot. Every list is
// emitted in stable order so two snapshots of the same state are identical.
func (g *Game) Deconstruct() Snapshot {
	trains := make([]trainRecord, 0, len(g.data.Trains))
	for _, t := range g.data.Trains {
		trains = append(trains, trainRecord{t.ID, t.Name, t.Cost, t.Upkeep, t.Speed, t.CargoSpace})
	}

	upgrades := make([]upgradeRecord, 0, len(g.data.Upgrades))
	for _, u := range g.data.Upgrades {
		upgrades = append(upgrades, deconstructUpgrade(u))
	}

	resources := make([]resourceRecord, 0, len(g.data.Resources))
	for _, r := range g.data.Resources {
		resources = append(resources, resourceRecord{r.ID, r.Name, r.Value, r.MinValue, r.MaxValue, r.Volatility})
	}

	cities := make([]cityRecord, 0, len(g.data.Cities))
	for _, c := range g.data.Cities {
		cities = append(cities, deconstructCity(c))
	}

	players := make([]playerRecord, 0, len(g.players))
	for _, p := range g.players {
		players = append(players, g.deconstructPlayer(p))
	}

	return Snapshot{
		KeyTrains:        encode(trains),
		KeyUpgrades:      encode(upgrades),
		KeyResources:     encode(resources),
		KeyCities:        encode(cities),
		KeyPlayers:       encode(players),
		KeyCurrentPlayer: g.current.ID,
		KeyTurn:          strconv.Itoa(g.turn),
		KeyActiveGame:    "true",
	}
}

func deconstructUpgrade(u *Upgrade) upgradeRecord {
	return upgradeRecord{u.ID, u.Name, u.Kind, u.Value, u.Cost}
}

func deconstructCity(c *City) cityRecord {
	rec := cityRecord{ID: c.ID, Name: c.Name, X: c.Pos.X, Y: c.Pos.Y}
	for _, s := range c.Supply {
		rec.Supply = append(rec.Supply, cityResourceRecord{s.Resource.ID, s.Amount, s.MaxAmount, s.Regen})
	}
	for _, d := range c.Demand {
		rec.Demand = append(rec.Demand, cityResourceRecord{d.Resource.ID, d.Amount, d.MaxAmount, d.Regen})
	}
	return rec
}

func deconstructRoute(r *Route) routeRecord {
	rec := routeRecord{
		ID:              r.ID,
		FromID:          r.From.ID,
		ToID:            r.To.ID,
		TrainID:         r.Train.ID,
		TrainCost:       r.TrainCost,
		Distance:        r.Distance,
		GoldCost:        r.GoldCost,
		TurnCost:        r.TurnCost,
		PurchasedOnTurn: r.PurchasedOnTurn,
	}
	for _, c := range r.Cargo {
		rec.Cargo = append(rec.Cargo, cargoRecord{c.Resource.ID, c.Amount})
	}
	return rec
}

func (g *Game) deconstructPlayer(p *Player) playerRecord {
	rec := playerRecord{
		ID:        p.ID,
		Name:      p.Name,
		Kind:      p.Kind,
		Gold:      p.Gold,
		BaseRange: p.BaseRange,
		Expenses:  p.finance.Expenses(),
		Incomes:   p.finance.Incomes(),
	}
	if p.HomeCity != nil {
		rec.HomeCityID = p.HomeCity.ID
	}
	for _, r := range p.routes {
		rec.Routes = append(rec.Routes, deconstructRoute(r))
	}
	for _, q := range p.queue {
		rec.Queue = append(rec.Queue, queuedRouteRecord{deconstructRoute(q.Route), q.TurnsLeft})
	}
	for _, u := range p.upgrades {
		rec.Upgrades = append(rec.Upgrades, deconstructUpgrade(u))
	}

	// Units of other players' stock held by this player.
	holdings := make(map[string]int)
	for ownerID, s := range g.stocks {
		if units := s.Holdings[p.ID]; units > 0 {
			holdings[ownerID] = units
		}
	}
	if len(holdings) > 0 {
		rec.StockHoldings = holdings
	}
	return rec
}

// ReconstructGame rebuilds a game byte-for-byte from a snapshot. Catalogs
// load first (trains, upgrades, resources), then cities, then players, then
// the current-player reference resolves by identity lookup and the turn
// counter parses as an integer.
func ReconstructGame(snap Snapshot) (*Game, error) {
	if snap[KeyActiveGame] != "true" {
		return nil, ErrNoActiveGame
	}

	var trainRecs []trainRecord
	if err := decode(snap[KeyTrains], &trainRecs); err != nil {
		return nil, fmt.Errorf("reconstruct trains: %w", err)
	}
	var upgradeRecs []upgradeRecord
	if err := decode(snap[KeyUpgrades], &upgradeRecs); err != nil {
		return nil, fmt.Errorf("reconstruct upgrades: %w", err)
	}
	var resourceRecs []resourceRecord
	if err := decode(snap[KeyResources], &resourceRecs); err != nil {
		return nil, fmt.Errorf("reconstruct resources: %w", err)
	}
	var cityRecs []cityRecord
	if err := decode(snap[KeyCities], &cityRecs); err != nil {
		return nil, fmt.Errorf("reconstruct cities: %w", err)
	}
	var playerRecs []playerRecord
	if err := decode(snap[KeyPlayers], &playerRecs); err != nil {
		return nil, fmt.Errorf("reconstruct players: %w", err)
	}

	data := &StaticData{}
	for _, r := range trainRecs {
		data.Trains = append(data.Trains, &Train{r.ID, r.Name, r.Cost, r.Upkeep, r.Speed, r.CargoSpace})
	}
	for _, r := range upgradeRecs {
		data.Upgrades = append(data.Upgrades, reconstructUpgrade(r))
	}
	for _, r := range resourceRecs {
		data.Resources = append(data.Resources, &Resource{r.ID, r.Name, r.Value, r.MinValue, r.MaxValue, r.Volatility})
	}
	for _, r := range cityRecs {
		c, err := reconstructCity(r, data)
		if err != nil {
			return nil, err
		}
		data.Cities = append(data.Cities, c)
	}

	players := make([]*Player, 0, len(playerRecs))
	for _, r := range playerRecs {
		p, err := reconstructPlayer(r, data)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	g := &Game{
		data:        data,
		players:     players,
		stocks:      make(map[string]*Stock, len(players)),
		victoryGold: DefaultVictoryGold,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, p := range players {
		g.stocks[p.ID] = NewStock(p.ID)
	}
	for _, r := range playerRecs {
		for ownerID, units := range r.StockHoldings {
			if s := g.stocks[ownerID]; s != nil {
				s.Holdings[r.ID] = units
			}
		}
	}

	g.current = g.PlayerByID(snap[KeyCurrentPlayer])
	if g.current == nil {
		return nil, ErrUnknownPlayer
	}

	turn, err := strconv.Atoi(snap[KeyTurn])
	if err != nil {
		return nil, fmt.Errorf("reconstruct turn counter: %w", err)
	}
	g.turn = turn

	g.revalueStocks()
	return g, nil
}

func reconstructUpgrade(r upgradeRecord) *Upgrade {
	return &Upgrade{ID: r.ID, Name: r.Name, Kind: r.Kind, Value: r.Value, Cost: r.Cost}
}

func reconstructCity(rec cityRecord, data *StaticData) (*City, error) {
	c := &City{ID: rec.ID, Name: rec.Name, Pos: Position{rec.X, rec.Y}}
	for _, s := range rec.Supply {
		res := data.ResourceByID(s.ResourceID)
		if res == nil {
			return nil, fmt.Errorf("city %s references unknown resource %s", rec.ID, s.ResourceID)
		}
		c.Supply = append(c.Supply, CityResource{res, s.Amount, s.MaxAmount, s.Regen})
	}
	for _, d := range rec.Demand {
		res := data.ResourceByID(d.ResourceID)
		if res == nil {
			return nil, fmt.Errorf("city %s references unknown resource %s", rec.ID, d.ResourceID)
		}
		c.Demand = append(c.Demand, CityResource{res, d.Amount, d.MaxAmount, d.Regen})
	}
	return c, nil
}

func reconstructRoute(rec routeRecord, data *StaticData) (*Route, error) {
	from := data.CityByID(rec.FromID)
	to := data.CityByID(rec.ToID)
	train := data.TrainByID(rec.TrainID)
	if from == nil || to == nil || train == nil {
		return nil, fmt.Errorf("route %s references unknown city or train", rec.ID)
	}

	r := &Route{
		ID:              rec.ID,
		From:            from,
		To:              to,
		Train:           train,
		TrainCost:       rec.TrainCost,
		Distance:        rec.Distance,
		GoldCost:        rec.GoldCost,
		TurnCost:        rec.TurnCost,
		PurchasedOnTurn: rec.PurchasedOnTurn,
	}
	for _, c := range rec.Cargo {
		res := data.ResourceByID(c.ResourceID)
		if res == nil {
			return nil, fmt.Errorf("route %s references unknown resource %s", rec.ID, c.ResourceID)
		}
		r.Cargo = append(r.Cargo, CargoItem{res, c.Amount})
	}
	return r, nil
}

func reconstructPlayer(rec playerRecord, data *StaticData) (*Player, error) {
	p := &Player{
		ID:        rec.ID,
		Name:      rec.Name,
		Kind:      rec.Kind,
		Gold:      rec.Gold,
		BaseRange: rec.BaseRange,
		finance:   NewFinance(),
	}
	if rec.HomeCityID != "" {
		p.HomeCity = data.CityByID(rec.HomeCityID)
		if p.HomeCity == nil {
			return nil, fmt.Errorf("player %s references unknown home city %s", rec.ID, rec.HomeCityID)
		}
	}
	if p.Kind == Computer {
		p.policy = DefaultPolicy()
	}

	for _, rr := range rec.Routes {
		r, err := reconstructRoute(rr, data)
		if err != nil {
			return nil, err
		}
		p.AddRoute(r)
	}
	for _, qr := range rec.Queue {
		r, err := reconstructRoute(qr.Route, data)
		if err != nil {
			return nil, err
		}
		p.queue = append(p.queue, &QueuedRoute{Route: r, TurnsLeft: qr.TurnsLeft})
	}
	for _, ur := range rec.Upgrades {
		p.upgrades = append(p.upgrades, reconstructUpgrade(ur))
	}
	for _, e := range rec.Expenses {
		p.finance.restoreExpense(e)
	}
	for _, e := range rec.Incomes {
		p.finance.restoreIncome(e)
	}
	return p, nil
}
