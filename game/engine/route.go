package engine

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrIncompleteRoute = errors.New("route proposal is missing a city or train")
	ErrZeroDistance    = errors.New("route distance must be positive")
)

// CargoItem is one line of a route's cargo allocation plan.
type CargoItem struct {
	Resource *Resource `json:"resource"`
	Amount   int       `json:"amount"`
}

// PotentialRoute is a reachable destination offered to a player before any
// commitment, with costs computed for that player's upgrades.
type PotentialRoute struct {
	From     *City `json:"from"`
	To       *City `json:"to"`
	Distance int   `json:"distance"`
	GoldCost int   `json:"gold_cost"`
	TurnCost int   `json:"turn_cost"`
}

// BuyableRoute is a fully specified proposal: a potential route plus the
// chosen train (at the player's adjusted price) and a cargo plan.
type BuyableRoute struct {
	From      *City       `json:"from"`
	To        *City       `json:"to"`
	Train     *Train      `json:"train"`
	TrainCost int         `json:"train_cost"`
	Cargo     []CargoItem `json:"cargo"`
	Distance  int         `json:"distance"`
	GoldCost  int         `json:"gold_cost"`
	TurnCost  int         `json:"turn_cost"`
}

// Route is an active or queued trade link between two cities. It is owned
// exclusively by one player and removed entirely on cancellation.
type Route struct {
	ID              string      `json:"id"`
	From            *City       `json:"from"`
	To              *City       `json:"to"`
	Train           *Train      `json:"train"`
	TrainCost       int         `json:"train_cost"`
	Cargo           []CargoItem `json:"cargo"`
	Distance        int         `json:"distance"`
	GoldCost        int         `json:"gold_cost"`
	TurnCost        int         `json:"turn_cost"`
	PurchasedOnTurn int         `json:"purchased_on_turn"`
}

// NewRoute constructs a Route from a proposal. It fails before any side
// effects happen, so purchase flows can stay atomic.
func NewRoute(b *BuyableRoute, turn int) (*Route, error) {
	if b == nil || b.From == nil || b.To == nil || b.Train == nil {
		return nil, ErrIncompleteRoute
	}
	if b.Distance <= 0 {
		return nil, ErrZeroDistance
	}
	return &Route{
		ID:              uuid.NewString(),
		From:            b.From,
		To:              b.To,
		Train:           b.Train,
		TrainCost:       b.TrainCost,
		Cargo:           b.Cargo,
		Distance:        b.Distance,
		GoldCost:        b.GoldCost,
		TurnCost:        b.TurnCost,
		PurchasedOnTurn: turn,
	}, nil
}

// IncomePerTurn returns the gold an active route earns in one turn: cargo
// units times current resource value, for resources the target city demands.
func (r *Route) IncomePerTurn() int {
	income := 0
	for _, item := range r.Cargo {
		if item.Resource == nil {
			continue
		}
		if r.To.Demands(item.Resource.ID) {
			income += item.Amount * item.Resource.Value
		}
	}
	return income
}

// BuildCargoPlan fills the train's cargo space with resources the origin
// supplies and the destination demands, in the origin's supply order.
func BuildCargoPlan(from, to *City, train *Train) []CargoItem {
	if from == nil || to == nil || train == nil {
		return nil
	}

	space := train.CargoSpace
	var plan []CargoItem

	for i := range from.Supply {
		if space <= 0 {
			break
		}
		s := from.Supply[i]
		if s.Resource == nil || !to.Demands(s.Resource.ID) {
			continue
		}
		amount := s.Amount
		if amount > space {
			amount = space
		}
		if amount <= 0 {
			continue
		}
		plan = append(plan, CargoItem{Resource: s.Resource, Amount: amount})
		space -= amount
	}

	return plan
}
