package engine

// UpgradeKind discriminates what part of the cost/range formulas an upgrade
// modifies.
type UpgradeKind string

const (
	// TrackValueCheaper reduces route gold cost by a fraction (Value in (0,1)).
	TrackValueCheaper UpgradeKind = "track_value_cheaper"
	// TrainValueCheaper reduces train purchase price by a fraction.
	TrainValueCheaper UpgradeKind = "train_value_cheaper"
	// TurnCostCheaper subtracts a flat number of build turns (Value is whole turns).
	TurnCostCheaper UpgradeKind = "turn_cost_cheaper"
	// TrainUpkeepCheaper reduces per-turn train upkeep by a fraction.
	TrainUpkeepCheaper UpgradeKind = "train_upkeep_cheaper"
	// RangeIncrease adds flat route range (Value is distance units).
	RangeIncrease UpgradeKind = "range_increase"
)

// Upgrade is an immutable modifier applied to the cost/range formulas.
// A catalog upgrade is copied when granted, so each purchased instance is
// owned by exactly one player.
type Upgrade struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Kind  UpgradeKind `json:"kind"`
	Value float64     `json:"value"`
	Cost  int         `json:"cost"`
}

// Clone returns an owned copy of the upgrade.
func (u *Upgrade) Clone() *Upgrade {
	c := *u
	return &c
}
