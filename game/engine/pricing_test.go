package engine

import "testing"

func TestPotentialRouteCost_Base(t *testing.T) {
	cases := []struct {
		distance int
		gold     int
		turns    int
	}{
		{5, 10, 2},
		{10, 20, 2},
		{25, 50, 2},
		{26, 52, 3},
		{50, 100, 3},
		{51, 102, 4},
		{100, 200, 4},
		{101, 202, 5},
	}

	for _, c := range cases {
		gold, turns := PotentialRouteCost(c.distance, nil)
		if gold != c.gold {
			t.Errorf("distance %d: expected gold %d, got %d", c.distance, c.gold, gold)
		}
		if turns != c.turns {
			t.Errorf("distance %d: expected turns %d, got %d", c.distance, c.turns, turns)
		}
	}
}

func TestPotentialRouteCost_TurnCostMonotonic(t *testing.T) {
	prev := 0
	for d := 1; d <= 200; d++ {
		_, turns := PotentialRouteCost(d, nil)
		if turns < prev {
			t.Fatalf("turn cost decreased at distance %d: %d -> %d", d, prev, turns)
		}
		if turns < MinTurnCost {
			t.Fatalf("turn cost below minimum at distance %d: %d", d, turns)
		}
		prev = turns
	}
}

func TestPotentialRouteCost_TrackDiscountsSequential(t *testing.T) {
	upgrades := []*Upgrade{
		{Kind: TrackValueCheaper, Value: 0.10},
		{Kind: TrackValueCheaper, Value: 0.10},
	}

	// 200 -> 200-20=180 -> 180-18=162, each discount floored.
	gold, _ := PotentialRouteCost(100, upgrades)
	if gold != 162 {
		t.Errorf("Expected sequential discounts to yield 162, got %d", gold)
	}
}

func TestPotentialRouteCost_GoldFloor(t *testing.T) {
	// A single huge discount clamps to exactly MinRouteGold.
	upgrades := []*Upgrade{{Kind: TrackValueCheaper, Value: 0.99}}
	gold, _ := PotentialRouteCost(10, upgrades)
	if gold != MinRouteGold {
		t.Errorf("Expected clamp to %d, got %d", MinRouteGold, gold)
	}

	// No amount of stacking pushes below the floor.
	stacked := make([]*Upgrade, 10)
	for i := range stacked {
		stacked[i] = &Upgrade{Kind: TrackValueCheaper, Value: 0.9}
	}
	for d := 1; d <= 150; d++ {
		gold, turns := PotentialRouteCost(d, stacked)
		if gold < MinRouteGold {
			t.Fatalf("distance %d: gold %d below floor", d, gold)
		}
		if turns < MinTurnCost {
			t.Fatalf("distance %d: turns %d below floor", d, turns)
		}
	}
}

func TestPotentialRouteCost_TurnClampThenFloor(t *testing.T) {
	// Base turn cost 5 at distance 150; flat discounts clamp at 2 mid-loop.
	upgrades := []*Upgrade{
		{Kind: TurnCostCheaper, Value: 2},
		{Kind: TurnCostCheaper, Value: 2},
		{Kind: TurnCostCheaper, Value: 2},
	}
	_, turns := PotentialRouteCost(150, upgrades)
	if turns != MinTurnCostDuringDiscounts {
		t.Errorf("Expected mid-loop clamp to %d, got %d", MinTurnCostDuringDiscounts, turns)
	}
}

func TestPotentialRouteCost_IgnoresUnrelatedKinds(t *testing.T) {
	upgrades := []*Upgrade{
		{Kind: TrainValueCheaper, Value: 0.5},
		{Kind: RangeIncrease, Value: 100},
	}
	gold, turns := PotentialRouteCost(10, upgrades)
	if gold != 20 || turns != 2 {
		t.Errorf("Unrelated upgrades changed route cost: gold=%d turns=%d", gold, turns)
	}
}

func TestAdjustedTrainCost(t *testing.T) {
	train := &Train{ID: "t", Cost: 100}

	if cost := AdjustedTrainCost(train, nil); cost != 100 {
		t.Errorf("Expected base cost 100, got %d", cost)
	}

	upgrades := []*Upgrade{
		{Kind: TrainValueCheaper, Value: 0.10},
		{Kind: TrainValueCheaper, Value: 0.10},
	}
	// 100 -> 90 -> 81, applied in list order.
	if cost := AdjustedTrainCost(train, upgrades); cost != 81 {
		t.Errorf("Expected 81 after two 10%% discounts, got %d", cost)
	}
	if train.Cost != 100 {
		t.Errorf("Catalog train mutated: %d", train.Cost)
	}
}

func TestAdjustedUpkeep_FlooredAtZero(t *testing.T) {
	train := &Train{ID: "t", Upkeep: 4}
	upgrades := []*Upgrade{
		{Kind: TrainUpkeepCheaper, Value: 0.5},
		{Kind: TrainUpkeepCheaper, Value: 1.0},
		{Kind: TrainUpkeepCheaper, Value: 1.0},
	}
	if upkeep := AdjustedUpkeep(train, upgrades); upkeep != 0 {
		t.Errorf("Expected upkeep floored at 0, got %d", upkeep)
	}
}

func TestDistance(t *testing.T) {
	a := Position{X: 0, Y: 0}
	b := Position{X: 3, Y: 4}
	if d := a.DistanceTo(b); d != 5 {
		t.Errorf("Expected distance 5, got %d", d)
	}
	if d := b.DistanceTo(b); d != 0 {
		t.Errorf("Expected zero distance to self, got %d", d)
	}
}
