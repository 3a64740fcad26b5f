package engine

// baseTurnCost is a monotonic step function of distance: longer routes take
// more turns to build.
func baseTurnCost(distance int) int {
	switch {
	case distance <= 25:
		return 2
	case distance <= 50:
		return 3
	case distance <= 100:
		return 4
	default:
		return 5
	}
}

// PotentialRouteCost computes the gold and turn cost of a route of the given
// distance for a player holding the given upgrades.
//
// Discounts apply sequentially in list order. Gold discounts clamp to
// MinRouteGold inside the loop; turn discounts clamp to
// MinTurnCostDuringDiscounts inside the loop, and the final turn cost is
// floored at MinTurnCost. The two-phase clamp-then-floor policy is the
// balancing mechanism that keeps upgrade stacking from trivializing the
// economy; changing it changes game balance.
func PotentialRouteCost(distance int, upgrades []*Upgrade) (goldCost, turnCost int) {
	goldCost = distance * GoldCostPerDistance
	turnCost = baseTurnCost(distance)

	for _, u := range upgrades {
		if u.Kind != TrackValueCheaper {
			continue
		}
		discount := int(float64(goldCost) * u.Value)
		if goldCost-discount < MinRouteGold {
			goldCost = MinRouteGold
		} else {
			goldCost -= discount
		}
	}

	for _, u := range upgrades {
		if u.Kind != TurnCostCheaper {
			continue
		}
		turnCost -= int(u.Value)
		if turnCost < MinTurnCostDuringDiscounts {
			turnCost = MinTurnCostDuringDiscounts
		}
	}
	if turnCost < MinTurnCost {
		turnCost = MinTurnCost
	}

	return goldCost, turnCost
}

// AdjustedTrainCost returns the price a player pays for a catalog train after
// TrainValueCheaper discounts, applied sequentially in list order. The
// catalog train is never mutated.
func AdjustedTrainCost(train *Train, upgrades []*Upgrade) int {
	cost := train.Cost
	for _, u := range upgrades {
		if u.Kind != TrainValueCheaper {
			continue
		}
		cost -= int(float64(cost) * u.Value)
	}
	return cost
}

// AdjustedUpkeep returns per-turn train upkeep after TrainUpkeepCheaper
// discounts, floored at zero.
func AdjustedUpkeep(train *Train, upgrades []*Upgrade) int {
	upkeep := train.Upkeep
	for _, u := range upgrades {
		if u.Kind != TrainUpkeepCheaper {
			continue
		}
		upkeep -= int(float64(upkeep) * u.Value)
	}
	if upkeep < 0 {
		upkeep = 0
	}
	return upkeep
}

// adjustedRange returns a player's route range: base range plus every
// RangeIncrease upgrade.
func adjustedRange(base int, upgrades []*Upgrade) int {
	r := base
	for _, u := range upgrades {
		if u.Kind == RangeIncrease {
			r += int(u.Value)
		}
	}
	return r
}
