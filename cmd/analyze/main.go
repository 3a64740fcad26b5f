// Command analyze prints quick, human-readable heuristics about configuration
// files in the project's configs directory. It generates the world each config
// would produce, then summarizes city spacing, route pricing at the starting
// range, opening affordability, and a rough pace-to-victory estimate.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/nardisgame/nardis/game/engine"
	"github.com/nardisgame/nardis/game/generator"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "analyze",
		Usage: "summarize balance heuristics for game configuration files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config-dir",
				Value: "configs",
				Usage: "directory containing game configuration JSON files",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Value: 1,
				Usage: "probe seed used for unseeded configs",
			},
		},
		ArgsUsage: "[config files...]",
		Action:    run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	configDir := cmd.String("config-dir")
	probeSeed := cmd.Int64("seed")

	files := cmd.Args().Slice()
	if len(files) == 0 {
		matches, err := filepath.Glob(filepath.Join(configDir, "*.json"))
		if err != nil {
			return fmt.Errorf("finding config files: %w", err)
		}
		files = matches
	} else {
		for i, f := range files {
			if filepath.Dir(f) == "." {
				files[i] = filepath.Join(configDir, f)
			}
		}
	}

	if len(files) == 0 {
		return fmt.Errorf("no config files found in %s", configDir)
	}

	for _, configFile := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(configFile))
		analyzeConfig(configFile, probeSeed)
	}
	return nil
}

func analyzeConfig(path string, probeSeed int64) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		return
	}

	seed := config.Seed
	if seed == 0 {
		seed = probeSeed
	}
	catalog := generator.NewCatalog(&config, rand.New(rand.NewSource(seed)))

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Map: %d x %d\n", config.MapSize, config.MapSize)
	fmt.Printf("Cities: %d, Opponents: %d\n", config.Cities, config.Opponents)
	fmt.Printf("Gold: start %d, victory at %d\n", config.StartingGold, config.VictoryGold)
	fmt.Printf("Starting Range: %d\n", config.StartingRange)

	// City spacing statistics over all pairs.
	minDist, maxDist := -1, 0
	totalDist, pairs, inRange := 0, 0, 0
	for i, a := range catalog.Cities {
		for _, b := range catalog.Cities[i+1:] {
			d := a.DistanceTo(b)
			if minDist == -1 || d < minDist {
				minDist = d
			}
			if d > maxDist {
				maxDist = d
			}
			totalDist += d
			pairs++
			if d <= config.StartingRange {
				inRange++
			}
		}
	}

	if pairs == 0 {
		fmt.Println("⚠️  WARNING: fewer than two cities generated")
		return
	}

	avgDist := totalDist / pairs
	fmt.Printf("City spacing: min %d, avg %d, max %d\n", minDist, avgDist, maxDist)
	fmt.Printf("Buildable pairs at starting range: %d/%d\n", inRange, pairs)

	if inRange == 0 {
		fmt.Printf("⚠️  WARNING: no city pair is within starting range %d (closest pair is %d apart)\n",
			config.StartingRange, minDist)
	}

	// Route pricing at representative distances, no upgrades.
	fmt.Println("Route pricing (no upgrades):")
	for _, d := range []int{minDist, avgDist, config.StartingRange} {
		gold, turns := engine.PotentialRouteCost(d, nil)
		fmt.Printf("  distance %3d: %d gold, %d build turns\n", d, gold, turns)
	}

	// Opening affordability: cheapest train plus the cheapest real route.
	cheapest := catalog.Trains[0]
	for _, tr := range catalog.Trains {
		if tr.Cost < cheapest.Cost {
			cheapest = tr
		}
	}
	openGold, _ := engine.PotentialRouteCost(minDist, nil)
	opening := cheapest.Cost + openGold
	if opening > config.StartingGold {
		fmt.Printf("⚠️  WARNING: cheapest opening costs %d (%s %d + route %d) but starting gold is %d\n",
			opening, cheapest.Name, cheapest.Cost, openGold, config.StartingGold)
	} else {
		fmt.Printf("✅ Cheapest opening (%s + shortest route) costs %d of %d starting gold\n",
			cheapest.Name, opening, config.StartingGold)
	}

	// Rough pace: assume one average route, full cargo at mid-band resource
	// values, minus upkeep. This ignores supply depletion so it is a ceiling.
	midValue := 0
	for _, r := range catalog.Resources {
		midValue += (r.MinValue + r.MaxValue) / 2
	}
	midValue /= len(catalog.Resources)

	incomeCeiling := cheapest.CargoSpace*midValue - cheapest.Upkeep
	if incomeCeiling <= 0 {
		fmt.Printf("⚠️  WARNING: a full %s at mid-band prices loses gold every turn (upkeep %d)\n",
			cheapest.Name, cheapest.Upkeep)
	} else {
		gap := config.VictoryGold - config.StartingGold
		turns := (gap + incomeCeiling - 1) / incomeCeiling
		fmt.Printf("Pace ceiling: one full %s earns ≤%d/turn; victory in ≥%d turns\n",
			cheapest.Name, incomeCeiling, turns)
	}
}
