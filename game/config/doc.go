// Package config provides configuration management for Nardis.
//
// The config package handles:
//   - Loading game-balance configurations from JSON files
//   - Configuration validation and verification
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Game configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - World generation parameters (map size, city count, per-city resources)
//   - Player setup (starting gold, starting range, opponent count)
//   - The victory gold threshold
//   - An optional seed to pin world generation
//
// Available Configurations:
//
// The package ships with several balance profiles:
//   - classic: Mid-sized map with three opponents and a standard bankroll
//   - frontier: Large map, more cities and rivals, range upgrades matter
//   - blitz: Small dense map with a low victory threshold for quick games
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("blitz")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All configurations are validated for:
//   - Map size and city count bounds
//   - At least one supplied and one demanded resource per city
//   - Positive starting gold and range
//   - Opponent count within the supported player limit
//   - A victory threshold above the starting gold
package config
