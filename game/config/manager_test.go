package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/nardisgame/nardis/game/engine"
)

func createValidConfig() *engine.GameConfig {
	return &engine.GameConfig{
		Name:          "Test Config",
		Description:   "Test configuration",
		MapSize:       100,
		Cities:        12,
		SupplyPerCity: 2,
		DemandPerCity: 2,
		StartingGold:  1000,
		StartingRange: 40,
		Opponents:     3,
		VictoryGold:   10000,
		Seed:          42,
	}
}

func writeConfigFile(t *testing.T, dir, name string, config *engine.GameConfig) {
	t.Helper()

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}

	filename := name
	if filepath.Ext(filename) == "" {
		filename = name + ".json"
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
}

func TestNewManager(t *testing.T) {
	t.Run("valid directory", func(t *testing.T) {
		dir := t.TempDir()

		defaultConfig := createValidConfig()
		defaultConfig.Name = "Classic"
		writeConfigFile(t, dir, "classic", defaultConfig)

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager == nil {
			t.Error("Expected manager to be non-nil")
		}

		if got := manager.GetDefault(); got == nil || got.Name != "Classic" {
			t.Errorf("Expected classic.json as default, got %+v", got)
		}
	})

	t.Run("non-existent directory", func(t *testing.T) {
		_, err := NewManager("/non/existent/path")
		if err == nil {
			t.Error("Expected error for non-existent directory")
		}
	})

	t.Run("missing default config", func(t *testing.T) {
		manager, err := NewManager(t.TempDir())
		if err != nil {
			t.Errorf("NewManager should succeed even without config files, got error: %v", err)
		}

		// Should have created a minimal default config
		if manager == nil {
			t.Fatal("Expected manager to be created")
		}

		defaultConfig := manager.GetDefault()
		if defaultConfig == nil {
			t.Fatal("Expected default config to be available")
		}
		if err := engine.ValidateGameConfig(defaultConfig); err != nil {
			t.Errorf("Minimal default config should validate, got %v", err)
		}
	})
}

func TestManager_LoadConfig(t *testing.T) {
	dir := t.TempDir()

	defaultConfig := createValidConfig()
	defaultConfig.Name = "Classic"
	writeConfigFile(t, dir, "classic", defaultConfig)

	blitzConfig := createValidConfig()
	blitzConfig.Name = "Blitz"
	blitzConfig.MapSize = 60
	blitzConfig.VictoryGold = 5000
	writeConfigFile(t, dir, "blitz", blitzConfig)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("load existing config", func(t *testing.T) {
		config, err := manager.LoadConfig("blitz")
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if config.Name != "Blitz" {
			t.Errorf("Expected config name 'Blitz', got '%s'", config.Name)
		}
		if config.MapSize != 60 {
			t.Errorf("Expected map size 60, got %d", config.MapSize)
		}
	})

	t.Run("load from cache", func(t *testing.T) {
		config1, _ := manager.LoadConfig("blitz")

		config2, err := manager.LoadConfig("blitz")
		if err != nil {
			t.Fatalf("Failed to load config from cache: %v", err)
		}

		// Same pointer means the cache was hit
		if config1 != config2 {
			t.Error("Expected config to be loaded from cache")
		}
	})

	t.Run("load non-existent config", func(t *testing.T) {
		_, err := manager.LoadConfig("non-existent")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("Expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("load invalid config", func(t *testing.T) {
		// Missing required fields
		invalidData := []byte(`{"name": ""}`)
		if err := os.WriteFile(filepath.Join(dir, "invalid.json"), invalidData, 0644); err != nil {
			t.Fatalf("Failed to write invalid config: %v", err)
		}

		_, err := manager.LoadConfig("invalid")
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("load malformed JSON", func(t *testing.T) {
		malformedData := []byte(`{"name": "Malformed", invalid json}`)
		if err := os.WriteFile(filepath.Join(dir, "malformed.json"), malformedData, 0644); err != nil {
			t.Fatalf("Failed to write malformed config: %v", err)
		}

		if _, err := manager.LoadConfig("malformed"); err == nil {
			t.Error("Expected error for malformed JSON")
		}
	})
}

func TestManager_GetDefault_FallsBackToFirstConfig(t *testing.T) {
	dir := t.TempDir()

	// No classic.json; the first listed config becomes the default.
	onlyConfig := createValidConfig()
	onlyConfig.Name = "Frontier"
	writeConfigFile(t, dir, "frontier", onlyConfig)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	config := manager.GetDefault()
	if config == nil {
		t.Fatal("Expected default config to be non-nil")
	}
	if config.Name != "Frontier" {
		t.Errorf("Expected default config name 'Frontier', got '%s'", config.Name)
	}
}

func TestManager_ListConfigs(t *testing.T) {
	dir := t.TempDir()

	configs := []struct {
		filename string
		name     string
	}{
		{"classic", "Classic"},
		{"frontier", "Frontier"},
		{"blitz", "Blitz"},
	}

	for _, cfg := range configs {
		config := createValidConfig()
		config.Name = cfg.name
		writeConfigFile(t, dir, cfg.filename, config)
	}

	// Non-JSON files and invalid configs are skipped
	os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("readme"), 0644)
	os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"name": ""}`), 0644)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	configList, err := manager.ListConfigs()
	if err != nil {
		t.Fatalf("Failed to list configs: %v", err)
	}
	if len(configList) != 3 {
		t.Errorf("Expected 3 configs, got %d", len(configList))
	}

	foundConfigs := make(map[string]bool)
	for _, info := range configList {
		foundConfigs[info.Name] = true

		if info.ConfigID == "" || info.Filename == "" {
			t.Errorf("Expected config id and filename to be set, got %+v", info)
		}
	}

	for _, cfg := range configs {
		if !foundConfigs[cfg.name] {
			t.Errorf("Config '%s' not found in list", cfg.name)
		}
	}
}

func TestManager_SaveConfig(t *testing.T) {
	dir := t.TempDir()

	writeConfigFile(t, dir, "classic", createValidConfig())

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("round trip", func(t *testing.T) {
		config := createValidConfig()
		config.Name = "Custom"
		config.VictoryGold = 20000

		if err := manager.SaveConfig("custom", config); err != nil {
			t.Fatalf("Failed to save config: %v", err)
		}

		loaded, err := manager.LoadConfig("custom")
		if err != nil {
			t.Fatalf("Failed to load saved config: %v", err)
		}
		if loaded.Name != "Custom" || loaded.VictoryGold != 20000 {
			t.Errorf("Saved config not round-tripped, got %+v", loaded)
		}

		// File should exist on disk
		if _, err := os.Stat(filepath.Join(dir, "custom.json")); err != nil {
			t.Errorf("Expected custom.json on disk: %v", err)
		}
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		config := createValidConfig()
		config.VictoryGold = config.StartingGold // must exceed

		err := manager.SaveConfig("bad", config)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestManager_RefreshCache(t *testing.T) {
	dir := t.TempDir()

	config := createValidConfig()
	config.Name = "Changeable"
	config.StartingGold = 1000
	writeConfigFile(t, dir, "classic", config)
	writeConfigFile(t, dir, "changeable", config)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	loaded, _ := manager.LoadConfig("changeable")
	if loaded.StartingGold != 1000 {
		t.Errorf("Expected initial starting gold 1000, got %d", loaded.StartingGold)
	}

	// Modify on disk, then refresh to drop the stale cache
	config.StartingGold = 2000
	writeConfigFile(t, dir, "changeable", config)

	if err := manager.RefreshCache(); err != nil {
		t.Fatalf("Failed to refresh cache: %v", err)
	}

	reloaded, _ := manager.LoadConfig("changeable")
	if reloaded.StartingGold != 2000 {
		t.Errorf("Expected reloaded starting gold 2000, got %d", reloaded.StartingGold)
	}
}

func TestManager_SetDefault(t *testing.T) {
	dir := t.TempDir()

	writeConfigFile(t, dir, "classic", createValidConfig())

	blitz := createValidConfig()
	blitz.Name = "Blitz"
	writeConfigFile(t, dir, "blitz", blitz)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	if err := manager.SetDefault("blitz"); err != nil {
		t.Fatalf("Failed to set default: %v", err)
	}

	if got := manager.GetDefault(); got.Name != "Blitz" {
		t.Errorf("Expected default 'Blitz', got '%s'", got.Name)
	}

	if err := manager.SetDefault("missing"); err == nil {
		t.Error("Expected error when setting a missing config as default")
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	dir := t.TempDir()

	writeConfigFile(t, dir, "classic", createValidConfig())

	for i := 1; i <= 5; i++ {
		config := createValidConfig()
		config.Name = "Config" + string(rune('0'+i))
		writeConfigFile(t, dir, "config"+string(rune('0'+i)), config)
	}

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			configName := "config" + string(rune('0'+((id%5)+1)))
			if _, err := manager.LoadConfig(configName); err != nil {
				errs <- err
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Unexpected error during concurrent access: %v", err)
	}
}
