package main

import (
	"os"
	"testing"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName == "" {
		t.Error("AppName should not be empty")
	}

	expectedAppName := "Nardis Rail Trading Game Server"
	if AppName != expectedAppName {
		t.Errorf("Expected app name %s, got %s", expectedAppName, AppName)
	}
}

func TestInitializeServices(t *testing.T) {
	originalConfigDir := *configDir
	*configDir = t.TempDir()
	defer func() { *configDir = originalConfigDir }()

	gameService, err := initializeServices()
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	if gameService == nil {
		t.Fatal("Expected game service to be initialized")
	}
}

func TestFlagDefaults(t *testing.T) {
	// Test that flags have reasonable defaults
	if *port <= 0 || *port > 65535 {
		t.Errorf("Invalid default port: %d", *port)
	}

	if *host == "" {
		t.Error("Host should have a default value")
	}

	if *configDir == "" {
		t.Error("Config directory should have a default value")
	}
}

func TestGetConfigDirDefault(t *testing.T) {
	original := os.Getenv("CONFIG_DIR")
	defer os.Setenv("CONFIG_DIR", original)

	os.Setenv("CONFIG_DIR", "/tmp/custom-configs")
	if got := getConfigDirDefault(); got != "/tmp/custom-configs" {
		t.Errorf("Expected CONFIG_DIR override, got %s", got)
	}

	os.Unsetenv("CONFIG_DIR")
	if got := getConfigDirDefault(); got != "configs" {
		t.Errorf("Expected fallback 'configs', got %s", got)
	}
}

// Note: We can't easily test main(), runHTTPServer(), and runStdioMCPWithInternalServer()
// without significant mocking or refactoring, as they start servers and block.
// These functions would be better tested in integration tests that start actual servers
// and test their endpoints.

func TestServiceInitialization(t *testing.T) {
	originalConfigDir := *configDir
	*configDir = t.TempDir()
	defer func() { *configDir = originalConfigDir }()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Service initialization panicked: %v", r)
		}
	}()

	if _, err := initializeServices(); err != nil {
		t.Logf("Service initialization failed: %v", err)
	}
}
