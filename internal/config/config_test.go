package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		ProjectID:                 "gwaste-prod",
		CredentialsFile:           "/etc/gwaste/sa.json",
		ListenAddr:                ":8080",
		PostgresDSN:               "postgres://gwaste@localhost/telemetry",
		PubsubSubscription:        "truck-pings",
		ORSAPIKey:                 "ors-key",
		SimulateTrucks:            true,
		SimulationIntervalSeconds: 5,
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MinimalConfig(t *testing.T) {
	cfg := &Config{
		ProjectID: "gwaste-prod",
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MissingProjectID(t *testing.T) {
	cfg := &Config{
		ListenAddr: ":8080",
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_InvalidSimulationInterval(t *testing.T) {
	cfg := &Config{
		ProjectID:                 "gwaste-prod",
		SimulationIntervalSeconds: -1,
	}

	err := Validate(cfg)
	assert.Error(t, err)
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	validConfig := `
projectID: "gwaste-prod"
credentialsFile: "/etc/gwaste/sa.json"
listenAddr: ":9090"
postgresDSN: "postgres://gwaste@localhost/telemetry"
pubsubSubscription: "truck-pings"
simulateTrucks: true
simulationIntervalSeconds: 10
`

	err := os.WriteFile(configPath, []byte(validConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "gwaste-prod", cfg.ProjectID)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "truck-pings", cfg.PubsubSubscription)
	assert.True(t, cfg.SimulateTrucks)
	assert.Equal(t, 10, cfg.SimulationIntervalSeconds)
}

func TestLoadFromPath_AppliesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "minimal_config.yaml")

	minimalConfig := `
projectID: "gwaste-prod"
`

	err := os.WriteFile(configPath, []byte(minimalConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 5, cfg.SimulationIntervalSeconds)
	assert.False(t, cfg.SimulateTrucks)
}

func TestLoadFromPath_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "env_config.yaml")

	baseConfig := `
projectID: "gwaste-prod"
postgresDSN: "postgres://yaml-value"
`

	err := os.WriteFile(configPath, []byte(baseConfig), 0644)
	require.NoError(t, err)

	t.Setenv("GWASTE_POSTGRES_DSN", "postgres://env-value")
	t.Setenv("GWASTE_ORS_API_KEY", "env-ors-key")

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "postgres://env-value", cfg.PostgresDSN)
	assert.Equal(t, "env-ors-key", cfg.ORSAPIKey)
}

func TestLoadFromPath_MissingRequiredField(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_config.yaml")

	invalidConfig := `
listenAddr: ":8080"
`

	err := os.WriteFile(configPath, []byte(invalidConfig), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_yaml.yaml")

	invalidYAML := `
projectID: "gwaste-prod"
  invalid indentation
listenAddr: ":8080"
`

	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_FileNotFound(t *testing.T) {
	_, err := LoadFromPath("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
