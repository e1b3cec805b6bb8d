package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// ProjectID is the Firebase/Firestore project holding the dashboard data.
	ProjectID string `yaml:"projectID" validate:"required"`
	// CredentialsFile points at a service account key; empty means
	// application default credentials.
	CredentialsFile string `yaml:"credentialsFile,omitempty"`
	ListenAddr      string `yaml:"listenAddr,omitempty"`
	// PostgresDSN is the truck telemetry database. Optional; without it the
	// truck endpoints are disabled.
	PostgresDSN string `yaml:"postgresDSN,omitempty"`
	// PubsubSubscription receives GPS pings from the on-truck units.
	PubsubSubscription string `yaml:"pubsubSubscription,omitempty"`
	ORSAPIKey          string `yaml:"orsAPIKey,omitempty"`
	SimulateTrucks     bool   `yaml:"simulateTrucks,omitempty"`
	// SimulationIntervalSeconds is the cadence of simulated pings.
	SimulationIntervalSeconds int `yaml:"simulationIntervalSeconds,omitempty" validate:"omitempty,min=1"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from gwaste_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory. Secrets may also arrive via a .env file or the
// environment, which take precedence over the yaml values.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GWASTE_PROJECT_ID"); v != "" {
		cfg.ProjectID = v
	}
	if v := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); v != "" && cfg.CredentialsFile == "" {
		cfg.CredentialsFile = v
	}
	if v := os.Getenv("GWASTE_POSTGRES_DSN"); v != "" {
		cfg.PostgresDSN = v
	}
	if v := os.Getenv("GWASTE_ORS_API_KEY"); v != "" {
		cfg.ORSAPIKey = v
	}
	if v := os.Getenv("GWASTE_PUBSUB_SUBSCRIPTION"); v != "" {
		cfg.PubsubSubscription = v
	}
	if v := os.Getenv("GWASTE_SIMULATE_TRUCKS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SimulateTrucks = b
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.SimulationIntervalSeconds == 0 {
		cfg.SimulationIntervalSeconds = 5
	}
}

// findConfigFile searches for gwaste_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "gwaste_config.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
