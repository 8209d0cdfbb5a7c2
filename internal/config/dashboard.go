package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DashboardConfig holds settings for the admin dashboard CLI
type DashboardConfig struct {
	API struct {
		BaseURL string
	}
	Credentials struct {
		Path string
	}
}

// LoadDashboardConfig reads dashboard configuration from environment
// variables (COURTBOOK_ prefix) and an optional config file in the working
// directory.
func LoadDashboardConfig() (DashboardConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("COURTBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.baseurl", "http://localhost:8080")
	v.SetDefault("credentials.path", defaultCredentialsPath())

	v.SetConfigName("admindash")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg DashboardConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return DashboardConfig{}, fmt.Errorf("failed to unmarshal dashboard config: %w", err)
	}
	return cfg, nil
}

func defaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "credentials.json"
	}
	return filepath.Join(home, ".court_booking", "credentials.json")
}
