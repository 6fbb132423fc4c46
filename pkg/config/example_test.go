package config_test

import (
	"fmt"

	"github.com/wonny/hunter/pkg/config"
)

// Example demonstrates how to use the config package
func Example() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		return
	}

	// Access configuration values
	fmt.Printf("Server running on port: %s\n", cfg.Port)
	fmt.Printf("Environment: %s\n", cfg.Env)
	fmt.Printf("Output artifact: %s\n", cfg.Output.Basename)
	fmt.Printf("Yahoo rate limit: %.1f req/s\n", cfg.Yahoo.RequestsPerSec)
}
