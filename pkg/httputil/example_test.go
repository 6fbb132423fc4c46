package httputil_test

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/hunter/pkg/config"
	"github.com/wonny/hunter/pkg/httputil"
	"github.com/wonny/hunter/pkg/logger"
)

// Example_basic demonstrates basic HTTP client usage
func Example_basic() {
	cfg := &config.Config{
		Env:      "production",
		LogLevel: "info",
	}
	log := logger.New(cfg)

	// Create HTTP client (SSOT)
	client := httputil.New(log)

	// Make GET request
	ctx := context.Background()
	resp, err := client.Get(ctx, "https://query1.finance.yahoo.com/v10/finance/quoteSummary/AAPL")
	if err != nil {
		fmt.Printf("Request failed: %v\n", err)
		return
	}
	defer resp.Body.Close()

	fmt.Printf("Status: %d\n", resp.StatusCode)
	// Example output:
	// (Status code from real request)
}

// Example_withRetry demonstrates retry configuration
func Example_withRetry() {
	cfg := &config.Config{
		Env:      "production",
		LogLevel: "info",
	}
	log := logger.New(cfg)

	// Create client with custom retry settings
	client := httputil.New(log).
		WithRetry(5, 2*time.Second) // 5 retries, 2s initial delay

	ctx := context.Background()
	resp, err := client.Get(ctx, "https://en.wikipedia.org/wiki/Nasdaq-100")
	if err != nil {
		fmt.Printf("Request failed after retries: %v\n", err)
		return
	}
	defer resp.Body.Close()

	fmt.Println("Request succeeded")
	// Example output:
	// (Success or failure after retries)
}

// Example_withRateLimit demonstrates provider-friendly request pacing
func Example_withRateLimit() {
	cfg := &config.Config{
		Env:      "production",
		LogLevel: "info",
	}
	log := logger.New(cfg)

	// Cap requests to 4/s with a burst of 2; protects the fundamentals
	// provider during the batch fetch
	client := httputil.NewWithTimeout(log, 15*time.Second).
		WithRateLimit(4.0, 2)

	ctx := context.Background()
	resp, err := client.Get(ctx, "https://query1.finance.yahoo.com/v10/finance/quoteSummary/MSFT")
	if err != nil {
		fmt.Printf("Request failed: %v\n", err)
		return
	}
	defer resp.Body.Close()

	fmt.Println("Request completed within rate limit")
	// Example output:
	// (Success or failure)
}
