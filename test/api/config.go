/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	// ErrMissingConfiguration is returned when a required setting is absent.
	ErrMissingConfiguration = errors.New("missing required configuration")
)

type TestConfig struct {
	BaseURL           string
	RequestTimeout    time.Duration
	TestTimeout       time.Duration
	UseFakeService    bool
	SkipIntegration   bool
	ValidateResponses bool
	DebugLogging      bool
	LogRequests       bool
	LogResponses      bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:           os.Getenv("API_BASE_URL"),
		RequestTimeout:    getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		TestTimeout:       getDurationWithDefault("TEST_TIMEOUT", 2*time.Minute),
		UseFakeService:    getBoolWithDefault("USE_FAKE_SERVICE", false),
		SkipIntegration:   getBoolWithDefault("SKIP_INTEGRATION", false),
		ValidateResponses: getBoolWithDefault("VALIDATE_RESPONSES", false),
		DebugLogging:      getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:       getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:      getBoolWithDefault("LOG_RESPONSES", false),
	}

	if config.DebugLogging {
		config.LogRequests = true
		config.LogResponses = true
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../.env",    // From test/api
		"../../.env", // From test/api/suites and test/contracts/consumer
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// Not found, CI sets variables directly.
		return
	}

	// Existing variables win over the file.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	// The fake service picks its own address at suite start.
	if config.UseFakeService {
		return nil
	}

	var missing []string

	required := map[string]string{
		"API_BASE_URL": config.BaseURL,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s. Please set these environment variables, add them to a .env file, or set USE_FAKE_SERVICE=true", ErrMissingConfiguration, strings.Join(missing, ", "))
	}

	return nil
}
