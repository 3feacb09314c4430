package env

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"indexgen/pkg/logger"
)

// LoadEnv loads environment variables from a .env file in the working
// directory. A missing file is not an error; the generator runs fine on
// flags and process environment alone.
func LoadEnv() {
	const envPath = ".env"

	if _, statErr := os.Stat(envPath); statErr != nil {
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		logger.Warn("Could not load %s: %v", envPath, err)
		return
	}

	logger.Debug("Environment variables loaded from %s", envPath)
}

// GetString returns the environment variable value or a default if not set
func GetString(key string, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	return value
}

// GetUint returns the environment variable value as uint or a default if not set
func GetUint(key string, defaultValue uint) uint {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		logger.Warn("Environment variable %s is not a valid unsigned integer, using default value %d instead", key, defaultValue)
		return defaultValue
	}

	return uint(value)
}

// IsBool returns whether the environment variable is set to a truthy value or uses the default
func IsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	enabled := value == "1" || value == "true" || value == "yes" || value == "y"
	return enabled
}
