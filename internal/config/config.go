package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	LogLevel         string
	ColorMode        string
	AcceptLowercase  bool
	MaxInvalidInputs int
}

var AppConfig *Config

func LoadConfig() *Config {
	// Logging stays silent unless asked for, so the board output is untouched
	logLevel := GetEnv("LOG_LEVEL", "disabled")

	// Console
	colorMode := GetEnv("CONNECT4_COLOR", "always")
	acceptLowercase := GetEnvAsBool("CONNECT4_ACCEPT_LOWERCASE", false)
	maxInvalidInputs := GetEnvAsInt("CONNECT4_MAX_INVALID_INPUTS", 0)
	if maxInvalidInputs < 0 {
		log.Printf("Negative value for CONNECT4_MAX_INVALID_INPUTS: %d, using 0", maxInvalidInputs)
		maxInvalidInputs = 0
	}

	AppConfig = &Config{
		LogLevel:         strings.ToLower(logLevel),
		ColorMode:        colorMode,
		AcceptLowercase:  acceptLowercase,
		MaxInvalidInputs: maxInvalidInputs,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
