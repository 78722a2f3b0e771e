package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	apperrors "studycafe/pkg/errors"
	"studycafe/pkg/logger"
)

type Config struct {
	EnvFile string

	SeatPassCSVPath   string
	LockerPassCSVPath string

	LogLevel  string
	LogFormat string

	SelectionMaxAttempts int

	Log *logger.Logger
}

// Load builds the configuration and exits the process when it is invalid.
func Load(serviceName string) *Config {
	cfg, err := New(serviceName)
	if err != nil {
		logger.New(logger.Config{Service: serviceName}).Error(err.Error())
		os.Exit(apperrors.ExitCode(err))
	}
	cfg.LogConfiguration()
	return cfg
}

// New reads the optional .env file, then the process environment. Variables
// already present in the environment win over the file.
func New(serviceName string) (*Config, error) {
	envFile := getEnvStr(EnvFile, DefaultEnvFile)
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
	}

	cfg := &Config{
		EnvFile: envFile,

		SeatPassCSVPath:   getEnvStr(EnvSeatPassCSVPath, DefaultSeatPassCSVPath),
		LockerPassCSVPath: getEnvStr(EnvLockerPassCSVPath, DefaultLockerPassCSVPath),

		LogLevel:  getEnvStr(EnvLogLevel, DefaultLogLevel),
		LogFormat: getEnvStr(EnvLogFormat, DefaultLogFormat),

		SelectionMaxAttempts: getEnvNum(EnvSelectionMaxAttempts, DefaultSelectionMaxAttempts),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Log = logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: serviceName,
	})
	return cfg, nil
}

func (cfg *Config) Validate() error {
	var problems []string

	if cfg.SeatPassCSVPath == "" {
		problems = append(problems, "SeatPassCSVPath cannot be empty")
	}
	if cfg.LockerPassCSVPath == "" {
		problems = append(problems, "LockerPassCSVPath cannot be empty")
	}

	if !logger.IsValidLevel(cfg.LogLevel) {
		problems = append(problems, fmt.Sprintf("LogLevel must be one of debug, info, warn, error, got: %s", cfg.LogLevel))
	}
	if !logger.IsValidFormat(cfg.LogFormat) {
		problems = append(problems, fmt.Sprintf("LogFormat must be json or text, got: %s", cfg.LogFormat))
	}

	if cfg.SelectionMaxAttempts < 1 || cfg.SelectionMaxAttempts > MaxSelectionMaxAttempts {
		problems = append(problems, fmt.Sprintf("SelectionMaxAttempts must be between 1 and %d, got: %d", MaxSelectionMaxAttempts, cfg.SelectionMaxAttempts))
	}

	if len(problems) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, problem := range problems {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, problem)
		}
		return apperrors.InvalidConfig(errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"env_file", cfg.EnvFile,
		"seat_pass_csv_path", cfg.SeatPassCSVPath,
		"locker_pass_csv_path", cfg.LockerPassCSVPath,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"selection_max_attempts", cfg.SelectionMaxAttempts,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
