package config

import "studycafe/pkg/logger"

const (
	DefaultEnvFile = ".env"

	DefaultSeatPassCSVPath   = "data/seat-pass-list.csv"
	DefaultLockerPassCSVPath = "data/locker.csv"

	DefaultLogLevel  = logger.INFO
	DefaultLogFormat = logger.TEXT

	// One attempt per selection state: an invalid answer ends the session.
	DefaultSelectionMaxAttempts = 1
	MaxSelectionMaxAttempts     = 10
)
