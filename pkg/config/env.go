package config

const (
	EnvFile = "ENV_FILE"

	EnvSeatPassCSVPath   = "SEAT_PASS_CSV_PATH"
	EnvLockerPassCSVPath = "LOCKER_PASS_CSV_PATH"

	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"

	EnvSelectionMaxAttempts = "SELECTION_MAX_ATTEMPTS"
)
