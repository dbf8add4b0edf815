package config

const (
	// DefaultEnvFile is the .env file loaded when present.
	DefaultEnvFile = ".env"

	// EnvFileVar overrides the .env file location.
	EnvFileVar = "GTESTBOX_ENV"
	// EnvVerbose enables verbose output ("1", "true", "yes").
	EnvVerbose = "GTESTBOX_VERBOSE"
	// EnvNoColor disables colored output ("1", "true", "yes").
	EnvNoColor = "GTESTBOX_NO_COLOR"
)
