package config

const (
	// DefaultEnvFile is the dotenv file read at startup when present
	DefaultEnvFile = ".env"
	// DefaultLogLevel is the logrus level used when none is configured
	DefaultLogLevel = "warn"
	// Version is the framework version reported by --version
	Version = "1.1"
)

// Environment variables that override defaults.
const (
	EnvNoColor  = "YTF_NO_COLOR"
	EnvProgress = "YTF_PROGRESS"
	EnvLogLevel = "YTF_LOG_LEVEL"
	EnvEnvFile  = "YTF_ENV_FILE"
)
