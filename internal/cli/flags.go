package cli

import "ytf/internal/config"

// Flags holds command-line flags
type Flags struct {
	Version  bool
	List     bool
	Progress bool
	Browse   bool
	NoColor  bool
	LogLevel string
	EnvFile  string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		List:     f.List,
		Progress: f.Progress,
		Browse:   f.Browse,
		NoColor:  f.NoColor,
		LogLevel: f.LogLevel,
		EnvFile:  f.EnvFile,
	}
}
