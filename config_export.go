package retroterm

import "pkt.systems/retroterm/internal/config"

// Config mirrors the retroterm configuration.
type Config = config.Config

// TerminalConfig configures terminal defaults.
type TerminalConfig = config.TerminalConfig

// LogConfig configures logging defaults.
type LogConfig = config.LogConfig

// Loader wraps configuration loading via Viper.
type Loader = config.Loader

const (
	// DefaultConfigDirName is the directory name under the home directory.
	DefaultConfigDirName = config.DefaultConfigDirName
	// DefaultConfigFileName is the default config file name.
	DefaultConfigFileName = config.DefaultConfigFileName
	// DefaultLogFileName is the default log file name.
	DefaultLogFileName = config.DefaultLogFileName

	// DefaultMode is the default terminal mode.
	DefaultMode = config.DefaultMode
	// DefaultCols is the default terminal column count.
	DefaultCols = config.DefaultTerminalCols
	// DefaultRows is the default terminal row count.
	DefaultRows = config.DefaultTerminalRows
)

// NewLoader returns a config loader with defaults wired.
func NewLoader() *config.Loader {
	return config.NewLoader()
}

// DefaultConfig returns default retroterm configuration.
func DefaultConfig() Config {
	return config.DefaultConfig()
}

// DefaultConfigDir returns the default config directory.
func DefaultConfigDir() string {
	return config.DefaultConfigDir()
}

// DefaultConfigPath returns the default config path.
func DefaultConfigPath() string {
	return config.DefaultConfigPath()
}

// DefaultLogPath returns the default log path.
func DefaultLogPath() string {
	return config.DefaultLogPath()
}
