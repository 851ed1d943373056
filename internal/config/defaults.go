package config

// DefaultConfig returns the default configuration values.
func DefaultConfig() Config {
	return Config{
		Terminal: TerminalConfig{
			Mode: DefaultMode,
			Cols: DefaultTerminalCols,
			Rows: DefaultTerminalRows,
		},
		Log: LogConfig{
			File: DefaultLogPath(),
		},
	}
}
