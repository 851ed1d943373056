package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"
	"pkt.systems/retroterm"
	"pkt.systems/retroterm/tcellhost"
)

// NewRootCommand builds the root CLI command: it runs the demo program
// on a console or screen terminal. Defaults come from the config file,
// then RETROTERM_QUERY ("mode=screen&cols=40"), then flags.
func NewRootCommand(loader *retroterm.Loader) *cobra.Command {
	var configFile string
	var mode string
	var cols int
	var rows int
	var logFile string

	v := loader.Viper()
	v.SetDefault("terminal.mode", retroterm.DefaultMode)
	v.SetDefault("terminal.cols", retroterm.DefaultCols)
	v.SetDefault("terminal.rows", retroterm.DefaultRows)
	v.SetDefault("log.file", retroterm.DefaultLogPath())

	cmd := &cobra.Command{
		Use:   "retroterm",
		Short: "Retroterm interactive terminal demo",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if configFile != "" {
				loader.SetConfigFile(configFile)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loader.Load()
			if err != nil {
				return err
			}

			query := retroterm.ParseQuery(os.Getenv("RETROTERM_QUERY"))

			modeValue := mode
			if !cmd.Flags().Changed("mode") {
				modeValue = cfg.Terminal.Mode
				if q := query.Get("mode"); q != "" {
					modeValue = q
				}
			}
			colsValue := cols
			if !cmd.Flags().Changed("cols") {
				colsValue = cfg.Terminal.Cols
				if n, ok := queryInt(query, "cols"); ok {
					colsValue = n
				}
			}
			rowsValue := rows
			if !cmd.Flags().Changed("rows") {
				rowsValue = cfg.Terminal.Rows
				if n, ok := queryInt(query, "rows"); ok {
					rowsValue = n
				}
			}
			logPath := logFile
			if !cmd.Flags().Changed("log-file") {
				logPath = cfg.Log.File
			}

			switch modeValue {
			case "console":
				logger := pslog.Ctx(cmd.Context()).With("component", "console")
				tty := retroterm.New(retroterm.NewConsole(retroterm.ConsoleOptions{
					Logger: logger,
				}))
				return runDemo(cmd.Context(), tty)
			case "screen":
				return runScreen(cmd.Context(), colsValue, rowsValue, logPath)
			default:
				return fmt.Errorf("unknown mode %q (want console or screen)", modeValue)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	flags := cmd.Flags()
	flags.StringVar(&mode, "mode", retroterm.DefaultMode, "terminal mode (console or screen)")
	flags.IntVar(&cols, "cols", retroterm.DefaultCols, "screen columns")
	flags.IntVar(&rows, "rows", retroterm.DefaultRows, "screen rows")
	flags.StringVar(&logFile, "log-file", retroterm.DefaultLogPath(), "log file for screen mode")

	cmd.AddCommand(NewPaletteCommand())

	return cmd
}

// runScreen drives the demo on a tcell-hosted screen terminal. Screen
// mode logs to a file: stderr belongs to the tcell screen while the
// host is running.
func runScreen(parent context.Context, cols, rows int, logPath string) error {
	logger, closer, err := openFileLogger(logPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = closer.Close()
	}()
	logger = logger.With("component", "screen")

	term := retroterm.NewScreen(retroterm.ScreenOptions{
		Cols:   cols,
		Rows:   rows,
		Logger: logger,
	})
	host, err := tcellhost.New(tcellhost.Options{Term: term, Logger: logger})
	if err != nil {
		return err
	}
	defer host.Fini()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	hostErr := make(chan error, 1)
	go func() {
		hostErr <- host.Run(ctx)
		cancel()
	}()

	tty := retroterm.New(term)
	err = runDemo(ctx, tty)
	if err == nil {
		_ = tty.Delay(ctx)
	}
	cancel()
	<-hostErr
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func queryInt(q retroterm.Params, key string) (int, bool) {
	raw := q.Get(key)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
