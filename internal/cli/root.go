package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/faizmokh/pushups/internal/config"
	"github.com/faizmokh/pushups/internal/files"
	"github.com/faizmokh/pushups/internal/logging"
	"github.com/faizmokh/pushups/internal/stats"
	"github.com/faizmokh/pushups/internal/workout"
)

// Env holds the process-level collaborators commands depend on.
type Env struct {
	Now         func() time.Time
	Stdin       io.Reader
	Interactive func() bool
	// NewSaver builds the record writer. Defaults to workout.NewWriter.
	NewSaver func(manager *files.Manager) Saver
}

// DefaultEnv wires the real clock and stdin.
func DefaultEnv() *Env {
	return &Env{
		Now:   time.Now,
		Stdin: os.Stdin,
		Interactive: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

// app is resolved once flags are parsed and shared by every command.
type app struct {
	cfg     *config.Config
	manager *files.Manager
	codec   workout.DateCodec
	engine  *stats.Engine
}

type globalFlags struct {
	configPath string
	dataPath   string
	target     uint
	logLevel   string
	logFile    string
}

// NewRootCommand creates the top-level Cobra command. Running it records a
// workout and prints the progress report; subcommands only read.
func NewRootCommand(ctx context.Context, env *Env) *cobra.Command {
	var (
		flags globalFlags
		state = &app{}
	)

	cmd := &cobra.Command{
		Use:   "pushups [repeats]",
		Short: "Log today's pushups and see when you will reach your goal.",
		Long: "pushups appends today's repeat count to the data file, prints your progress\n" +
			"towards the target and projects when you will reach it at the current pace.\n" +
			"Without an argument it asks for the count when run in a terminal.",
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.init(cmd, flags)
		},
		RunE:          newRecordRunner(ctx, env, state),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (default: $PUSHUPS_HOME/config.yaml)")
	pf.StringVar(&flags.dataPath, "data", "", "Data file (default: ./pushups_data.json)")
	pf.UintVar(&flags.target, "target", 0, "Cumulative repeat goal (default: 10000)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: trace|debug|info|warn|error")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of stderr")

	cmd.Flags().String("date", "", "Record for another day: YYYY-MM-DD or RFC3339 (default: now)")

	cmd.AddCommand(
		newStatusCommand(ctx, state),
		newHistoryCommand(ctx, state),
		newVersionCommand(),
	)

	return cmd
}

func (a *app) init(cmd *cobra.Command, flags globalFlags) error {
	configPath := flags.configPath
	if configPath == "" {
		resolved, err := files.ResolveConfigPath()
		if err == nil {
			configPath = resolved
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	changed := cmd.Flags().Changed
	if changed("data") {
		cfg.DataPath = flags.dataPath
	}
	if changed("target") {
		cfg.Target = flags.target
	}
	if changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if changed("log-file") {
		cfg.Log.File = flags.logFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Setup(logging.Params{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		JSONFormat: cfg.Log.JSON,
		Stderr:     cmd.ErrOrStderr(),
	}); err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}

	manager, err := files.NewManager(cfg.DataPath)
	if err != nil {
		return err
	}
	codec, err := workout.CodecFor(cfg.DateFormat)
	if err != nil {
		return err
	}

	rounding := stats.RoundDown
	if strings.EqualFold(cfg.ProjectionRounding, config.RoundingCeil) {
		rounding = stats.RoundUp
	}

	a.cfg = cfg
	a.manager = manager
	a.codec = codec
	a.engine = stats.NewEngine(stats.Options{
		Target:     cfg.Target,
		HoursInDay: cfg.HoursInDay,
		Rounding:   rounding,
	})

	logrus.WithFields(logrus.Fields{
		"config": configPath,
		"data":   manager.Path(),
		"target": cfg.Target,
	}).Debug("configuration loaded")
	return nil
}

// ExecuteCommand executes cmd and reports any failure on stderr. It returns
// the process exit status. A partial save is reported too: logs may be going
// to a file the user is not looking at.
func ExecuteCommand(cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// Main is a helper used by cmd/pushups/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	cmd := NewRootCommand(ctx, DefaultEnv())
	os.Exit(ExecuteCommand(cmd, os.Stderr))
}
