package keyspace

import (
	"fmt"
	"io"
	"os"

	"github.com/edgeflare/keyspace/pkg/charset"
	"github.com/edgeflare/keyspace/pkg/config"
	"github.com/edgeflare/keyspace/pkg/keyspace"
	"github.com/edgeflare/keyspace/pkg/metrics"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
}

// NewRootCmd builds the keyspace command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "keyspace",
		Short: "keyspace generates passwords and enumerates password keyspaces",
		Long: `keyspace generates cryptographically random passwords, enumerates candidate
passwords over a character set and computes keyspace sizes.

Length ranges are half-open: --enumerate.maxLen is never produced.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		RunE:               a.runDemo,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.config/keyspace.yaml)")
	pf.StringP("log-level", "L", "info", "log at this level (debug, info, warn, error, fatal, none)")
	pf.String("metricsFile", "", "write prometheus metrics to this file on exit")
	rootCmd.Flags().BoolP("version", "v", false, "Print the version number")

	// malformed flag values, such as a non-integer length, are type errors
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return keyspace.TypeError("flag", err)
	})

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newEnumerateCmd(a),
		newSizeCmd(a),
		newWordlistCmd(a),
	)
	return rootCmd
}

func Main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	if err := a.v.BindPFlag("logLevel", cmd.Flags().Lookup("log-level")); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg, used, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger.With(zap.String("run_id", uuid.NewString()), zap.String("cmd", cmd.Name()))
	if used != "" {
		a.logger.Info("using config file", zap.String("path", used))
	}
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) error {
	defer a.logger.Sync() //nolint:errcheck

	if a.cfg == nil || a.cfg.MetricsFile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(a.cfg.MetricsFile); err != nil {
		a.logger.Error("failed to write metrics", zap.Error(err))
		return err
	}
	a.logger.Debug("wrote metrics", zap.String("path", a.cfg.MetricsFile))
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "none" {
		return zap.NewNop(), nil
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = lvl
	return zc.Build()
}

// runDemo prints a password, the first few combinations and a keyspace size.
func (a *app) runDemo(cmd *cobra.Command, args []string) error {
	versionFlag, _ := cmd.Flags().GetBool("version")
	if versionFlag {
		fmt.Fprintln(cmd.OutOrStdout(), config.Version)
		return nil
	}
	return demo(cmd.OutOrStdout(), a.logger)
}

func demo(w io.Writer, logger *zap.Logger) error {
	def := charset.New(charset.Default)

	pw, err := keyspace.NewGenerator(keyspace.WithLogger(logger)).Generate(32, def)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n\n", pw)

	e, err := keyspace.Enumerate(2, 3, def, keyspace.WithLogger(logger))
	if err != nil {
		return err
	}
	for _, c := range e.Take(10) {
		fmt.Fprintln(w, c)
	}

	size, err := keyspace.Size(2, 5, charset.New("abc"))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%s\n", size)
	return nil
}
