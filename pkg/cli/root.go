package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/r11/denonctl/internal/defaults"
	"github.com/r11/denonctl/pkg/config"
	"github.com/r11/denonctl/pkg/idle"
	"github.com/r11/denonctl/pkg/logger"
)

// app carries state shared by the root command and its subcommands once the
// configuration has been loaded.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     zerolog.Logger
}

func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand creates the denonctl command tree. Run without arguments it
// idles until interrupted.
func NewRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "denonctl",
		Short: "Denon AV receiver control utility",
		Long: `denonctl is the starting point of a Denon AV receiver control utility.

For now it sets up logging and idles, logging once per interval, until it is
interrupted with Ctrl-C or SIGTERM.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runLoop,
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./config.yaml, $HOME/.denonctl/config.yaml or /etc/denonctl/config.yaml)")
	cmd.PersistentFlags().String("log-level", defaults.GetLogLevel(), "log level: debug, info, warn or error")
	cmd.PersistentFlags().Duration("interval", defaults.GetInterval(), "delay between idle loop iterations")

	cmd.AddCommand(newVersionCommand())
	cmd.AddCommand(newConfigCommand(a))

	return cmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, err := logger.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.New(cmd.OutOrStdout(), level)
	return nil
}

func (a *app) runLoop(cmd *cobra.Command, args []string) error {
	defer func() {
		a.log.Debug().Msg(defaults.CleanupMessage)
	}()

	if a.cfg.File != "" {
		a.log.Debug().Str("file", a.cfg.File).Msg("Using config file")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := idle.New(a.cfg.Loop.Interval, a.log).Run(ctx); err != nil {
		return fmt.Errorf("idle loop failed: %w", err)
	}

	a.log.Info().Msg(defaults.StopMessage)
	return nil
}
