package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/crcsim/internal/adapters/fs"
	"github.com/bft-labs/crcsim/internal/cliconfig"
	"github.com/bft-labs/crcsim/internal/watch"
	"github.com/bft-labs/crcsim/pkg/crcsim"
	"github.com/bft-labs/crcsim/pkg/log"
	"github.com/bft-labs/crcsim/pkg/report"
)

const helpDescription = `
Send a text message through a simulated noisy channel and watch CRC catch the damage.

Highlights:
  - Splits the message into fixed-size bursts and appends a CRC check code to each.
  - Flips every transmitted bit independently with a configurable probability.
  - Recomputes the check code on the receiver side and reports every mismatch.
  - Seeded generator: the same configuration always produces the same report.

Configure via file ($HOME/.crcsim/config.toml), CRCSIM_* environment variables, or flags.
`

var exampleUsage = strings.TrimSpace(`
  crcsim --message "I love you" --error-probability 0.05
  crcsim -m "A" --error-probability 0 --format json -o report.json
  crcsim --config ./crcsim.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return crcsim.Version + "-dev"
}

// cli holds the flag-bound configuration and the current logger.
type cli struct {
	flags   cliconfig.Config
	cfgPath string
	log     log.Logger
}

func main() {
	c := newCLI()
	root := newRootCommand(c)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		c.log.Error("crcsim", log.Err(err))
		os.Exit(1)
	}
}

func newCLI() *cli {
	return &cli{
		flags: cliconfig.DefaultConfig(),
		log:   log.NewZerologAdapter(os.Stderr, cliconfig.LogLevel(cliconfig.DefaultLogLevel)),
	}
}

func newRootCommand(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "crcsim",
		Short:         "Simulate CRC error detection over a noisy binary channel",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cfgFile, err := c.resolve(cmd)
			if err != nil {
				return err
			}

			if err := c.simulate(cmd.Context(), cfg, cmd.OutOrStdout()); err != nil {
				return err
			}
			if !cfg.Watch {
				return nil
			}
			return c.watch(cmd, cfgFile)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgPath, "config", "", "path to config file (default: $HOME/.crcsim/config.toml)")
	pf.StringVarP(&c.flags.Message, "message", "m", c.flags.Message, "text message to transmit")
	pf.StringVar(&c.flags.Polynomial, "polynomial", c.flags.Polynomial, "generator polynomial as a bit string, highest degree first")
	pf.IntVar(&c.flags.ChunkSizeBits, "chunk-size", c.flags.ChunkSizeBits, "message bits per burst")
	pf.Float64Var(&c.flags.ErrorProbability, "error-probability", c.flags.ErrorProbability, "per-bit flip probability of the channel, in [0, 1]")
	pf.Int64Var(&c.flags.Seed, "seed", c.flags.Seed, "seed of the channel's random generator")
	pf.IntVar(&c.flags.UnitBits, "unit-bits", c.flags.UnitBits, "bits per message character, in [1, 8]")
	pf.StringVar(&c.flags.Engine, "engine", c.flags.Engine, "check code engine: division or table")
	pf.StringVar(&c.flags.Format, "format", c.flags.Format, "report format: text or json")
	pf.StringVarP(&c.flags.Output, "output", "o", c.flags.Output, "write the report to this file instead of stdout")
	pf.BoolVar(&c.flags.NoColor, "no-color", c.flags.NoColor, "disable colored text output")
	pf.StringVar(&c.flags.LogLevel, "log-level", c.flags.LogLevel, "log level: debug, info, warn or error")
	root.Flags().BoolVar(&c.flags.Watch, "watch", c.flags.Watch, "re-run the simulation whenever the config file changes")

	root.AddCommand(newEncodeCommand(c), newScanCommand(c))
	return root
}

// resolve merges defaults, the config file, CRCSIM_* variables and flags,
// in increasing precedence, and validates the result.
func (c *cli) resolve(cmd *cobra.Command) (cliconfig.Config, string, error) {
	cfgFile := c.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	// Build set of changed flags
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfg := c.flags
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return cfg, cfgFile, fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
			return cfg, cfgFile, err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
		return cfg, cfgFile, fmt.Errorf("environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, cfgFile, err
	}

	c.log = log.NewZerologAdapter(os.Stderr, cliconfig.LogLevel(cfg.LogLevel))
	c.log.Debug("configuration", log.Any("config", cfg), log.String("config_file", cfgFile))
	return cfg, cfgFile, nil
}

// simulate runs one simulation and writes the report to the configured
// output file, or to stdout.
func (c *cli) simulate(ctx context.Context, cfg cliconfig.Config, stdout io.Writer) error {
	sim, err := crcsim.New(cfg.ToSimulation(), crcsim.WithLogger(c.log))
	if err != nil {
		return fmt.Errorf("create simulation: %w", err)
	}

	rep, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("run simulation: %w", err)
	}

	renderer, err := report.New(cfg.Format, cfg.NoColor)
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		return renderer.Render(stdout, rep)
	}

	file := fs.NewReportFile(cfg.Output, renderer)
	if err := file.Write(ctx, rep); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	c.log.Info("report written",
		log.String("path", file.Path()),
		log.Int("bursts", rep.Summary.Bursts),
		log.Int("mismatched", rep.Summary.Mismatched),
	)
	return nil
}

// watch re-runs the simulation on every change of cfgFile until the
// context is cancelled.
func (c *cli) watch(cmd *cobra.Command, cfgFile string) error {
	if cfgFile == "" || !cliconfig.FileExists(cfgFile) {
		return errors.New("watch: no config file to watch")
	}

	w := watch.New(cfgFile, watch.DefaultDebounceDelay, c.log, func(ctx context.Context) {
		cfg, _, err := c.resolve(cmd)
		if err != nil {
			c.log.Error("config reload failed", log.Err(err))
			return
		}
		if err := c.simulate(ctx, cfg, cmd.OutOrStdout()); err != nil {
			c.log.Error("simulation failed", log.Err(err))
		}
	})

	err := w.Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		c.log.Info("received signal, stopping...")
		return nil
	}
	return err
}
