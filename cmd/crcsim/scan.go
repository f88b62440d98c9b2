package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bft-labs/crcsim/pkg/crcsim"
	"github.com/bft-labs/crcsim/pkg/log"
	"github.com/bft-labs/crcsim/pkg/report"
)

func newScanCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Flip every frame bit once and list the errors the check code misses",
		Example: `  crcsim scan --message "I love you"
  crcsim scan --polynomial 10 --chunk-size 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := c.resolve(cmd)
			if err != nil {
				return err
			}

			sim, err := crcsim.New(cfg.ToSimulation(), crcsim.WithLogger(c.log))
			if err != nil {
				return fmt.Errorf("create simulation: %w", err)
			}
			result, err := sim.Scan(cmd.Context())
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}

			if !result.Complete() {
				c.log.Warn("single-bit errors went undetected",
					log.Int("undetected", len(result.Undetected)),
					log.Int("tested", result.Tested),
				)
			}

			renderer, err := report.New(cfg.Format, cfg.NoColor)
			if err != nil {
				return err
			}
			return renderer.RenderScan(cmd.OutOrStdout(), result)
		},
	}
}
