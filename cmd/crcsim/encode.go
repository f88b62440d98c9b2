package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bft-labs/crcsim/pkg/bitstring"
	"github.com/bft-labs/crcsim/pkg/crc"
	"github.com/bft-labs/crcsim/pkg/crcsim"
)

func newEncodeCommand(c *cli) *cobra.Command {
	var (
		bits   string
		verify bool
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Print the check code and frame of a bit string",
		Example: `  crcsim encode --bits 01000001
  crcsim encode --bits 1101011011 --polynomial 10011
  crcsim encode --bits 01000001_11000000 --verify`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := c.resolve(cmd)
			if err != nil {
				return err
			}
			if bits == "" {
				return errors.New("encode: --bits is required")
			}

			data, err := bitstring.Parse(bits)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			poly, err := crc.ParsePolynomial(cfg.Polynomial)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Polynomial: %s (CRC-%d)\n", poly, poly.Width())

			if verify {
				ok, err := crc.NewDivider(poly).Check(data)
				if err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				fmt.Fprintf(out, "Frame:      %s\n", data)
				if ok {
					fmt.Fprintln(out, "Remainder is zero: no error detected.")
				} else {
					fmt.Fprintln(out, "Remainder is not zero: error detected.")
				}
				return nil
			}

			enc, err := crcsim.NewEncoder(cfg.Engine, poly)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			check, err := enc.Encode(data)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			fmt.Fprintf(out, "Data:       %s\n", data)
			fmt.Fprintf(out, "Check code: %s\n", check)
			fmt.Fprintf(out, "Frame:      %s\n", data.Append(check))
			return nil
		},
	}

	cmd.Flags().StringVar(&bits, "bits", "", "bit string to encode ('_' and spaces are ignored)")
	cmd.Flags().BoolVar(&verify, "verify", false, "treat --bits as a received frame and check its remainder")
	return cmd
}
