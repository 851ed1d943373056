package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"pkt.systems/retroterm"
)

// NewPaletteCommand lists the sixteen palette colors.
func NewPaletteCommand() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "List the sixteen palette colors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			type entry struct {
				Code int    `yaml:"code"`
				Name string `yaml:"name"`
				Hex  string `yaml:"hex"`
			}
			entries := make([]entry, 0, 16)
			for c := retroterm.Black; c < retroterm.ColorNone; c++ {
				entries = append(entries, entry{
					Code: c.Code(),
					Name: c.Name(),
					Hex:  c.Hex(),
				})
			}

			if asYAML {
				out, err := yaml.Marshal(entries)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}

			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %-15s %s\n", e.Code, e.Name, e.Hex)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "emit the palette as YAML")
	return cmd
}
