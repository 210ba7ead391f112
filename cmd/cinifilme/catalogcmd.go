package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/germanamz/cinifilme/pkg/catalog"
	"github.com/germanamz/cinifilme/pkg/promo"
)

func newCatalogCmd(flags *rootFlags) *cobra.Command {
	var promoOnly bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the resolved catalog as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(flags)
			if err != nil {
				return err
			}
			defer s.close()

			cat := s.loadCatalog(cmd.Context())
			return printCatalog(cmd.OutOrStdout(), cat, promoOnly)
		},
	}
	cmd.Flags().BoolVar(&promoOnly, "promo", false, "print the promo strip instead")
	return cmd
}

func printCatalog(out io.Writer, cat catalog.Catalog, promoOnly bool) error {
	if promoOnly {
		for _, src := range promo.Strip(cat, promo.DefaultMax) {
			if _, err := fmt.Fprintln(out, src); err != nil {
				return err
			}
		}
		return nil
	}

	data, err := yaml.Marshal(cat)
	if err != nil {
		return fmt.Errorf("catalog: encode: %w", err)
	}
	_, err = out.Write(data)
	return err
}
