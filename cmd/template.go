package cmd

import (
	"fmt"
	"strings"

	"github.com/nconklindev/stockcell/internal/importer"

	"github.com/spf13/cobra"
)

func newTemplateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "template <output.xlsx>",
		Short: "Write an empty import spreadsheet with the expected columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variant := a.cfg.ParsedVariant()
			if err := importer.WriteTemplate(args[0], variant); err != nil {
				return fmt.Errorf("write template: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Template written to %s (%s columns: %s)\n",
				args[0], variant, strings.Join(importer.TemplateHeaders(variant), ", "))
			return nil
		},
	}
}
