package cmd

import (
	"fmt"
	"strings"

	"github.com/nconklindev/stockcell/internal/importer"
	"github.com/nconklindev/stockcell/internal/search"
	"github.com/nconklindev/stockcell/internal/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [filter]",
		Short: "Print the catalog, optionally filtered by article, name or cell",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.consoleLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			store, variant, err := a.inventory(logger)
			if err != nil {
				return err
			}

			products := search.Filter(strings.Join(args, " "), store.Snapshot())
			fmt.Fprintln(cmd.OutOrStdout(), catalogTable(products, variant))
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d products\n", len(products), store.Len())
			return nil
		},
	}
}

func catalogTable(products []types.Product, variant types.Variant) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	if variant == types.VariantExtended {
		t.Headers("Code", "Article", "Name", "Cell")
		for _, p := range products {
			t.Row(p.ID, p.Article, p.Name, p.Cell)
		}
		return t.Render()
	}

	t.Headers("ID", "Zone", "Article", "Name", "Cell", "Qty")
	for _, p := range products {
		t.Row(p.ID, string(p.Zone), p.Article, p.Name, p.Cell, importer.FormatQuantity(p.Quantity))
	}
	return t.Render()
}
