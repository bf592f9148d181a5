package cmd

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nconklindev/stockcell/internal/importer"
	"github.com/nconklindev/stockcell/internal/search"
	"github.com/nconklindev/stockcell/internal/types"

	"github.com/spf13/cobra"
)

var errNotFound = errors.New("product not found")

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find <code or article>",
		Short: "Print the storage cell of the first matching product",
		Long: `Find looks up the first product whose code or article contains the query,
ignoring case, and prints where it is stored.`,
		Args: cobra.MinimumNArgs(1),
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

			query := strings.Join(args, " ")
			result := search.Lookup(query, store.Snapshot())
			if !result.Found() {
				return fmt.Errorf("%w: %q", errNotFound, query)
			}

			printProduct(cmd.OutOrStdout(), result.Product, variant)
			return nil
		},
	}
}

func printProduct(w io.Writer, p types.Product, variant types.Variant) {
	fmt.Fprintf(w, "Cell:     %s\n", p.Cell)
	fmt.Fprintf(w, "Article:  %s\n", p.Article)
	fmt.Fprintf(w, "Name:     %s\n", p.Name)

	if variant == types.VariantExtended {
		fmt.Fprintf(w, "Code:     %s\n", p.ID)
		keys := make([]string, 0, len(p.Extra))
		for k := range p.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "%s: %s\n", k, p.Extra[k])
		}
		return
	}

	fmt.Fprintf(w, "ID:       %s\n", p.ID)
	fmt.Fprintf(w, "Zone:     %s (%s)\n", p.Zone, types.ZoneLabel(types.ParseZone(string(p.Zone))))
	fmt.Fprintf(w, "Quantity: %s\n", importer.FormatQuantity(p.Quantity))
}
