package cli

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/savectl/savectl/pkg/save"
)

var (
	offsetsActual []string
	offsetsStore  bool
)

// listedOffset is the JSON shape of one computed offset.
type listedOffset struct {
	Name   string `json:"name"`
	Offset int64  `json:"offset"`
}

var offsetsCmd = &cobra.Command{
	Use:   "offsets",
	Short: "Compute stored-minus-actual offsets from in-game amounts",
	Long: `Compute each entry's obfuscation offset by comparing the value stored in
the save file against the amount the game actually displays.

Pass the displayed amounts with --actual (repeatable). With --store, the
offsets are written to the savectl config file so later 'savectl set'
invocations can use them without re-supplying --actual.`,
	Example: `  savectl offsets --actual gold=75 --actual lucky_coin=10
  savectl offsets --actual gold=75 --store`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		amounts, err := parseAmounts(offsetsActual)
		if err != nil {
			return err
		}

		_, buf, cfg, err := loadSave()
		if err != nil {
			return err
		}
		catalog := save.NewScanner(newLogger()).Catalog(buf)

		offsets, err := save.ComputeOffsets(catalog, amountsMap(amounts))
		if err != nil {
			return err
		}

		if offsetsStore {
			for name, offset := range offsets {
				cfg.Offsets[name] = offset
			}
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("storing offsets: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Stored %d offset(s) in the config file.\n", len(offsets))
		}

		return runOffsets(os.Stdout, offsets, jsonOutput)
	},
}

// runOffsets renders computed offsets, sorted by entry name.
func runOffsets(w io.Writer, offsets save.Offsets, asJSON bool) error {
	names := make([]string, 0, len(offsets))
	for name := range offsets {
		names = append(names, name)
	}
	sort.Strings(names)

	listed := make([]listedOffset, 0, len(names))
	for _, name := range names {
		listed = append(listed, listedOffset{Name: name, Offset: offsets[name]})
	}

	if asJSON {
		return printJSON(w, listed)
	}

	tw := table(w)
	fmt.Fprintln(tw, "NAME\tOFFSET")
	for _, o := range listed {
		fmt.Fprintf(tw, "%s\t%d\n", o.Name, o.Offset)
	}
	return tw.Flush()
}

func init() {
	offsetsCmd.Flags().StringArrayVar(&offsetsActual, "actual", nil, "Actual in-game amount, e.g. gold=75 (repeatable)")
	offsetsCmd.Flags().BoolVar(&offsetsStore, "store", false, "Persist the computed offsets in the config file")
	rootCmd.AddCommand(offsetsCmd)
}
