package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/savectl/savectl/pkg/save"
)

var (
	setOut    string
	setActual []string
	setRaw    bool
)

// setResult is the JSON shape of one applied patch.
type setResult struct {
	Name   string `json:"name"`
	Stored int64  `json:"stored"`
}

var setCmd = &cobra.Command{
	Use:   "set <name=value> [name=value...]",
	Short: "Write new amounts into the save file",
	Long: `Patch the named entries to the given amounts and write the result with
--out. Amounts are in-game values: each is translated to its stored value
using the entry's offset, taken from --actual flags or from offsets
previously stored with 'savectl offsets --store'. Use --raw to bypass
offsets and store the given values literally.

Entries are patched one at a time, re-scanning the buffer between patches,
since an edit can shift every record after it.`,
	Example: `  savectl set gold=999 --actual gold=75 --out player.new
  savectl set gold=999 lucky_coin=50 --out player.new
  savectl set gold=1424 --raw --out player.new`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, err := parseAmounts(args)
		if err != nil {
			return err
		}
		if setOut == "" {
			return ErrOutputRequired
		}

		_, buf, cfg, err := loadSave()
		if err != nil {
			return err
		}
		scanner := save.NewScanner(newLogger())

		var offsets save.Offsets
		if !setRaw {
			offsets = make(save.Offsets, len(cfg.Offsets))
			for name, offset := range cfg.Offsets {
				offsets[name] = offset
			}
			if len(setActual) > 0 {
				actuals, err := parseAmounts(setActual)
				if err != nil {
					return err
				}
				computed, err := save.ComputeOffsets(scanner.Catalog(buf), amountsMap(actuals))
				if err != nil {
					return err
				}
				for name, offset := range computed {
					offsets[name] = offset
				}
			}
			if len(offsets) == 0 {
				return ErrActualRequired
			}
		}

		updated, results, err := applyAmounts(scanner, buf, pairs, offsets, setRaw)
		if err != nil {
			return err
		}

		if err := save.WriteFile(setOut, updated); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote updated save to %s\n", setOut)

		return runSetReport(os.Stdout, results, jsonOutput)
	},
}

// applyAmounts patches each pair in order against a fresh scan of the
// current buffer revision; an edit can change record lengths and shift
// every entry after it, so handles are never reused across patches.
func applyAmounts(scanner *save.Scanner, buf []byte, pairs []amount, offsets save.Offsets, raw bool) ([]byte, []setResult, error) {
	updated := buf
	results := make([]setResult, 0, len(pairs))
	for _, p := range pairs {
		catalog := scanner.Catalog(updated)
		e, err := catalog.Lookup(p.Name)
		if err != nil {
			return nil, nil, err
		}

		stored := p.Value
		if !raw {
			stored, err = offsets.StoredValue(p.Name, p.Value)
			if err != nil {
				return nil, nil, err
			}
		}

		updated, err = save.Apply(updated, e, stored)
		if err != nil {
			return nil, nil, fmt.Errorf("patching %q: %w", p.Name, err)
		}
		results = append(results, setResult{Name: p.Name, Stored: stored})
	}
	return updated, results, nil
}

// runSetReport renders the applied patches.
func runSetReport(w io.Writer, results []setResult, asJSON bool) error {
	if asJSON {
		return printJSON(w, results)
	}
	tw := table(w)
	fmt.Fprintln(tw, "NAME\tSTORED")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\n", r.Name, r.Stored)
	}
	return tw.Flush()
}

func init() {
	setCmd.Flags().StringVar(&setOut, "out", "", "Output path for the updated save file (required)")
	setCmd.Flags().StringArrayVar(&setActual, "actual", nil, "Actual in-game amount used to compute offsets, e.g. gold=75 (repeatable)")
	setCmd.Flags().BoolVar(&setRaw, "raw", false, "Store the given values literally, without offset translation")
	rootCmd.AddCommand(setCmd)
}
