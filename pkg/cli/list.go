package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/savectl/savectl/pkg/save"
)

// listedEntry is the JSON shape of one catalog entry.
type listedEntry struct {
	Name  string `json:"name"`
	Value uint64 `json:"value"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List currency entries found in the save file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, buf, _, err := loadSave()
		if err != nil {
			return err
		}
		catalog := save.NewScanner(newLogger()).Catalog(buf)
		return runList(os.Stdout, catalog, jsonOutput)
	},
}

// runList renders the catalog, sorted by entry name.
func runList(w io.Writer, catalog save.Catalog, asJSON bool) error {
	entries := make([]listedEntry, 0, len(catalog))
	for _, name := range catalog.Names() {
		entries = append(entries, listedEntry{Name: name, Value: catalog[name].Value})
	}

	if asJSON {
		return printJSON(w, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return nil
	}
	tw := table(w)
	fmt.Fprintln(tw, "NAME\tSTORED")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%d\n", e.Name, e.Value)
	}
	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(listCmd)
}
