package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/savectl/savectl/pkg/cliconfig"
	"github.com/savectl/savectl/pkg/logging"
	"github.com/savectl/savectl/pkg/save"
)

var (
	// Persistent flags available to all subcommands
	savePath   string
	jsonOutput bool
	logLevel   string

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "savectl",
	Short: "savectl inspects and edits currency entries in player save files",
	Long: `savectl reads the base64-encoded player save file, locates the currency
entries embedded in it, and can patch their stored values in place without
touching any other byte of the save.

Stored values are shifted from the amounts the game displays by a constant
per-entry offset. Compute offsets once from known in-game amounts with
'savectl offsets', optionally persist them with --store, and then write
desired amounts with 'savectl set'.`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&savePath, "save", "", `Path to the player save file (default "player", env SAVECTL_SAVE)`)
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// newLogger builds the logger handed to the scanner and other components.
func newLogger() *slog.Logger {
	return logging.New(logging.Config{Level: logging.ParseLevel(logLevel)})
}

// loadSave resolves the effective save path and reads its decoded contents.
func loadSave() (path string, buf []byte, cfg *cliconfig.Config, err error) {
	cfg, err = cliconfig.Load()
	if err != nil {
		return "", nil, nil, err
	}
	path = cliconfig.ResolveSavePath(savePath, cfg)
	buf, err = save.ReadFile(path)
	if err != nil {
		return "", nil, nil, err
	}
	return path, buf, cfg, nil
}
