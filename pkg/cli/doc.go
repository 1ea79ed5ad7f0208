// Package cli provides the command-line interface for savectl.
//
// The cli package implements all commands for inspecting and editing
// currency entries in player save files:
//   - list: Display the entries found in the save file
//   - offsets: Compute stored-minus-actual offsets from in-game amounts
//   - set: Write new amounts and save the patched file
//   - version: Show savectl version
//
// The save file path is resolved from the --save flag, the SAVECTL_SAVE
// environment variable, or the config file, in that order. Offsets computed
// with `offsets --store` persist in the config file and are picked up by
// later `set` invocations.
//
// Output contract: with --json, only the JSON encoding of the command's
// result is written to stdout; prose and diagnostics go to stderr.
package cli
