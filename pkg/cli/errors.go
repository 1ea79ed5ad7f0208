package cli

import "errors"

// Common CLI errors
var (
	ErrNoAmounts      = errors.New("no name=value pairs given")
	ErrOutputRequired = errors.New("no output path - pass --out to write the updated save")
	ErrActualRequired = errors.New("no known offsets - pass --actual name=amount or store offsets first with: savectl offsets --store")
)
