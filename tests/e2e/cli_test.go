package e2e_test

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/savectl/savectl/pkg/cli"
)

// TestCLI runs the txtar scripts in testdata/. Each script gets its own
// work directory with the save file fixtures declared inline.
func TestCLI(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
	})
}

// TestMain registers the savectl command so scripts can exec it; testscript
// re-executes the test binary in its place.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"savectl": func() int {
			cli.Execute()
			return 0
		},
	}))
}
