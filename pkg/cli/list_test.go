package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savectl/savectl/pkg/save"
)

func TestRunListText(t *testing.T) {
	catalog := save.NewScanner(nil).Catalog(testBuffer(t))

	var out bytes.Buffer
	require.NoError(t, runList(&out, catalog, false))

	text := out.String()
	assert.Contains(t, text, "NAME")
	assert.Contains(t, text, "gold")
	assert.Contains(t, text, "500")
	assert.Contains(t, text, "lucky_coin")
}

func TestRunListJSON(t *testing.T) {
	catalog := save.NewScanner(nil).Catalog(testBuffer(t))

	var out bytes.Buffer
	require.NoError(t, runList(&out, catalog, true))

	var entries []listedEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	assert.Equal(t, []listedEntry{
		{Name: "gold", Value: 500},
		{Name: "lucky_coin", Value: 3},
	}, entries)
}

func TestRunListEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runList(&out, save.Catalog{}, false))
	assert.Contains(t, out.String(), "No entries found.")
}

func TestRunOffsetsJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runOffsets(&out, save.Offsets{"gold": 425, "lucky_coin": -7}, true))

	var listed []listedOffset
	require.NoError(t, json.Unmarshal(out.Bytes(), &listed))
	assert.Equal(t, []listedOffset{
		{Name: "gold", Offset: 425},
		{Name: "lucky_coin", Offset: -7},
	}, listed)
}

func TestRunSetReportText(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runSetReport(&out, []setResult{{Name: "gold", Stored: 1424}}, false))
	assert.Contains(t, out.String(), "gold")
	assert.Contains(t, out.String(), "1424")
}
