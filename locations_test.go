package tavscrape

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocations() Locations {
	return Locations{
		"act1": {"Emerald Grove", "Grymforge", "Underdark"},
		"act2": {"Last Light Inn", "Moonrise Towers"},
		"act3": {"Lower City", "Rivington"},
	}
}

// TestInferAct_SubstringMatch verifies act lookup is a substring test
func TestInferAct_SubstringMatch(t *testing.T) {
	locs := testLocations()

	assert.Equal(t, 1, locs.InferAct("Found in a chest in Grymforge, near the forge"))
	assert.Equal(t, 2, locs.InferAct("Sold by a trader at Last Light Inn"))
	assert.Equal(t, 3, locs.InferAct("Dropped in the Lower City sewers"))
}

// TestInferAct_CaseInsensitive verifies matching ignores case
func TestInferAct_CaseInsensitive(t *testing.T) {
	locs := testLocations()

	assert.Equal(t, 1, locs.InferAct("somewhere in the UNDERDARK"))
	assert.Equal(t, 2, locs.InferAct("moonrise towers, second floor"))
}

// TestInferAct_FirstActWins verifies act1 areas are checked before act2 and act3
func TestInferAct_FirstActWins(t *testing.T) {
	locs := Locations{
		"act1": {"Tower"},
		"act3": {"Tower of Ramazith"},
	}

	assert.Equal(t, 1, locs.InferAct("Inside the Tower of Ramazith"))
}

// TestInferAct_NoMatch verifies unmatched text yields act 0
func TestInferAct_NoMatch(t *testing.T) {
	locs := testLocations()

	assert.Equal(t, 0, locs.InferAct("Reward for completing a quest"))
	assert.Equal(t, 0, locs.InferAct(""))
}

// TestLoadLocations_RoundTrip verifies the file format parses
func TestLoadLocations_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.json")
	err := os.WriteFile(path, []byte(`{"act1":["Emerald Grove"],"act2":[],"act3":["Rivington"]}`), 0644)
	require.NoError(t, err)

	locs, err := LoadLocations(path)
	require.NoError(t, err)
	assert.Equal(t, 1, locs.InferAct("near the Emerald Grove gate"))
	assert.Equal(t, 3, locs.InferAct("Rivington general store"))
}

// TestLoadLocations_MissingFile verifies a missing table is an error
func TestLoadLocations_MissingFile(t *testing.T) {
	_, err := LoadLocations(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
