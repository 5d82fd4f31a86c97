package match

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `[
  {"matchId": "101", "match": "Real Madrid vs Barcelona",
   "odds": {"1X2": {"Home": 1.8, "Draw": 3.5, "Away": 4.2}}},
  {"matchId": "102", "match": "Liverpool vs Chelsea",
   "odds": {"1X2": {"Home": 2.1, "Draw": 3.3, "Away": 3.4},
            "Over/Under": {"Over 2.5": 1.85, "Under 2.5": 1.95}}}
]`

// TestDecode verifies a well-formed document decodes in order.
func TestDecode(t *testing.T) {
	records, err := Decode(strings.NewReader(sampleDocument))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"101", "102"}, records.IDs())
	assert.Equal(t, "Real Madrid vs Barcelona", records[0].Name)
	assert.Equal(t, []string{"1X2", "Over/Under"}, records[1].Odds.Names())
	require.NoError(t, records.Validate())
}

// TestDecode_Errors verifies malformed documents are rejected.
func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{name: "empty", doc: "", wantErr: ErrNotArray},
		{name: "object", doc: `{"matchId": "1"}`, wantErr: ErrNotArray},
		{name: "missing id", doc: `[{"match": "A vs B", "odds": {}}]`, wantErr: ErrMissingID},
		{name: "bad odds", doc: `[{"matchId": "1", "odds": {"1X2": {"Home": "x"}}}]`, wantErr: ErrOddsNotNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("truncated", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`[{"matchId": "1"`))
		require.Error(t, err)
	})
}

// TestDecode_EmptyArray verifies an empty array yields an empty, non-nil collection.
func TestDecode_EmptyArray(t *testing.T) {
	records, err := Decode(strings.NewReader(" [] "))
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

// TestCollection_Validate verifies duplicate ids are reported once each.
func TestCollection_Validate(t *testing.T) {
	records := Collection{{ID: "1"}, {ID: "2"}, {ID: "1"}, {ID: "1"}, {ID: "2"}}

	err := records.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Contains(t, err.Error(), "1, 2")
}

// TestCollection_ByID verifies lookup returns the first occurrence.
func TestCollection_ByID(t *testing.T) {
	records := Collection{{ID: "1", Name: "first"}, {ID: "2"}, {ID: "1", Name: "second"}}

	rec, ok := records.ByID("1")
	require.True(t, ok)
	assert.Equal(t, "first", rec.Name)
	assert.Same(t, &records[0], rec)

	_, ok = records.ByID("3")
	assert.False(t, ok)
	assert.True(t, records.Contains("2"))
}

// TestDecode_SampleDocument verifies the bundled sample document is valid.
func TestDecode_SampleDocument(t *testing.T) {
	f, err := os.Open(filepath.Join("..", "..", "testdata", "data.json"))
	require.NoError(t, err)
	defer f.Close()

	records, err := Decode(f)
	require.NoError(t, err)
	require.NoError(t, records.Validate())
	assert.Equal(t, []string{"101", "102", "201", "305"}, records.IDs())

	rec, ok := records.ByID("101")
	require.True(t, ok)
	assert.Equal(t, []string{"1X2", "Both Teams To Score", "Total Goals"}, rec.Odds.Names())
	assert.Equal(t, []string{"Home", "Draw", "Away"}, rec.Odds[0].Labels())
}
