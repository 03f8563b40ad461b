package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localelint/internal/document"
)

var timelinePath = KeyPath{"js", "timelines", "composer_toolbar", "insert_button"}

func parseTree(t *testing.T, data string) *document.Node {
	t.Helper()
	doc, err := document.Parse("test", []byte(data))
	require.NoError(t, err)
	return doc.Root
}

func TestCheckResolvesStringLeaf(t *testing.T) {
	tree := parseTree(t, `js:
  timelines:
    composer_toolbar:
      insert_button: "Insert Timeline"
`)
	value, finding := Check("en", tree, timelinePath)
	require.Nil(t, finding)
	assert.Equal(t, "Insert Timeline", value)
}

func TestCheckReportsFirstMissingSegment(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		missing string
	}{
		{name: "root", data: "other: x\n", missing: "js"},
		{name: "second", data: "js:\n  other: x\n", missing: "timelines"},
		{name: "third", data: "js:\n  timelines:\n    other: x\n", missing: "composer_toolbar"},
		{name: "leaf", data: "js:\n  timelines:\n    composer_toolbar:\n      other: x\n", missing: "insert_button"},
		{name: "intermediate scalar", data: "js:\n  timelines: Timelines\n", missing: "composer_toolbar"},
		{name: "intermediate null", data: "js:\n  timelines:\n", missing: "composer_toolbar"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value, finding := Check("fr", parseTree(t, tc.data), timelinePath)
			require.NotNil(t, finding)
			assert.Empty(t, value)
			assert.Equal(t, KindMissingKey, finding.Kind)
			assert.Equal(t, tc.missing, finding.Key)
			assert.Equal(t, "fr", finding.Document)
			assert.Contains(t, finding.Message, tc.missing)
			assert.True(t, finding.IsError())
		})
	}
}

func TestCheckReportsTypeMismatch(t *testing.T) {
	leaves := map[string]string{
		"42":         "integer",
		"true":       "boolean",
		"1.5":        "float",
		"[a, b]":     "sequence",
		"{a: b}":     "mapping",
		"~":          "null",
		"2024-01-02": "timestamp",
	}
	for leaf, typeName := range leaves {
		t.Run(typeName, func(t *testing.T) {
			tree := parseTree(t, "js:\n  timelines:\n    composer_toolbar:\n      insert_button: "+leaf+"\n")
			_, finding := Check("de", tree, timelinePath)
			require.NotNil(t, finding)
			assert.Equal(t, KindTypeMismatch, finding.Kind)
			assert.Contains(t, finding.Message, typeName)
		})
	}
}

func TestCheckQuotedNumberIsString(t *testing.T) {
	tree := parseTree(t, "js:\n  timelines:\n    composer_toolbar:\n      insert_button: \"42\"\n")
	value, finding := Check("de", tree, timelinePath)
	require.Nil(t, finding)
	assert.Equal(t, "42", value)
}

func TestParseKeyPath(t *testing.T) {
	assert.Equal(t, timelinePath, ParseKeyPath("js.timelines.composer_toolbar.insert_button"))
	assert.Nil(t, ParseKeyPath("  "))
	assert.Equal(t, "js.timelines.composer_toolbar.insert_button", timelinePath.String())
}
