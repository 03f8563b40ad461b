package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNestedMapping(t *testing.T) {
	doc, err := Parse("en", []byte(`en:
  js:
    timelines:
      composer_toolbar:
        insert_button: "Insert Timeline"
`))
	require.NoError(t, err)
	require.Equal(t, "en", doc.ID)

	en, ok := doc.Root.Get("en")
	require.True(t, ok)
	js, ok := en.Get("js")
	require.True(t, ok)
	assert.True(t, js.IsMapping())
	assert.Equal(t, []string{"en"}, doc.Root.Keys)
}

func TestParseScalarTags(t *testing.T) {
	doc, err := Parse("en", []byte(`text: hello
quoted: "42"
number: 42
flag: true
empty:
list: [a, b]
`))
	require.NoError(t, err)

	cases := map[string]string{
		"text":   "string",
		"quoted": "string",
		"number": "integer",
		"flag":   "boolean",
		"empty":  "null",
		"list":   "sequence",
	}
	for key, want := range cases {
		node, ok := doc.Root.Get(key)
		require.True(t, ok, key)
		assert.Equal(t, want, node.TypeName(), key)
	}
	quoted, _ := doc.Root.Get("quoted")
	assert.True(t, quoted.IsString())
}

func TestParseResolvesAliasesAndMerges(t *testing.T) {
	doc, err := Parse("en", []byte(`base: &base
  insert_button: Insert
js:
  timelines:
    <<: *base
    title: Timelines
`))
	require.NoError(t, err)
	js, _ := doc.Root.Get("js")
	timelines, _ := js.Get("timelines")
	button, ok := timelines.Get("insert_button")
	require.True(t, ok)
	assert.Equal(t, "Insert", button.Value)
	assert.Equal(t, []string{"title", "insert_button"}, timelines.Keys)
}

func nestedAliasDocument(levels, width int) []byte {
	var b strings.Builder
	b.WriteString("l0: &l0 [" + strings.TrimSuffix(strings.Repeat("lol, ", width), ", ") + "]\n")
	for level := 1; level < levels; level++ {
		refs := strings.TrimSuffix(strings.Repeat(fmt.Sprintf("*l%d, ", level-1), width), ", ")
		fmt.Fprintf(&b, "l%d: &l%d [%s]\n", level, level, refs)
	}
	return []byte(b.String())
}

func TestParseSharesAnchoredNodes(t *testing.T) {
	doc, err := Parse("en", nestedAliasDocument(9, 10))
	require.NoError(t, err)

	top, ok := doc.Root.Get("l8")
	require.True(t, ok)
	require.Len(t, top.Items, 10)
	prev, _ := doc.Root.Get("l7")
	for _, item := range top.Items {
		assert.Same(t, prev, item)
	}
}

func TestParseRejectsOversizedDocument(t *testing.T) {
	data := []byte("a: [" + strings.Repeat("0, ", maxNodes) + "0]\n")
	_, err := Parse("en", data)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr), "expected ParseError, got %v", err)
	assert.Contains(t, parseErr.Error(), "after alias expansion")
}

func TestParseRejectsDuplicateKeys(t *testing.T) {
	_, err := Parse("en", []byte("a: 1\na: 2\n"))
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Contains(t, parseErr.Error(), `duplicate key "a"`)
	assert.Equal(t, 2, parseErr.Line)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{name: "syntax", data: "a: [unclosed\n"},
		{name: "empty", data: "   \n"},
		{name: "comments only", data: "# nothing here\n"},
		{name: "multiple documents", data: "a: 1\n---\nb: 2\n"},
		{name: "top level sequence", data: "- a\n- b\n"},
		{name: "top level scalar", data: "hello\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse("en", []byte(tc.data))
			var parseErr *ParseError
			require.Error(t, err)
			assert.True(t, errors.As(err, &parseErr), "expected ParseError, got %T", err)
		})
	}
}

func TestParseEncodingErrors(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want string
	}{
		{name: "invalid utf8", data: []byte("a: \xff\xfe\n"), want: "invalid UTF-8"},
		{name: "tab", data: []byte("a:\n\tb: c\n"), want: "tab character"},
		{name: "control", data: []byte("a: b\x07\n"), want: "U+0007"},
		{name: "delete", data: []byte("a: b\x7f\n"), want: "U+007F"},
		{name: "utf16 bom", data: []byte{0xFF, 0xFE, 'a', 0x00}, want: "UTF-16"},
		{name: "utf32 bom", data: []byte{0x00, 0x00, 0xFE, 0xFF}, want: "UTF-32"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse("en", tc.data)
			var encErr *EncodingError
			require.True(t, errors.As(err, &encErr), "expected EncodingError, got %v", err)
			assert.Contains(t, encErr.Error(), tc.want)
		})
	}
}

func TestParseEncodingErrorPosition(t *testing.T) {
	_, err := Parse("en", []byte("a: b\nc: d\x01\n"))
	var encErr *EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, 2, encErr.Line)
	assert.Equal(t, 5, encErr.Column)
}

func TestCheckEncodingAllowsC1Characters(t *testing.T) {
	for _, data := range []string{"a: x\u0085y\n", "a: x\u009fy\n"} {
		text, err := checkEncoding([]byte(data))
		require.NoError(t, err, "%q", data)
		assert.Equal(t, data, string(text))
	}
}

func TestParseAcceptsUTF8BOMAndCRLF(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("de:\r\n  title: \"Zeitstrahl einfügen\"\r\n")...)
	doc, err := Parse("de", data)
	require.NoError(t, err)
	de, _ := doc.Root.Get("de")
	title, _ := de.Get("title")
	assert.Equal(t, "Zeitstrahl einfügen", title.Value)
}

func TestReadFileReportsMissingFileAsParseError(t *testing.T) {
	_, err := ReadFile(Source{ID: "en", Path: filepath.Join(t.TempDir(), "en.yml")})
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
