package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	require.NoError(t, Validate(Entries()))
}

func TestKeysAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range Entries() {
		assert.False(t, seen[e.Key], "duplicate key %q", e.Key)
		seen[e.Key] = true
	}
}

func TestEveryEntryHasSources(t *testing.T) {
	for _, e := range Entries() {
		assert.NotEmpty(t, e.SourcePaths, "entry %q has no sources", e.Key)
	}
}

func TestOutputNamesHaveNoSeparators(t *testing.T) {
	for _, e := range Entries() {
		assert.False(t, strings.ContainsAny(e.OutputName, `/\`),
			"entry %q output name %q escapes the output directory", e.Key, e.OutputName)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	first := Entries()
	first[0].Key = "mutated"
	assert.NotEqual(t, "mutated", Entries()[0].Key)
}

func TestFind(t *testing.T) {
	e, ok := Find("seo")
	require.True(t, ok)
	assert.Equal(t, "seo-standards.md", e.OutputName)

	_, ok = Find("nope")
	assert.False(t, ok)
}

func TestValidateRejectsMalformedEntries(t *testing.T) {
	cases := []struct {
		name    string
		entries []Entry
	}{
		{"duplicate key", []Entry{
			{Key: "a", SourcePaths: []string{"x.md"}, OutputName: "a.md"},
			{Key: "a", SourcePaths: []string{"y.md"}, OutputName: "b.md"},
		}},
		{"no sources", []Entry{
			{Key: "a", OutputName: "a.md"},
		}},
		{"separator in output name", []Entry{
			{Key: "a", SourcePaths: []string{"x.md"}, OutputName: "../a.md"},
		}},
		{"empty key", []Entry{
			{Key: "", SourcePaths: []string{"x.md"}, OutputName: "a.md"},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, Validate(tc.entries))
		})
	}
}
