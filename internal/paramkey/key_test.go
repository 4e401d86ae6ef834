package paramkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name        string
		raw         string
		expectErr   bool
		expectedKey *Key
	}{
		{
			name:        "single segment",
			raw:         "x",
			expectedKey: &Key{Segments: []string{"x"}},
		},
		{
			name:        "nested path",
			raw:         "node1/advanced/x",
			expectedKey: &Key{Segments: []string{"node1", "advanced", "x"}},
		},
		{
			name:        "suffixed collision key",
			raw:         "dup/value-1",
			expectedKey: &Key{Segments: []string{"dup", "value-1"}},
		},
		{
			name:      "error - empty string",
			raw:       "",
			expectErr: true,
		},
		{
			name:      "error - empty segment",
			raw:       "a//b",
			expectErr: true,
		},
		{
			name:      "error - trailing separator",
			raw:       "a/",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			k, err := Parse(tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedKey, k)
			assert.Equal(t, tc.raw, k.String())
		})
	}
}

func TestKey_String(t *testing.T) {
	k, err := Parse("node1/advanced/x")
	require.NoError(t, err)
	assert.Equal(t, "node1/advanced/x", k.String())
	assert.Equal(t, "", (*Key)(nil).String())
}

func TestJoinSplit(t *testing.T) {
	assert.Equal(t, "a/b/c", Join("a", "b", "c"))
	assert.Equal(t, []string{"a", "b", "c"}, Split("a/b/c"))
	assert.Nil(t, Split(""))
}

func TestUniquer_FirstClaimWins(t *testing.T) {
	u := NewUniquer()
	assert.Equal(t, "value", u.Claim("value"))
	assert.Equal(t, "value-1", u.Claim("value"))
	assert.Equal(t, "value-2", u.Claim("value"))
	assert.Equal(t, "other", u.Claim("other"))
	assert.True(t, u.Taken("value-1"))
	assert.False(t, u.Taken("value-3"))
}

func TestUniquer_ReservedKeysAreNotHandedOut(t *testing.T) {
	u := NewUniquer()
	u.Reserve("value-1")
	assert.Equal(t, "value", u.Claim("value"))
	assert.Equal(t, "value-2", u.Claim("value"))
	assert.Equal(t, "value-1", u.Claim("value-1"), "a reserved key is still granted to its own claim")
	assert.Equal(t, "value-3", u.Claim("value"))
}

func TestUniquer_SkipsLiteralSuffix(t *testing.T) {
	u := NewUniquer()
	assert.Equal(t, "value-1", u.Claim("value-1"))
	assert.Equal(t, "value", u.Claim("value"))
	assert.Equal(t, "value-2", u.Claim("value"))
}

func TestSlug(t *testing.T) {
	testCases := map[string]string{
		"Group A":          "group-a",
		"  Leading spaces": "leading-spaces",
		"Pre/Processing!!": "pre-processing",
		"ÄÖÜ":              "äöü",
		"***":              "group",
		"":                 "group",
	}
	for in, want := range testCases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, Slug(in))
		})
	}
}
