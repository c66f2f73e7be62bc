package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name               string
		input              string
		expected           []string
		expectedToGetError bool
	}{
		{
			"ValidList",
			"fortunes:\n  - \"first\"\n  - \"second\"\n",
			[]string{"first", "second"},
			false,
		},
		{
			"BlankEntriesDropped",
			"fortunes:\n  - \"  padded  \"\n  - \"\"\n  - \"   \"\n",
			[]string{"padded"},
			false,
		},
		{
			"MissingKey",
			"other: 1\n",
			[]string{},
			false,
		},
		{
			"WrongType",
			"fortunes: 12\n",
			nil,
			true,
		},
		{
			"Malformed",
			"fortunes: [unterminated\n",
			nil,
			true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse([]byte(tc.input))
			if tc.expectedToGetError {
				assert.ErrorIs(t, err, ErrInvalidFile)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fortunes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fortunes:\n  - \"星光低語\"\n"), 0o600))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"星光低語"}, got)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, ErrInvalidFile)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Normalize([]string{" a", "", "b\n"}))
	assert.Empty(t, Normalize(nil))
}
