package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, path string, valueKey string) ([]int, error) {
	t.Helper()
	var values []int
	err := parseFile(path, valueKey, func(value int) error {
		values = append(values, value)
		return nil
	})
	return values, err
}

func TestParseJson(t *testing.T) {
	path := writeFile(t, t.TempDir(), "values.JSON", `[
		{"value": 16, "name": "root"},
		{"value": " 24 "},
		{"value": -3}
	]`)

	values, err := collect(t, path, "value")
	require.NoError(t, err)
	assert.Equal(t, []int{16, 24, -3}, values)
}

func TestParseJsonErrors(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		content  string
		contains string
	}{
		{`[{"other": 1}]`, `no "value" field`},
		{`[{"value": 1.5}]`, "can not convert"},
		{`[{"value": true}]`, "unexpected value"},
		{`{"value": 1}`, "expected a JSON array"},
	}

	for _, tc := range testCases {
		path := writeFile(t, dir, "values.json", tc.content)
		_, err := collect(t, path, "value")
		require.Error(t, err, tc.content)
		assert.Contains(t, err.Error(), tc.contains, tc.content)
	}
}

func TestParseCsvCustomKey(t *testing.T) {
	path := writeFile(t, t.TempDir(), "values.csv", "id, key\n1,10\n2,5\n")

	values, err := collect(t, path, "key")
	require.NoError(t, err)
	assert.Equal(t, []int{10, 5}, values)
}

func TestParseStopsOnCallbackError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "values.csv", "value\n1\n2\n3\n")

	calls := 0
	err := parseFile(path, "value", func(int) error {
		calls++
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, calls)
}
