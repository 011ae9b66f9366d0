package payload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJson = `
{
	"date":"2025-01-20 09:30",
	"checker":"Tanaka",
	"checkResult":"",
	"driveC":"120.5",
	"driveD":88,
	"driveE":0,
	"cpuUsage":" 42 ",
	"upperLamps":"4",
	"lowerLamps":3.7,
	"notes":null,
	"flag":false,
	"list":[],
	"obj":{"a":1},
	"broken":"abc",
	"sc1_c":10,
	"sc13_cpu":5,
	"sc0_d":1
}
`

type testCase struct {
	key     string
	present bool
}

func TestPresent(t *testing.T) {
	c, err := Parse([]byte(testJson))
	require.NoError(t, err)

	tests := []testCase{
		{key: "date", present: true},
		{key: "checker", present: true},
		{key: "checkResult", present: false},
		{key: "driveC", present: true},
		{key: "driveD", present: true},
		{key: "driveE", present: false},
		{key: "notes", present: false},
		{key: "flag", present: false},
		{key: "list", present: false},
		{key: "obj", present: true},
		{key: "missing", present: false},
	}
	for _, test := range tests {
		assert.Equal(t, test.present, c.Present(test.key), test.key)
	}
}

func TestConversions(t *testing.T) {
	c, err := Parse([]byte(testJson))
	require.NoError(t, err)

	f, err := c.Float("driveC")
	assert.NoError(t, err)
	assert.Equal(t, 120.5, f)

	f, err = c.Float("cpuUsage")
	assert.NoError(t, err)
	assert.Equal(t, 42.0, f)

	_, err = c.Float("broken")
	assert.ErrorIs(t, err, errNotNumber)
	assert.ErrorIs(t, err, ErrBadValue)

	i, err := c.Int("upperLamps")
	assert.NoError(t, err)
	assert.Equal(t, 4, i)

	i, err = c.Int("lowerLamps")
	assert.NoError(t, err)
	assert.Equal(t, 3, i)

	_, err = c.Int("broken")
	assert.ErrorIs(t, err, errNotInteger)
	assert.ErrorIs(t, err, ErrBadValue)

	assert.Equal(t, "Tanaka", c.Value("checker"))
	assert.Equal(t, 88.0, c.Value("driveD"))
	assert.Nil(t, c.Value("missing"))
	assert.Equal(t, "2025-01-20 09:30", c.String("date"))
}

func TestUnknownUnitKeys(t *testing.T) {
	c, err := Parse([]byte(testJson))
	require.NoError(t, err)

	assert.Equal(t, []string{"sc13_cpu", "sc0_d"}, c.UnknownUnitKeys(12))
}

func TestParse(t *testing.T) {
	_, err := Parse([]byte(`[1,2]`))
	assert.ErrorIs(t, err, errNotObject)

	_, err = Parse([]byte(`{"date":`))
	assert.ErrorIs(t, err, errInvalidJSON)

	_, err = Parse([]byte("  "))
	assert.ErrorIs(t, err, errEmptyPayload)
}

func TestLoad(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "payload.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"checker":"Sato"}`), 0o644))

		c, source, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, SourceFile, source)
		assert.Equal(t, "Sato", c.String("checker"))
	})

	t.Run("argument", func(t *testing.T) {
		c, source, err := Load(`{"checker":"Sato"}`)
		require.NoError(t, err)
		assert.Equal(t, SourceArgument, source)
		assert.Equal(t, "Sato", c.String("checker"))
	})

	t.Run("missing file is treated as json", func(t *testing.T) {
		_, source, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Equal(t, SourceArgument, source)
		assert.ErrorIs(t, err, errInvalidJSON)
	})
}

func TestText(t *testing.T) {
	c, err := Parse([]byte(`{"cpuUsage":85.0,"cpuTime":"09:15","lamps":4}`))
	require.NoError(t, err)

	assert.Equal(t, "85.0", c.Text("cpuUsage"))
	assert.Equal(t, "09:15", c.Text("cpuTime"))
	assert.Equal(t, "4", c.Text("lamps"))
	assert.Equal(t, "", c.Text("missing"))
}

func TestDuplicateKeys(t *testing.T) {
	c, err := Parse([]byte(`{"checker":"A","sc1_c":1,"checker":"B"}`))
	require.NoError(t, err)

	assert.Equal(t, "B", c.String("checker"))
	assert.Equal(t, "B", c.Value("checker"))
	assert.Equal(t, []string{"checker", "sc1_c"}, c.Keys())
}
