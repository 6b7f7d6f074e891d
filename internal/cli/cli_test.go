package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-jsonml"
)

const bulletList = `["ul",
  ["li", {"style": "color:red"}, "First Item"],
  ["li", ["span", "Third"], " Item"]
]`

type result struct {
	stdout string
	logs   string
}

// execute runs the root command with args, feeding stdin to it.
func execute(t *testing.T, stdin string, args ...string) (result, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())
	return result{stdout: out.String(), logs: logs.String()}, err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenderCommand(t *testing.T) {
	expected := "<ul><li style=\"color:red\">First Item</li><li><span>Third</span> Item</li></ul>\n"

	t.Run("Stdin", func(t *testing.T) {
		res, err := execute(t, bulletList, "render")
		require.NoError(t, err)
		require.Equal(t, expected, res.stdout)
		require.Empty(t, res.logs)
	})

	t.Run("Dash Reads Stdin", func(t *testing.T) {
		res, err := execute(t, bulletList, "render", "-")
		require.NoError(t, err)
		require.Equal(t, expected, res.stdout)
	})

	t.Run("File", func(t *testing.T) {
		path := writeFile(t, "list.json", bulletList)
		res, err := execute(t, "", "render", path)
		require.NoError(t, err)
		require.Equal(t, expected, res.stdout)
	})

	t.Run("Invalid Tag Name", func(t *testing.T) {
		res, err := execute(t, `["my-tag"]`, "render")
		require.ErrorIs(t, err, jsonml.ErrInvalidTagName)
		require.Empty(t, res.stdout)
	})

	t.Run("Decode Error", func(t *testing.T) {
		_, err := execute(t, `["a", 1]`, "render")
		require.ErrorIs(t, err, jsonml.ErrMalformedSequence)
		require.ErrorContains(t, err, "decode -:")
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := execute(t, "", "render", filepath.Join(t.TempDir(), "missing.json"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Too Many Arguments", func(t *testing.T) {
		_, err := execute(t, "", "render", "a.json", "b.json")
		require.Error(t, err)
	})
}

func TestFmtCommand(t *testing.T) {
	t.Run("Default Indent", func(t *testing.T) {
		res, err := execute(t, `["li",{"title":"t","style":"color:red"},"x"]`, "fmt")
		require.NoError(t, err)
		require.Equal(t, "[\n  \"li\",\n  {\n    \"style\": \"color:red\",\n    \"title\": \"t\"\n  },\n  \"x\"\n]\n", res.stdout)
	})

	t.Run("Compact", func(t *testing.T) {
		res, err := execute(t, bulletList, "fmt", "--indent", "0")
		require.NoError(t, err)
		require.Equal(t, `["ul",["li",{"style":"color:red"},"First Item"],["li",["span","Third"]," Item"]]`+"\n", res.stdout)
	})

	t.Run("Drops Empty Attributes", func(t *testing.T) {
		res, err := execute(t, `["p", {}, "x"]`, "fmt", "--indent=0")
		require.NoError(t, err)
		require.Equal(t, "[\"p\",\"x\"]\n", res.stdout)
	})

	t.Run("Indent From Config", func(t *testing.T) {
		cfg := writeFile(t, "jsonml.toml", "indent = 0\n")
		res, err := execute(t, `["p", "x"]`, "--config", cfg, "fmt")
		require.NoError(t, err)
		require.Equal(t, "[\"p\",\"x\"]\n", res.stdout)
	})

	t.Run("Flag Overrides Config", func(t *testing.T) {
		cfg := writeFile(t, "jsonml.toml", "indent = 4\n")
		res, err := execute(t, `["p", "x"]`, "--config", cfg, "fmt", "--indent", "0")
		require.NoError(t, err)
		require.Equal(t, "[\"p\",\"x\"]\n", res.stdout)
	})

	t.Run("Negative Indent", func(t *testing.T) {
		_, err := execute(t, `["p"]`, "fmt", "--indent", "-1")
		require.ErrorContains(t, err, "indent must not be negative")
	})
}

func TestTreeCommand(t *testing.T) {
	res, err := execute(t, bulletList, "tree")
	require.NoError(t, err)
	expected := strings.Join([]string{
		"ul",
		"├── li style=\"color:red\"",
		"│   └── \"First Item\"",
		"└── li",
		"    ├── span",
		"    │   └── \"Third\"",
		"    └── \" Item\"",
		"",
	}, "\n")
	require.Equal(t, expected, res.stdout)

	res, err = execute(t, `"just text"`, "tree")
	require.NoError(t, err)
	require.Equal(t, "\"just text\"\n", res.stdout)

	res, err = execute(t, `["input", {"size": 20, "checked": true, "v": null}]`, "tree")
	require.NoError(t, err)
	require.Equal(t, "input checked=true size=20 v=null\n", res.stdout)
}

func TestNumbersAgreeAcrossCommands(t *testing.T) {
	input := `["td", {"n": 1e20, "x": -0.5}]`

	res, err := execute(t, input, "tree")
	require.NoError(t, err)
	require.Equal(t, "td n=100000000000000000000 x=-0.5\n", res.stdout)

	res, err = execute(t, input, "render")
	require.NoError(t, err)
	require.Equal(t, "<td n=\"100000000000000000000\" x=\"-0.5\"></td>\n", res.stdout)

	res, err = execute(t, input, "fmt", "--indent", "0")
	require.NoError(t, err)
	require.Equal(t, "[\"td\",{\"n\":100000000000000000000,\"x\":-0.5}]\n", res.stdout)
}

func TestVerboseLogging(t *testing.T) {
	res, err := execute(t, bulletList, "-v", "render")
	require.NoError(t, err)
	require.Contains(t, res.logs, "read input")
	require.Contains(t, res.logs, "Rendered")
}

func TestMaxDepthFromConfig(t *testing.T) {
	cfg := writeFile(t, "jsonml.toml", "max_depth = 1\n")
	_, err := execute(t, bulletList, "--config", cfg, "render")
	require.ErrorIs(t, err, jsonml.ErrMaxDepth)

	_, err = execute(t, `["p", "x"]`, "--config", cfg, "render")
	require.NoError(t, err)
}
