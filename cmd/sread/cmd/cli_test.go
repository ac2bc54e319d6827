package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args and captures stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	listFlag = false
	cacheFlag = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const pyFixture = `def foo():
    return 1


class Foo:
    def bar(self):
        return 2
`

func TestCLI_ExtractFunction(t *testing.T) {
	path := writeFixture(t, "app.py", pyFixture)

	out, err := runCLI(t, path+":foo")
	require.NoError(t, err)
	assert.Equal(t, "def foo():\n    return 1", out, "verbatim, no trailing newline added")
}

func TestCLI_ExtractClassWithTypePrefix(t *testing.T) {
	path := writeFixture(t, "app.py", pyFixture)

	out, err := runCLI(t, path+":class:Foo")
	require.NoError(t, err)
	assert.Equal(t, "class Foo:\n    def bar(self):\n        return 2", out)
}

func TestCLI_MethodNotFoundExitsOne(t *testing.T) {
	path := writeFixture(t, "app.py", pyFixture)

	_, err := runCLI(t, path+":Foo.missing")
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))
}

func TestCLI_SymbolNotFoundExitsOne(t *testing.T) {
	path := writeFixture(t, "app.py", pyFixture)

	_, err := runCLI(t, path+":nonexistent")
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))
}

func TestCLI_UnreadableFileExitsTwo(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.py")

	_, err := runCLI(t, missing+":foo")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestCLI_BadTargetExitsTwo(t *testing.T) {
	_, err := runCLI(t, "readme.md:foo")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestCLI_List(t *testing.T) {
	path := writeFixture(t, "app.py", pyFixture)

	out, err := runCLI(t, path, "--list")
	require.NoError(t, err)
	assert.Equal(t, "func: foo\nclass: Foo\nfunc: bar\n", out)
}

func TestCLI_ListRust(t *testing.T) {
	path := writeFixture(t, "lib.rs", `fn run() -> i32 {
    42
}

struct Config {
    name: String,
}
`)

	out, err := runCLI(t, path, "--list")
	require.NoError(t, err)
	assert.Equal(t, "func: run\nstruct: Config\n", out)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
}
