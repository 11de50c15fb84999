package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trivialAssemblyXML = `<?xml version="1.0"?>
<assembly>
  <agents>
    <agent name="a" host="localhost" port="9000"/>
  </agents>
  <graph root="S">
    <nodes>
      <node name="S" type="OR">
        <reach agent="a" reachable="true"/>
      </node>
    </nodes>
    <edges/>
  </graph>
</assembly>
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "in.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_ProducesAPlanForATrivialAssembly(t *testing.T) {
	t.Parallel()

	in := writeInput(t, trivialAssemblyXML)
	out := filepath.Join(filepath.Dir(in), "out.xml")

	buf := &bytes.Buffer{}
	err := run(buf, []string{in, out})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "plan found")

	_, statErr := os.Stat(out)
	require.NoError(t, statErr, "output file should have been written")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	args := []string{"-h"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	assert.Contains(t, out.String(), "Usage:", "expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.Error(t, err, "run() should return an error when argument parsing fails")
	assert.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_RejectsMissingOutputArgument(t *testing.T) {
	t.Parallel()

	in := writeInput(t, trivialAssemblyXML)
	out := &bytes.Buffer{}

	err := run(out, []string{in})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INPUT_XML and OUTPUT_XML")
}

func TestRun_ReportsUnreadableInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	missing := filepath.Join(dir, "does-not-exist.xml")
	out := filepath.Join(dir, "out.xml")

	err := run(&bytes.Buffer{}, []string{missing, out})
	require.Error(t, err)
}
