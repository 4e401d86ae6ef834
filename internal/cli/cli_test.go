package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/paramgrid/internal/app"
	"github.com/specialistvlad/paramgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPipeline = `
node "node1" {
  parameter "x" {
    type    = number
    default = 5
  }
}

exported_parameters {
  group "Group A" {
    reference {
      path        = "node1/x"
      custom_name = "Threshold"
    }
  }
}
`

const danglingPipeline = `
node "node1" {
  parameter "x" {
    default = 5
  }
}

exported_parameters {
  group "Group A" {
    reference {
      path = "node1/gone"
    }
  }
}
`

func writePipeline(t *testing.T, src string) string {
	t.Helper()
	dir := testutil.WriteFiles(t, map[string]string{"pipeline.hcl": src})
	return filepath.Join(dir, "pipeline.hcl")
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := Execute(args, &out, &testutil.SafeBuffer{})
	return out.String(), err
}

func requireExitCode(t *testing.T, err error, code int) *ExitError {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected *ExitError, got %v", err)
	assert.Equal(t, code, exitErr.Code)
	return exitErr
}

func TestExecute_Help(t *testing.T) {
	out, err := runCLI(t, "-h")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "validate")
}

func TestExecute_UsageErrors(t *testing.T) {
	path := writePipeline(t, validPipeline)

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"keys", "--nope", path}, wantMsg: "unknown flag: --nope"},
		{name: "unknown command", args: []string{"frobnicate"}, wantMsg: `unknown command "frobnicate"`},
		{name: "missing path", args: []string{"keys"}, wantMsg: "at least one pipeline path is required"},
		{name: "bad log level", args: []string{"keys", "--log-level", "loud", path}, wantMsg: "invalid log-level"},
		{name: "bad log format", args: []string{"keys", "--log-format", "xml", path}, wantMsg: "invalid log-format"},
		{name: "bad output format", args: []string{"keys", "-o", "toml", path}, wantMsg: "invalid format 'toml'"},
		{name: "hcl only for export", args: []string{"keys", "-o", "hcl", path}, wantMsg: "invalid format 'hcl'"},
		{name: "set with hcl export", args: []string{"export", "-o", "hcl", "--set", "group-a/x=7", path}, wantMsg: "--set cannot be combined with --format hcl"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runCLI(t, tc.args...)
			exitErr := requireExitCode(t, err, ExitUsage)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

func TestExecute_LoadError(t *testing.T) {
	path := writePipeline(t, `node "a" {`)
	_, err := runCLI(t, "keys", path)
	require.Error(t, err)
	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr), "load failures are not usage errors")
	assert.Contains(t, err.Error(), "failed to load pipeline")
}

func TestValidate_MissingPipelineFile(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, "validate", filepath.Join(dir, "typo.hcl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pipeline files found")
}

func TestKeys_Formats(t *testing.T) {
	path := writePipeline(t, validPipeline)

	t.Run("json", func(t *testing.T) {
		out, err := runCLI(t, "keys", "-o", "json", path)
		require.NoError(t, err)
		var keys []app.KeyInfo
		require.NoError(t, json.Unmarshal([]byte(out), &keys))
		require.Len(t, keys, 1)
		assert.Equal(t, "node1/x", keys[0].Key)
		assert.Equal(t, float64(5), keys[0].Value)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := runCLI(t, "keys", "--format", "yaml", path)
		require.NoError(t, err)
		assert.Contains(t, out, "key: node1/x")
		assert.Contains(t, out, "source: node1")
	})

	t.Run("text", func(t *testing.T) {
		out, err := runCLI(t, "keys", path)
		require.NoError(t, err)
		assert.Contains(t, out, "KEY")
		assert.Contains(t, out, "node1/x")
	})
}

func TestKeys_FormatFromEnvironment(t *testing.T) {
	path := writePipeline(t, validPipeline)
	t.Setenv("PARAMGRID_FORMAT", "json")

	out, err := runCLI(t, "keys", path)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), "expected JSON output, got %q", out)
}

func TestKeys_PathFromEnvironment(t *testing.T) {
	t.Setenv("PARAMGRID_PATH", writePipeline(t, validPipeline))

	out, err := runCLI(t, "keys")
	require.NoError(t, err)
	assert.Contains(t, out, "node1/x")
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		out, err := runCLI(t, "validate", writePipeline(t, validPipeline))
		require.NoError(t, err)
		assert.Contains(t, out, "All exported parameter references are valid.")
	})

	t.Run("dangling reference", func(t *testing.T) {
		out, err := runCLI(t, "validate", writePipeline(t, danglingPipeline))
		exitErr := requireExitCode(t, err, ExitInvalid)
		assert.Contains(t, exitErr.Message, "validation failed")
		assert.Contains(t, out, "node1/gone")
	})

	t.Run("json report", func(t *testing.T) {
		out, err := runCLI(t, "validate", "-o", "json", writePipeline(t, danglingPipeline))
		requireExitCode(t, err, ExitInvalid)

		var got struct {
			Valid   bool `json:"valid"`
			Entries []struct {
				Level string `json:"level"`
				Path  string `json:"path"`
			} `json:"entries"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.False(t, got.Valid)
		require.Len(t, got.Entries, 1)
		assert.Equal(t, "error", got.Entries[0].Level)
		assert.Equal(t, "node1/gone", got.Entries[0].Path)
	})
}

func TestExport(t *testing.T) {
	path := writePipeline(t, validPipeline)

	t.Run("json with override", func(t *testing.T) {
		out, err := runCLI(t, "export", "-o", "json", "--set", "group-a/x=7", path)
		require.NoError(t, err)

		var groups []app.ExportedGroup
		require.NoError(t, json.Unmarshal([]byte(out), &groups))
		want := []app.ExportedGroup{{
			Key:  "group-a",
			Name: "Group A",
			Parameters: []app.ExportedParameter{{
				Key:    "group-a/x",
				Name:   "Threshold",
				Type:   "number",
				Target: "node1/x",
				Value:  float64(7),
			}},
		}}
		if diff := cmp.Diff(want, groups); diff != "" {
			t.Errorf("export mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("hcl", func(t *testing.T) {
		out, err := runCLI(t, "export", "-o", "hcl", path)
		require.NoError(t, err)
		assert.Contains(t, out, `group "Group A"`)
		assert.Contains(t, out, `custom_name = "Threshold"`)
	})

	t.Run("unknown override", func(t *testing.T) {
		_, err := runCLI(t, "export", "--set", "group-a/nope=1", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown exported parameter 'group-a/nope'")
	})
}
