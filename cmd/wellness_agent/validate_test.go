package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_RoundTrip(t *testing.T) {
	in := writeFile(t, "request.json", `{"age": 45, "occupation": "Chef"}`)
	out := filepath.Join(t.TempDir(), "plan.json")

	_, err := executeCommand(t, "", "nutrition", "--in", in, "--out", out, "--date", "2024-01-01")
	require.NoError(t, err)

	stdout, err := executeCommand(t, "", "validate", "--kind", "nutrition", "--in", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "is a valid nutrition document")

	_, err = executeCommand(t, "", "validate", "--kind", "prediction", "--in", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema violation")
}

func TestValidateCommand_UnknownKind(t *testing.T) {
	in := writeFile(t, "doc.json", `{}`)
	_, err := executeCommand(t, "", "validate", "--kind", "resume", "--in", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown document kind")
}
