package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminschreck/go-docx/pkg/docx"
	"github.com/benjaminschreck/go-docx/pkg/docx/parts"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	originalConfig := docx.GetGlobalConfig()
	originalLogger := docx.GetLogger()
	t.Cleanup(func() {
		docx.SetLogger(originalLogger)
		docx.SetGlobalConfig(originalConfig)
	})

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "missing.env")))
	err := cmd.Execute()
	return stdout.String(), err
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "docx version "+docx.Version+"\n", out)
}

func TestBuildCommand(t *testing.T) {
	manifestPath := writeManifest(t, `
title: CLI
body:
  - paragraph:
      comments: [{id: 1, author: A, text: [hi]}]
      text: hello
`)
	output := filepath.Join(t.TempDir(), "out.docx")

	out, err := runCLI(t, "build", "-m", manifestPath, "-o", output)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+output)

	pkg, err := docx.ReadPackageFile(output)
	require.NoError(t, err)
	comments, err := pkg.Part(parts.PathComments)
	require.NoError(t, err)
	assert.Contains(t, string(comments), `w:author="A"`)
}

func TestBuildCommandWithConfig(t *testing.T) {
	manifestPath := writeManifest(t, "body:\n  - paragraph: {text: x}\n")
	configPath := filepath.Join(t.TempDir(), "docx.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("compression = \"store\"\nlog_level = \"off\"\n"), 0o644))
	output := filepath.Join(t.TempDir(), "out.docx")

	_, err := runCLI(t, "build", "-m", manifestPath, "-o", output, "--config", configPath)
	require.NoError(t, err)

	pkg, err := docx.ReadPackageFile(output)
	require.NoError(t, err)
	assert.EqualValues(t, 0, pkg.Parts[parts.PathDocument].Method)
}

func TestBuildCommandRequiresManifest(t *testing.T) {
	_, err := runCLI(t, "build")
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	good := writeManifest(t, "body:\n  - paragraph: {text: fine}\n")
	out, err := runCLI(t, "validate", "-m", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")

	bad := writeManifest(t, `
body:
  - paragraph:
      style: Missing
      numbering: {id: 4, level: 0}
      text: x
`)
	out, err = runCLI(t, "validate", "-m", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 unresolved references")
	assert.Contains(t, out, `style "Missing"`)
	assert.Contains(t, out, `numbering "4"`)
}

func TestValidateCommandRejectsInvalidManifest(t *testing.T) {
	bad := writeManifest(t, "body:\n  - paragraph: {align: sideways}\n")
	_, err := runCLI(t, "validate", "-m", bad)
	require.Error(t, err)
	assert.True(t, docx.IsValidationError(err))
}
