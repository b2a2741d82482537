package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/jonathan/citation-formatter/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCheckWith_AllPass(t *testing.T) {
	dir := t.TempDir()
	first := writeInput(t, dir, "smith.json", sampleEntryJSON)
	second := writeInput(t, dir, "paged.yaml", "author: Doe, Jane\ntitle: Paged\npage: \"4\"\n")

	var out bytes.Buffer
	err := runCheckWith(context.Background(), []string{first, second}, types.StyleMLA, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "ok    (Smith)")
	assert.Contains(t, out.String(), "ok    (Doe 4)")
	assert.Contains(t, out.String(), "2 citation(s), 0 violation(s)")
}

func TestRunCheckWith_EmptyAuthorStillPasses(t *testing.T) {
	input := writeInput(t, t.TempDir(), "anon.json", `{"title": "Anonymous Work", "year": "1850"}`)

	var out bytes.Buffer
	err := runCheckWith(context.Background(), []string{input}, types.StyleMLA, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "ok    ()")
}

func TestRunCheckWith_NoInputs(t *testing.T) {
	err := runCheckWith(context.Background(), nil, types.StyleMLA, &bytes.Buffer{})
	require.Error(t, err)
}

func TestRunCheckWith_UnsupportedStyle(t *testing.T) {
	input := writeInput(t, t.TempDir(), "smith.json", sampleEntryJSON)
	err := runCheckWith(context.Background(), []string{input}, "Chicago", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported citation style")
}
