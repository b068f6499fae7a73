package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/floralqr/internal/background"
)

func TestBuildFormModelWiresConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	app, err := newAppContext(&rootFlags{outputDir: dir}, "form", nil)
	require.NoError(t, err)
	defer app.Close()

	m, err := buildFormModel(app, &bytes.Buffer{})
	require.NoError(t, err)

	require.Equal(t, "#F9A825", m.ForegroundColor())
	urls := make([]string, 0)
	for _, img := range background.DefaultImages() {
		urls = append(urls, img.URL)
	}
	require.Contains(t, urls, m.Background().URL)
	require.True(t, m.Schedule().Active())
	require.Nil(t, m.Artifact())
}
