package resolver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, data string) Document {
	t.Helper()
	doc, err := ParseDocument([]byte(data))
	require.NoError(t, err)
	return doc
}

func TestParseDocument(t *testing.T) {
	t.Run("Should decode plain string network entries", func(t *testing.T) {
		doc := mustParse(t, `
development:
  networks:
    testnet: http://127.0.0.1:8545
`)

		section := doc.Section(Development)
		url, ok := section.Networks["testnet"].URL()

		require.True(t, ok)
		assert.Equal(t, "http://127.0.0.1:8545", url)
	})

	t.Run("Should decode structured network entries with url field", func(t *testing.T) {
		doc := mustParse(t, `
production:
  networks:
    ethereum:
      url: https://eth-mainnet.g.alchemy.com/v2
      chain_id: 1
`)

		section := doc.Section(Production)
		url, ok := section.Networks["ethereum"].URL()

		require.True(t, ok)
		assert.Equal(t, "https://eth-mainnet.g.alchemy.com/v2", url)
	})

	t.Run("Should let malformed network entries contribute nothing", func(t *testing.T) {
		doc := mustParse(t, `
development:
  networks:
    broken:
      chain_id: 1
    list_shaped:
      - one
      - two
`)

		section := doc.Section(Development)
		_, brokenOK := section.Networks["broken"].URL()
		_, listOK := section.Networks["list_shaped"].URL()

		assert.False(t, brokenOK)
		assert.False(t, listOK)
	})

	t.Run("Should keep numeric service ports in string form", func(t *testing.T) {
		doc := mustParse(t, `
development:
  services:
    backend:
      port: 9999
    frontend:
      port: "3005"
`)

		section := doc.Section(Development)

		require.NotNil(t, section.Services["backend"].Port)
		assert.Equal(t, "9999", section.Services["backend"].Port.String())
		require.NotNil(t, section.Services["frontend"].Port)
		assert.Equal(t, "3005", section.Services["frontend"].Port.String())
	})

	t.Run("Should resolve a missing environment to an empty section", func(t *testing.T) {
		doc := mustParse(t, `
development:
  services: {}
`)

		section := doc.Section(Production)

		assert.Empty(t, section.Services)
		assert.Empty(t, section.Networks)
		assert.Empty(t, section.Settings)
	})

	t.Run("Should decode settings as string map", func(t *testing.T) {
		doc := mustParse(t, `
development:
  settings:
    debug_mode: "true"
    chain_poll_interval: "15"
`)

		section := doc.Section(Development)

		assert.Equal(t, "true", section.Settings["debug_mode"])
		assert.Equal(t, "15", section.Settings["chain_poll_interval"])
	})

	t.Run("Should treat an empty document as empty, not an error", func(t *testing.T) {
		doc, err := ParseDocument(nil)

		require.NoError(t, err)
		assert.Empty(t, doc)
	})

	t.Run("Should surface parse errors", func(t *testing.T) {
		_, err := ParseDocument([]byte("development: [unbalanced"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse configuration document")
	})
}

func TestLoadDocument(t *testing.T) {
	t.Run("Should report a missing document with the sentinel error", func(t *testing.T) {
		_, err := LoadDocument(filepath.Join(t.TempDir(), "config.yaml"))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDocumentNotFound)
	})

	t.Run("Should load a document from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("development:\n  networks:\n    testnet: http://127.0.0.1:8545\n"), 0o644))

		doc, err := LoadDocument(path)

		require.NoError(t, err)
		url, ok := doc.Section(Development).Networks["testnet"].URL()
		require.True(t, ok)
		assert.Equal(t, "http://127.0.0.1:8545", url)
	})
}
