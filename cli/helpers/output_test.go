package helpers

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forge-mcp/forgeconf/engine/resolver"
)

func TestMaskSecrets(t *testing.T) {
	t.Run("Should mask a 32-character alphanumeric run", func(t *testing.T) {
		url := "https://eth-mainnet.g.alchemy.com/v2/a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"

		masked := MaskSecrets(url)

		assert.Equal(t, "https://eth-mainnet.g.alchemy.com/v2/a1b2c3d4…", masked)
	})

	t.Run("Should leave runs shorter than 32 characters alone", func(t *testing.T) {
		url := "https://foo.example/a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d"

		assert.Equal(t, url, MaskSecrets(url))
	})

	t.Run("Should mask runs longer than 32 characters", func(t *testing.T) {
		masked := MaskSecrets(strings.Repeat("k", 40))

		assert.Equal(t, "kkkkkkkk…", masked)
	})

	t.Run("Should not touch hostnames split by punctuation", func(t *testing.T) {
		url := "http://anvil:8545"

		assert.Equal(t, url, MaskSecrets(url))
	})
}

func TestPrinter(t *testing.T) {
	t.Run("Should render present keys with their label", func(t *testing.T) {
		p := NewPrinter("off")

		line := p.KeyStatusLine(resolver.KeyStatus{Name: "ANTHROPIC_API_KEY", Present: true, Required: true})

		assert.Contains(t, line, "ANTHROPIC_API_KEY")
		assert.Contains(t, line, "(required)")
		assert.Contains(t, line, "✅")
	})

	t.Run("Should mark missing required keys", func(t *testing.T) {
		p := NewPrinter("off")

		line := p.KeyStatusLine(resolver.KeyStatus{Name: "ALCHEMY_API_KEY", Required: true})

		assert.Contains(t, line, "❌")
	})

	t.Run("Should mark missing optional keys as warnings", func(t *testing.T) {
		p := NewPrinter("off")

		line := p.KeyStatusLine(resolver.KeyStatus{Name: "ZEROX_API_KEY"})

		assert.Contains(t, line, "⚠️")
		assert.Contains(t, line, "(optional)")
	})

	t.Run("Should mask secrets in network lines", func(t *testing.T) {
		p := NewPrinter("off")

		line := p.NetworkLine("ethereum", "https://eth.example/v2/"+strings.Repeat("a", 32))

		assert.NotContains(t, line, strings.Repeat("a", 32))
		assert.Contains(t, line, "aaaaaaaa…")
	})
}

func TestExitError(t *testing.T) {
	t.Run("Should expose the wrapped error and code", func(t *testing.T) {
		inner := errors.New("missing required environment variables")
		err := NewExitError(2, inner)

		require.EqualError(t, err, "missing required environment variables")
		assert.Equal(t, 2, err.Code)
		assert.ErrorIs(t, err, inner)
	})

	t.Run("Should describe a bare exit code", func(t *testing.T) {
		err := NewExitError(2, nil)

		assert.Equal(t, "exit code 2", err.Error())
	})
}
