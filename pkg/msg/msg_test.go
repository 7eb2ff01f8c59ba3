package msg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  greeting: "こんにちは {0}"
  nested:
    count: "items: {0} of {1}"
  plain: "no placeholders"
`), 0o644))
	Init(path)

	t.Run("PlaceholderReplacement", func(t *testing.T) {
		assert.Equal(t, "こんにちは 東京", GetMessage("app.greeting", "東京"))
	})

	t.Run("MultiplePlaceholders", func(t *testing.T) {
		assert.Equal(t, "items: 3 of 10", GetMessage("app.nested.count", 3, 10))
	})

	t.Run("NoArgs", func(t *testing.T) {
		assert.Equal(t, "no placeholders", GetMessage("app.plain"))
	})

	t.Run("UnknownKey", func(t *testing.T) {
		assert.Equal(t, "Message not found: app.missing", GetMessage("app.missing"))
	})
}
