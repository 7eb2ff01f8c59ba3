package areadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayoblitz/mcp-weather/internal/domain/entity"
	apperrors "github.com/mayoblitz/mcp-weather/pkg/errors"
)

func TestLoad(t *testing.T) {
	t.Run("Fixture", func(t *testing.T) {
		idx, err := Load(filepath.Join("testdata", "area.json"))
		require.NoError(t, err)
		require.NotNil(t, idx)

		assert.Equal(t, 4, idx.Len(entity.LevelOffice))
		assert.Equal(t, 6, idx.Len(entity.LevelClass20))

		office, ok := idx.Lookup(entity.LevelOffice, "130000")
		require.True(t, ok)
		assert.Equal(t, "東京都", office.Name)
		assert.Equal(t, "Tokyo", office.EnName)
		assert.Equal(t, "010300", office.Parent)

		city, ok := idx.Lookup(entity.LevelClass20, "1320600")
		require.True(t, ok)
		assert.Equal(t, "府中市", city.Name)
		assert.Equal(t, "1320600", city.Code)
	})

	t.Run("ChainResolvesThroughFixture", func(t *testing.T) {
		idx, err := Load(filepath.Join("testdata", "area.json"))
		require.NoError(t, err)

		chain, ok := idx.ChainFromCity("3420800")
		require.True(t, ok)
		assert.Equal(t, "340000", chain.Office.Code)
		assert.Equal(t, "340010", chain.Area.Code)

		_, ok = idx.ChainFromCity("9990000")
		assert.False(t, ok)
	})

	t.Run("MissingFileListsAttemptedPaths", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "area.json")

		idx, err := Load(missing)
		assert.Nil(t, idx)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeDataUnavailable, apperrors.TypeOf(err))
		assert.Contains(t, err.Error(), missing)
	})

	t.Run("MalformedDocument", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "area.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		idx, err := Load(path)
		assert.Nil(t, idx)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeDataUnavailable, apperrors.TypeOf(err))
		assert.Contains(t, err.Error(), "not parsable")
	})
}
