package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestIndex() *AreaIndex {
	return NewAreaIndex(map[AreaLevel]map[string]AreaEntry{
		LevelCenter: {
			"010300": {Code: "010300", Name: "関東甲信地方"},
		},
		LevelOffice: {
			"130000": {Code: "130000", Name: "東京都", Parent: "010300"},
		},
		LevelClass10: {
			"130010": {Code: "130010", Name: "東京地方", Parent: "130000"},
		},
		LevelClass15: {
			"130011": {Code: "130011", Name: "２３区", Parent: "130010"},
		},
		LevelClass20: {
			"1310100": {Code: "1310100", Name: "千代田区", Parent: "130011"},
			"1310400": {Code: "1310400", Name: "新宿区", Parent: "130011"},
			"9990000": {Code: "9990000", Name: "孤立市", Parent: "999999"},
		},
	})
}

func TestAreaIndex_Codes(t *testing.T) {
	idx := buildTestIndex()

	t.Run("SortedAscending", func(t *testing.T) {
		assert.Equal(t, []string{"1310100", "1310400", "9990000"}, idx.Codes(LevelClass20))
	})

	t.Run("UnknownLevel", func(t *testing.T) {
		assert.Empty(t, idx.Codes(AreaLevel("nope")))
	})
}

func TestAreaIndex_ChainFromCity(t *testing.T) {
	idx := buildTestIndex()

	t.Run("FullChain", func(t *testing.T) {
		chain, ok := idx.ChainFromCity("1310100")
		require.True(t, ok)
		assert.Equal(t, "千代田区", chain.City.Name)
		assert.Equal(t, "130011", chain.Group.Code)
		assert.Equal(t, "130010", chain.Area.Code)
		assert.Equal(t, "130000", chain.Office.Code)
	})

	t.Run("BrokenParentLink", func(t *testing.T) {
		_, ok := idx.ChainFromCity("9990000")
		assert.False(t, ok)
	})

	t.Run("UnknownCity", func(t *testing.T) {
		_, ok := idx.ChainFromCity("0000000")
		assert.False(t, ok)
	})
}
