package entity

import "sort"

// AreaLevel identifies one level of the JMA administrative hierarchy.
type AreaLevel string

const (
	LevelCenter  AreaLevel = "centers"
	LevelOffice  AreaLevel = "offices"  // prefectures; region-code level
	LevelClass10 AreaLevel = "class10s" // sub-prefecture regions; area-code level
	LevelClass15 AreaLevel = "class15s" // municipality groups
	LevelClass20 AreaLevel = "class20s" // municipalities; city-code level
)

// AreaEntry is a single node of the hierarchy snapshot.
type AreaEntry struct {
	Code   string
	Name   string
	EnName string
	Parent string
}

// AreaChain is a municipality's unbroken ancestry up to its office.
type AreaChain struct {
	City   AreaEntry // class20
	Group  AreaEntry // class15
	Area   AreaEntry // class10
	Office AreaEntry
}

// AreaIndex serves read-only lookups over the hierarchy snapshot. It is
// immutable after construction and safe for concurrent readers. Per-level
// code orderings are sorted ascending so every search that iterates a level
// is deterministic regardless of map iteration order.
type AreaIndex struct {
	levels map[AreaLevel]map[string]AreaEntry
	order  map[AreaLevel][]string
}

// NewAreaIndex builds an index over the given per-level entry maps.
func NewAreaIndex(levels map[AreaLevel]map[string]AreaEntry) *AreaIndex {
	order := make(map[AreaLevel][]string, len(levels))
	for level, entries := range levels {
		codes := make([]string, 0, len(entries))
		for code := range entries {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		order[level] = codes
	}
	return &AreaIndex{levels: levels, order: order}
}

// Lookup returns the entry for code at the given level.
func (idx *AreaIndex) Lookup(level AreaLevel, code string) (AreaEntry, bool) {
	entry, ok := idx.levels[level][code]
	return entry, ok
}

// Codes returns the level's codes in ascending order.
func (idx *AreaIndex) Codes(level AreaLevel) []string {
	return idx.order[level]
}

// Len returns the number of entries at the given level.
func (idx *AreaIndex) Len(level AreaLevel) int {
	return len(idx.levels[level])
}

// ChainFromCity walks class20 -> class15 -> class10 -> office. A broken link
// anywhere makes the municipality unresolvable; callers skip such entries.
func (idx *AreaIndex) ChainFromCity(cityCode string) (AreaChain, bool) {
	city, ok := idx.Lookup(LevelClass20, cityCode)
	if !ok {
		return AreaChain{}, false
	}
	group, ok := idx.Lookup(LevelClass15, city.Parent)
	if !ok {
		return AreaChain{}, false
	}
	area, ok := idx.Lookup(LevelClass10, group.Parent)
	if !ok {
		return AreaChain{}, false
	}
	office, ok := idx.Lookup(LevelOffice, area.Parent)
	if !ok {
		return AreaChain{}, false
	}
	return AreaChain{City: city, Group: group, Area: area, Office: office}, true
}
