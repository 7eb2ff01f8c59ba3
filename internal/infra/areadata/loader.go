package areadata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mayoblitz/mcp-weather/internal/domain/entity"
	apperrors "github.com/mayoblitz/mcp-weather/pkg/errors"
	"github.com/mayoblitz/mcp-weather/pkg/log"
)

// DefaultFileName is the well-known location of the hierarchy snapshot,
// relative to the executable's directory, with the working directory as the
// documented fallback.
const DefaultFileName = "configs/area.json"

// rawEntry mirrors one node of the area.json document.
type rawEntry struct {
	Name   string `json:"name"`
	EnName string `json:"enName"`
	Parent string `json:"parent"`
}

// rawDocument mirrors the five top-level maps of area.json.
type rawDocument struct {
	Centers  map[string]rawEntry `json:"centers"`
	Offices  map[string]rawEntry `json:"offices"`
	Class10s map[string]rawEntry `json:"class10s"`
	Class15s map[string]rawEntry `json:"class15s"`
	Class20s map[string]rawEntry `json:"class20s"`
}

// Load reads the hierarchy snapshot and builds the immutable index. It tries
// the configured path first (when non-empty), then the executable-relative
// default, then the working directory. Failure yields a DataUnavailable error
// carrying every attempted path; the caller keeps running and surfaces the
// error on each resolution attempt instead.
func Load(configuredPath string) (*entity.AreaIndex, error) {
	paths := candidatePaths(configuredPath)

	var attempted []string
	for _, path := range paths {
		attempted = append(attempted, path)

		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		idx, err := parse(data)
		if err != nil {
			return nil, apperrors.NewDataUnavailableError(
				fmt.Sprintf("area data at %s is not parsable", path), err)
		}

		log.Infof("Loaded area data from %s (%d offices, %d municipalities)",
			path, idx.Len(entity.LevelOffice), idx.Len(entity.LevelClass20))
		return idx, nil
	}

	return nil, apperrors.NewDataUnavailableError(
		fmt.Sprintf("area data not found (tried %s)", strings.Join(attempted, ", ")), nil)
}

// candidatePaths lists the lookup locations in priority order.
func candidatePaths(configuredPath string) []string {
	var paths []string
	if configuredPath != "" {
		paths = append(paths, configuredPath)
	}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), DefaultFileName))
	}
	paths = append(paths, DefaultFileName)
	return paths
}

// parse decodes the document and assembles the per-level entry maps.
func parse(data []byte) (*entity.AreaIndex, error) {
	var doc rawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	levels := map[entity.AreaLevel]map[string]entity.AreaEntry{
		entity.LevelCenter:  toEntries(doc.Centers),
		entity.LevelOffice:  toEntries(doc.Offices),
		entity.LevelClass10: toEntries(doc.Class10s),
		entity.LevelClass15: toEntries(doc.Class15s),
		entity.LevelClass20: toEntries(doc.Class20s),
	}

	return entity.NewAreaIndex(levels), nil
}

func toEntries(raw map[string]rawEntry) map[string]entity.AreaEntry {
	entries := make(map[string]entity.AreaEntry, len(raw))
	for code, e := range raw {
		entries[code] = entity.AreaEntry{
			Code:   code,
			Name:   e.Name,
			EnName: e.EnName,
			Parent: e.Parent,
		}
	}
	return entries
}
