package location

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mayoblitz/mcp-weather/internal/domain/entity"
	apperrors "github.com/mayoblitz/mcp-weather/pkg/errors"
	"github.com/mayoblitz/mcp-weather/pkg/log"
)

// compoundPattern splits "<prefecture><city>" input at the first
// administrative suffix (都/道/府/県) that still leaves a remainder. The lazy
// prefix means "京都府中京区" splits as 京都+府中京区, not 京都府+中京区; this
// is the documented limit of the two-token grammar.
var compoundPattern = regexp.MustCompile(`^(.+?[都道府県])(.+)$`)

type locationUseCase struct {
	index   *entity.AreaIndex
	loadErr error
}

// NewLocationUseCase builds the resolver over the area index loaded at
// startup. When loading failed, the load error is kept and surfaced
// identically on every Resolve call; nothing is retried.
func NewLocationUseCase(index *entity.AreaIndex, loadErr error) UseCase {
	return &locationUseCase{
		index:   index,
		loadErr: loadErr,
	}
}

// Resolve maps a free-text place name to JMA region/area codes
func (uc *locationUseCase) Resolve(text string) (*entity.ResolvedLocation, error) {
	if uc.index == nil {
		if uc.loadErr != nil {
			return nil, uc.loadErr
		}
		return nil, apperrors.NewDataUnavailableError("area index is not loaded", nil)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewLocationNotFoundError("location is empty")
	}

	// An input that is exactly an office name is a prefecture lookup and must
	// never be carved up by the compound split: 京都府 would otherwise split
	// as 京都+府, substring-match 東京都 and end up in the wrong prefecture's
	// municipalities. Exact matches win over every other strategy.
	if office := uc.findExactOffice(text); office != nil {
		return &entity.ResolvedLocation{
			RegionCode:   office.Code,
			Name:         office.Name,
			IsCitySearch: false,
		}, nil
	}

	// Strategy 1: compound prefecture+city pattern. Once the pattern matches,
	// resolution must succeed on this path; there is no fallback to the plain
	// searches below.
	if m := compoundPattern.FindStringSubmatch(text); m != nil {
		loc, err := uc.resolveCompound(m[1], m[2])
		if err != nil {
			return nil, err
		}
		log.Debugf("Resolved %q via compound pattern to region %s", text, loc.RegionCode)
		return loc, nil
	}

	// Strategy 2: nationwide municipality search. Duplicated municipality
	// names resolve to the first match in ascending class20 code order; this
	// ambiguity is accepted and pinned by tests.
	if loc := uc.findCity(text, ""); loc != nil {
		return loc, nil
	}

	// Strategy 3: prefecture search.
	if loc := uc.findPrefecture(text); loc != nil {
		return loc, nil
	}

	return nil, apperrors.NewLocationNotFoundError(fmt.Sprintf("no area matches %q", text))
}

// resolveCompound resolves an already-split <prefecture><city> pair. The city
// search is filtered to municipalities whose ancestor office is the resolved
// prefecture, which disambiguates same-named municipalities across
// prefectures.
func (uc *locationUseCase) resolveCompound(prefText, cityText string) (*entity.ResolvedLocation, error) {
	office := uc.findOfficeEntry(prefText)
	if office == nil {
		return nil, apperrors.NewLocationNotFoundError(fmt.Sprintf("no prefecture matches %q", prefText))
	}

	if loc := uc.findCity(cityText, office.Code); loc != nil {
		return loc, nil
	}

	return nil, apperrors.NewLocationNotFoundError(
		fmt.Sprintf("no municipality matches %q in %s", cityText, office.Name))
}

// findExactOffice matches a prefecture by its exact name, in ascending
// office code order.
func (uc *locationUseCase) findExactOffice(text string) *entity.AreaEntry {
	for _, code := range uc.index.Codes(entity.LevelOffice) {
		entry, _ := uc.index.Lookup(entity.LevelOffice, code)
		if entry.Name == text {
			return &entry
		}
	}
	return nil
}

// findOfficeEntry matches a prefecture by name, preferring an exact match
// over containment.
func (uc *locationUseCase) findOfficeEntry(text string) *entity.AreaEntry {
	if entry := uc.findExactOffice(text); entry != nil {
		return entry
	}
	for _, code := range uc.index.Codes(entity.LevelOffice) {
		entry, _ := uc.index.Lookup(entity.LevelOffice, code)
		if strings.Contains(entry.Name, text) {
			return &entry
		}
	}
	return nil
}

// findCity scans municipalities in ascending code order for a name that
// equals or contains text. officeCode, when non-empty, restricts matches to
// that prefecture's subtree. Entries with a broken parent chain are
// unresolvable and skipped, not errors.
func (uc *locationUseCase) findCity(text, officeCode string) *entity.ResolvedLocation {
	for _, code := range uc.index.Codes(entity.LevelClass20) {
		entry, _ := uc.index.Lookup(entity.LevelClass20, code)
		if entry.Name != text && !strings.Contains(entry.Name, text) {
			continue
		}

		chain, ok := uc.index.ChainFromCity(code)
		if !ok {
			continue
		}
		if officeCode != "" && chain.Office.Code != officeCode {
			continue
		}

		return &entity.ResolvedLocation{
			RegionCode:   chain.Office.Code,
			AreaCode:     chain.Area.Code,
			CityCode:     chain.City.Code,
			Name:         chain.City.Name,
			IsCitySearch: true,
		}
	}
	return nil
}

// findPrefecture matches a prefecture by name and returns a region-level
// resolution with no area code.
func (uc *locationUseCase) findPrefecture(text string) *entity.ResolvedLocation {
	office := uc.findOfficeEntry(text)
	if office == nil {
		return nil
	}
	return &entity.ResolvedLocation{
		RegionCode:   office.Code,
		Name:         office.Name,
		IsCitySearch: false,
	}
}
