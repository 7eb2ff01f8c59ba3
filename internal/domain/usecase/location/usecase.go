package location

import "github.com/mayoblitz/mcp-weather/internal/domain/entity"

type UseCase interface {
	// Resolve maps a free-text place name to JMA region/area codes.
	// Strategies are tried in order: compound <prefecture><city> split, plain
	// municipality search, plain prefecture search. The first strategy that
	// produces a result wins; a matched compound pattern never falls back.
	Resolve(text string) (*entity.ResolvedLocation, error)
}
