package health

import (
	"github.com/mayoblitz/mcp-weather/internal/domain/model"
)

// UseCase reports the aggregate health of the service and its dependencies.
type UseCase interface {
	Check() model.HealthResponse
}
