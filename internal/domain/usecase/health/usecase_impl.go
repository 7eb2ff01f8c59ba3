package health

import (
	"strconv"

	"github.com/mayoblitz/mcp-weather/internal/domain/entity"
	"github.com/mayoblitz/mcp-weather/internal/domain/gateway/api"
	"github.com/mayoblitz/mcp-weather/internal/domain/model"
)

type healthUseCase struct {
	jmaGateway  api.JmaGateway
	areaIndex   *entity.AreaIndex
	areaLoadErr error
}

// NewHealthUseCase creates a UseCase that reports on the area index loaded
// at startup and on the reachability of the JMA API.
func NewHealthUseCase(jmaGateway api.JmaGateway, areaIndex *entity.AreaIndex, areaLoadErr error) UseCase {
	return &healthUseCase{
		jmaGateway:  jmaGateway,
		areaIndex:   areaIndex,
		areaLoadErr: areaLoadErr,
	}
}

func (u *healthUseCase) Check() model.HealthResponse {
	areaData := u.areaDataStatus()
	upstream := u.jmaGateway.Health()

	status := model.StatusUp
	if areaData.Status == model.StatusDown || upstream.Status == model.StatusDown {
		status = model.StatusDown
	}

	return model.HealthResponse{
		Status:   status,
		AreaData: areaData,
		Upstream: upstream,
	}
}

func (u *healthUseCase) areaDataStatus() model.ComponentHealthStatus {
	if u.areaIndex == nil {
		details := map[string]string{}
		if u.areaLoadErr != nil {
			details["error"] = u.areaLoadErr.Error()
		}
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"offices":        strconv.Itoa(u.areaIndex.Len(entity.LevelOffice)),
			"municipalities": strconv.Itoa(u.areaIndex.Len(entity.LevelClass20)),
		},
	}
}
