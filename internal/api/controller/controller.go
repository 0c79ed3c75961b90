package controller

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sanzad/sanzad-backend/internal/pkg/constants"
	"github.com/sanzad/sanzad-backend/internal/service/metrics"
	"github.com/sanzad/sanzad-backend/internal/service/project"
	"github.com/sanzad/sanzad-backend/internal/service/report"
	"github.com/sanzad/sanzad-backend/internal/service/wardneed"
)

type Controller struct {
	projects  *project.Service
	reports   *report.Service
	wardNeeds *wardneed.Service
	metrics   *metrics.Service
}

func NewController(
	projects *project.Service,
	reports *report.Service,
	wardNeeds *wardneed.Service,
	metrics *metrics.Service,
) *Controller {
	return &Controller{
		projects:  projects,
		reports:   reports,
		wardNeeds: wardNeeds,
		metrics:   metrics,
	}
}

// pathID parses the :id segment. A non-numeric id can never match a row, so
// it surfaces as the entity's not-found error.
func pathID(ctx echo.Context, notFound *constants.CodedError) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, notFound
	}
	return id, nil
}
