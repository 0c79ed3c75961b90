package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) MetricsSummary(ctx echo.Context) error {
	summary, err := c.metrics.Summary(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, summary)
}
