package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func (c *Controller) ListWardNeeds(ctx echo.Context) error {
	needs, err := c.wardNeeds.ListBySector(ctx.Request().Context(), ctx.QueryParam("sector"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, needs)
}

func (c *Controller) TopWardNeeds(ctx echo.Context) error {
	// unparsable or missing limit falls back to the service default
	limit, err := strconv.Atoi(ctx.QueryParam("limit"))
	if err != nil {
		limit = 0
	}

	needs, err := c.wardNeeds.TopBySector(ctx.Request().Context(), ctx.QueryParam("sector"), limit)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, needs)
}
