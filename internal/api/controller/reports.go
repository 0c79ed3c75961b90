package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sanzad/sanzad-backend/internal/domain/dto"
	"github.com/sanzad/sanzad-backend/internal/pkg/constants"
)

func (c *Controller) ListReports(ctx echo.Context) error {
	reports, err := c.reports.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, reports)
}

func (c *Controller) CreateReport(ctx echo.Context) error {
	in := new(dto.CreateReport)
	if err := ctx.Bind(in); err != nil {
		return err
	}
	if err := ctx.Validate(in); err != nil {
		return err
	}

	created, err := c.reports.Create(ctx.Request().Context(), in)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (c *Controller) UpdateReportStatus(ctx echo.Context) error {
	id, err := pathID(ctx, constants.ErrReportNotFound)
	if err != nil {
		return err
	}

	in := new(dto.UpdateReportStatus)
	if err := ctx.Bind(in); err != nil {
		return err
	}
	if err := ctx.Validate(in); err != nil {
		return err
	}

	updated, err := c.reports.UpdateStatus(ctx.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}
