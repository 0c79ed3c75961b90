package controller

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/sanzad/sanzad-backend/internal/domain"
	"github.com/sanzad/sanzad-backend/internal/domain/dto"
	"github.com/sanzad/sanzad-backend/internal/pkg/constants"
	"github.com/sanzad/sanzad-backend/internal/service/project"
)

func (c *Controller) ListProjects(ctx echo.Context) error {
	projects, err := c.projects.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, projects)
}

func (c *Controller) CreateProject(ctx echo.Context) error {
	in := new(dto.CreateProject)
	if err := ctx.Bind(in); err != nil {
		return err
	}
	if err := ctx.Validate(in); err != nil {
		return err
	}

	created, err := c.projects.Create(ctx.Request().Context(), in)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (c *Controller) GetProject(ctx echo.Context) error {
	id, err := pathID(ctx, constants.ErrProjectNotFound)
	if err != nil {
		return err
	}

	p, err := c.projects.Get(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	type response struct {
		Project *domain.Project `json:"project"`
	}
	return ctx.JSON(http.StatusOK, response{Project: p})
}

func (c *Controller) GetProjectMedia(ctx echo.Context) error {
	id, err := pathID(ctx, constants.ErrProjectNotFound)
	if err != nil {
		return err
	}

	media, err := c.projects.GetMedia(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	type response struct {
		Media *domain.Media `json:"media"`
	}
	return ctx.JSON(http.StatusOK, response{Media: media})
}

func (c *Controller) UploadProjectMedia(ctx echo.Context) error {
	id, err := pathID(ctx, constants.ErrProjectNotFound)
	if err != nil {
		return err
	}

	fh, err := ctx.FormFile("file")
	if err != nil {
		return constants.ErrFileRequired
	}

	items, err := c.projects.AppendMedia(
		ctx.Request().Context(),
		id,
		fh,
		ctx.FormValue("caption"),
		ctx.FormValue("type"),
	)
	if err != nil {
		return err
	}

	type response struct {
		Media []domain.MediaItem `json:"media"`
	}
	return ctx.JSON(http.StatusCreated, response{Media: items})
}

// CreateProjectWithFiles handles the admin editor's multipart create: a
// `project` field holding the JSON payload plus allocationFiles*/designFiles*
// file groups.
func (c *Controller) CreateProjectWithFiles(ctx echo.Context) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return constants.ErrInvalidProjectPayload
	}

	values := form.Value["project"]
	if len(values) == 0 || values[0] == "" {
		return constants.ErrProjectFieldRequired
	}

	in := new(dto.GeometryProject)
	if err := sonic.Unmarshal([]byte(values[0]), in); err != nil {
		return constants.ErrInvalidProjectPayload
	}

	var files []project.GroupedFile
	for field, headers := range form.File {
		for _, fh := range headers {
			files = append(files, project.GroupedFile{Field: field, Header: fh})
		}
	}

	created, err := c.projects.CreateWithGeometry(ctx.Request().Context(), in, files)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, created)
}
