package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sanzad/sanzad-backend/internal/api/controller"
	"github.com/sanzad/sanzad-backend/internal/pkg/constants"
	"github.com/sanzad/sanzad-backend/internal/pkg/logger"
	"github.com/sanzad/sanzad-backend/internal/pkg/store"
	"github.com/sanzad/sanzad-backend/internal/pkg/upload"
	"github.com/sanzad/sanzad-backend/internal/service/metrics"
	"github.com/sanzad/sanzad-backend/internal/service/project"
	"github.com/sanzad/sanzad-backend/internal/service/report"
	"github.com/sanzad/sanzad-backend/internal/service/wardneed"
	"github.com/spf13/viper"
)

type APIService struct {
	router *echo.Echo

	projectService  *project.Service
	reportService   *report.Service
	wardNeedService *wardneed.Service
	metricsService  *metrics.Service
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// Router exposes the underlying handler for tests.
func (svc *APIService) Router() http.Handler {
	return svc.router
}

func NewAPIService(st store.Store, files *upload.Storage) (*APIService, error) {
	svc := &APIService{router: echo.New()}
	svc.router.HideBanner = true

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	svc.router.Use(requestContextMiddleware)
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())
	svc.router.Use(metricsMiddleware)
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: viper.GetStringSlice(constants.ViperKeyCORSOrigins),
		AllowMethods: []string{echo.GET, echo.POST, echo.PATCH, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	svc.router.Static("/uploads", files.Dir())
	svc.router.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	svc.projectService = project.NewService(st, files)
	svc.reportService = report.NewService(st)
	svc.wardNeedService = wardneed.NewService(st)
	svc.metricsService = metrics.NewService(st)

	cntrl := controller.NewController(
		svc.projectService,
		svc.reportService,
		svc.wardNeedService,
		svc.metricsService,
	)

	api := svc.router.Group("/api")

	projects := api.Group("/projects")
	projects.GET("", cntrl.ListProjects)
	projects.POST("", cntrl.CreateProject)
	projects.GET("/:id", cntrl.GetProject)
	projects.GET("/:id/media", cntrl.GetProjectMedia)
	projects.POST("/:id/media", cntrl.UploadProjectMedia)

	api.POST("/projects-with-files", cntrl.CreateProjectWithFiles)

	api.GET("/metrics/summary", cntrl.MetricsSummary)

	reports := api.Group("/reports")
	reports.GET("", cntrl.ListReports)
	reports.POST("", cntrl.CreateReport)
	reports.PATCH("/:id/status", cntrl.UpdateReportStatus)

	wardNeeds := api.Group("/ward-needs")
	wardNeeds.GET("", cntrl.ListWardNeeds)
	wardNeeds.GET("/top", cntrl.TopWardNeeds)

	return svc, nil
}
