package handler

import (
	"net/http"

	"github.com/vfg2006/adboard-api/internal/api/handler/router"
	"github.com/vfg2006/adboard-api/internal/usecases/insighting"
	"github.com/vfg2006/adboard-api/internal/usecases/project"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Projects(service project.ProjectService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/projects",
			Method:  http.MethodGet,
			Handler: ProjectList(service),
		},
		{
			Path:    "/v1/projects/:id",
			Method:  http.MethodGet,
			Handler: GetProject(service),
		},
		{
			Path:    "/v1/projects/:id",
			Method:  http.MethodPut,
			Handler: UpdateProject(service),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/projects/:id/comparison",
			Method:  http.MethodGet,
			Handler: GetProjectComparison(service),
		},
		{
			Path:    "/v1/periods/resolve",
			Method:  http.MethodGet,
			Handler: ResolvePeriod(service),
		},
		{
			Path:    "/v1/insights/report",
			Method:  http.MethodGet,
			Handler: GetMonthlyReports(service),
		},
		{
			Path:    "/v1/insights/periods",
			Method:  http.MethodGet,
			Handler: GetAvailableMonthlyPeriods(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
