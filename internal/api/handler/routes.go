package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-prediction-api/internal/api/handler/router"
	"github.com/vfg2006/sales-prediction-api/internal/config"
	"github.com/vfg2006/sales-prediction-api/internal/usecases/analyzing"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Submissions(service analyzing.Analyzer, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/submissions",
			Method:  http.MethodPost,
			Handler: CreateSubmission(service, cfg),
		},
		{
			Path:    "/v1/submissions/:id/filters",
			Method:  http.MethodGet,
			Handler: GetSubmissionFilters(service),
		},
		{
			Path:    "/v1/submissions/:id/analysis",
			Method:  http.MethodGet,
			Handler: GetSubmissionAnalysis(service),
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
