package handler

import (
	"net/http"

	"github.com/vfg2006/wb-report-bot/internal/api/handler/router"
	"github.com/vfg2006/wb-report-bot/internal/scheduler"
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

func CronJobs(jobs *scheduler.ReportJobService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(jobs),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(jobs),
		},
	}
}
