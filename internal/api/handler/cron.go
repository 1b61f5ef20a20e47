package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/wb-report-bot/internal/domain"
	"github.com/vfg2006/wb-report-bot/internal/scheduler"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Report job types accepted by the manual trigger endpoint.
const (
	CronJobTypeWeekly  = "weekly"
	CronJobTypeMonthly = "monthly"
)

// RunCronJob triggers one of the scheduled reports outside its schedule.
func RunCronJob(jobs *scheduler.ReportJobService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		var kind domain.ReportKind
		switch cronType {
		case CronJobTypeWeekly:
			kind = domain.ReportKindWeekly
		case CronJobTypeMonthly:
			kind = domain.ReportKindMonthly
		default:
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{
				"error": "unknown report job type, accepted values: weekly, monthly",
			})
			return
		}

		jobs.TriggerManualRun(kind)

		json.NewEncoder(w).Encode(map[string]any{
			"message": "report job started",
			"type":    cronType,
		})
	})
}

// GetCronStatus reports the scheduler state.
func GetCronStatus(jobs *scheduler.ReportJobService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		json.NewEncoder(w).Encode(map[string]any{
			"reports": jobs.GetStatus(),
		})
	})
}
