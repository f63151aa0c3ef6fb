package handler

import (
	"net/http"

	"github.com/vfg2006/capex-consolidado/internal/api/handler/router"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/usecases/authenticating"
	"github.com/vfg2006/capex-consolidado/internal/usecases/rating"
	"github.com/vfg2006/capex-consolidado/internal/usecases/reporting"
	"github.com/vfg2006/capex-consolidado/pkg/metrics"
	"github.com/vfg2006/capex-consolidado/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Reports(service reporting.Reporter, opts ReportOptions) []router.Route {
	return []router.Route{
		{
			Path:        "/api/v1/bosqueto",
			Method:      http.MethodPost,
			Handler:     GenerateBosqueto(service, opts),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
		{
			Path:        "/api/v1/upload-bosqueto",
			Method:      http.MethodPost,
			Handler:     UploadBosqueto(service, opts),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
		{
			Path:        "/api/v1/artifacts/*key",
			Method:      http.MethodGet,
			Handler:     DownloadArtifact(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Rates(resolver rating.RateResolver, profiles config.Profiles) []router.Route {
	return []router.Route{
		{
			Path:        "/api/v1/rates",
			Method:      http.MethodGet,
			Handler:     ListRateCache(resolver),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/v1/rates/:country/:date",
			Method:      http.MethodGet,
			Handler:     GetRate(resolver, profiles),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(), middleware.CountryScope()},
		},
		{
			Path:        "/api/v1/rates/:country/preload",
			Method:      http.MethodPost,
			Handler:     PreloadRates(resolver, profiles),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst(), middleware.CountryScope()},
		},
		{
			Path:        "/api/v1/rates/cache",
			Method:      http.MethodDelete,
			Handler:     ClearRateCache(resolver),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func DiagnosticRoutes(d Diagnostics) []router.Route {
	return []router.Route{
		{
			Path:        "/api/v1/table-info",
			Method:      http.MethodGet,
			Handler:     TableInfo(d),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
		{
			Path:        "/api/v1/test-connection",
			Method:      http.MethodGet,
			Handler:     TestConnection(d),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/api/v1/test-storage",
			Method:      http.MethodGet,
			Handler:     TestStorage(d),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/api/v1/bucket-info",
			Method:      http.MethodGet,
			Handler:     BucketInfo(d),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/api/v1/differences/:country",
			Method:      http.MethodGet,
			Handler:     LatestDifferences(d),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(), middleware.CountryScope()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
