package mockapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/talentflow/internal/services"
)

// Services is the data layer the routes are served from.
type Services struct {
	Jobs        *services.Jobs
	Candidates  *services.Candidates
	Assessments *services.Assessments
	Analytics   *services.Analytics
}

type Options struct {
	MinLatency time.Duration
	MaxLatency time.Duration
	// Failures is consulted by mutating routes before they touch the store. Nil never fails.
	Failures services.FailurePolicy
}

// API answers TalentFlow requests in-process, with simulated latency and failures.
type API struct {
	engine   *gin.Engine
	services Services
	latency  *latency
	failures services.FailurePolicy
}

func New(svc Services, opts Options) *API {
	gin.SetMode(gin.ReleaseMode)

	failures := opts.Failures
	if failures == nil {
		failures = services.NeverFail{}
	}

	api := &API{
		engine:   gin.New(),
		services: svc,
		latency:  newLatency(opts.MinLatency, opts.MaxLatency),
		failures: failures,
	}
	api.setupRoutes()
	return api
}

// Handler exposes the routes for serving over real HTTP during development.
func (api *API) Handler() http.Handler {
	return api.engine
}

// Client returns an http.Client whose requests never leave the process.
func (api *API) Client() *http.Client {
	return &http.Client{Transport: api.Transport(nil)}
}
