package mockapi

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/talentflow/internal/metrics"
	log "github.com/sirupsen/logrus"
)

func observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestsCounter.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func (api *API) simulateLatency() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.FullPath() == "" {
			return
		}
		if err := api.latency.wait(c.Request.Context()); err != nil {
			abortWithError(c, err)
		}
	}
}

// failable makes the route fail with a transient error at the rate of the API failure policy.
func (api *API) failable(operation string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := api.failures.Check(operation); err != nil {
			metrics.SimulatedFailuresCounter.WithLabelValues(c.FullPath()).Inc()
			log.Debugf("simulated failure on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			abortWithError(c, err)
		}
	}
}
