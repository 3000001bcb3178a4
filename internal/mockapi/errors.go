package mockapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/talentflow/internal/domain/models"
	"github.com/maxaizer/talentflow/internal/logger"
	log "github.com/sirupsen/logrus"
)

// HTTPStatus maps an error of the data layer to the status the API answers with.
func HTTPStatus(err error) int {
	var notFound *models.NotFoundError
	var validation *models.ValidationError
	var transient *models.TransientError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &transient):
		return transient.Code
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		var transient *models.TransientError
		if !errors.As(err, &transient) {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeAPI).
				Errorf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		}
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func bindJSON(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		abortWithError(c, &models.ValidationError{Field: "body", Message: err.Error()})
		return false
	}
	return true
}
