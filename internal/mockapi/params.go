package mockapi

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/talentflow/internal/domain/models"
)

// intQuery reads an integer query parameter, returning fallback when it is absent.
func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &models.ValidationError{Field: name, Message: "must be an integer"}
	}
	return value, nil
}
