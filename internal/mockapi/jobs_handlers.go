package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/talentflow/internal/domain/models"
)

type reorderRequest struct {
	FromOrder *int `json:"fromOrder"`
	ToOrder   *int `json:"toOrder"`
}

// listJobs paginates by default: page 1, ten jobs per page.
func (api *API) listJobs(c *gin.Context) {
	page, err := intQuery(c, "page", 1)
	if err != nil {
		abortWithError(c, err)
		return
	}
	pageSize, err := intQuery(c, "pageSize", 10)
	if err != nil {
		abortWithError(c, err)
		return
	}

	result, err := api.services.Jobs.List(c.Request.Context(), models.JobFilter{
		Search:   c.Query("search"),
		Status:   models.JobStatus(c.Query("status")),
		JobType:  c.Query("jobType"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (api *API) jobStatistics(c *gin.Context) {
	stats, err := api.services.Jobs.Statistics(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (api *API) createJob(c *gin.Context) {
	var draft models.JobDraft
	if !bindJSON(c, &draft) {
		return
	}
	job, err := api.services.Jobs.Create(c.Request.Context(), draft)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (api *API) getJob(c *gin.Context) {
	job, err := api.services.Jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (api *API) updateJob(c *gin.Context) {
	var patch models.JobPatch
	if !bindJSON(c, &patch) {
		return
	}
	job, err := api.services.Jobs.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// reorderJob moves the job to toOrder. fromOrder is accepted but the stored position wins.
func (api *API) reorderJob(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.ToOrder == nil {
		abortWithError(c, &models.ValidationError{Field: "toOrder", Message: "is required"})
		return
	}

	job, err := api.services.Jobs.Reorder(c.Request.Context(), c.Param("id"), *req.ToOrder)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (api *API) deleteJob(c *gin.Context) {
	if err := api.services.Jobs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
