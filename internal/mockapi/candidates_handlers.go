package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/talentflow/internal/domain/models"
)

type statusRequest struct {
	Status string `json:"status"`
}

type noteRequest struct {
	Text string `json:"text"`
}

// listCandidates returns everything unless both page and pageSize are given.
func (api *API) listCandidates(c *gin.Context) {
	filter := models.CandidateFilter{
		Search: c.Query("search"),
		Stage:  models.Stage(c.Query("stage")),
		JobID:  c.Query("jobId"),
	}

	if c.Query("page") != "" && c.Query("pageSize") != "" {
		var err error
		if filter.Page, err = intQuery(c, "page", 0); err != nil {
			abortWithError(c, err)
			return
		}
		if filter.PageSize, err = intQuery(c, "pageSize", 0); err != nil {
			abortWithError(c, err)
			return
		}
	}

	result, err := api.services.Candidates.List(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (api *API) candidateStatistics(c *gin.Context) {
	stats, err := api.services.Candidates.Statistics(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (api *API) createCandidate(c *gin.Context) {
	var draft models.CandidateDraft
	if !bindJSON(c, &draft) {
		return
	}
	candidate, err := api.services.Candidates.Create(c.Request.Context(), draft)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

func (api *API) getCandidate(c *gin.Context) {
	candidate, err := api.services.Candidates.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

func (api *API) updateCandidate(c *gin.Context) {
	var patch models.CandidatePatch
	if !bindJSON(c, &patch) {
		return
	}
	candidate, err := api.services.Candidates.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

func (api *API) candidateTimeline(c *gin.Context) {
	timeline, err := api.services.Candidates.Timeline(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, timeline)
}

func (api *API) addCandidateNote(c *gin.Context) {
	var req noteRequest
	if !bindJSON(c, &req) {
		return
	}
	candidate, err := api.services.Candidates.AddNote(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// listApplications returns a plain list. The job may be given as jobId or job.
func (api *API) listApplications(c *gin.Context) {
	jobID := c.Query("jobId")
	if jobID == "" {
		jobID = c.Query("job")
	}
	result, err := api.services.Candidates.List(c.Request.Context(), models.CandidateFilter{JobID: jobID})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result.Data)
}

func (api *API) applicationStatistics(c *gin.Context) {
	stats, err := api.services.Candidates.ApplicationStatistics(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (api *API) updateApplicationStatus(c *gin.Context) {
	var req statusRequest
	if !bindJSON(c, &req) {
		return
	}
	candidate, err := api.services.Candidates.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

func (api *API) deleteApplication(c *gin.Context) {
	if err := api.services.Candidates.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
