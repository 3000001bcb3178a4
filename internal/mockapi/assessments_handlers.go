package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/talentflow/internal/domain/models"
)

// listAssessments answers {data, total}, optionally narrowed to one job.
func (api *API) listAssessments(c *gin.Context) {
	assessments, err := api.services.Assessments.List(c.Request.Context(), c.Query("jobId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Page[models.Assessment]{Data: assessments, Total: len(assessments)})
}

func (api *API) assessmentStatistics(c *gin.Context) {
	stats, err := api.services.Assessments.Statistics(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (api *API) createAssessment(c *gin.Context) {
	var assessment models.Assessment
	if !bindJSON(c, &assessment) {
		return
	}
	saved, err := api.services.Assessments.Save(c.Request.Context(), assessment)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (api *API) getAssessment(c *gin.Context) {
	assessment, err := api.services.Assessments.GetByJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// saveAssessment upserts the assessment of the job in the path; the body's jobId is ignored.
func (api *API) saveAssessment(c *gin.Context) {
	var assessment models.Assessment
	if !bindJSON(c, &assessment) {
		return
	}
	assessment.JobID = c.Param("id")

	saved, err := api.services.Assessments.Save(c.Request.Context(), assessment)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (api *API) submitAssessment(c *gin.Context) {
	var submission models.Submission
	if !bindJSON(c, &submission) {
		return
	}
	response, err := api.services.Assessments.Submit(c.Request.Context(), c.Param("id"), submission)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

func (api *API) assessmentResponses(c *gin.Context) {
	responses, err := api.services.Assessments.Responses(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": responses})
}

func (api *API) assessmentSummary(c *gin.Context) {
	summary, err := api.services.Assessments.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (api *API) deleteAssessment(c *gin.Context) {
	if err := api.services.Assessments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (api *API) candidatesPerJob(c *gin.Context) {
	result, err := api.services.Analytics.CandidatesPerJob(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
