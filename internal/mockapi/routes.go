package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const unmatchedHeader = "X-Talentflow-Unmatched"

func (api *API) setupRoutes() {
	r := api.engine
	r.Use(gin.Recovery(), observe(), api.simulateLatency())
	r.NoRoute(func(c *gin.Context) {
		c.Header(unmatchedHeader, "1")
		c.Status(http.StatusNotFound)
	})

	jobs := r.Group("/jobs")
	jobs.GET("", api.listJobs)
	jobs.GET("/statistics", api.jobStatistics)
	jobs.POST("", api.failable("jobs.create"), api.createJob)
	jobs.GET("/:id", api.getJob)
	jobs.PATCH("/:id", api.failable("jobs.update"), api.updateJob)
	// reorder has its own failure policy inside the transaction
	jobs.PATCH("/:id/reorder", api.reorderJob)
	jobs.DELETE("/:id", api.failable("jobs.delete"), api.deleteJob)

	candidates := r.Group("/candidates")
	candidates.GET("", api.listCandidates)
	candidates.GET("/statistics", api.candidateStatistics)
	candidates.POST("", api.failable("candidates.create"), api.createCandidate)
	candidates.GET("/:id", api.getCandidate)
	candidates.PATCH("/:id", api.failable("candidates.update"), api.updateCandidate)
	candidates.GET("/:id/timeline", api.candidateTimeline)
	candidates.POST("/:id/notes", api.failable("candidates.add_note"), api.addCandidateNote)

	applications := r.Group("/applications")
	applications.GET("", api.listApplications)
	applications.GET("/statistics", api.applicationStatistics)
	applications.POST("", api.failable("applications.create"), api.createCandidate)
	applications.PATCH("/:id", api.failable("applications.update"), api.updateCandidate)
	applications.PATCH("/:id/status", api.failable("applications.update_status"), api.updateApplicationStatus)
	applications.DELETE("/:id", api.failable("applications.delete"), api.deleteApplication)

	// :id is a job id on every assessments route except responses and delete, where it is the assessment id.
	assessments := r.Group("/assessments")
	assessments.GET("", api.listAssessments)
	assessments.GET("/statistics", api.assessmentStatistics)
	assessments.POST("", api.failable("assessments.create"), api.createAssessment)
	assessments.GET("/:id", api.getAssessment)
	assessments.PUT("/:id", api.failable("assessments.save"), api.saveAssessment)
	assessments.POST("/:id/submit", api.failable("assessments.submit"), api.submitAssessment)
	assessments.GET("/:id/responses", api.assessmentResponses)
	assessments.GET("/:id/summary", api.assessmentSummary)
	assessments.DELETE("/:id", api.failable("assessments.delete"), api.deleteAssessment)

	r.GET("/analytics/candidates-per-job", api.candidatesPerJob)
	r.GET("/dashboard", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
