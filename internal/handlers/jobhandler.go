package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail/internal/apperr"
	"github.com/jobtrail/jobtrail/internal/dtos"
	"github.com/jobtrail/jobtrail/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

func NewJobHandler(j *services.JobService) *JobHandler {
	return &JobHandler{JobService: j}
}

// ListJobs is the GET /jobs endpoint: all rows plus total count.
func (h *JobHandler) ListJobs(c *gin.Context) {
	events, err := h.JobService.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.JobListResponse{
		TotalJobs: len(events),
		JobEvents: events,
	})
}

// SubmitJob is the POST /jobs endpoint; it runs the full extraction and
// formatting pipeline before answering.
func (h *JobHandler) SubmitJob(c *gin.Context) {
	var req dtos.JobSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.E(apperr.CodeInvalidArgument, "JobHandler.SubmitJob", "invalid request body", err))
		return
	}

	ev, err := h.JobService.AddEvent(c.Request.Context(), req.JobDescription, req.Model)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ev)
}

// GetJob answers 404 for an absent id rather than erroring.
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	ev, err := h.JobService.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if ev == nil {
		writeError(c, apperr.E(apperr.CodeNotFound, "JobHandler.GetJob", "job event not found", nil))
		return
	}
	c.JSON(http.StatusOK, ev)
}

// DeleteJob answers 200 whether or not the id existed.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.JobService.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperr.E(apperr.CodeInvalidArgument, "handlers.parseID", "invalid id "+c.Param("id"), err)
	}
	return uint(id), nil
}
