package dtos

import (
	"github.com/jobtrail/jobtrail/internal/models"
)

type JobSubmissionRequest struct {
	JobDescription string `json:"job_description" binding:"required"`

	// Chat model selector, e.g. "gpt-4o". Defaults server-side when empty.
	Model string `json:"model"`
}

type JobListResponse struct {
	TotalJobs int               `json:"total_jobs"`
	JobEvents []models.JobEvent `json:"job_events"`
}

type PlotsResponse struct {
	JobsByDay      string `json:"jobs_by_day"`
	JobsByCompany  string `json:"jobs_by_company"`
	TechStackCloud string `json:"tech_stack_cloud"`
}
