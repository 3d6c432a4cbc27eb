package models

import (
	"strings"
	"time"
)

// TechStackSeparator joins the ordered tech-stack values into the stored
// scalar column. Lossy if a technology name itself contains a comma; that
// caveat is accepted, not fixed.
const TechStackSeparator = ","

// JobEvent is one tracked job application. Rows are immutable after insert;
// the only mutation is full deletion.
type JobEvent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	JobTitle       string `gorm:"column:job_title" json:"job_title"`
	CompanyName    string `gorm:"column:company_name" json:"company_name"`
	JobDescription string `gorm:"column:job_description;type:text" json:"job_description"`
	CoverLetter    string `gorm:"column:cover_letter;type:text" json:"cover_letter"`

	// NULL means the extraction produced no list at all; "" means an empty
	// list. The two stay distinguishable on round-trip.
	TechStack *string `gorm:"column:tech_stack" json:"tech_stack"`

	JobDutySummary string `gorm:"column:job_duty_summary;type:text" json:"job_duty_summary"`

	// Free-form text, not validated as a calendar date.
	DatePosted string `gorm:"column:date_posted" json:"date_posted"`

	// Set once by the store on insert, never mutated.
	DateCreated time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`
}

func (JobEvent) TableName() string { return "job_events" }

// JoinTechStack converts the validated ordered sequence into the stored
// form: nil slice -> nil (persisted as NULL), otherwise comma-joined.
func JoinTechStack(stack []string) *string {
	if stack == nil {
		return nil
	}
	s := strings.Join(stack, TechStackSeparator)
	return &s
}

// SplitTechStack is the read-side inverse for non-NULL values.
func SplitTechStack(stored *string) []string {
	if stored == nil {
		return nil
	}
	if *stored == "" {
		return []string{}
	}
	return strings.Split(*stored, TechStackSeparator)
}
