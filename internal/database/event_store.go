package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jobtrail/jobtrail/internal/models"
)

// EventStore is the gorm-backed job_events store. It satisfies the
// services.EventStore interface.
type EventStore struct {
	DB *gorm.DB
}

func NewEventStore(db *gorm.DB) *EventStore {
	return &EventStore{DB: db}
}

// InitSchema creates the job_events table if absent. Safe to call more than
// once; existing rows are untouched.
func (s *EventStore) InitSchema() error {
	return s.DB.AutoMigrate(&models.JobEvent{})
}

// Insert stores a new event and returns its assigned id. date_created is
// populated here; callers never supply it.
func (s *EventStore) Insert(ev *models.JobEvent) (uint, error) {
	if err := s.DB.Create(ev).Error; err != nil {
		return 0, err
	}
	return ev.ID, nil
}

func (s *EventStore) ListAll() ([]models.JobEvent, error) {
	var events []models.JobEvent
	if err := s.DB.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// GetByID returns (nil, nil) for an absent id rather than an error; the
// boundary decides how to represent "not found".
func (s *EventStore) GetByID(id uint) (*models.JobEvent, error) {
	var ev models.JobEvent
	err := s.DB.First(&ev, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// DeleteByID is a silent no-op when the id does not exist.
func (s *EventStore) DeleteByID(id uint) error {
	return s.DB.Delete(&models.JobEvent{}, id).Error
}

// DayCount is one bucket of the jobs-per-day report.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// CompanyCount is one bucket of the jobs-per-company report.
type CompanyCount struct {
	CompanyName string `json:"company_name"`
	Count       int    `json:"count"`
}

// CountByDay groups rows by the calendar date of date_created.
func (s *EventStore) CountByDay() ([]DayCount, error) {
	var rows []DayCount
	err := s.DB.Raw(
		`SELECT date(date_created) AS day, COUNT(*) AS count
		 FROM job_events
		 GROUP BY date(date_created)
		 ORDER BY day`,
	).Scan(&rows).Error
	return rows, err
}

// CountByCompany groups rows by company_name.
func (s *EventStore) CountByCompany() ([]CompanyCount, error) {
	var rows []CompanyCount
	err := s.DB.Raw(
		`SELECT company_name, COUNT(*) AS count
		 FROM job_events
		 GROUP BY company_name`,
	).Scan(&rows).Error
	return rows, err
}

// TechStacks returns the stored tech_stack value of every row that has one.
func (s *EventStore) TechStacks() ([]string, error) {
	var stacks []string
	err := s.DB.Model(&models.JobEvent{}).
		Where("tech_stack IS NOT NULL AND tech_stack != ''").
		Pluck("tech_stack", &stacks).Error
	return stacks, err
}
