package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/jobtrail/jobtrail/internal/document"
	"github.com/jobtrail/jobtrail/internal/dtos"
	"github.com/jobtrail/jobtrail/internal/models"
)

// EventStore is the persistence contract the pipeline depends on. The gorm
// implementation lives in internal/database; tests may substitute their own.
type EventStore interface {
	InitSchema() error
	Insert(ev *models.JobEvent) (uint, error)
	ListAll() ([]models.JobEvent, error)
	GetByID(id uint) (*models.JobEvent, error)
	DeleteByID(id uint) error
}

type JobService struct {
	Store     EventStore
	Extractor Extractor
	Formatter *document.Formatter
	Log       *logrus.Logger
}

func NewJobService(store EventStore, extractor Extractor, formatter *document.Formatter, log *logrus.Logger) *JobService {
	return &JobService{
		Store:     store,
		Extractor: extractor,
		Formatter: formatter,
		Log:       log,
	}
}

// AddEvent runs the full submission pipeline: extract, default, persist,
// render. The row is inserted before the document is written, so a failed
// PDF write leaves the insert in place (at-least-inserted, not atomic).
func (s *JobService) AddEvent(ctx context.Context, jobDescription, model string) (*models.JobEvent, error) {
	raw, err := s.Extractor.Extract(ctx, jobDescription, model)
	if err != nil {
		return nil, err
	}

	data, err := dtos.ValidateExtraction(raw)
	if err != nil {
		return nil, err
	}

	ev := &models.JobEvent{
		JobTitle:       data.JobTitle,
		CompanyName:    data.CompanyName,
		JobDescription: jobDescription,
		CoverLetter:    data.CoverLetter,
		TechStack:      models.JoinTechStack(data.TechStack),
		JobDutySummary: data.JobDutySummary,
		DatePosted:     data.DatePosted,
	}
	id, err := s.Store.Insert(ev)
	if err != nil {
		return nil, err
	}
	s.Log.WithField("id", id).WithField("company", ev.CompanyName).Info("job event stored")

	if _, err := s.Formatter.Save(ev.CompanyName, ev.JobTitle, ev.CoverLetter); err != nil {
		return nil, err
	}

	return ev, nil
}

func (s *JobService) List() ([]models.JobEvent, error) {
	return s.Store.ListAll()
}

func (s *JobService) Get(id uint) (*models.JobEvent, error) {
	return s.Store.GetByID(id)
}

func (s *JobService) Delete(id uint) error {
	return s.Store.DeleteByID(id)
}
