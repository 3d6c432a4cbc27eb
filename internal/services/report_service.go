package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/psykhi/wordclouds"
	"github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/jobtrail/jobtrail/internal/apperr"
	"github.com/jobtrail/jobtrail/internal/database"
	"github.com/jobtrail/jobtrail/internal/dtos"
	"github.com/jobtrail/jobtrail/internal/models"
)

// ReportService renders the three aggregate views as base64-encoded PNGs.
// Every request recomputes from a full table scan; no caching at the
// hundreds-of-rows scale this runs at.
type ReportService struct {
	Store    *database.EventStore
	FontPath string
	Log      *logrus.Logger
}

func NewReportService(store *database.EventStore, fontPath string, log *logrus.Logger) *ReportService {
	return &ReportService{Store: store, FontPath: fontPath, Log: log}
}

func (s *ReportService) GeneratePlots() (*dtos.PlotsResponse, error) {
	const op = "ReportService.GeneratePlots"

	byDay, err := s.Store.CountByDay()
	if err != nil {
		return nil, apperr.E(apperr.CodeInternal, op, "query jobs by day", err)
	}
	byCompany, err := s.Store.CountByCompany()
	if err != nil {
		return nil, apperr.E(apperr.CodeInternal, op, "query jobs by company", err)
	}
	stacks, err := s.Store.TechStacks()
	if err != nil {
		return nil, apperr.E(apperr.CodeInternal, op, "query tech stacks", err)
	}

	resp := &dtos.PlotsResponse{}

	if resp.JobsByDay, err = renderJobsByDay(byDay); err != nil {
		return nil, apperr.E(apperr.CodeInternal, op, "render jobs by day", err)
	}
	if resp.JobsByCompany, err = renderJobsByCompany(byCompany); err != nil {
		return nil, apperr.E(apperr.CodeInternal, op, "render jobs by company", err)
	}
	if resp.TechStackCloud, err = s.renderTechStackCloud(stacks); err != nil {
		return nil, apperr.E(apperr.CodeInternal, op, "render tech stack cloud", err)
	}
	return resp, nil
}

func renderJobsByDay(rows []database.DayCount) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}

	var xs []time.Time
	var ys []float64
	for _, r := range rows {
		day, err := time.Parse("2006-01-02", r.Day)
		if err != nil {
			continue
		}
		xs = append(xs, day)
		ys = append(ys, float64(r.Count))
	}
	if len(xs) == 0 {
		return "", nil
	}
	// go-chart cannot draw a series with a single point or a zero-width
	// x-range; pad with a zero bucket for the previous day.
	if len(xs) == 1 {
		xs = append([]time.Time{xs[0].AddDate(0, 0, -1)}, xs...)
		ys = append([]float64{0}, ys...)
	}

	graph := chart.Chart{
		Title:  "Total Jobs Applied by Day",
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				XValues: xs,
				YValues: ys,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func renderJobsByCompany(rows []database.CompanyCount) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}

	bars := make([]chart.Value, 0, len(rows))
	for _, r := range rows {
		bars = append(bars, chart.Value{Label: r.CompanyName, Value: float64(r.Count)})
	}

	graph := chart.BarChart{
		Title:    "Jobs Applied by Company",
		Width:    800,
		Height:   400,
		BarWidth: 50,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (s *ReportService) renderTechStackCloud(stacks []string) (img string, err error) {
	counts := buildWordCounts(stacks)
	if len(counts) == 0 {
		return "", nil
	}

	// The cloud needs a TTF on disk. A missing font skips this image with a
	// warning; the other two reports still render.
	if s.FontPath == "" {
		s.Log.Warn("no word cloud font configured, skipping tech stack cloud")
		return "", nil
	}
	if _, statErr := os.Stat(s.FontPath); statErr != nil {
		s.Log.WithError(statErr).WithField("path", s.FontPath).Warn("word cloud font not readable, skipping tech stack cloud")
		return "", nil
	}

	// wordclouds panics on a font file it cannot parse.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("word cloud render with font %s: %v", s.FontPath, r)
		}
	}()

	cloud := wordclouds.NewWordcloud(counts,
		wordclouds.FontFile(s.FontPath),
		wordclouds.FontMaxSize(64),
		wordclouds.FontMinSize(12),
		wordclouds.Width(800),
		wordclouds.Height(400),
		wordclouds.BackgroundColor(color.White),
	)
	rendered := cloud.Draw()

	var buf bytes.Buffer
	if err := png.Encode(&buf, rendered); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// buildWordCounts splits every stored tech_stack value into individual
// words and tallies them. Multi-word technology names contribute each word
// separately, matching the whitespace-join-then-count report contract.
func buildWordCounts(stacks []string) map[string]int {
	counts := make(map[string]int)
	for _, stored := range stacks {
		for _, tech := range strings.Split(stored, models.TechStackSeparator) {
			for _, word := range strings.Fields(tech) {
				counts[word]++
			}
		}
	}
	return counts
}
