package reporter

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/xfocus/xfocus/internal/config"
	"github.com/xfocus/xfocus/internal/models"
	"github.com/xfocus/xfocus/pkg/utils"
)

// SummarySource provides aggregated per-application totals
type SummarySource interface {
	GetAppSummarySince(since time.Time) ([]models.AppSummary, error)
}

// Reporter handles report generation
type Reporter struct {
	config *config.Config
	repo   SummarySource
	now    func() time.Time
}

// New creates a new reporter
func New(cfg *config.Config, repo SummarySource) *Reporter {
	return &Reporter{
		config: cfg,
		repo:   repo,
		now:    time.Now,
	}
}

// GenerateReport generates a report for the specified period
func (r *Reporter) GenerateReport(periodType string) (*models.Report, error) {
	period, err := r.Period(periodType)
	if err != nil {
		return nil, err
	}

	summaries, err := r.repo.GetAppSummarySince(period.Start)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get app summary")
	}

	var totalSeconds int64
	for i := range summaries {
		summaries[i].TotalMinutes = float64(summaries[i].TotalSeconds) / 60.0
		summaries[i].TotalHours = float64(summaries[i].TotalSeconds) / 3600.0
		totalSeconds += summaries[i].TotalSeconds
	}

	if totalSeconds > 0 {
		for i := range summaries {
			summaries[i].Percentage = (float64(summaries[i].TotalSeconds) / float64(totalSeconds)) * 100.0
		}
	}

	return &models.Report{
		Period:       *period,
		Apps:         summaries,
		TotalSeconds: totalSeconds,
		TotalMinutes: float64(totalSeconds) / 60.0,
		TotalHours:   float64(totalSeconds) / 3600.0,
		GeneratedAt:  r.now(),
	}, nil
}

// Period calculates the time range for a report in the configured time zone
func (r *Reporter) Period(periodType string) (*models.ReportPeriod, error) {
	loc, err := r.config.Location()
	if err != nil {
		return nil, err
	}

	now := r.now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	var start, end time.Time

	switch periodType {
	case "day", "today":
		start = today
		end = start.AddDate(0, 0, 1)

	case "week":
		// weeks start on Monday
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start = today.AddDate(0, 0, -(weekday - 1))
		end = start.AddDate(0, 0, 7)

	case "month":
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, 0)

	default:
		return nil, fmt.Errorf("invalid period type: %s (valid: day, week, month)", periodType)
	}

	return &models.ReportPeriod{
		Start: start,
		End:   end,
		Type:  periodType,
	}, nil
}

// FormatReportText formats the report as human-readable text
func (r *Reporter) FormatReportText(report *models.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Focus Report - %s\n", report.Period.Type)
	fmt.Fprintf(&b, "Period: %s to %s\n",
		report.Period.Start.Format("2006-01-02 15:04"),
		report.Period.End.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Total Time: %s (%.0fm)\n\n", utils.FormatRoundedUnit(report.TotalSeconds), report.TotalMinutes)

	if len(report.Apps) == 0 {
		b.WriteString("No focus samples recorded for this period.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%-30s %10s %10s %10s\n", "Application", "Time", "Samples", "Percent")
	b.WriteString(strings.Repeat("-", 63) + "\n")

	for _, app := range report.Apps {
		fmt.Fprintf(&b, "%-30s %10s %10d %9.1f%%\n",
			truncate(app.AppName, 30),
			utils.FormatRoundedUnit(app.TotalSeconds),
			app.SampleCount,
			app.Percentage)
	}

	return b.String()
}

// FormatReportJSON formats the report as JSON
func (r *Reporter) FormatReportJSON(report *models.Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal JSON")
	}
	return string(data), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
