package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agenda/internal/clock"
	"agenda/internal/domain"
	"agenda/internal/domain/entities"
	"agenda/internal/ports/input"
	"agenda/pkg/agenda"
)

// keyTranslator echoes the message key, so assertions can target keys
// instead of locale-specific strings.
type keyTranslator struct{}

func (keyTranslator) T(_, key string, _ map[string]any) string { return key }

func newReportService(repo *fakeEventRepo, now time.Time) *ReportService {
	return NewReportService(repo, keyTranslator{}, "pt", clock.NewFixed(now))
}

func seedEvent(t *testing.T, repo *fakeEventRepo, name, venue, date, start string, price *float64) {
	t.Helper()
	svc := NewEventService(repo, clock.NewSystem())
	_, err := svc.CreateEvent(context.Background(), input.CreateEventInput{
		Name: name, Venue: venue, Date: date, StartTime: start, Price: price,
	})
	require.NoError(t, err)
}

func TestReportService_MonthlyReport_Totals(t *testing.T) {
	repo := newFakeEventRepo()
	seedEvent(t, repo, "a", "Espaço Jardim", "2024-06-01", "18:00", ptr(100.0))
	seedEvent(t, repo, "b", "Salão Central", "2024-06-10", "19:00", nil)
	seedEvent(t, repo, "c", "Espaço Jardim", "2024-06-20", "20:00", ptr(50.5))
	seedEvent(t, repo, "other month", "Espaço Jardim", "2024-07-01", "18:00", ptr(999.0))

	svc := newReportService(repo, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	report, err := svc.MonthlyReport(context.Background(), "6", "2024")
	require.NoError(t, err)

	assert.Equal(t, 6, report.Month)
	assert.Equal(t, 2024, report.Year)
	assert.Equal(t, 3, report.TotalEvents)
	assert.InDelta(t, 150.5, report.TotalRevenue, 1e-9)
	require.Len(t, report.Events, 3)
	assert.Equal(t, "a", report.Events[0].Name)

	require.NotEmpty(t, report.TopVenues)
	assert.Equal(t, entities.VenueCount{Venue: "Espaço Jardim", Count: 2}, report.TopVenues[0])
}

func TestReportService_MonthlyReport_DefaultsToCurrentMonth(t *testing.T) {
	repo := newFakeEventRepo()
	seedEvent(t, repo, "now", "V", "2024-03-05", "18:00", nil)
	seedEvent(t, repo, "past", "V", "2024-02-05", "18:00", nil)

	svc := newReportService(repo, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	report, err := svc.MonthlyReport(context.Background(), "", "")
	require.NoError(t, err)

	assert.Equal(t, 3, report.Month)
	assert.Equal(t, 2024, report.Year)
	assert.Equal(t, 1, report.TotalEvents)
}

func TestReportService_MonthlyReport_InvalidInput(t *testing.T) {
	svc := newReportService(newFakeEventRepo(), time.Now())

	_, err := svc.MonthlyReport(context.Background(), "13", "2024")
	require.ErrorIs(t, err, domain.ErrInvalidMonth)

	_, err = svc.MonthlyReport(context.Background(), "6", "two-thousand")
	require.ErrorIs(t, err, domain.ErrInvalidYear)
}

func TestReportService_MonthlyReport_WeekdayDistribution(t *testing.T) {
	repo := newFakeEventRepo()
	// 2024-06-03 is a Monday, 2024-06-09 a Sunday.
	seedEvent(t, repo, "mon1", "V", "2024-06-03", "18:00", nil)
	seedEvent(t, repo, "mon2", "V", "2024-06-10", "18:00", nil)
	seedEvent(t, repo, "sun", "V", "2024-06-09", "18:00", nil)

	svc := newReportService(repo, time.Now())
	report, err := svc.MonthlyReport(context.Background(), "6", "2024")
	require.NoError(t, err)

	require.Len(t, report.EventsByWeekday, 7, "all seven days must be present")
	assert.Equal(t, 2, report.EventsByWeekday["weekday_monday"])
	assert.Equal(t, 1, report.EventsByWeekday["weekday_sunday"])

	sum := 0
	for _, n := range report.EventsByWeekday {
		assert.GreaterOrEqual(t, n, 0)
		sum += n
	}
	assert.Equal(t, report.TotalEvents, sum)
}

func TestReportService_TopVenues_RankingAndLimit(t *testing.T) {
	repo := newFakeEventRepo()
	// "Dupla" hosts twice; six single-occurrence venues follow in date
	// order so the limit and the tie-break are both exercised.
	seedEvent(t, repo, "e1", "Dupla", "2024-06-01", "18:00", nil)
	seedEvent(t, repo, "e2", "Dupla", "2024-06-02", "18:00", nil)
	for i, venue := range []string{"V1", "V2", "V3", "V4", "V5", "V6"} {
		seedEvent(t, repo, venue, venue, fmt.Sprintf("2024-06-%02d", 10+i), "18:00", nil)
	}

	svc := newReportService(repo, time.Now())
	report, err := svc.MonthlyReport(context.Background(), "6", "2024")
	require.NoError(t, err)

	require.Len(t, report.TopVenues, 5)
	assert.Equal(t, "Dupla", report.TopVenues[0].Venue)
	assert.Equal(t, 2, report.TopVenues[0].Count)
	// Ties keep first-encountered (date) order.
	assert.Equal(t, "V1", report.TopVenues[1].Venue)
	assert.Equal(t, "V2", report.TopVenues[2].Venue)
	assert.Equal(t, "V3", report.TopVenues[3].Venue)
	assert.Equal(t, "V4", report.TopVenues[4].Venue)
}

func TestReportService_AnnualReport(t *testing.T) {
	repo := newFakeEventRepo()
	seedEvent(t, repo, "jan1", "V", "2024-01-10", "18:00", ptr(100.0))
	seedEvent(t, repo, "jan2", "V", "2024-01-20", "18:00", ptr(200.0))
	seedEvent(t, repo, "jun", "V", "2024-06-05", "18:00", nil)
	seedEvent(t, repo, "dec", "V", "2024-12-31", "18:00", ptr(50.0))
	seedEvent(t, repo, "other year", "V", "2023-01-10", "18:00", ptr(999.0))

	svc := newReportService(repo, time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC))
	report, err := svc.AnnualReport(context.Background(), "2024")
	require.NoError(t, err)

	assert.Equal(t, 2024, report.Year)
	require.Len(t, report.Months, 12)

	assert.Equal(t, "month_abbr_1", report.Months[0].Label)
	assert.Equal(t, 2, report.Months[0].TotalEvents)
	assert.InDelta(t, 300.0, report.Months[0].Revenue, 1e-9)
	assert.Equal(t, 1, report.Months[5].TotalEvents)
	assert.Zero(t, report.Months[5].Revenue)
	assert.Zero(t, report.Months[1].TotalEvents, "empty months are zero-filled")

	var events int
	var revenue float64
	for _, m := range report.Months {
		events += m.TotalEvents
		revenue += m.Revenue
	}
	assert.Equal(t, report.TotalEvents, events)
	assert.InDelta(t, report.TotalRevenue, revenue, 1e-9)
	assert.Equal(t, 4, report.TotalEvents)
	assert.InDelta(t, 350.0, report.TotalRevenue, 1e-9)
}

func TestReportService_AnnualReport_DefaultsToCurrentYear(t *testing.T) {
	repo := newFakeEventRepo()
	seedEvent(t, repo, "e", "V", "2024-04-01", "18:00", nil)

	svc := newReportService(repo, time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC))
	report, err := svc.AnnualReport(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 2024, report.Year)
	assert.Equal(t, 1, report.TotalEvents)
}

func TestReportService_Dashboard(t *testing.T) {
	repo := newFakeEventRepo()
	seedEvent(t, repo, "early month", "V", "2024-06-05", "18:00", ptr(100.0))
	seedEvent(t, repo, "today", "V", "2024-06-15", "18:00", ptr(200.0))
	seedEvent(t, repo, "in window", "V", "2024-06-22", "18:00", nil)
	seedEvent(t, repo, "past window", "V", "2024-06-23", "18:00", ptr(80.0))
	seedEvent(t, repo, "next month", "V", "2024-07-01", "18:00", ptr(999.0))

	// 2024-06-15 noon UTC = 09:00 in São Paulo.
	svc := newReportService(repo, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	dashboard, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, dashboard.MonthEvents)
	assert.InDelta(t, 380.0, dashboard.MonthRevenue, 1e-9)
	assert.Equal(t, "month_6 2024", dashboard.MonthLabel)

	require.Len(t, dashboard.Upcoming, 2)
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	limit := today.AddDate(0, 0, 7)
	for _, e := range dashboard.Upcoming {
		assert.False(t, e.Date.Before(today))
		assert.False(t, e.Date.After(limit))
	}
}

func TestReportService_Dashboard_UpcomingLimitAndDecemberRollover(t *testing.T) {
	repo := newFakeEventRepo()
	for _, date := range []string{
		"2024-12-20", "2024-12-21", "2024-12-22", "2024-12-23",
		"2024-12-24", "2024-12-25", "2024-12-26",
	} {
		seedEvent(t, repo, date, "V", date, "18:00", ptr(10.0))
	}
	seedEvent(t, repo, "dec 31", "V", "2024-12-31", "18:00", ptr(10.0))
	seedEvent(t, repo, "jan 1", "V", "2025-01-01", "18:00", ptr(10.0))

	svc := newReportService(repo, time.Date(2024, 12, 20, 12, 0, 0, 0, time.UTC))
	dashboard, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	// December stays December: the month window must not bleed into 2025.
	assert.Equal(t, 8, dashboard.MonthEvents)
	assert.Equal(t, "month_12 2024", dashboard.MonthLabel)
	assert.Len(t, dashboard.Upcoming, 5, "upcoming is capped at five")
	assert.Equal(t, "2024-12-20", agenda.FormatDate(dashboard.Upcoming[0].Date))
}
