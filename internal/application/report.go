package application

import (
	"context"
	"sort"
	"strconv"
	"time"

	"agenda/internal/clock"
	"agenda/internal/domain"
	"agenda/internal/domain/entities"
	"agenda/internal/ports/output"
	"agenda/pkg/agenda"
	"agenda/pkg/tz"
)

const (
	topVenuesLimit     = 5
	upcomingLimit      = 5
	upcomingWindowDays = 7
)

// weekdayKeys in Monday-first order, the order reports are presented in.
var weekdayKeys = []string{
	"weekday_monday",
	"weekday_tuesday",
	"weekday_wednesday",
	"weekday_thursday",
	"weekday_friday",
	"weekday_saturday",
	"weekday_sunday",
}

// ReportService reduces filtered event sets to period aggregates. Labels
// (weekday names, month names) are localized through the translator.
type ReportService struct {
	eventRepo output.EventRepository
	tr        output.T
	locale    string
	clock     clock.Clock
}

func NewReportService(eventRepo output.EventRepository, tr output.T, locale string, clk clock.Clock) *ReportService {
	return &ReportService{
		eventRepo: eventRepo,
		tr:        tr,
		locale:    locale,
		clock:     clk,
	}
}

// MonthlyReport aggregates the given month. Empty month/year default to the
// current one.
func (s *ReportService) MonthlyReport(ctx context.Context, monthStr, yearStr string) (*entities.MonthlyReport, error) {
	now := s.clock.Now().In(tz.SaoPaulo)
	month := int(now.Month())
	year := now.Year()

	if monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil || m < 1 || m > 12 {
			return nil, domain.ErrInvalidMonth
		}
		month = m
	}
	if yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, domain.ErrInvalidYear
		}
		year = y
	}

	events, err := s.eventRepo.List(ctx, output.EventFilter{Month: month, Year: year})
	if err != nil {
		return nil, err
	}

	report := &entities.MonthlyReport{
		Month:           month,
		Year:            year,
		TotalEvents:     len(events),
		TopVenues:       s.topVenues(events),
		EventsByWeekday: s.eventsByWeekday(events),
		Events:          events,
	}
	for i := range events {
		report.TotalRevenue += events[i].PriceOrZero()
	}
	return report, nil
}

// topVenues ranks venues by occurrence count, descending, ties keeping the
// order venues were first encountered in.
func (s *ReportService) topVenues(events []entities.Event) []entities.VenueCount {
	counts := make(map[string]int)
	var venues []entities.VenueCount
	for i := range events {
		venue := events[i].Venue
		if _, seen := counts[venue]; !seen {
			venues = append(venues, entities.VenueCount{Venue: venue})
		}
		counts[venue]++
	}
	for i := range venues {
		venues[i].Count = counts[venues[i].Venue]
	}
	sort.SliceStable(venues, func(i, j int) bool {
		return venues[i].Count > venues[j].Count
	})
	if len(venues) > topVenuesLimit {
		venues = venues[:topVenuesLimit]
	}
	return venues
}

// eventsByWeekday always yields all seven localized day names, zero-filled.
func (s *ReportService) eventsByWeekday(events []entities.Event) map[string]int {
	names := make([]string, len(weekdayKeys))
	byDay := make(map[string]int, len(weekdayKeys))
	for i, key := range weekdayKeys {
		names[i] = s.tr.T(s.locale, key, nil)
		byDay[names[i]] = 0
	}
	for i := range events {
		// time.Weekday is Sunday-first; shift to Monday-first.
		idx := (int(events[i].Date.Weekday()) + 6) % 7
		byDay[names[idx]]++
	}
	return byDay
}

// AnnualReport aggregates the given year month by month. Empty year defaults
// to the current one.
func (s *ReportService) AnnualReport(ctx context.Context, yearStr string) (*entities.AnnualReport, error) {
	year := s.clock.Now().In(tz.SaoPaulo).Year()
	if yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, domain.ErrInvalidYear
		}
		year = y
	}

	totals, err := s.eventRepo.MonthlyTotals(ctx, year)
	if err != nil {
		return nil, err
	}
	byMonth := make(map[int]output.MonthTotal, len(totals))
	for _, t := range totals {
		byMonth[t.Month] = t
	}

	report := &entities.AnnualReport{
		Year:   year,
		Months: make([]entities.MonthSummary, 0, 12),
	}
	for m := 1; m <= 12; m++ {
		t := byMonth[m]
		report.Months = append(report.Months, entities.MonthSummary{
			Label:       s.tr.T(s.locale, "month_abbr_"+strconv.Itoa(m), nil),
			Month:       m,
			TotalEvents: t.Total,
			Revenue:     t.Revenue,
		})
		report.TotalEvents += t.Total
		report.TotalRevenue += t.Revenue
	}
	return report, nil
}

// Dashboard summarizes the current month and the upcoming week.
func (s *ReportService) Dashboard(ctx context.Context) (*entities.Dashboard, error) {
	now := s.clock.Now().In(tz.SaoPaulo)
	today := agenda.DateOnly(now)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	// Last calendar day of the month; AddDate handles December rolling
	// into January of the next year.
	monthEnd := monthStart.AddDate(0, 1, -1)

	monthEvents, err := s.eventRepo.List(ctx, output.EventFilter{
		FromDate: &monthStart,
		ToDate:   &monthEnd,
	})
	if err != nil {
		return nil, err
	}

	weekEnd := today.AddDate(0, 0, upcomingWindowDays)
	upcoming, err := s.eventRepo.List(ctx, output.EventFilter{
		FromDate: &today,
		ToDate:   &weekEnd,
		Limit:    upcomingLimit,
	})
	if err != nil {
		return nil, err
	}

	dashboard := &entities.Dashboard{
		MonthEvents: len(monthEvents),
		Upcoming:    upcoming,
		MonthLabel:  s.tr.T(s.locale, "month_"+strconv.Itoa(int(today.Month())), nil) + " " + strconv.Itoa(today.Year()),
	}
	for i := range monthEvents {
		dashboard.MonthRevenue += monthEvents[i].PriceOrZero()
	}
	return dashboard, nil
}
