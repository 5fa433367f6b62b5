package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type monthlyReportDTO struct {
	Month           int            `json:"mes"`
	Year            int            `json:"ano"`
	TotalEvents     int            `json:"total_eventos"`
	TotalRevenue    float64        `json:"total_faturamento"`
	TopVenues       []venuePair    `json:"locais_frequentes"`
	EventsByWeekday map[string]int `json:"eventos_por_dia_semana"`
	Events          []eventDTO     `json:"eventos"`
}

type monthSummaryDTO struct {
	Label       string  `json:"mes"`
	Month       int     `json:"numero_mes"`
	TotalEvents int     `json:"total_eventos"`
	Revenue     float64 `json:"faturamento"`
}

type annualReportDTO struct {
	Year         int               `json:"ano"`
	TotalEvents  int               `json:"total_eventos_ano"`
	TotalRevenue float64           `json:"total_faturamento_ano"`
	Months       []monthSummaryDTO `json:"dados_mensais"`
}

type dashboardDTO struct {
	MonthEvents  int        `json:"total_eventos_mes"`
	MonthRevenue float64    `json:"faturamento_mes"`
	Upcoming     []eventDTO `json:"proximos_eventos"`
	MonthLabel   string     `json:"mes_atual"`
}

func (h *Handler) MonthlyReport(c *gin.Context) {
	report, err := h.reports.MonthlyReport(c.Request.Context(), c.Query("mes"), c.Query("ano"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"relatorio": monthlyReportDTO{
			Month:           report.Month,
			Year:            report.Year,
			TotalEvents:     report.TotalEvents,
			TotalRevenue:    report.TotalRevenue,
			TopVenues:       toVenuePairs(report.TopVenues),
			EventsByWeekday: report.EventsByWeekday,
			Events:          toEventDTOs(report.Events),
		},
	})
}

func (h *Handler) AnnualReport(c *gin.Context) {
	report, err := h.reports.AnnualReport(c.Request.Context(), c.Query("ano"))
	if err != nil {
		h.fail(c, err)
		return
	}
	months := make([]monthSummaryDTO, len(report.Months))
	for i, m := range report.Months {
		months[i] = monthSummaryDTO{
			Label:       m.Label,
			Month:       m.Month,
			TotalEvents: m.TotalEvents,
			Revenue:     m.Revenue,
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"relatorio": annualReportDTO{
			Year:         report.Year,
			TotalEvents:  report.TotalEvents,
			TotalRevenue: report.TotalRevenue,
			Months:       months,
		},
	})
}

func (h *Handler) Dashboard(c *gin.Context) {
	dashboard, err := h.reports.Dashboard(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"dashboard": dashboardDTO{
			MonthEvents:  dashboard.MonthEvents,
			MonthRevenue: dashboard.MonthRevenue,
			Upcoming:     toEventDTOs(dashboard.Upcoming),
			MonthLabel:   dashboard.MonthLabel,
		},
	})
}
