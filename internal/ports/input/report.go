package input

import (
	"context"

	"agenda/internal/domain/entities"
)

// ReportUseCase computes period aggregates. Month and year arrive as raw
// query strings; empty means "current".
type ReportUseCase interface {
	MonthlyReport(ctx context.Context, month, year string) (*entities.MonthlyReport, error)
	AnnualReport(ctx context.Context, year string) (*entities.AnnualReport, error)
	Dashboard(ctx context.Context) (*entities.Dashboard, error)
}
