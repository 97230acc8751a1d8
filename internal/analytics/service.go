package analytics

import (
	"context"
	"fmt"
	"time"

	pkgerrors "github.com/NonattoDev/ecommercesoftline-backend/pkg/errors"
)

// dateLayout is the wire format for the dashboard range parameters.
const dateLayout = "2006-01-02"

// Reader is the query surface the service aggregates over.
type Reader interface {
	SalesBetween(ctx context.Context, start, end time.Time) ([]SalespersonSales, error)
}

// Service validates dashboard queries before they reach the database.
type Service interface {
	SalesBySalesperson(ctx context.Context, start, end string) ([]SalespersonSales, error)
}

type service struct {
	reader Reader
}

// NewService wires the analytics service.
func NewService(reader Reader) (Service, error) {
	if reader == nil {
		return nil, fmt.Errorf("analytics reader required")
	}
	return &service{reader: reader}, nil
}

// SalesBySalesperson counts finalized sales per salesperson between two
// calendar days, both inclusive. Malformed or inverted ranges are rejected
// before any query runs.
func (s *service) SalesBySalesperson(ctx context.Context, start, end string) ([]SalespersonSales, error) {
	startDay, endDay, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}

	rows, err := s.reader.SalesBetween(ctx, startDay, endDay)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "querying sales by salesperson")
	}
	return rows, nil
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	if start == "" || end == "" {
		return time.Time{}, time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "start and end dates are required")
	}
	startDay, err := time.ParseInLocation(dateLayout, start, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "start date must be formatted as YYYY-MM-DD")
	}
	endDay, err := time.ParseInLocation(dateLayout, end, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "end date must be formatted as YYYY-MM-DD")
	}
	if startDay.After(endDay) {
		return time.Time{}, time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "start date must not be after end date")
	}
	return startDay, endDay, nil
}
