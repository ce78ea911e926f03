package service

import (
	"context"
	"encoding/json"
	"time"

	"revenue/internal/model"
	"revenue/internal/registry"
	"revenue/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

func parseDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, registry.NewValidationError(field, "required")
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, registry.NewValidationError(field, "expected YYYY-MM-DD")
	}
	return d, nil
}

// parseOptionalDate treats "" as absent, per the open-ended expiration rule.
func parseOptionalDate(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := parseDate(field, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parseAsOf parses the current_date query parameter; empty means today
// (signalled to the engine as the zero time).
func parseAsOf(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return parseDate("current_date", s)
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, registry.NewValidationError(field, "required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, registry.NewValidationError(field, "invalid decimal value")
	}
	return d, nil
}

func parseOptionalDecimal(field, s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := parseDecimal(field, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parseStatus accepts only the two known status values. The stored column is
// recomputed from the dates on write either way.
func parseStatus(s *string) (*string, error) {
	if s == nil {
		return nil, nil
	}
	if *s != registry.StatusActive && *s != registry.StatusExpired {
		return nil, registry.NewValidationError("status", "must be active or expired")
	}
	return s, nil
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, registry.NewValidationError("id", "invalid identifier")
	}
	return id, nil
}

func fmtDate(t time.Time) string {
	return t.Format(dateLayout)
}

func fmtDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func fmtDecimalPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

// asOfOrToday resolves the date status derivation uses when the caller gave no
// current_date.
func asOfOrToday(asOf time.Time) time.Time {
	if asOf.IsZero() {
		return time.Now()
	}
	return asOf
}

func auditAction(op, entity string) string {
	return op + "_" + entity
}

// writeAudit records a configuration change. Best-effort: a failed audit write
// never fails the operation itself.
func writeAudit(ctx context.Context, audit repository.AuditRepository, op, entity, entityID, entityName string, details interface{}) {
	if audit == nil {
		return
	}
	detailsJSON, _ := json.Marshal(details)
	_ = audit.Log(ctx, &model.AuditLog{
		Action:     auditAction(op, entity),
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(detailsJSON),
	})
}
