package service

import (
	"context"
	"strings"
	"time"

	"revenue/internal/model"
	"revenue/internal/registry"
	"revenue/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

type CreateBusinessTaxRequest struct {
	BusinessType   string `json:"business_type" binding:"required"`
	TaxBase        string `json:"tax_base" binding:"omitempty,oneof=gross_sales gross_receipts"`
	FirstYearBase  string `json:"first_year_base" binding:"omitempty,oneof=capital_investment gross_sales"`
	MinRange       string `json:"min_range" binding:"required"` // Decimal string
	MaxRange       string `json:"max_range"`                    // Empty = top bracket
	TaxRate        string `json:"tax_rate" binding:"required"`
	EffectiveDate  string `json:"effective_date" binding:"required"` // YYYY-MM-DD
	ExpirationDate string `json:"expiration_date"`                   // Empty = open-ended
	Remarks        string `json:"remarks"`
}

// PatchBusinessTaxRequest is the bracket kind's patch allow-list. The natural
// key (business_type) and effective_date are deliberately absent so a patch
// can never change interval identity.
type PatchBusinessTaxRequest struct {
	ExpirationDate *string `json:"expiration_date"`
	MinRange       *string `json:"min_range"`
	MaxRange       *string `json:"max_range"`
	TaxRate        *string `json:"tax_rate"`
}

type BusinessTaxResponse struct {
	ID             string  `json:"id"`
	BusinessType   string  `json:"business_type"`
	TaxBase        string  `json:"tax_base"`
	FirstYearBase  string  `json:"first_year_base"`
	MinRange       string  `json:"min_range"`
	MaxRange       *string `json:"max_range"`
	TaxRate        string  `json:"tax_rate"`
	EffectiveDate  string  `json:"effective_date"`
	ExpirationDate *string `json:"expiration_date"`
	Status         string  `json:"status"`
	Remarks        string  `json:"remarks"`
	CreatedAt      string  `json:"created_at"`
}

type CreateRegulatoryFeeRequest struct {
	FeeName        string `json:"fee_name" binding:"required"`
	BusinessType   string `json:"business_type"` // Empty = applies to all types
	Amount         string `json:"amount" binding:"required"`
	EffectiveDate  string `json:"effective_date" binding:"required"`
	ExpirationDate string `json:"expiration_date"`
	Remarks        string `json:"remarks"`
}

// PatchRegulatoryFeeRequest allows business_type (unlike the bracket kind):
// fees keyed by name alone can be narrowed to a type without re-creating.
type PatchRegulatoryFeeRequest struct {
	ExpirationDate *string `json:"expiration_date"`
	Amount         *string `json:"amount"`
	BusinessType   *string `json:"business_type"`
}

type RegulatoryFeeResponse struct {
	ID             string  `json:"id"`
	FeeName        string  `json:"fee_name"`
	BusinessType   *string `json:"business_type"`
	Amount         string  `json:"amount"`
	EffectiveDate  string  `json:"effective_date"`
	ExpirationDate *string `json:"expiration_date"`
	Status         string  `json:"status"`
	Remarks        string  `json:"remarks"`
	CreatedAt      string  `json:"created_at"`
}

// --- Interface ---

type BusinessConfigService interface {
	ListBusinessTaxConfigs(ctx context.Context, currentDate string) ([]BusinessTaxResponse, error)
	CreateBusinessTaxConfig(ctx context.Context, req CreateBusinessTaxRequest) (BusinessTaxResponse, error)
	UpdateBusinessTaxConfig(ctx context.Context, id string, req CreateBusinessTaxRequest) (BusinessTaxResponse, error)
	PatchBusinessTaxConfig(ctx context.Context, id string, req PatchBusinessTaxRequest) (BusinessTaxResponse, error)
	ExpireBusinessTaxConfig(ctx context.Context, id string) (BusinessTaxResponse, error)
	DeleteBusinessTaxConfig(ctx context.Context, id string) error

	ListRegulatoryFees(ctx context.Context, currentDate string) ([]RegulatoryFeeResponse, error)
	CreateRegulatoryFee(ctx context.Context, req CreateRegulatoryFeeRequest) (RegulatoryFeeResponse, error)
	UpdateRegulatoryFee(ctx context.Context, id string, req CreateRegulatoryFeeRequest) (RegulatoryFeeResponse, error)
	PatchRegulatoryFee(ctx context.Context, id string, req PatchRegulatoryFeeRequest) (RegulatoryFeeResponse, error)
	ExpireRegulatoryFee(ctx context.Context, id string) (RegulatoryFeeResponse, error)
	DeleteRegulatoryFee(ctx context.Context, id string) error
}

type businessConfigService struct {
	taxEngine *registry.Engine[model.BusinessTaxConfig]
	feeEngine *registry.Engine[model.RegulatoryFeeConfig]
	audit     repository.AuditRepository
}

// NewBusinessConfigService wires the business-tax and regulatory-fee registry
// engines over the given stores. Neither kind enforces overlap strictly; the
// engine logs overlapping intervals instead.
func NewBusinessConfigService(
	taxStore registry.Store[model.BusinessTaxConfig],
	feeStore registry.Store[model.RegulatoryFeeConfig],
	audit repository.AuditRepository,
) BusinessConfigService {
	return &businessConfigService{
		taxEngine: registry.NewEngine(businessTaxDescriptor(), taxStore),
		feeEngine: registry.NewEngine(regulatoryFeeDescriptor(), feeStore),
		audit:     audit,
	}
}

func businessTaxDescriptor() registry.Descriptor[model.BusinessTaxConfig] {
	return registry.Descriptor[model.BusinessTaxConfig]{
		Kind:       "business-tax",
		ID:         func(c *model.BusinessTaxConfig) uuid.UUID { return c.ID },
		NaturalKey: func(c *model.BusinessTaxConfig) string { return c.BusinessType },
		Interval: func(c *model.BusinessTaxConfig) registry.Interval {
			return registry.Interval{Start: c.EffectiveDate, End: c.ExpirationDate}
		},
		SetExpiration: func(c *model.BusinessTaxConfig, d *time.Time) { c.ExpirationDate = d },
		CopyCreation:  func(dst, existing *model.BusinessTaxConfig) { dst.CreatedAt = existing.CreatedAt },
		Validate: func(c *model.BusinessTaxConfig) error {
			if strings.TrimSpace(c.BusinessType) == "" {
				return registry.NewValidationError("business_type", "required")
			}
			if c.MaxRange != nil && c.MaxRange.LessThan(c.MinRange) {
				return registry.NewValidationError("max_range", "must not be less than min_range")
			}
			return nil
		},
		Less: func(a, b *model.BusinessTaxConfig) bool {
			if a.BusinessType != b.BusinessType {
				return a.BusinessType < b.BusinessType
			}
			return a.MinRange.LessThan(b.MinRange)
		},
	}
}

func regulatoryFeeDescriptor() registry.Descriptor[model.RegulatoryFeeConfig] {
	return registry.Descriptor[model.RegulatoryFeeConfig]{
		Kind: "regulatory-fee",
		ID:   func(c *model.RegulatoryFeeConfig) uuid.UUID { return c.ID },
		NaturalKey: func(c *model.RegulatoryFeeConfig) string {
			bt := ""
			if c.BusinessType != nil {
				bt = *c.BusinessType
			}
			return c.FeeName + "|" + bt
		},
		Interval: func(c *model.RegulatoryFeeConfig) registry.Interval {
			return registry.Interval{Start: c.EffectiveDate, End: c.ExpirationDate}
		},
		SetExpiration: func(c *model.RegulatoryFeeConfig, d *time.Time) { c.ExpirationDate = d },
		CopyCreation:  func(dst, existing *model.RegulatoryFeeConfig) { dst.CreatedAt = existing.CreatedAt },
		Validate: func(c *model.RegulatoryFeeConfig) error {
			if strings.TrimSpace(c.FeeName) == "" {
				return registry.NewValidationError("fee_name", "required")
			}
			return nil
		},
		Less: func(a, b *model.RegulatoryFeeConfig) bool {
			if a.FeeName != b.FeeName {
				return a.FeeName < b.FeeName
			}
			abt, bbt := "", ""
			if a.BusinessType != nil {
				abt = *a.BusinessType
			}
			if b.BusinessType != nil {
				bbt = *b.BusinessType
			}
			return abt < bbt
		},
	}
}

// --- Business tax brackets ---

func (s *businessConfigService) ListBusinessTaxConfigs(ctx context.Context, currentDate string) ([]BusinessTaxResponse, error) {
	asOf, err := parseAsOf(currentDate)
	if err != nil {
		return nil, err
	}
	configs, err := s.taxEngine.List(ctx, asOf)
	if err != nil {
		return nil, err
	}
	asOf = asOfOrToday(asOf)
	res := make([]BusinessTaxResponse, 0, len(configs))
	for i := range configs {
		res = append(res, toBusinessTaxResponse(&configs[i], asOf))
	}
	return res, nil
}

func (s *businessConfigService) CreateBusinessTaxConfig(ctx context.Context, req CreateBusinessTaxRequest) (BusinessTaxResponse, error) {
	config, err := businessTaxFromRequest(req)
	if err != nil {
		return BusinessTaxResponse{}, err
	}
	if err := s.taxEngine.Create(ctx, config); err != nil {
		return BusinessTaxResponse{}, err
	}
	writeAudit(ctx, s.audit, model.AuditCreate, model.EntityBusinessTaxConfig, config.ID.String(), config.BusinessType, req)
	return toBusinessTaxResponse(config, time.Now()), nil
}

func (s *businessConfigService) UpdateBusinessTaxConfig(ctx context.Context, id string, req CreateBusinessTaxRequest) (BusinessTaxResponse, error) {
	configID, err := parseID(id)
	if err != nil {
		return BusinessTaxResponse{}, err
	}
	config, err := businessTaxFromRequest(req)
	if err != nil {
		return BusinessTaxResponse{}, err
	}
	config.ID = configID
	if err := s.taxEngine.Replace(ctx, configID, config); err != nil {
		return BusinessTaxResponse{}, err
	}
	writeAudit(ctx, s.audit, model.AuditUpdate, model.EntityBusinessTaxConfig, id, config.BusinessType, req)
	return toBusinessTaxResponse(config, time.Now()), nil
}

func (s *businessConfigService) PatchBusinessTaxConfig(ctx context.Context, id string, req PatchBusinessTaxRequest) (BusinessTaxResponse, error) {
	configID, err := parseID(id)
	if err != nil {
		return BusinessTaxResponse{}, err
	}
	patch := businessTaxPatch{}
	if req.ExpirationDate != nil {
		if patch.expirationDate, err = parseOptionalDate("expiration_date", *req.ExpirationDate); err != nil {
			return BusinessTaxResponse{}, err
		}
	}
	if req.MinRange != nil {
		if patch.minRange, err = parseOptionalDecimal("min_range", *req.MinRange); err != nil {
			return BusinessTaxResponse{}, err
		}
	}
	if req.MaxRange != nil {
		if patch.maxRange, err = parseOptionalDecimal("max_range", *req.MaxRange); err != nil {
			return BusinessTaxResponse{}, err
		}
	}
	if req.TaxRate != nil {
		if patch.taxRate, err = parseOptionalDecimal("tax_rate", *req.TaxRate); err != nil {
			return BusinessTaxResponse{}, err
		}
	}
	config, err := s.taxEngine.Patch(ctx, configID, patch)
	if err != nil {
		return BusinessTaxResponse{}, err
	}
	writeAudit(ctx, s.audit, model.AuditPatch, model.EntityBusinessTaxConfig, id, config.BusinessType, req)
	return toBusinessTaxResponse(config, time.Now()), nil
}

func (s *businessConfigService) ExpireBusinessTaxConfig(ctx context.Context, id string) (BusinessTaxResponse, error) {
	configID, err := parseID(id)
	if err != nil {
		return BusinessTaxResponse{}, err
	}
	config, err := s.taxEngine.Expire(ctx, configID)
	if err != nil {
		return BusinessTaxResponse{}, err
	}
	writeAudit(ctx, s.audit, model.AuditExpire, model.EntityBusinessTaxConfig, id, config.BusinessType, nil)
	return toBusinessTaxResponse(config, time.Now()), nil
}

func (s *businessConfigService) DeleteBusinessTaxConfig(ctx context.Context, id string) error {
	configID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.taxEngine.Delete(ctx, configID); err != nil {
		return err
	}
	writeAudit(ctx, s.audit, model.AuditDelete, model.EntityBusinessTaxConfig, id, "", map[string]string{"deleted_id": id})
	return nil
}

// --- Regulatory fees ---

func (s *businessConfigService) ListRegulatoryFees(ctx context.Context, currentDate string) ([]RegulatoryFeeResponse, error) {
	asOf, err := parseAsOf(currentDate)
	if err != nil {
		return nil, err
	}
	fees, err := s.feeEngine.List(ctx, asOf)
	if err != nil {
		return nil, err
	}
	asOf = asOfOrToday(asOf)
	res := make([]RegulatoryFeeResponse, 0, len(fees))
	for i := range fees {
		res = append(res, toRegulatoryFeeResponse(&fees[i], asOf))
	}
	return res, nil
}

func (s *businessConfigService) CreateRegulatoryFee(ctx context.Context, req CreateRegulatoryFeeRequest) (RegulatoryFeeResponse, error) {
	fee, err := regulatoryFeeFromRequest(req)
	if err != nil {
		return RegulatoryFeeResponse{}, err
	}
	if err := s.feeEngine.Create(ctx, fee); err != nil {
		return RegulatoryFeeResponse{}, err
	}
	writeAudit(ctx, s.audit, model.AuditCreate, model.EntityRegulatoryFeeConfig, fee.ID.String(), fee.FeeName, req)
	return toRegulatoryFeeResponse(fee, time.Now()), nil
}

func (s *businessConfigService) UpdateRegulatoryFee(ctx context.Context, id string, req CreateRegulatoryFeeRequest) (RegulatoryFeeResponse, error) {
	feeID, err := parseID(id)
	if err != nil {
		return RegulatoryFeeResponse{}, err
	}
	fee, err := regulatoryFeeFromRequest(req)
	if err != nil {
		return RegulatoryFeeResponse{}, err
	}
	fee.ID = feeID
	if err := s.feeEngine.Replace(ctx, feeID, fee); err != nil {
		return RegulatoryFeeResponse{}, err
	}
	writeAudit(ctx, s.audit, model.AuditUpdate, model.EntityRegulatoryFeeConfig, id, fee.FeeName, req)
	return toRegulatoryFeeResponse(fee, time.Now()), nil
}

func (s *businessConfigService) PatchRegulatoryFee(ctx context.Context, id string, req PatchRegulatoryFeeRequest) (RegulatoryFeeResponse, error) {
	feeID, err := parseID(id)
	if err != nil {
		return RegulatoryFeeResponse{}, err
	}
	patch := regulatoryFeePatch{businessType: req.BusinessType}
	if req.ExpirationDate != nil {
		if patch.expirationDate, err = parseOptionalDate("expiration_date", *req.ExpirationDate); err != nil {
			return RegulatoryFeeResponse{}, err
		}
	}
	if req.Amount != nil {
		if patch.amount, err = parseOptionalDecimal("amount", *req.Amount); err != nil {
			return RegulatoryFeeResponse{}, err
		}
	}
	fee, err := s.feeEngine.Patch(ctx, feeID, patch)
	if err != nil {
		return RegulatoryFeeResponse{}, err
	}
	writeAudit(ctx, s.audit, model.AuditPatch, model.EntityRegulatoryFeeConfig, id, fee.FeeName, req)
	return toRegulatoryFeeResponse(fee, time.Now()), nil
}

func (s *businessConfigService) ExpireRegulatoryFee(ctx context.Context, id string) (RegulatoryFeeResponse, error) {
	feeID, err := parseID(id)
	if err != nil {
		return RegulatoryFeeResponse{}, err
	}
	fee, err := s.feeEngine.Expire(ctx, feeID)
	if err != nil {
		return RegulatoryFeeResponse{}, err
	}
	writeAudit(ctx, s.audit, model.AuditExpire, model.EntityRegulatoryFeeConfig, id, fee.FeeName, nil)
	return toRegulatoryFeeResponse(fee, time.Now()), nil
}

func (s *businessConfigService) DeleteRegulatoryFee(ctx context.Context, id string) error {
	feeID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.feeEngine.Delete(ctx, feeID); err != nil {
		return err
	}
	writeAudit(ctx, s.audit, model.AuditDelete, model.EntityRegulatoryFeeConfig, id, "", map[string]string{"deleted_id": id})
	return nil
}

// --- Patches ---

type businessTaxPatch struct {
	expirationDate *time.Time
	minRange       *decimal.Decimal
	maxRange       *decimal.Decimal
	taxRate        *decimal.Decimal
}

func (p businessTaxPatch) Apply(rec *model.BusinessTaxConfig) bool {
	applied := false
	if p.expirationDate != nil {
		rec.ExpirationDate = p.expirationDate
		applied = true
	}
	if p.minRange != nil {
		rec.MinRange = *p.minRange
		applied = true
	}
	if p.maxRange != nil {
		rec.MaxRange = p.maxRange
		applied = true
	}
	if p.taxRate != nil {
		rec.TaxRate = *p.taxRate
		applied = true
	}
	return applied
}

type regulatoryFeePatch struct {
	expirationDate *time.Time
	amount         *decimal.Decimal
	businessType   *string
}

func (p regulatoryFeePatch) Apply(rec *model.RegulatoryFeeConfig) bool {
	applied := false
	if p.expirationDate != nil {
		rec.ExpirationDate = p.expirationDate
		applied = true
	}
	if p.amount != nil {
		rec.Amount = *p.amount
		applied = true
	}
	if p.businessType != nil {
		rec.BusinessType = p.businessType
		applied = true
	}
	return applied
}

// --- Helpers ---

func businessTaxFromRequest(req CreateBusinessTaxRequest) (*model.BusinessTaxConfig, error) {
	minRange, err := parseDecimal("min_range", req.MinRange)
	if err != nil {
		return nil, err
	}
	maxRange, err := parseOptionalDecimal("max_range", req.MaxRange)
	if err != nil {
		return nil, err
	}
	taxRate, err := parseDecimal("tax_rate", req.TaxRate)
	if err != nil {
		return nil, err
	}
	effective, err := parseDate("effective_date", req.EffectiveDate)
	if err != nil {
		return nil, err
	}
	expiration, err := parseOptionalDate("expiration_date", req.ExpirationDate)
	if err != nil {
		return nil, err
	}

	taxBase := req.TaxBase
	if taxBase == "" {
		taxBase = model.TaxBaseGrossSales
	}
	firstYearBase := req.FirstYearBase
	if firstYearBase == "" {
		firstYearBase = model.FirstYearBaseCapitalInvestment
	}

	return &model.BusinessTaxConfig{
		BusinessType:   req.BusinessType,
		TaxBase:        taxBase,
		FirstYearBase:  firstYearBase,
		MinRange:       minRange,
		MaxRange:       maxRange,
		TaxRate:        taxRate,
		EffectiveDate:  effective,
		ExpirationDate: expiration,
		Remarks:        req.Remarks,
	}, nil
}

func regulatoryFeeFromRequest(req CreateRegulatoryFeeRequest) (*model.RegulatoryFeeConfig, error) {
	amount, err := parseDecimal("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	effective, err := parseDate("effective_date", req.EffectiveDate)
	if err != nil {
		return nil, err
	}
	expiration, err := parseOptionalDate("expiration_date", req.ExpirationDate)
	if err != nil {
		return nil, err
	}

	var businessType *string
	if req.BusinessType != "" {
		businessType = &req.BusinessType
	}

	return &model.RegulatoryFeeConfig{
		FeeName:        req.FeeName,
		BusinessType:   businessType,
		Amount:         amount,
		EffectiveDate:  effective,
		ExpirationDate: expiration,
		Remarks:        req.Remarks,
	}, nil
}

func toBusinessTaxResponse(c *model.BusinessTaxConfig, asOf time.Time) BusinessTaxResponse {
	return BusinessTaxResponse{
		ID:             c.ID.String(),
		BusinessType:   c.BusinessType,
		TaxBase:        c.TaxBase,
		FirstYearBase:  c.FirstYearBase,
		MinRange:       c.MinRange.String(),
		MaxRange:       fmtDecimalPtr(c.MaxRange),
		TaxRate:        c.TaxRate.String(),
		EffectiveDate:  fmtDate(c.EffectiveDate),
		ExpirationDate: fmtDatePtr(c.ExpirationDate),
		Status:         registry.StatusOn(registry.Interval{Start: c.EffectiveDate, End: c.ExpirationDate}, asOf),
		Remarks:        c.Remarks,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}

func toRegulatoryFeeResponse(c *model.RegulatoryFeeConfig, asOf time.Time) RegulatoryFeeResponse {
	return RegulatoryFeeResponse{
		ID:             c.ID.String(),
		FeeName:        c.FeeName,
		BusinessType:   c.BusinessType,
		Amount:         c.Amount.String(),
		EffectiveDate:  fmtDate(c.EffectiveDate),
		ExpirationDate: fmtDatePtr(c.ExpirationDate),
		Status:         registry.StatusOn(registry.Interval{Start: c.EffectiveDate, End: c.ExpirationDate}, asOf),
		Remarks:        c.Remarks,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}
