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

type CreateLandConfigRequest struct {
	Classification  string `json:"classification" binding:"required"`
	Vicinity        string `json:"vicinity"`
	MarketValue     string `json:"market_value" binding:"required"`
	AssessmentLevel string `json:"assessment_level" binding:"required"`
	Description     string `json:"description"`
	EffectiveDate   string `json:"effective_date" binding:"required"`
	ExpirationDate  string `json:"expiration_date"`
}

type PatchLandConfigRequest struct {
	Status          *string `json:"status"`
	ExpirationDate  *string `json:"expiration_date"`
	MarketValue     *string `json:"market_value"`
	AssessmentLevel *string `json:"assessment_level"`
}

type LandConfigResponse struct {
	ID              string  `json:"id"`
	Classification  string  `json:"classification"`
	Vicinity        string  `json:"vicinity"`
	MarketValue     string  `json:"market_value"`
	AssessmentLevel string  `json:"assessment_level"`
	Description     string  `json:"description"`
	EffectiveDate   string  `json:"effective_date"`
	ExpirationDate  *string `json:"expiration_date"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
}

type CreatePropertyConfigRequest struct {
	Classification   string `json:"classification" binding:"required"`
	MaterialType     string `json:"material_type" binding:"required"`
	UnitCost         string `json:"unit_cost" binding:"required"`
	DepreciationRate string `json:"depreciation_rate" binding:"required"`
	MinValue         string `json:"min_value" binding:"required"`
	MaxValue         string `json:"max_value" binding:"required"`
	LevelPercent     string `json:"level_percent" binding:"required"`
	EffectiveDate    string `json:"effective_date" binding:"required"`
	ExpirationDate   string `json:"expiration_date"`
}

type PatchPropertyConfigRequest struct {
	Status           *string `json:"status"`
	ExpirationDate   *string `json:"expiration_date"`
	UnitCost         *string `json:"unit_cost"`
	DepreciationRate *string `json:"depreciation_rate"`
	MinValue         *string `json:"min_value"`
	MaxValue         *string `json:"max_value"`
	LevelPercent     *string `json:"level_percent"`
}

type PropertyConfigResponse struct {
	ID               string  `json:"id"`
	Classification   string  `json:"classification"`
	MaterialType     string  `json:"material_type"`
	UnitCost         string  `json:"unit_cost"`
	DepreciationRate string  `json:"depreciation_rate"`
	MinValue         string  `json:"min_value"`
	MaxValue         string  `json:"max_value"`
	LevelPercent     string  `json:"level_percent"`
	EffectiveDate    string  `json:"effective_date"`
	ExpirationDate   *string `json:"expiration_date"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"created_at"`
}

type CreateRPTTaxRequest struct {
	TaxName        string `json:"tax_name" binding:"required"`
	TaxPercent     string `json:"tax_percent" binding:"required"`
	EffectiveDate  string `json:"effective_date" binding:"required"`
	ExpirationDate string `json:"expiration_date"`
}

type PatchRPTTaxRequest struct {
	ExpirationDate *string `json:"expiration_date"`
	TaxPercent     *string `json:"tax_percent"`
}

type RPTTaxResponse struct {
	ID             string  `json:"id"`
	TaxName        string  `json:"tax_name"`
	TaxPercent     string  `json:"tax_percent"`
	EffectiveDate  string  `json:"effective_date"`
	ExpirationDate *string `json:"expiration_date"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
}

type ActiveRPTTaxResponse struct {
	TaxName    string `json:"tax_name"`
	TaxPercent string `json:"tax_percent"`
	ConfigID   string `json:"config_id"`
	AsOf       string `json:"as_of"`
}

// --- Interface ---

type RPTConfigService interface {
	ListLandConfigs(ctx context.Context, currentDate string) ([]LandConfigResponse, error)
	CreateLandConfig(ctx context.Context, req CreateLandConfigRequest) (LandConfigResponse, error)
	UpdateLandConfig(ctx context.Context, id string, req CreateLandConfigRequest) (LandConfigResponse, error)
	PatchLandConfig(ctx context.Context, id string, req PatchLandConfigRequest) (LandConfigResponse, error)
	ExpireLandConfig(ctx context.Context, id string) (LandConfigResponse, error)
	DeleteLandConfig(ctx context.Context, id string) error

	ListPropertyConfigs(ctx context.Context, currentDate string) ([]PropertyConfigResponse, error)
	CreatePropertyConfig(ctx context.Context, req CreatePropertyConfigRequest) (PropertyConfigResponse, error)
	UpdatePropertyConfig(ctx context.Context, id string, req CreatePropertyConfigRequest) (PropertyConfigResponse, error)
	PatchPropertyConfig(ctx context.Context, id string, req PatchPropertyConfigRequest) (PropertyConfigResponse, error)
	ExpirePropertyConfig(ctx context.Context, id string) (PropertyConfigResponse, error)
	DeletePropertyConfig(ctx context.Context, id string) error

	ListRPTTaxConfigs(ctx context.Context, currentDate string) ([]RPTTaxResponse, error)
	CreateRPTTaxConfig(ctx context.Context, req CreateRPTTaxRequest) (RPTTaxResponse, error)
	UpdateRPTTaxConfig(ctx context.Context, id string, req CreateRPTTaxRequest) (RPTTaxResponse, error)
	PatchRPTTaxConfig(ctx context.Context, id string, req PatchRPTTaxRequest) (RPTTaxResponse, error)
	ExpireRPTTaxConfig(ctx context.Context, id string) (RPTTaxResponse, error)
	DeleteRPTTaxConfig(ctx context.Context, id string) error
	GetActiveRPTTaxRate(ctx context.Context, taxName, currentDate string) (*ActiveRPTTaxResponse, error)
}

type rptConfigService struct {
	landEngine     *registry.Engine[model.LandConfig]
	propertyEngine *registry.Engine[model.PropertyConfig]
	taxEngine      *registry.Engine[model.RPTTaxConfig]
	audit          repository.AuditRepository
}

// NewRPTConfigService wires the three RPT registry engines. Only the tax-rate
// kind enforces the no-overlap invariant strictly; land and property keep the
// historical advisory behavior.
func NewRPTConfigService(
	landStore registry.Store[model.LandConfig],
	propertyStore registry.Store[model.PropertyConfig],
	taxStore registry.Store[model.RPTTaxConfig],
	audit repository.AuditRepository,
) RPTConfigService {
	return &rptConfigService{
		landEngine:     registry.NewEngine(landDescriptor(), landStore),
		propertyEngine: registry.NewEngine(propertyDescriptor(), propertyStore),
		taxEngine:      registry.NewEngine(rptTaxDescriptor(), taxStore),
		audit:          audit,
	}
}

func landDescriptor() registry.Descriptor[model.LandConfig] {
	return registry.Descriptor[model.LandConfig]{
		Kind: "land",
		ID:   func(c *model.LandConfig) uuid.UUID { return c.ID },
		NaturalKey: func(c *model.LandConfig) string {
			return c.Classification + "|" + c.Vicinity
		},
		Interval: func(c *model.LandConfig) registry.Interval {
			return registry.Interval{Start: c.EffectiveDate, End: c.ExpirationDate}
		},
		SetExpiration: func(c *model.LandConfig, d *time.Time) { c.ExpirationDate = d },
		SetStatus:     func(c *model.LandConfig, s string) { c.Status = s },
		CopyCreation:  func(dst, existing *model.LandConfig) { dst.CreatedAt = existing.CreatedAt },
		Validate: func(c *model.LandConfig) error {
			if strings.TrimSpace(c.Classification) == "" {
				return registry.NewValidationError("classification", "required")
			}
			return nil
		},
		Less: func(a, b *model.LandConfig) bool {
			if a.Classification != b.Classification {
				return a.Classification < b.Classification
			}
			return a.Vicinity < b.Vicinity
		},
	}
}

func propertyDescriptor() registry.Descriptor[model.PropertyConfig] {
	return registry.Descriptor[model.PropertyConfig]{
		Kind: "property",
		ID:   func(c *model.PropertyConfig) uuid.UUID { return c.ID },
		NaturalKey: func(c *model.PropertyConfig) string {
			return c.Classification + "|" + c.MaterialType
		},
		Interval: func(c *model.PropertyConfig) registry.Interval {
			return registry.Interval{Start: c.EffectiveDate, End: c.ExpirationDate}
		},
		SetExpiration: func(c *model.PropertyConfig, d *time.Time) { c.ExpirationDate = d },
		SetStatus:     func(c *model.PropertyConfig, s string) { c.Status = s },
		CopyCreation:  func(dst, existing *model.PropertyConfig) { dst.CreatedAt = existing.CreatedAt },
		Validate: func(c *model.PropertyConfig) error {
			if strings.TrimSpace(c.Classification) == "" {
				return registry.NewValidationError("classification", "required")
			}
			if strings.TrimSpace(c.MaterialType) == "" {
				return registry.NewValidationError("material_type", "required")
			}
			if c.MaxValue.LessThan(c.MinValue) {
				return registry.NewValidationError("max_value", "must not be less than min_value")
			}
			return nil
		},
		Less: func(a, b *model.PropertyConfig) bool {
			if a.Classification != b.Classification {
				return a.Classification < b.Classification
			}
			return a.MinValue.LessThan(b.MinValue)
		},
	}
}

func rptTaxDescriptor() registry.Descriptor[model.RPTTaxConfig] {
	return registry.Descriptor[model.RPTTaxConfig]{
		Kind:          "rpt-tax",
		StrictOverlap: true,
		ID:            func(c *model.RPTTaxConfig) uuid.UUID { return c.ID },
		NaturalKey:    func(c *model.RPTTaxConfig) string { return c.TaxName },
		Interval: func(c *model.RPTTaxConfig) registry.Interval {
			return registry.Interval{Start: c.EffectiveDate, End: c.ExpirationDate}
		},
		SetExpiration: func(c *model.RPTTaxConfig, d *time.Time) { c.ExpirationDate = d },
		CopyCreation:  func(dst, existing *model.RPTTaxConfig) { dst.CreatedAt = existing.CreatedAt },
		Validate: func(c *model.RPTTaxConfig) error {
			if strings.TrimSpace(c.TaxName) == "" {
				return registry.NewValidationError("tax_name", "required")
			}
			return nil
		},
		Less: func(a, b *model.RPTTaxConfig) bool {
			if a.TaxName != b.TaxName {
				return a.TaxName < b.TaxName
			}
			return a.EffectiveDate.Before(b.EffectiveDate)
		},
	}
}

// --- Land ---

func (s *rptConfigService) ListLandConfigs(ctx context.Context, currentDate string) ([]LandConfigResponse, error) {
	asOf, err := parseAsOf(currentDate)
	if err != nil {
		return nil, err
	}
	configs, err := s.landEngine.List(ctx, asOf)
	if err != nil {
		return nil, err
	}
	asOf = asOfOrToday(asOf)
	res := make([]LandConfigResponse, 0, len(configs))
	for i := range configs {
		res = append(res, toLandConfigResponse(&configs[i], asOf))
	}
	return res, nil
}

func (s *rptConfigService) CreateLandConfig(ctx context.Context, req CreateLandConfigRequest) (LandConfigResponse, error) {
	config, err := landConfigFromRequest(req)
	if err != nil {
		return LandConfigResponse{}, err
	}
	if err := s.landEngine.Create(ctx, config); err != nil {
		return LandConfigResponse{}, err
	}
	writeAudit(ctx, s.audit, model.AuditCreate, model.EntityLandConfig, config.ID.String(), config.Classification, req)
	return toLandConfigResponse(config, time.Now()), nil
}

func (s *rptConfigService) UpdateLandConfig(ctx context.Context, id string, req CreateLandConfigRequest) (LandConfigResponse, error) {
	configID, err := parseID(id)
	if err != nil {
		return LandConfigResponse{}, err
	}
	config, err := landConfigFromRequest(req)
	if err != nil {
		return LandConfigResponse{}, err
	}
	config.ID = configID
	if err := s.landEngine.Replace(ctx, configID, config); err != nil {
		return LandConfigResponse{}, err
	}
	writeAudit(ctx, s.audit, model.AuditUpdate, model.EntityLandConfig, id, config.Classification, req)
	return toLandConfigResponse(config, time.Now()), nil
}

func (s *rptConfigService) PatchLandConfig(ctx context.Context, id string, req PatchLandConfigRequest) (LandConfigResponse, error) {
	configID, err := parseID(id)
	if err != nil {
		return LandConfigResponse{}, err
	}
	patch := landConfigPatch{}
	if patch.status, err = parseStatus(req.Status); err != nil {
		return LandConfigResponse{}, err
	}
	if req.ExpirationDate != nil {
		if patch.expirationDate, err = parseOptionalDate("expiration_date", *req.ExpirationDate); err != nil {
			return LandConfigResponse{}, err
		}
	}
	if req.MarketValue != nil {
		if patch.marketValue, err = parseOptionalDecimal("market_value", *req.MarketValue); err != nil {
			return LandConfigResponse{}, err
		}
	}
	if req.AssessmentLevel != nil {
		if patch.assessmentLevel, err = parseOptionalDecimal("assessment_level", *req.AssessmentLevel); err != nil {
			return LandConfigResponse{}, err
		}
	}
	config, err := s.landEngine.Patch(ctx, configID, patch)
	if err != nil {
		return LandConfigResponse{}, err
	}
	writeAudit(ctx, s.audit, model.AuditPatch, model.EntityLandConfig, id, config.Classification, req)
	return toLandConfigResponse(config, time.Now()), nil
}

func (s *rptConfigService) ExpireLandConfig(ctx context.Context, id string) (LandConfigResponse, error) {
	configID, err := parseID(id)
	if err != nil {
		return LandConfigResponse{}, err
	}
	config, err := s.landEngine.Expire(ctx, configID)
	if err != nil {
		return LandConfigResponse{}, err
	}
	writeAudit(ctx, s.audit, model.AuditExpire, model.EntityLandConfig, id, config.Classification, nil)
	return toLandConfigResponse(config, time.Now()), nil
}

func (s *rptConfigService) DeleteLandConfig(ctx context.Context, id string) error {
	configID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.landEngine.Delete(ctx, configID); err != nil {
		return err
	}
	writeAudit(ctx, s.audit, model.AuditDelete, model.EntityLandConfig, id, "", map[string]string{"deleted_id": id})
	return nil
}

// --- Property ---

func (s *rptConfigService) ListPropertyConfigs(ctx context.Context, currentDate string) ([]PropertyConfigResponse, error) {
	asOf, err := parseAsOf(currentDate)
	if err != nil {
		return nil, err
	}
	configs, err := s.propertyEngine.List(ctx, asOf)
	if err != nil {
		return nil, err
	}
	asOf = asOfOrToday(asOf)
	res := make([]PropertyConfigResponse, 0, len(configs))
	for i := range configs {
		res = append(res, toPropertyConfigResponse(&configs[i], asOf))
	}
	return res, nil
}

func (s *rptConfigService) CreatePropertyConfig(ctx context.Context, req CreatePropertyConfigRequest) (PropertyConfigResponse, error) {
	config, err := propertyConfigFromRequest(req)
	if err != nil {
		return PropertyConfigResponse{}, err
	}
	if err := s.propertyEngine.Create(ctx, config); err != nil {
		return PropertyConfigResponse{}, err
	}
	writeAudit(ctx, s.audit, model.AuditCreate, model.EntityPropertyConfig, config.ID.String(), config.Classification+" "+config.MaterialType, req)
	return toPropertyConfigResponse(config, time.Now()), nil
}

func (s *rptConfigService) UpdatePropertyConfig(ctx context.Context, id string, req CreatePropertyConfigRequest) (PropertyConfigResponse, error) {
	configID, err := parseID(id)
	if err != nil {
		return PropertyConfigResponse{}, err
	}
	config, err := propertyConfigFromRequest(req)
	if err != nil {
		return PropertyConfigResponse{}, err
	}
	config.ID = configID
	if err := s.propertyEngine.Replace(ctx, configID, config); err != nil {
		return PropertyConfigResponse{}, err
	}
	writeAudit(ctx, s.audit, model.AuditUpdate, model.EntityPropertyConfig, id, config.Classification+" "+config.MaterialType, req)
	return toPropertyConfigResponse(config, time.Now()), nil
}

func (s *rptConfigService) PatchPropertyConfig(ctx context.Context, id string, req PatchPropertyConfigRequest) (PropertyConfigResponse, error) {
	configID, err := parseID(id)
	if err != nil {
		return PropertyConfigResponse{}, err
	}
	patch := propertyConfigPatch{}
	if patch.status, err = parseStatus(req.Status); err != nil {
		return PropertyConfigResponse{}, err
	}
	if req.ExpirationDate != nil {
		if patch.expirationDate, err = parseOptionalDate("expiration_date", *req.ExpirationDate); err != nil {
			return PropertyConfigResponse{}, err
		}
	}
	for _, f := range []struct {
		field string
		in    *string
		out   **decimal.Decimal
	}{
		{"unit_cost", req.UnitCost, &patch.unitCost},
		{"depreciation_rate", req.DepreciationRate, &patch.depreciationRate},
		{"min_value", req.MinValue, &patch.minValue},
		{"max_value", req.MaxValue, &patch.maxValue},
		{"level_percent", req.LevelPercent, &patch.levelPercent},
	} {
		if f.in == nil {
			continue
		}
		if *f.out, err = parseOptionalDecimal(f.field, *f.in); err != nil {
			return PropertyConfigResponse{}, err
		}
	}
	config, err := s.propertyEngine.Patch(ctx, configID, patch)
	if err != nil {
		return PropertyConfigResponse{}, err
	}
	writeAudit(ctx, s.audit, model.AuditPatch, model.EntityPropertyConfig, id, config.Classification+" "+config.MaterialType, req)
	return toPropertyConfigResponse(config, time.Now()), nil
}

func (s *rptConfigService) ExpirePropertyConfig(ctx context.Context, id string) (PropertyConfigResponse, error) {
	configID, err := parseID(id)
	if err != nil {
		return PropertyConfigResponse{}, err
	}
	config, err := s.propertyEngine.Expire(ctx, configID)
	if err != nil {
		return PropertyConfigResponse{}, err
	}
	writeAudit(ctx, s.audit, model.AuditExpire, model.EntityPropertyConfig, id, config.Classification+" "+config.MaterialType, nil)
	return toPropertyConfigResponse(config, time.Now()), nil
}

func (s *rptConfigService) DeletePropertyConfig(ctx context.Context, id string) error {
	configID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.propertyEngine.Delete(ctx, configID); err != nil {
		return err
	}
	writeAudit(ctx, s.audit, model.AuditDelete, model.EntityPropertyConfig, id, "", map[string]string{"deleted_id": id})
	return nil
}

// --- RPT tax rates ---

func (s *rptConfigService) ListRPTTaxConfigs(ctx context.Context, currentDate string) ([]RPTTaxResponse, error) {
	asOf, err := parseAsOf(currentDate)
	if err != nil {
		return nil, err
	}
	configs, err := s.taxEngine.List(ctx, asOf)
	if err != nil {
		return nil, err
	}
	asOf = asOfOrToday(asOf)
	res := make([]RPTTaxResponse, 0, len(configs))
	for i := range configs {
		res = append(res, toRPTTaxResponse(&configs[i], asOf))
	}
	return res, nil
}

func (s *rptConfigService) CreateRPTTaxConfig(ctx context.Context, req CreateRPTTaxRequest) (RPTTaxResponse, error) {
	config, err := rptTaxFromRequest(req)
	if err != nil {
		return RPTTaxResponse{}, err
	}
	if err := s.taxEngine.Create(ctx, config); err != nil {
		return RPTTaxResponse{}, err
	}
	writeAudit(ctx, s.audit, model.AuditCreate, model.EntityRPTTaxConfig, config.ID.String(), config.TaxName, req)
	return toRPTTaxResponse(config, time.Now()), nil
}

func (s *rptConfigService) UpdateRPTTaxConfig(ctx context.Context, id string, req CreateRPTTaxRequest) (RPTTaxResponse, error) {
	configID, err := parseID(id)
	if err != nil {
		return RPTTaxResponse{}, err
	}
	config, err := rptTaxFromRequest(req)
	if err != nil {
		return RPTTaxResponse{}, err
	}
	config.ID = configID
	if err := s.taxEngine.Replace(ctx, configID, config); err != nil {
		return RPTTaxResponse{}, err
	}
	writeAudit(ctx, s.audit, model.AuditUpdate, model.EntityRPTTaxConfig, id, config.TaxName, req)
	return toRPTTaxResponse(config, time.Now()), nil
}

func (s *rptConfigService) PatchRPTTaxConfig(ctx context.Context, id string, req PatchRPTTaxRequest) (RPTTaxResponse, error) {
	configID, err := parseID(id)
	if err != nil {
		return RPTTaxResponse{}, err
	}
	patch := rptTaxPatch{}
	if req.ExpirationDate != nil {
		if patch.expirationDate, err = parseOptionalDate("expiration_date", *req.ExpirationDate); err != nil {
			return RPTTaxResponse{}, err
		}
	}
	if req.TaxPercent != nil {
		if patch.taxPercent, err = parseOptionalDecimal("tax_percent", *req.TaxPercent); err != nil {
			return RPTTaxResponse{}, err
		}
	}
	config, err := s.taxEngine.Patch(ctx, configID, patch)
	if err != nil {
		return RPTTaxResponse{}, err
	}
	writeAudit(ctx, s.audit, model.AuditPatch, model.EntityRPTTaxConfig, id, config.TaxName, req)
	return toRPTTaxResponse(config, time.Now()), nil
}

func (s *rptConfigService) ExpireRPTTaxConfig(ctx context.Context, id string) (RPTTaxResponse, error) {
	configID, err := parseID(id)
	if err != nil {
		return RPTTaxResponse{}, err
	}
	config, err := s.taxEngine.Expire(ctx, configID)
	if err != nil {
		return RPTTaxResponse{}, err
	}
	writeAudit(ctx, s.audit, model.AuditExpire, model.EntityRPTTaxConfig, id, config.TaxName, nil)
	return toRPTTaxResponse(config, time.Now()), nil
}

func (s *rptConfigService) DeleteRPTTaxConfig(ctx context.Context, id string) error {
	configID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.taxEngine.Delete(ctx, configID); err != nil {
		return err
	}
	writeAudit(ctx, s.audit, model.AuditDelete, model.EntityRPTTaxConfig, id, "", map[string]string{"deleted_id": id})
	return nil
}

// GetActiveRPTTaxRate answers "what rate applies on date D" for one tax name.
// Returns nil when no configuration covers the date; that is not an error.
func (s *rptConfigService) GetActiveRPTTaxRate(ctx context.Context, taxName, currentDate string) (*ActiveRPTTaxResponse, error) {
	if strings.TrimSpace(taxName) == "" {
		return nil, registry.NewValidationError("tax_name", "required")
	}
	asOf, err := parseAsOf(currentDate)
	if err != nil {
		return nil, err
	}
	configs, err := s.taxEngine.List(ctx, asOf)
	if err != nil {
		return nil, err
	}
	asOf = asOfOrToday(asOf)
	for i := range configs {
		if configs[i].TaxName == taxName {
			return &ActiveRPTTaxResponse{
				TaxName:    configs[i].TaxName,
				TaxPercent: configs[i].TaxPercent.String(),
				ConfigID:   configs[i].ID.String(),
				AsOf:       fmtDate(asOf),
			}, nil
		}
	}
	return nil, nil
}

// --- Patches ---

type landConfigPatch struct {
	status          *string
	expirationDate  *time.Time
	marketValue     *decimal.Decimal
	assessmentLevel *decimal.Decimal
}

func (p landConfigPatch) Apply(rec *model.LandConfig) bool {
	applied := false
	if p.status != nil {
		rec.Status = *p.status
		applied = true
	}
	if p.expirationDate != nil {
		rec.ExpirationDate = p.expirationDate
		applied = true
	}
	if p.marketValue != nil {
		rec.MarketValue = *p.marketValue
		applied = true
	}
	if p.assessmentLevel != nil {
		rec.AssessmentLevel = *p.assessmentLevel
		applied = true
	}
	return applied
}

type propertyConfigPatch struct {
	status           *string
	expirationDate   *time.Time
	unitCost         *decimal.Decimal
	depreciationRate *decimal.Decimal
	minValue         *decimal.Decimal
	maxValue         *decimal.Decimal
	levelPercent     *decimal.Decimal
}

func (p propertyConfigPatch) Apply(rec *model.PropertyConfig) bool {
	applied := false
	if p.status != nil {
		rec.Status = *p.status
		applied = true
	}
	if p.expirationDate != nil {
		rec.ExpirationDate = p.expirationDate
		applied = true
	}
	if p.unitCost != nil {
		rec.UnitCost = *p.unitCost
		applied = true
	}
	if p.depreciationRate != nil {
		rec.DepreciationRate = *p.depreciationRate
		applied = true
	}
	if p.minValue != nil {
		rec.MinValue = *p.minValue
		applied = true
	}
	if p.maxValue != nil {
		rec.MaxValue = *p.maxValue
		applied = true
	}
	if p.levelPercent != nil {
		rec.LevelPercent = *p.levelPercent
		applied = true
	}
	return applied
}

type rptTaxPatch struct {
	expirationDate *time.Time
	taxPercent     *decimal.Decimal
}

func (p rptTaxPatch) Apply(rec *model.RPTTaxConfig) bool {
	applied := false
	if p.expirationDate != nil {
		rec.ExpirationDate = p.expirationDate
		applied = true
	}
	if p.taxPercent != nil {
		rec.TaxPercent = *p.taxPercent
		applied = true
	}
	return applied
}

// --- Helpers ---

func landConfigFromRequest(req CreateLandConfigRequest) (*model.LandConfig, error) {
	marketValue, err := parseDecimal("market_value", req.MarketValue)
	if err != nil {
		return nil, err
	}
	assessmentLevel, err := parseDecimal("assessment_level", req.AssessmentLevel)
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

	vicinity := req.Vicinity
	if vicinity == "" {
		vicinity = "General Area"
	}

	return &model.LandConfig{
		Classification:  req.Classification,
		Vicinity:        vicinity,
		MarketValue:     marketValue,
		AssessmentLevel: assessmentLevel,
		Description:     req.Description,
		EffectiveDate:   effective,
		ExpirationDate:  expiration,
	}, nil
}

func propertyConfigFromRequest(req CreatePropertyConfigRequest) (*model.PropertyConfig, error) {
	config := &model.PropertyConfig{
		Classification: req.Classification,
		MaterialType:   req.MaterialType,
	}
	for _, f := range []struct {
		field string
		in    string
		out   *decimal.Decimal
	}{
		{"unit_cost", req.UnitCost, &config.UnitCost},
		{"depreciation_rate", req.DepreciationRate, &config.DepreciationRate},
		{"min_value", req.MinValue, &config.MinValue},
		{"max_value", req.MaxValue, &config.MaxValue},
		{"level_percent", req.LevelPercent, &config.LevelPercent},
	} {
		d, err := parseDecimal(f.field, f.in)
		if err != nil {
			return nil, err
		}
		*f.out = d
	}

	effective, err := parseDate("effective_date", req.EffectiveDate)
	if err != nil {
		return nil, err
	}
	expiration, err := parseOptionalDate("expiration_date", req.ExpirationDate)
	if err != nil {
		return nil, err
	}
	config.EffectiveDate = effective
	config.ExpirationDate = expiration
	return config, nil
}

func rptTaxFromRequest(req CreateRPTTaxRequest) (*model.RPTTaxConfig, error) {
	taxPercent, err := parseDecimal("tax_percent", req.TaxPercent)
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

	return &model.RPTTaxConfig{
		TaxName:        req.TaxName,
		TaxPercent:     taxPercent,
		EffectiveDate:  effective,
		ExpirationDate: expiration,
	}, nil
}

func toLandConfigResponse(c *model.LandConfig, asOf time.Time) LandConfigResponse {
	return LandConfigResponse{
		ID:              c.ID.String(),
		Classification:  c.Classification,
		Vicinity:        c.Vicinity,
		MarketValue:     c.MarketValue.String(),
		AssessmentLevel: c.AssessmentLevel.String(),
		Description:     c.Description,
		EffectiveDate:   fmtDate(c.EffectiveDate),
		ExpirationDate:  fmtDatePtr(c.ExpirationDate),
		Status:          registry.StatusOn(registry.Interval{Start: c.EffectiveDate, End: c.ExpirationDate}, asOf),
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
	}
}

func toPropertyConfigResponse(c *model.PropertyConfig, asOf time.Time) PropertyConfigResponse {
	return PropertyConfigResponse{
		ID:               c.ID.String(),
		Classification:   c.Classification,
		MaterialType:     c.MaterialType,
		UnitCost:         c.UnitCost.String(),
		DepreciationRate: c.DepreciationRate.String(),
		MinValue:         c.MinValue.String(),
		MaxValue:         c.MaxValue.String(),
		LevelPercent:     c.LevelPercent.String(),
		EffectiveDate:    fmtDate(c.EffectiveDate),
		ExpirationDate:   fmtDatePtr(c.ExpirationDate),
		Status:           registry.StatusOn(registry.Interval{Start: c.EffectiveDate, End: c.ExpirationDate}, asOf),
		CreatedAt:        c.CreatedAt.Format(time.RFC3339),
	}
}

func toRPTTaxResponse(c *model.RPTTaxConfig, asOf time.Time) RPTTaxResponse {
	return RPTTaxResponse{
		ID:             c.ID.String(),
		TaxName:        c.TaxName,
		TaxPercent:     c.TaxPercent.String(),
		EffectiveDate:  fmtDate(c.EffectiveDate),
		ExpirationDate: fmtDatePtr(c.ExpirationDate),
		Status:         registry.StatusOn(registry.Interval{Start: c.EffectiveDate, End: c.ExpirationDate}, asOf),
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}
