package service

import (
	"context"
	"testing"

	"revenue/internal/model"
	"revenue/internal/registry"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRPTService() RPTConfigService {
	landStore := registry.NewMemStore[model.LandConfig]("land",
		func(c *model.LandConfig) uuid.UUID { return c.ID },
		func(c *model.LandConfig, id uuid.UUID) { c.ID = id },
	)
	propertyStore := registry.NewMemStore[model.PropertyConfig]("property",
		func(c *model.PropertyConfig) uuid.UUID { return c.ID },
		func(c *model.PropertyConfig, id uuid.UUID) { c.ID = id },
	)
	taxStore := registry.NewMemStore[model.RPTTaxConfig]("rpt-tax",
		func(c *model.RPTTaxConfig) uuid.UUID { return c.ID },
		func(c *model.RPTTaxConfig, id uuid.UUID) { c.ID = id },
	)
	return NewRPTConfigService(landStore, propertyStore, taxStore, nil)
}

func validLand() CreateLandConfigRequest {
	return CreateLandConfigRequest{
		Classification:  "Residential",
		Vicinity:        "Poblacion",
		MarketValue:     "1500",
		AssessmentLevel: "0.20",
		EffectiveDate:   "2024-01-01",
	}
}

func validProperty() CreatePropertyConfigRequest {
	return CreatePropertyConfigRequest{
		Classification:   "Residential",
		MaterialType:     "Concrete",
		UnitCost:         "8000",
		DepreciationRate: "0.02",
		MinValue:         "0",
		MaxValue:         "175000",
		LevelPercent:     "0.10",
		EffectiveDate:    "2024-01-01",
	}
}

func TestCreateLandConfigDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newRPTService()

	req := validLand()
	req.Vicinity = ""
	res, err := svc.CreateLandConfig(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "General Area", res.Vicinity)
	assert.Equal(t, registry.StatusActive, res.Status)
}

func TestLandStatusDerivedFromDates(t *testing.T) {
	ctx := context.Background()
	svc := newRPTService()

	created, err := svc.CreateLandConfig(ctx, validLand())
	require.NoError(t, err)

	// Patching status alone does not override the date-derived value: the
	// record has no expiration, so it stays active.
	expired := registry.StatusExpired
	res, err := svc.PatchLandConfig(ctx, created.ID, PatchLandConfigRequest{Status: &expired})
	require.NoError(t, err)
	assert.Equal(t, registry.StatusActive, res.Status)

	// Setting an expiration in the past is what actually expires it.
	past := "2024-01-31"
	res, err = svc.PatchLandConfig(ctx, created.ID, PatchLandConfigRequest{ExpirationDate: &past})
	require.NoError(t, err)
	assert.Equal(t, registry.StatusExpired, res.Status)
}

func TestPatchStatusValueValidated(t *testing.T) {
	ctx := context.Background()
	svc := newRPTService()

	land, err := svc.CreateLandConfig(ctx, validLand())
	require.NoError(t, err)

	bogus := "frozen"
	_, err = svc.PatchLandConfig(ctx, land.ID, PatchLandConfigRequest{Status: &bogus})
	assert.True(t, registry.IsValidation(err))

	property, err := svc.CreatePropertyConfig(ctx, validProperty())
	require.NoError(t, err)

	_, err = svc.PatchPropertyConfig(ctx, property.ID, PatchPropertyConfigRequest{Status: &bogus})
	assert.True(t, registry.IsValidation(err))
}

func TestPropertyConfigValidation(t *testing.T) {
	ctx := context.Background()
	svc := newRPTService()

	req := validProperty()
	req.MinValue = "200000"
	req.MaxValue = "175000"
	_, err := svc.CreatePropertyConfig(ctx, req)
	assert.True(t, registry.IsValidation(err))
}

func TestPatchPropertyConfig(t *testing.T) {
	ctx := context.Background()
	svc := newRPTService()

	created, err := svc.CreatePropertyConfig(ctx, validProperty())
	require.NoError(t, err)

	cost := "9500"
	level := "0.20"
	res, err := svc.PatchPropertyConfig(ctx, created.ID, PatchPropertyConfigRequest{
		UnitCost:     &cost,
		LevelPercent: &level,
	})
	require.NoError(t, err)
	assert.Equal(t, "9500", res.UnitCost)
	assert.Equal(t, "0.2", res.LevelPercent)
	assert.Equal(t, created.DepreciationRate, res.DepreciationRate)
}

func TestRPTTaxOverlapRejected(t *testing.T) {
	ctx := context.Background()
	svc := newRPTService()

	_, err := svc.CreateRPTTaxConfig(ctx, CreateRPTTaxRequest{
		TaxName:        "Basic RPT",
		TaxPercent:     "0.01",
		EffectiveDate:  "2024-01-01",
		ExpirationDate: "2024-12-31",
	})
	require.NoError(t, err)

	// Same tax name, overlapping interval: hard conflict.
	_, err = svc.CreateRPTTaxConfig(ctx, CreateRPTTaxRequest{
		TaxName:       "Basic RPT",
		TaxPercent:    "0.02",
		EffectiveDate: "2024-06-01",
	})
	assert.True(t, registry.IsConflict(err))

	// Different tax name may overlap freely.
	_, err = svc.CreateRPTTaxConfig(ctx, CreateRPTTaxRequest{
		TaxName:       "SEF",
		TaxPercent:    "0.01",
		EffectiveDate: "2024-06-01",
	})
	assert.NoError(t, err)

	// Same name starting after the bounded interval ends is fine.
	_, err = svc.CreateRPTTaxConfig(ctx, CreateRPTTaxRequest{
		TaxName:       "Basic RPT",
		TaxPercent:    "0.02",
		EffectiveDate: "2025-01-01",
	})
	assert.NoError(t, err)
}

func TestGetActiveRPTTaxRate(t *testing.T) {
	ctx := context.Background()
	svc := newRPTService()

	created, err := svc.CreateRPTTaxConfig(ctx, CreateRPTTaxRequest{
		TaxName:        "Basic RPT",
		TaxPercent:     "0.01",
		EffectiveDate:  "2024-01-01",
		ExpirationDate: "2024-12-31",
	})
	require.NoError(t, err)

	t.Run("rate active on the date", func(t *testing.T) {
		res, err := svc.GetActiveRPTTaxRate(ctx, "Basic RPT", "2024-06-01")
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, "0.01", res.TaxPercent)
		assert.Equal(t, created.ID, res.ConfigID)
		assert.Equal(t, "2024-06-01", res.AsOf)
	})

	t.Run("no rate covers the date", func(t *testing.T) {
		res, err := svc.GetActiveRPTTaxRate(ctx, "Basic RPT", "2025-06-01")
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("unknown tax name", func(t *testing.T) {
		res, err := svc.GetActiveRPTTaxRate(ctx, "Idle Land", "2024-06-01")
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("tax name required", func(t *testing.T) {
		_, err := svc.GetActiveRPTTaxRate(ctx, "", "2024-06-01")
		assert.True(t, registry.IsValidation(err))
	})
}

func TestExpireRPTTaxConfigFreesInterval(t *testing.T) {
	ctx := context.Background()
	svc := newRPTService()

	created, err := svc.CreateRPTTaxConfig(ctx, CreateRPTTaxRequest{
		TaxName:       "Basic RPT",
		TaxPercent:    "0.01",
		EffectiveDate: "2020-01-01",
	})
	require.NoError(t, err)

	_, err = svc.ExpireRPTTaxConfig(ctx, created.ID)
	require.NoError(t, err)

	// Once the open-ended record is closed, a successor starting later can be
	// created without conflict.
	_, err = svc.CreateRPTTaxConfig(ctx, CreateRPTTaxRequest{
		TaxName:       "Basic RPT",
		TaxPercent:    "0.015",
		EffectiveDate: "2099-01-01",
	})
	assert.NoError(t, err)
}
