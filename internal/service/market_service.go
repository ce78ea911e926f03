package service

import (
	"context"
	"errors"
	"fmt"

	"revenue/internal/model"
	"revenue/internal/registry"
	"revenue/internal/repository"

	"github.com/google/uuid"
)

// --- DTOs ---

type StallPlacement struct {
	Name      string  `json:"name" binding:"required"`
	PosX      float64 `json:"pos_x"`
	PosY      float64 `json:"pos_y"`
	ClassID   string  `json:"class_id"`
	Price     string  `json:"price"` // Empty = the class default price
	SectionID string  `json:"section_id"`
}

// SaveMapLayoutRequest is the editor's "save layout" payload: map metadata
// plus the full set of stall placements. Saving replaces the previous
// placements wholesale.
type SaveMapLayoutRequest struct {
	MapID      string           `json:"map_id"` // Empty = create a new map
	Name       string           `json:"name" binding:"required"`
	ImageFile  string           `json:"image_file"`
	IsFinished bool             `json:"is_finished"`
	Stalls     []StallPlacement `json:"stalls"`
}

type MarketSectionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type StallClassResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type StallResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	PosX    float64 `json:"pos_x"`
	PosY    float64 `json:"pos_y"`
	Class   string  `json:"class"`
	Price   string  `json:"price"`
	Section string  `json:"section"`
}

type MapLayoutResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	ImageFile  string          `json:"image_file"`
	StallCount int             `json:"stall_count"`
	IsFinished bool            `json:"is_finished"`
	Stalls     []StallResponse `json:"stalls"`
}

// --- Interface ---

type MarketService interface {
	GetSections(ctx context.Context) ([]MarketSectionResponse, error)
	GetStallClasses(ctx context.Context) ([]StallClassResponse, error)
	GetMapLayout(ctx context.Context, id string) (MapLayoutResponse, error)
	SaveMapLayout(ctx context.Context, req SaveMapLayoutRequest) (MapLayoutResponse, error)
}

type marketService struct {
	repo  repository.MarketRepository
	txMgr repository.TransactionManager
	audit repository.AuditRepository
}

func NewMarketService(repo repository.MarketRepository, txMgr repository.TransactionManager, audit repository.AuditRepository) MarketService {
	return &marketService{repo: repo, txMgr: txMgr, audit: audit}
}

func (s *marketService) GetSections(ctx context.Context) ([]MarketSectionResponse, error) {
	sections, err := s.repo.ListSections(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch market sections: %w", err)
	}
	res := make([]MarketSectionResponse, 0, len(sections))
	for _, sec := range sections {
		res = append(res, MarketSectionResponse{ID: sec.ID.String(), Name: sec.Name})
	}
	return res, nil
}

func (s *marketService) GetStallClasses(ctx context.Context) ([]StallClassResponse, error) {
	classes, err := s.repo.ListStallClasses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stall classes: %w", err)
	}
	res := make([]StallClassResponse, 0, len(classes))
	for _, c := range classes {
		res = append(res, StallClassResponse{ID: c.ID.String(), Name: c.Name, Price: c.Price.String()})
	}
	return res, nil
}

func (s *marketService) GetMapLayout(ctx context.Context, id string) (MapLayoutResponse, error) {
	mapID, err := parseID(id)
	if err != nil {
		return MapLayoutResponse{}, err
	}
	m, err := s.repo.FindMap(ctx, mapID)
	if err != nil {
		if errors.Is(err, repository.ErrMapNotFound) {
			return MapLayoutResponse{}, &registry.NotFoundError{Kind: "market-map", ID: mapID}
		}
		return MapLayoutResponse{}, fmt.Errorf("failed to fetch market map: %w", err)
	}
	return toMapLayoutResponse(m), nil
}

// SaveMapLayout upserts map metadata and swaps its stall placements in one
// transaction, so the UI never observes a half-saved layout.
func (s *marketService) SaveMapLayout(ctx context.Context, req SaveMapLayoutRequest) (MapLayoutResponse, error) {
	classes, err := s.repo.ListStallClasses(ctx)
	if err != nil {
		return MapLayoutResponse{}, fmt.Errorf("failed to fetch stall classes: %w", err)
	}
	classByID := make(map[uuid.UUID]model.StallClass, len(classes))
	for _, c := range classes {
		classByID[c.ID] = c
	}

	m := &model.MarketMap{
		Name:       req.Name,
		ImageFile:  req.ImageFile,
		StallCount: len(req.Stalls),
		IsFinished: req.IsFinished,
	}
	if req.MapID != "" {
		id, err := parseID(req.MapID)
		if err != nil {
			return MapLayoutResponse{}, err
		}
		m.ID = id
	}

	stalls := make([]model.Stall, 0, len(req.Stalls))
	for i, p := range req.Stalls {
		stall := model.Stall{
			Name: p.Name,
			PosX: p.PosX,
			PosY: p.PosY,
		}
		if p.ClassID != "" {
			classID, err := uuid.Parse(p.ClassID)
			if err != nil {
				return MapLayoutResponse{}, registry.NewValidationError(fmt.Sprintf("stalls[%d].class_id", i), "invalid identifier")
			}
			class, ok := classByID[classID]
			if !ok {
				return MapLayoutResponse{}, registry.NewValidationError(fmt.Sprintf("stalls[%d].class_id", i), "unknown stall class")
			}
			stall.ClassID = &classID
			stall.Price = class.Price
		}
		if p.Price != "" {
			price, err := parseDecimal(fmt.Sprintf("stalls[%d].price", i), p.Price)
			if err != nil {
				return MapLayoutResponse{}, err
			}
			stall.Price = price
		}
		if p.SectionID != "" {
			sectionID, err := uuid.Parse(p.SectionID)
			if err != nil {
				return MapLayoutResponse{}, registry.NewValidationError(fmt.Sprintf("stalls[%d].section_id", i), "invalid identifier")
			}
			stall.SectionID = &sectionID
		}
		stalls = append(stalls, stall)
	}

	err = s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.SaveMap(txCtx, m); err != nil {
			return fmt.Errorf("failed to save market map: %w", err)
		}
		for i := range stalls {
			stalls[i].MapID = m.ID
		}
		if err := s.repo.ReplaceStalls(txCtx, m.ID, stalls); err != nil {
			return fmt.Errorf("failed to save stall placements: %w", err)
		}
		return nil
	})
	if err != nil {
		return MapLayoutResponse{}, err
	}

	writeAudit(ctx, s.audit, model.AuditSave, model.EntityMarketMap, m.ID.String(), m.Name,
		map[string]interface{}{"stall_count": len(stalls), "is_finished": m.IsFinished})

	saved, err := s.repo.FindMap(ctx, m.ID)
	if err != nil {
		return MapLayoutResponse{}, fmt.Errorf("failed to reload market map: %w", err)
	}
	return toMapLayoutResponse(saved), nil
}

func toMapLayoutResponse(m *model.MarketMap) MapLayoutResponse {
	res := MapLayoutResponse{
		ID:         m.ID.String(),
		Name:       m.Name,
		ImageFile:  m.ImageFile,
		StallCount: m.StallCount,
		IsFinished: m.IsFinished,
		Stalls:     make([]StallResponse, 0, len(m.Stalls)),
	}
	for _, stall := range m.Stalls {
		sr := StallResponse{
			ID:    stall.ID.String(),
			Name:  stall.Name,
			PosX:  stall.PosX,
			PosY:  stall.PosY,
			Price: stall.Price.String(),
		}
		if stall.Class != nil {
			sr.Class = stall.Class.Name
		}
		if stall.Section != nil {
			sr.Section = stall.Section.Name
		}
		res.Stalls = append(res.Stalls, sr)
	}
	return res
}
