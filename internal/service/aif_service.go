package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ndewijer/FinLedge-Backend/internal/aif"
	"github.com/ndewijer/FinLedge-Backend/internal/api/request"
	"github.com/ndewijer/FinLedge-Backend/internal/metrics"
	"github.com/ndewijer/FinLedge-Backend/internal/model"
)

// AIFService recommends alternative investment funds from a static catalog.
type AIFService struct {
	catalog *aif.Catalog
	log     zerolog.Logger
}

// NewAIFService creates an AIFService over catalog.
func NewAIFService(catalog *aif.Catalog, log zerolog.Logger) *AIFService {
	return &AIFService{
		catalog: catalog,
		log:     log.With().Str("component", "aif").Logger(),
	}
}

// Recommend builds the asset allocation for the investor and splits its
// Alternative sleeve across the best ranked eligible funds.
func (s *AIFService) Recommend(ctx context.Context, req request.AIFRequest) (_ *model.AIFResponse, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("aif", start, err) }(time.Now())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rec, err := s.catalog.Recommend(aif.Profile{
		RiskProfile:       req.RiskProfile,
		InvestmentHorizon: req.InvestmentHorizon,
		Age:               req.Age,
		IncomeStability:   req.IncomeStability,
		InvestmentAmount:  req.InvestmentAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("recommend funds: %w", err)
	}

	allocations := make([]model.AIFAllocation, len(rec.Funds))
	for i, f := range rec.Funds {
		allocations[i] = model.AIFAllocation{
			AIF:                  f.Fund,
			AllocationPercentage: f.AllocationPercentage,
			AllocationAmount:     round(f.AllocationAmount, 2),
		}
	}

	s.log.Debug().
		Str("riskProfile", req.RiskProfile).
		Str("horizon", req.InvestmentHorizon).
		Int("funds", len(allocations)).
		Msg("aif recommendation built")

	return &model.AIFResponse{
		Success: true,
		InvestmentProfile: model.InvestmentProfile{
			RiskProfile:       req.RiskProfile,
			InvestmentAmount:  req.InvestmentAmount,
			InvestmentHorizon: req.InvestmentHorizon,
			Age:               req.Age,
			IncomeStability:   req.IncomeStability,
		},
		AssetAllocation:           rec.Allocation,
		AIFRecommendations:        allocations,
		AdditionalRecommendations: rec.Guidance,
		MarketInsights:            rec.MarketInsights,
		MarketConditions:          rec.MarketConditions,
		Notes:                     rec.Notes,
	}, nil
}
