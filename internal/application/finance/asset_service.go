package finance

import (
	"context"
	"errors"

	"github.com/arvebo/backend/internal/domain/finance"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AssetService manages estate assets
type AssetService struct {
	assetRepo     finance.AssetRepository
	liabilityRepo finance.LiabilityRepository
	logger        *zap.Logger
}

// NewAssetService creates a new AssetService
func NewAssetService(
	assetRepo finance.AssetRepository,
	liabilityRepo finance.LiabilityRepository,
	logger *zap.Logger,
) *AssetService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssetService{
		assetRepo:     assetRepo,
		liabilityRepo: liabilityRepo,
		logger:        logger,
	}
}

// Create registers a new asset
func (s *AssetService) Create(ctx context.Context, input CreateAssetInput) (*AssetInfo, error) {
	value, err := parseAmount(input.Value)
	if err != nil {
		return nil, err
	}

	asset, err := finance.NewAsset(input.EstateID, input.Name, finance.AssetCategory(input.Category), input.Description, value, input.CreatedBy)
	if err != nil {
		return nil, err
	}

	if err := s.assetRepo.Save(ctx, asset); err != nil {
		s.logger.Error("Failed to save asset", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register asset")
	}

	s.logger.Info("Asset registered",
		zap.String("estate_id", input.EstateID.String()),
		zap.String("asset_id", asset.ID.String()),
		zap.String("value", asset.Value.String()))

	info := assetInfoFromDomain(asset)
	return &info, nil
}

// Get returns a single asset
func (s *AssetService) Get(ctx context.Context, estateID, assetID uuid.UUID) (*AssetInfo, error) {
	asset, err := s.loadAsset(ctx, estateID, assetID)
	if err != nil {
		return nil, err
	}
	info := assetInfoFromDomain(asset)
	return &info, nil
}

// List returns the assets of an estate
func (s *AssetService) List(ctx context.Context, estateID uuid.UUID, filter shared.Filter) (*AssetListResult, error) {
	assets, total, err := s.assetRepo.FindAllForEstate(ctx, estateID, filter)
	if err != nil {
		s.logger.Error("Failed to list assets", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list assets")
	}

	infos := make([]AssetInfo, 0, len(assets))
	for i := range assets {
		infos = append(infos, assetInfoFromDomain(&assets[i]))
	}
	return &AssetListResult{Assets: infos, Total: total}, nil
}

// Update changes an asset's details
func (s *AssetService) Update(ctx context.Context, input UpdateAssetInput) (*AssetInfo, error) {
	value, err := parseAmount(input.Value)
	if err != nil {
		return nil, err
	}

	asset, err := s.loadAsset(ctx, input.EstateID, input.AssetID)
	if err != nil {
		return nil, err
	}

	if err := asset.Update(input.Name, finance.AssetCategory(input.Category), input.Description, value); err != nil {
		return nil, err
	}

	if err := s.assetRepo.Save(ctx, asset); err != nil {
		s.logger.Error("Failed to update asset", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update asset")
	}

	info := assetInfoFromDomain(asset)
	return &info, nil
}

// Delete removes an asset
func (s *AssetService) Delete(ctx context.Context, estateID, assetID uuid.UUID) error {
	asset, err := s.loadAsset(ctx, estateID, assetID)
	if err != nil {
		return err
	}

	if err := s.assetRepo.Delete(ctx, asset.ID); err != nil {
		s.logger.Error("Failed to delete asset", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete asset")
	}
	return nil
}

// NetWorth aggregates total asset and liability values for an estate
func (s *AssetService) NetWorth(ctx context.Context, estateID uuid.UUID) (*NetWorthResult, error) {
	totalAssets, err := s.assetRepo.SumValueForEstate(ctx, estateID)
	if err != nil {
		s.logger.Error("Failed to sum asset values", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to compute net worth")
	}

	totalLiabilities, err := s.liabilityRepo.SumValueForEstate(ctx, estateID)
	if err != nil {
		s.logger.Error("Failed to sum liability values", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to compute net worth")
	}

	return &NetWorthResult{
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		NetWorth:         totalAssets.Sub(totalLiabilities),
	}, nil
}

func (s *AssetService) loadAsset(ctx context.Context, estateID, assetID uuid.UUID) (*finance.Asset, error) {
	asset, err := s.assetRepo.FindByIDForEstate(ctx, estateID, assetID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		s.logger.Error("Failed to load asset", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load asset")
	}
	return asset, nil
}
