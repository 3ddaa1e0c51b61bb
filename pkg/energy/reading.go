package energy

import (
	"context"
	"fmt"

	"energialab.xyz/energy-monitor-service/pkg/common"
	"energialab.xyz/energy-monitor-service/pkg/models"
	"go.uber.org/zap"
)

func (e *Energy) ingestSample(ctx context.Context, sample Sample) (*models.Reading, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEnergyCore,
		zap.String(common.LoggerFieldEnergyCategory, common.LoggerCategoryEnergyReading),
	)

	reading, err := NormalizeSample(sample)
	if err != nil {
		return nil, err
	}

	logger.Info("Normalized sample for device", zap.Reflect("reading", reading))

	if err := e.Db.Conn.WithContext(ctx).Create(reading).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	logger.Info("Persisted reading for device", zap.Reflect("reading", reading))

	return reading, nil
}

type IReadingImpl struct {
	energy *Energy
}

func (ir *IReadingImpl) IngestSample(ctx context.Context, sample Sample) (*models.Reading, error) {
	return ir.energy.ingestSample(ctx, sample)
}

func (e *Energy) GetIReading() IReading {
	return &IReadingImpl{energy: e}
}
