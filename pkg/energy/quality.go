package energy

import (
	"context"
	"fmt"
	"math"
	"time"

	"energialab.xyz/energy-monitor-service/pkg/common"
	"energialab.xyz/energy-monitor-service/pkg/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// totalHarmonicDistortion is the RMS of the harmonic components relative
// to the fundamental mean, in percent. No acquisition path populates the
// component list today, so every stored snapshot carries zero here; the
// formula is kept so the field has defined semantics once harmonics
// arrive.
func totalHarmonicDistortion(components []float64, mean float64) float64 {
	if len(components) == 0 || mean == 0 {
		return 0
	}
	var sumSquares float64
	for _, c := range components {
		sumSquares += c * c
	}
	return math.Sqrt(sumSquares) / mean * 100
}

// analyzePowerQuality computes power-quality indicators over all of the
// user's readings in the window and appends one immutable snapshot.
// Re-analyzing the same window appends another row; history is never
// overwritten.
func (e *Energy) analyzePowerQuality(ctx context.Context, userID string, window Window) (*models.PowerQualitySnapshot, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEnergyCore,
		zap.String(common.LoggerFieldEnergyCategory, common.LoggerCategoryEnergyQuality),
	)

	devices, err := e.Catalog.DevicesOwnedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	macs := common.Mapper(devices, func(d models.Device) string { return d.MacAddress })

	var readings []models.Reading
	if len(macs) > 0 {
		readings, err = e.windowReadings(ctx, macs, window)
		if err != nil {
			return nil, err
		}
	}
	if len(readings) == 0 {
		return nil, fmt.Errorf("%w: user %s, window [%s, %s)",
			ErrEmptyWindow, userID, window.Start, window.End)
	}

	total := float64(len(readings))
	sumVoltage := common.Reducer(readings, func(acc float64, r models.Reading) float64 { return acc + r.Voltage }, 0)
	sumCurrent := common.Reducer(readings, func(acc float64, r models.Reading) float64 { return acc + r.Current }, 0)
	sumActivePower := common.Reducer(readings, func(acc float64, r models.Reading) float64 { return acc + r.ActivePower }, 0)

	minVoltage := math.Inf(1)
	maxVoltage := math.Inf(-1)
	for _, reading := range readings {
		minVoltage = math.Min(minVoltage, reading.Voltage)
		maxVoltage = math.Max(maxVoltage, reading.Voltage)
	}

	var voltageHarmonics []float64
	var currentHarmonics []float64

	meanVoltage := sumVoltage / total
	meanCurrent := sumCurrent / total
	meanActivePower := sumActivePower / total

	apparentPower := meanVoltage * meanCurrent
	powerFactor := 0.0
	if apparentPower != 0 {
		powerFactor = meanActivePower / apparentPower
	}

	snapshot := models.PowerQualitySnapshot{
		ID:                 uuid.NewString(),
		UserID:             userID,
		PowerFactor:        powerFactor,
		VoltageFluctMin:    minVoltage,
		VoltageFluctMax:    maxVoltage,
		VoltageOscillation: meanVoltage - minVoltage,
		THDVoltage:         totalHarmonicDistortion(voltageHarmonics, meanVoltage),
		THDCurrent:         totalHarmonicDistortion(currentHarmonics, meanCurrent),
		CreatedAt:          time.Now(),
	}

	if err := e.Db.Conn.WithContext(ctx).Create(&snapshot).Error; err != nil {
		return nil, err
	}

	logger.Info("Stored power quality snapshot", zap.Reflect("snapshot", snapshot))

	return &snapshot, nil
}

func (e *Energy) listPowerQualityHistory(ctx context.Context, userID string) ([]models.PowerQualitySnapshot, error) {
	var snapshots []models.PowerQualitySnapshot
	err := e.Db.Conn.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&snapshots).Error
	return snapshots, err
}

type IQualityImpl struct {
	energy *Energy
}

func (iq *IQualityImpl) AnalyzePowerQuality(ctx context.Context, userID string, window Window) (*models.PowerQualitySnapshot, error) {
	return iq.energy.analyzePowerQuality(ctx, userID, window)
}

func (iq *IQualityImpl) ListPowerQualityHistory(ctx context.Context, userID string) ([]models.PowerQualitySnapshot, error) {
	return iq.energy.listPowerQualityHistory(ctx, userID)
}

func (e *Energy) GetIQuality() IQuality {
	return &IQualityImpl{energy: e}
}
