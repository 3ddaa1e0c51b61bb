package energy

import (
	"context"
	"fmt"
	"sort"
	"time"

	"energialab.xyz/energy-monitor-service/pkg/common"
	"energialab.xyz/energy-monitor-service/pkg/models"
	"go.uber.org/zap"
)

type SeriesMetric string

const (
	SeriesMetricConsumption SeriesMetric = "consumption"
	SeriesMetricVoltage     SeriesMetric = "voltage"
)

// HourlyBucket is one entry of a sparse per-hour series. Hour is the
// hour-truncated timestamp in the reference timezone; hours with no
// readings are omitted, never emitted as zero.
type HourlyBucket struct {
	Hour  time.Time `json:"hour"`
	Value float64   `json:"value"`
	Count int       `json:"count"`
}

type Summary struct {
	DeviceCount      int     `json:"deviceCount"`
	EnvironmentCount int     `json:"environmentCount"`
	AverageVoltage   float64 `json:"averageVoltage"`
	TotalConsumption float64 `json:"totalConsumption"`
}

// deviceScope resolves the MAC addresses of all devices the user owns.
// A user with zero devices is a scope error, distinct from a window with
// zero readings.
func (e *Energy) deviceScope(ctx context.Context, userID string) ([]string, error) {
	devices, err := e.Catalog.DevicesOwnedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("%w: user %s", ErrEmptyScope, userID)
	}
	return common.Mapper(devices, func(d models.Device) string { return d.MacAddress }), nil
}

// accumulatedConsumption sums active power over the window, converted to
// kW at this boundary. The sum is one kW-unit per sample, not a
// time-weighted integral, so the physical unit depends on sample cadence.
// An empty window sums to zero.
func (e *Energy) accumulatedConsumption(ctx context.Context, userID string, window Window) (float64, error) {
	macs, err := e.deviceScope(ctx, userID)
	if err != nil {
		return 0, err
	}

	var totalWatts float64
	err = e.Db.Conn.WithContext(ctx).
		Model(&models.Reading{}).
		Where("device_id IN ? AND timestamp >= ? AND timestamp < ?", macs, window.Start.UTC(), window.End.UTC()).
		Select("COALESCE(SUM(active_power), 0)").
		Scan(&totalWatts).Error
	if err != nil {
		return 0, err
	}

	return totalWatts / 1000, nil
}

// Window bounds are bound as UTC to match the stored instants, which the
// normalizer writes in UTC.
func (e *Energy) windowReadings(ctx context.Context, macs []string, window Window) ([]models.Reading, error) {
	var readings []models.Reading
	err := e.Db.Conn.WithContext(ctx).
		Where("device_id IN ? AND timestamp >= ? AND timestamp < ?", macs, window.Start.UTC(), window.End.UTC()).
		Order("timestamp").
		Find(&readings).Error
	return readings, err
}

func (e *Energy) hourlySeries(ctx context.Context, userID string, window Window, metric SeriesMetric) ([]HourlyBucket, error) {
	if metric != SeriesMetricConsumption && metric != SeriesMetricVoltage {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	macs, err := e.deviceScope(ctx, userID)
	if err != nil {
		return nil, err
	}

	readings, err := e.windowReadings(ctx, macs, window)
	if err != nil {
		return nil, err
	}

	buckets := map[time.Time]*HourlyBucket{}
	for _, reading := range readings {
		local := reading.Timestamp.In(referenceLocation)
		hour := time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), 0, 0, 0, referenceLocation)

		bucket, ok := buckets[hour]
		if !ok {
			bucket = &HourlyBucket{Hour: hour}
			buckets[hour] = bucket
		}

		switch metric {
		case SeriesMetricConsumption:
			bucket.Value += reading.ActivePower / 1000
		case SeriesMetricVoltage:
			bucket.Value += reading.Voltage
		}
		bucket.Count++
	}

	series := make([]HourlyBucket, 0, len(buckets))
	for _, bucket := range buckets {
		if metric == SeriesMetricVoltage {
			bucket.Value /= float64(bucket.Count)
		}
		series = append(series, *bucket)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Hour.Before(series[j].Hour) })

	return series, nil
}

// statisticsSummary uses store-side aggregation for the voltage average
// and the consumption sum rather than loading rows.
func (e *Energy) statisticsSummary(ctx context.Context, userID string, window Window) (*Summary, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEnergyCore,
		zap.String(common.LoggerFieldEnergyCategory, common.LoggerCategoryEnergyAggregate),
	)

	environments, err := e.Catalog.EnvironmentsOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	macs, err := e.deviceScope(ctx, userID)
	if err != nil {
		return nil, err
	}

	var averageVoltage float64
	err = e.Db.Conn.WithContext(ctx).
		Model(&models.Reading{}).
		Where("device_id IN ? AND timestamp >= ? AND timestamp < ?", macs, window.Start.UTC(), window.End.UTC()).
		Select("COALESCE(AVG(voltage), 0)").
		Scan(&averageVoltage).Error
	if err != nil {
		return nil, err
	}

	var totalWatts float64
	err = e.Db.Conn.WithContext(ctx).
		Model(&models.Reading{}).
		Where("device_id IN ? AND timestamp >= ? AND timestamp < ?", macs, window.Start.UTC(), window.End.UTC()).
		Select("COALESCE(SUM(active_power), 0)").
		Scan(&totalWatts).Error
	if err != nil {
		return nil, err
	}

	summary := Summary{
		DeviceCount:      len(macs),
		EnvironmentCount: len(environments),
		AverageVoltage:   averageVoltage,
		TotalConsumption: totalWatts / 1000,
	}

	logger.Info("Computed statistics summary",
		zap.String("user_id", userID),
		zap.Reflect("summary", summary))

	return &summary, nil
}

type IAggregateImpl struct {
	energy *Energy
}

func (ia *IAggregateImpl) AccumulatedConsumption(ctx context.Context, userID string, window Window) (float64, error) {
	return ia.energy.accumulatedConsumption(ctx, userID, window)
}

func (ia *IAggregateImpl) HourlySeries(ctx context.Context, userID string, window Window, metric SeriesMetric) ([]HourlyBucket, error) {
	return ia.energy.hourlySeries(ctx, userID, window, metric)
}

func (ia *IAggregateImpl) StatisticsSummary(ctx context.Context, userID string, window Window) (*Summary, error) {
	return ia.energy.statisticsSummary(ctx, userID, window)
}

func (e *Energy) GetIAggregate() IAggregate {
	return &IAggregateImpl{energy: e}
}
