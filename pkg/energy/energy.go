package energy

import (
	"context"

	"energialab.xyz/energy-monitor-service/pkg/db"
	"energialab.xyz/energy-monitor-service/pkg/models"
)

type IReading interface {
	IngestSample(ctx context.Context, sample Sample) (*models.Reading, error)
}

type ICatalog interface {
	CreateEnvironment(ctx context.Context, userID, name string) (*models.Environment, error)
	EnvironmentsOf(ctx context.Context, userID string) ([]models.Environment, error)
	CreateDevice(ctx context.Context, environmentID, macAddress, description string) (*models.Device, error)
	DevicesInEnvironment(ctx context.Context, environmentID string) ([]models.Device, error)
	DevicesOwnedBy(ctx context.Context, userID string) ([]models.Device, error)
}

type IAggregate interface {
	AccumulatedConsumption(ctx context.Context, userID string, window Window) (float64, error)
	HourlySeries(ctx context.Context, userID string, window Window, metric SeriesMetric) ([]HourlyBucket, error)
	StatisticsSummary(ctx context.Context, userID string, window Window) (*Summary, error)
}

type IQuality interface {
	AnalyzePowerQuality(ctx context.Context, userID string, window Window) (*models.PowerQualitySnapshot, error)
	ListPowerQualityHistory(ctx context.Context, userID string) ([]models.PowerQualitySnapshot, error)
}

type Energy struct {
	Db        db.DB
	Reading   IReading
	Catalog   ICatalog
	Aggregate IAggregate
	Quality   IQuality
}

type ServiceOpts struct {
	Reading   IReading
	Catalog   ICatalog
	Aggregate IAggregate
	Quality   IQuality
}

func (e *Energy) WithServices(opts ServiceOpts) *Energy {
	if opts.Reading != nil {
		e.Reading = opts.Reading
	}
	if opts.Catalog != nil {
		e.Catalog = opts.Catalog
	}
	if opts.Aggregate != nil {
		e.Aggregate = opts.Aggregate
	}
	if opts.Quality != nil {
		e.Quality = opts.Quality
	}
	return e
}
