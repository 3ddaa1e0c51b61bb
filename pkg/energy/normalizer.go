package energy

import (
	"fmt"
	"math"
	"time"

	"energialab.xyz/energy-monitor-service/pkg/models"
)

// Sample is one decoded inbound measurement before normalization.
type Sample struct {
	DeviceID    string
	Timestamp   time.Time
	Current     float64
	Voltage     float64
	ActivePower float64
}

func validFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NormalizeSample validates a sample and completes it into a persistable
// Reading. Reactive power is derived so that apparent^2 = active^2 +
// reactive^2; a physically impossible sample whose active power exceeds
// apparent power gets zero reactive power instead of a rejection, so the
// radicand is clamped at zero. Accumulated energy keeps the meter-side
// convention voltage*current/1000.
func NormalizeSample(sample Sample) (*models.Reading, error) {
	if sample.DeviceID == "" {
		return nil, fmt.Errorf("%w: empty device id", ErrInvalidSample)
	}
	if !validFinite(sample.Current) || sample.Current < 0 {
		return nil, fmt.Errorf("%w: current %v", ErrInvalidSample, sample.Current)
	}
	if !validFinite(sample.Voltage) || sample.Voltage < 0 {
		return nil, fmt.Errorf("%w: voltage %v", ErrInvalidSample, sample.Voltage)
	}
	if !validFinite(sample.ActivePower) || sample.ActivePower < 0 {
		return nil, fmt.Errorf("%w: active power %v", ErrInvalidSample, sample.ActivePower)
	}

	timestamp := sample.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	// Stored instants are always UTC so range predicates over the
	// timestamp column compare chronologically whatever offset the
	// payload carried.
	timestamp = timestamp.UTC()

	apparent := sample.Voltage * sample.Current
	radicand := apparent*apparent - sample.ActivePower*sample.ActivePower
	reactive := math.Sqrt(math.Max(0, radicand))

	return &models.Reading{
		DeviceID:          sample.DeviceID,
		Timestamp:         timestamp,
		Current:           sample.Current,
		Voltage:           sample.Voltage,
		ActivePower:       sample.ActivePower,
		ReactivePower:     reactive,
		AccumulatedEnergy: apparent / 1000,
	}, nil
}
