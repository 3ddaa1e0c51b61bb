package energy_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energialab.xyz/energy-monitor-service/pkg/common"
	"energialab.xyz/energy-monitor-service/pkg/energy"
	_ "energialab.xyz/energy-monitor-service/pkg/testing"
)

func TestAnalyzePowerQuality(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, energyObj, _ := GetMockEnergyWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	userID, mac := seedUserWithDevice(t, energyObj)

	at := time.Date(2024, 3, 10, 11, 0, 0, 0, manausLocation)
	ingestReadingAt(t, energyObj, mac, at, 2, 220, 400)
	ingestReadingAt(t, energyObj, mac, at.Add(10*time.Minute), 2, 210, 400)
	ingestReadingAt(t, energyObj, mac, at.Add(20*time.Minute), 2, 230, 400)

	window, err := energy.ResolveDay("2024-03-10")
	require.NoError(t, err)

	snapshot, err := energyObj.Quality.AnalyzePowerQuality(context.Background(), userID, window)
	require.NoError(t, err)

	// mean voltage 220, mean current 2, mean active power 400:
	// apparent = 440, power factor = 400/440.
	assert.InDelta(t, 400.0/440.0, snapshot.PowerFactor, 1e-9)
	assert.Equal(t, 210.0, snapshot.VoltageFluctMin)
	assert.Equal(t, 230.0, snapshot.VoltageFluctMax)
	assert.InDelta(t, 10.0, snapshot.VoltageOscillation, 1e-9) // mean - min

	// No harmonic acquisition exists, so distortion is always zero.
	assert.Equal(t, 0.0, snapshot.THDVoltage)
	assert.Equal(t, 0.0, snapshot.THDCurrent)

	assert.Equal(t, userID, snapshot.UserID)
	assert.NotEmpty(t, snapshot.ID)
}

func TestAnalyzePowerQuality_EmptyWindow(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, energyObj, _ := GetMockEnergyWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	userID, _ := seedUserWithDevice(t, energyObj)

	window, err := energy.ResolveDay("2024-03-10")
	require.NoError(t, err)

	_, err = energyObj.Quality.AnalyzePowerQuality(context.Background(), userID, window)
	assert.ErrorIs(t, err, energy.ErrEmptyWindow)

	// A user with no devices at all gets an empty window too, not a
	// scope error.
	_, err = energyObj.Quality.AnalyzePowerQuality(context.Background(), uuid.NewString(), window)
	assert.ErrorIs(t, err, energy.ErrEmptyWindow)
}

func TestAnalyzePowerQuality_AppendsHistory(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, energyObj, _ := GetMockEnergyWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	userID, mac := seedUserWithDevice(t, energyObj)

	at := time.Date(2024, 3, 10, 11, 0, 0, 0, manausLocation)
	ingestReadingAt(t, energyObj, mac, at, 2, 220, 400)

	window, err := energy.ResolveDay("2024-03-10")
	require.NoError(t, err)

	// Re-analyzing the same window appends a second independent row.
	first, err := energyObj.Quality.AnalyzePowerQuality(context.Background(), userID, window)
	require.NoError(t, err)
	second, err := energyObj.Quality.AnalyzePowerQuality(context.Background(), userID, window)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	history, err := energyObj.Quality.ListPowerQualityHistory(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Newest first.
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
}

func TestAnalyzePowerQuality_ZeroApparentPower(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, energyObj, _ := GetMockEnergyWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	userID, mac := seedUserWithDevice(t, energyObj)

	// Zero current makes apparent power zero; the power factor must be
	// zero, not a division by zero.
	at := time.Date(2024, 3, 10, 11, 0, 0, 0, manausLocation)
	ingestReadingAt(t, energyObj, mac, at, 0, 220, 0)

	window, err := energy.ResolveDay("2024-03-10")
	require.NoError(t, err)

	snapshot, err := energyObj.Quality.AnalyzePowerQuality(context.Background(), userID, window)
	require.NoError(t, err)
	assert.Equal(t, 0.0, snapshot.PowerFactor)
}
