package energy_test

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"energialab.xyz/energy-monitor-service/pkg/db"
	"energialab.xyz/energy-monitor-service/pkg/energy"
	"energialab.xyz/energy-monitor-service/pkg/energy/mocks"
)

var manausLocation = func() *time.Location {
	loc, err := time.LoadLocation(energy.ReferenceTimezone)
	if err != nil {
		panic(err)
	}
	return loc
}()

func GetMockEnergyWithMemorySqliteDialector(t *testing.T, useMockCatalog bool) (
	*gomock.Controller,
	*energy.Energy,
	*mocks.MockICatalog,
) {
	ctrl := gomock.NewController(t)

	mockICatalog := mocks.NewMockICatalog(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	energyInstance := &energy.Energy{Db: *dbInstance}

	catalogService := energyInstance.GetICatalog()
	if useMockCatalog {
		catalogService = mockICatalog
	}

	energyInstance.WithServices(energy.ServiceOpts{
		Reading:   energyInstance.GetIReading(),
		Catalog:   catalogService,
		Aggregate: energyInstance.GetIAggregate(),
		Quality:   energyInstance.GetIQuality(),
	})

	return ctrl, energyInstance, mockICatalog
}

// seedUserWithDevice creates one environment with one device for a fresh
// user and returns both identifiers.
func seedUserWithDevice(t *testing.T, energyObj *energy.Energy) (userID, mac string) {
	t.Helper()
	ctx := context.Background()

	userID = uuid.NewString()
	environment, err := energyObj.Catalog.CreateEnvironment(ctx, userID, "sala")
	require.NoError(t, err)

	mac = uuid.NewString()
	_, err = energyObj.Catalog.CreateDevice(ctx, environment.ID, mac, "medidor")
	require.NoError(t, err)

	return userID, mac
}

// ingestReadingAt stores one normalized reading for the device at the
// given instant.
func ingestReadingAt(t *testing.T, energyObj *energy.Energy, mac string, at time.Time, current, voltage, activePower float64) {
	t.Helper()

	_, err := energyObj.Reading.IngestSample(context.Background(), energy.Sample{
		DeviceID:    mac,
		Timestamp:   at,
		Current:     current,
		Voltage:     voltage,
		ActivePower: activePower,
	})
	require.NoError(t, err)
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
