package energy_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energialab.xyz/energy-monitor-service/pkg/common"
	"energialab.xyz/energy-monitor-service/pkg/models"
	_ "energialab.xyz/energy-monitor-service/pkg/testing"
)

func TestCatalogEnvironments(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, energyObj, _ := GetMockEnergyWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.NewString()

	created, err := energyObj.Catalog.CreateEnvironment(ctx, userID, "cozinha")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, userID, created.UserID)

	environments, err := energyObj.Catalog.EnvironmentsOf(ctx, userID)
	require.NoError(t, err)
	require.Len(t, environments, 1)
	assert.Equal(t, "cozinha", environments[0].Name)
}

func TestCatalogDevices(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, energyObj, _ := GetMockEnergyWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.NewString()

	environment, err := energyObj.Catalog.CreateEnvironment(ctx, userID, "sala")
	require.NoError(t, err)

	mac := uuid.NewString()
	device, err := energyObj.Catalog.CreateDevice(ctx, environment.ID, mac, "tomada")
	require.NoError(t, err)
	assert.True(t, device.Active)
	assert.False(t, device.ActivatedAt.IsZero())

	devices, err := energyObj.Catalog.DevicesInEnvironment(ctx, environment.ID)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, mac, devices[0].MacAddress)
}

func TestDevicesOwnedBy_Transitive(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, energyObj, _ := GetMockEnergyWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.NewString()

	// Devices spread over two environments of the same user.
	first, err := energyObj.Catalog.CreateEnvironment(ctx, userID, "sala")
	require.NoError(t, err)
	second, err := energyObj.Catalog.CreateEnvironment(ctx, userID, "quarto")
	require.NoError(t, err)

	macs := map[string]bool{}
	for _, environmentID := range []string{first.ID, second.ID} {
		mac := uuid.NewString()
		_, err := energyObj.Catalog.CreateDevice(ctx, environmentID, mac, "")
		require.NoError(t, err)
		macs[mac] = true
	}

	owned, err := energyObj.Catalog.DevicesOwnedBy(ctx, userID)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	for _, device := range owned {
		assert.True(t, macs[device.MacAddress])
	}

	ownedMacs := common.Mapper(owned, func(d models.Device) string { return d.MacAddress })
	assert.NotEqual(t, ownedMacs[0], ownedMacs[1])

	// Another user owns nothing.
	none, err := energyObj.Catalog.DevicesOwnedBy(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, none)
}
