package energy

import (
	"context"
	"time"

	"energialab.xyz/energy-monitor-service/pkg/common"
	"energialab.xyz/energy-monitor-service/pkg/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// The reference catalog: environments owned by users and the devices in
// them. The core reads it to resolve "all devices owned by user U";
// writes exist for the catalog CRUD surface and for seeding.

func (e *Energy) createEnvironment(ctx context.Context, userID, name string) (*models.Environment, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEnergyCore,
		zap.String(common.LoggerFieldEnergyCategory, common.LoggerCategoryEnergyCatalog),
	)

	environment := models.Environment{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now(),
	}

	if err := e.Db.Conn.WithContext(ctx).Create(&environment).Error; err != nil {
		return nil, err
	}

	logger.Info("Created environment", zap.Reflect("environment", environment))
	return &environment, nil
}

func (e *Energy) environmentsOf(ctx context.Context, userID string) ([]models.Environment, error) {
	var environments []models.Environment
	err := e.Db.Conn.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&environments).Error
	return environments, err
}

func (e *Energy) createDevice(ctx context.Context, environmentID, macAddress, description string) (*models.Device, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEnergyCore,
		zap.String(common.LoggerFieldEnergyCategory, common.LoggerCategoryEnergyCatalog),
	)

	device := models.Device{
		MacAddress:    macAddress,
		EnvironmentID: environmentID,
		Description:   description,
		Active:        true,
		ActivatedAt:   time.Now(),
	}

	if err := e.Db.Conn.WithContext(ctx).Create(&device).Error; err != nil {
		return nil, err
	}

	logger.Info("Created device", zap.Reflect("device", device))
	return &device, nil
}

func (e *Energy) devicesInEnvironment(ctx context.Context, environmentID string) ([]models.Device, error) {
	var devices []models.Device
	err := e.Db.Conn.WithContext(ctx).
		Where("environment_id = ?", environmentID).
		Find(&devices).Error
	return devices, err
}

// devicesOwnedBy resolves ownership transitively: user -> environments ->
// devices. Two queries, mirroring how the catalog is keyed.
func (e *Energy) devicesOwnedBy(ctx context.Context, userID string) ([]models.Device, error) {
	environments, err := e.environmentsOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(environments) == 0 {
		return nil, nil
	}

	environmentIDs := common.Mapper(environments, func(env models.Environment) string { return env.ID })

	var devices []models.Device
	err = e.Db.Conn.WithContext(ctx).
		Where("environment_id IN ?", environmentIDs).
		Find(&devices).Error
	return devices, err
}

type ICatalogImpl struct {
	energy *Energy
}

func (ic *ICatalogImpl) CreateEnvironment(ctx context.Context, userID, name string) (*models.Environment, error) {
	return ic.energy.createEnvironment(ctx, userID, name)
}

func (ic *ICatalogImpl) EnvironmentsOf(ctx context.Context, userID string) ([]models.Environment, error) {
	return ic.energy.environmentsOf(ctx, userID)
}

func (ic *ICatalogImpl) CreateDevice(ctx context.Context, environmentID, macAddress, description string) (*models.Device, error) {
	return ic.energy.createDevice(ctx, environmentID, macAddress, description)
}

func (ic *ICatalogImpl) DevicesInEnvironment(ctx context.Context, environmentID string) ([]models.Device, error) {
	return ic.energy.devicesInEnvironment(ctx, environmentID)
}

func (ic *ICatalogImpl) DevicesOwnedBy(ctx context.Context, userID string) ([]models.Device, error) {
	return ic.energy.devicesOwnedBy(ctx, userID)
}

func (e *Energy) GetICatalog() ICatalog {
	return &ICatalogImpl{energy: e}
}
