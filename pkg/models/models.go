package models

import "time"

// Reading is one timestamped electrical sample from a device. Devices are
// referenced by their hardware MAC address, not by the catalog's surrogate
// id. Rows are append-only: the ingest pipeline creates them and nothing
// ever updates one.
type Reading struct {
	ID                uint   `gorm:"primaryKey"`
	DeviceID          string `gorm:"index;column:device_id"`
	Timestamp         time.Time
	Current           float64
	Voltage           float64
	ActivePower       float64
	ReactivePower     float64
	AccumulatedEnergy float64
}

// Environment groups devices under one owning user.
type Environment struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"index"`
	Name      string
	CreatedAt time.Time

	Devices []Device `gorm:"foreignKey:EnvironmentID;references:ID"`
}

// Device identity is its MAC address (natural key); the catalog owns any
// other bookkeeping ids.
type Device struct {
	MacAddress    string `gorm:"primaryKey"`
	EnvironmentID string `gorm:"index"`
	Description   string
	Active        bool
	ActivatedAt   time.Time

	Readings []Reading `gorm:"foreignKey:DeviceID;references:MacAddress"`
}

// PowerQualitySnapshot is one immutable analysis record over a window.
// The THD fields are computed from a harmonic list that is never
// populated, so they are always zero.
type PowerQualitySnapshot struct {
	ID                 string `gorm:"primaryKey"`
	UserID             string `gorm:"index"`
	PowerFactor        float64
	VoltageFluctMin    float64
	VoltageFluctMax    float64
	VoltageOscillation float64
	THDVoltage         float64
	THDCurrent         float64
	CreatedAt          time.Time
}
