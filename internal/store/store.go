package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"energy-tracker-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	DB() *gorm.DB
	ListDevices(ctx context.Context) ([]model.Device, error)
	CreateDevice(ctx context.Context, device *model.Device) error
	ListConsumptions(ctx context.Context) ([]model.Consumption, error)
	CreateConsumption(ctx context.Context, consumption *model.Consumption) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying GORM handle.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// ListDevices returns every device row. Ordering is not guaranteed.
func (s *gormStore) ListDevices(ctx context.Context) ([]model.Device, error) {
	var devices []model.Device
	if err := s.db.WithContext(ctx).Find(&devices).Error; err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	return devices, nil
}

// CreateDevice persists a device, assigning an identifier if it has none.
func (s *gormStore) CreateDevice(ctx context.Context, device *model.Device) error {
	if device.ID == "" {
		device.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(device).Error; err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}
	return nil
}

// ListConsumptions returns every consumption row. Ordering is not guaranteed.
func (s *gormStore) ListConsumptions(ctx context.Context) ([]model.Consumption, error) {
	var consumptions []model.Consumption
	if err := s.db.WithContext(ctx).Find(&consumptions).Error; err != nil {
		return nil, fmt.Errorf("failed to list consumptions: %w", err)
	}
	return consumptions, nil
}

// CreateConsumption persists a consumption snapshot. DeviceID is not checked
// against the devices table.
func (s *gormStore) CreateConsumption(ctx context.Context, consumption *model.Consumption) error {
	if consumption.ID == "" {
		consumption.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(consumption).Error; err != nil {
		return fmt.Errorf("failed to create consumption: %w", err)
	}
	return nil
}
