package accessory

import (
	"errors"

	"github.com/robgonnella/noip-sensor/internal/exception"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SqliteRepo is our repo implementation for sqlite
type SqliteRepo struct {
	db *gorm.DB
}

// NewSqliteDatabase opens dbFile and migrates the accessory table
func NewSqliteDatabase(dbFile string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})

	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Accessory{}); err != nil {
		return nil, err
	}

	return db, nil
}

// NewSqliteRepo returns a new accessory repo backed by db
func NewSqliteRepo(db *gorm.DB) *SqliteRepo {
	return &SqliteRepo{db: db}
}

// GetAllAccessories returns all accessories from the database
func (r *SqliteRepo) GetAllAccessories() ([]*Accessory, error) {
	accessories := []*Accessory{}

	if result := r.db.Order("hostname").Find(&accessories); result.Error != nil {
		return nil, result.Error
	}

	return accessories, nil
}

// GetAccessoryByUUID returns an accessory from the database
func (r *SqliteRepo) GetAccessoryByUUID(uuid string) (*Accessory, error) {
	if uuid == "" {
		return nil, errors.New("accessory uuid cannot be empty")
	}

	acc := Accessory{}

	if result := r.db.Where(&Accessory{UUID: uuid}).First(&acc); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return &acc, nil
}

// GetAccessoryByHostname returns an accessory from the database by hostname
func (r *SqliteRepo) GetAccessoryByHostname(hostname string) (*Accessory, error) {
	if hostname == "" {
		return nil, errors.New("accessory hostname cannot be empty")
	}

	acc := Accessory{}

	if result := r.db.Where(&Accessory{Hostname: hostname}).First(&acc); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return &acc, nil
}

// AddAccessory creates a new accessory record
func (r *SqliteRepo) AddAccessory(acc *Accessory) (*Accessory, error) {
	if acc.UUID == "" {
		return nil, errors.New("accessory uuid cannot be empty")
	}

	if result := r.db.Create(acc); result.Error != nil {
		return nil, result.Error
	}

	return acc, nil
}

// UpdateAccessory saves all fields of an existing accessory
func (r *SqliteRepo) UpdateAccessory(acc *Accessory) (*Accessory, error) {
	if acc.UUID == "" {
		return nil, errors.New("accessory uuid cannot be empty")
	}

	if result := r.db.Save(acc); result.Error != nil {
		return nil, result.Error
	}

	return acc, nil
}

// RemoveAccessory deletes an accessory record
func (r *SqliteRepo) RemoveAccessory(uuid string) error {
	if uuid == "" {
		return errors.New("accessory uuid cannot be empty")
	}

	return r.db.Delete(&Accessory{UUID: uuid}).Error
}
