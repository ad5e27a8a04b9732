package device

import (
	"encoding/json"
	"errors"

	"github.com/efuentes/discover/internal/exception"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DeviceModel is our database model for persisted scan results
type DeviceModel struct {
	ID            int `gorm:"primaryKey"`
	Host          string
	IP            string
	SnmpGroup     string
	Alive         bool
	SSH           bool
	SNMP          bool
	MySQL         bool
	MySQLUser     string
	MySQLPassword string
	Uname         string
	Errors        datatypes.JSON
	Scanned       bool
}

// TableName overrides gorm's default pluralized snake case name
func (DeviceModel) TableName() string {
	return "devices"
}

// SqliteRepo is our repo implementation for sqlite
type SqliteRepo struct {
	db *gorm.DB
}

// NewSqliteRepo returns a new sqlite backed device repo
func NewSqliteRepo(db *gorm.DB) *SqliteRepo {
	return &SqliteRepo{db: db}
}

// Save upserts a device scan result keyed by device id
func (r *SqliteRepo) Save(d Device) error {
	if d.ID <= 0 {
		return errors.New("device id must be a positive integer")
	}

	model, err := toModel(d)

	if err != nil {
		return err
	}

	return r.db.Save(model).Error
}

// Get returns a single device from the database by id if found
func (r *SqliteRepo) Get(id int) (Device, error) {
	model := DeviceModel{ID: id}

	if result := r.db.First(&model); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Device{}, exception.ErrRecordNotFound
		}

		return Device{}, result.Error
	}

	return fromModel(model)
}

// GetAll returns all devices from the database ordered by id
func (r *SqliteRepo) GetAll() ([]Device, error) {
	models := []DeviceModel{}

	if result := r.db.Order("id").Find(&models); result.Error != nil {
		return nil, result.Error
	}

	devices := make([]Device, 0, len(models))

	for _, model := range models {
		d, err := fromModel(model)

		if err != nil {
			return nil, err
		}

		devices = append(devices, d)
	}

	return devices, nil
}

// Delete removes a device from the database
func (r *SqliteRepo) Delete(id int) error {
	if id <= 0 {
		return errors.New("device id must be a positive integer")
	}

	return r.db.Delete(&DeviceModel{ID: id}).Error
}

func toModel(d Device) (*DeviceModel, error) {
	errs := d.Errors

	if errs == nil {
		errs = []string{}
	}

	rawErrors, err := json.Marshal(errs)

	if err != nil {
		return nil, err
	}

	return &DeviceModel{
		ID:            d.ID,
		Host:          d.Host,
		IP:            d.IP,
		SnmpGroup:     d.SnmpGroup,
		Alive:         d.Alive,
		SSH:           d.SSH,
		SNMP:          d.SNMP,
		MySQL:         d.MySQL,
		MySQLUser:     d.MySQLUser,
		MySQLPassword: d.MySQLPassword,
		Uname:         d.Uname,
		Errors:        datatypes.JSON(rawErrors),
		Scanned:       d.Scanned,
	}, nil
}

func fromModel(model DeviceModel) (Device, error) {
	errs := []string{}

	if len(model.Errors) > 0 {
		if err := json.Unmarshal(model.Errors, &errs); err != nil {
			return Device{}, err
		}
	}

	return Device{
		ID:            model.ID,
		Host:          model.Host,
		IP:            model.IP,
		SnmpGroup:     model.SnmpGroup,
		Alive:         model.Alive,
		SSH:           model.SSH,
		SNMP:          model.SNMP,
		MySQL:         model.MySQL,
		MySQLUser:     model.MySQLUser,
		MySQLPassword: model.MySQLPassword,
		Uname:         model.Uname,
		Errors:        errs,
		Scanned:       model.Scanned,
	}, nil
}
