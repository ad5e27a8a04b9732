package device_test

import (
	"os"
	"testing"

	"github.com/efuentes/discover/internal/device"
	"github.com/efuentes/discover/internal/exception"
	"github.com/efuentes/discover/internal/test_util"
	"github.com/stretchr/testify/assert"
)

func TestDeviceSqliteRepo(t *testing.T) {
	testDBFile := "device.db"

	defer func() {
		os.RemoveAll(testDBFile)
	}()

	db, err := test_util.GetDBConnection(testDBFile)

	if err != nil {
		t.Logf("failed to create test db: %s", err.Error())
		t.FailNow()
	}

	if err := test_util.Migrate(db, device.DeviceModel{}); err != nil {
		t.Logf("failed to migrate test db: %s", err.Error())
		t.FailNow()
	}

	repo := device.NewSqliteRepo(db)

	newDevice := device.New(1, "host1", "192.168.1.1").
		WithAlive(true).
		WithServices(true, false, false).
		WithUname("Linux host1 5.4.0").
		AddErrors("(snmp) Port 161 closed", "(mysql) No MySQL user provided").
		MarkScanned()

	t.Run("Get returns record not found error", func(st *testing.T) {
		_, err := repo.Get(99)

		assert.Error(st, err)
		assert.Equal(st, exception.ErrRecordNotFound, err)
	})

	t.Run("rejects non positive device ids", func(st *testing.T) {
		err := repo.Save(device.Device{})

		assert.Error(st, err)

		assert.Error(st, repo.Delete(0))
	})

	t.Run("saves device", func(st *testing.T) {
		assert.NoError(st, repo.Save(newDevice))
	})

	t.Run("gets device by id including error sequence", func(st *testing.T) {
		found, err := repo.Get(1)

		assert.NoError(st, err)
		assert.Equal(st, newDevice, found)
	})

	t.Run("save upserts by id", func(st *testing.T) {
		updated := newDevice.AddError("(ssh) Port closed")

		assert.NoError(st, repo.Save(updated))

		found, err := repo.Get(1)

		assert.NoError(st, err)
		assert.Equal(st, updated, found)
	})

	t.Run("gets all devices ordered by id", func(st *testing.T) {
		second := device.New(2, "host2", "192.168.1.2")

		assert.NoError(st, repo.Save(second))

		found, err := repo.GetAll()

		assert.NoError(st, err)
		assert.Equal(st, 2, len(found))
		assert.Equal(st, 1, found[0].ID)
		assert.Equal(st, 2, found[1].ID)
	})

	t.Run("deletes device", func(st *testing.T) {
		assert.NoError(st, repo.Delete(1))

		_, err := repo.Get(1)

		assert.Error(st, err)
		assert.Equal(st, exception.ErrRecordNotFound, err)
	})
}
