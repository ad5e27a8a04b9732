package device_test

import (
	"encoding/json"
	"testing"

	"github.com/efuentes/discover/internal/device"
	"github.com/stretchr/testify/assert"
)

func TestDevice(t *testing.T) {
	t.Run("creates unscanned device with defaults", func(st *testing.T) {
		d := device.New(1, "host1", "192.168.1.1")

		assert.Equal(st, 1, d.ID)
		assert.Equal(st, "host1", d.Host)
		assert.Equal(st, "192.168.1.1", d.IP)
		assert.Equal(st, device.DefaultSNMPGroup, d.SnmpGroup)
		assert.Equal(st, device.UnknownUname, d.Uname)
		assert.False(st, d.Alive)
		assert.False(st, d.SSH)
		assert.False(st, d.SNMP)
		assert.False(st, d.MySQL)
		assert.False(st, d.Scanned)
		assert.Empty(st, d.Errors)
	})

	t.Run("transitions return new values", func(st *testing.T) {
		d := device.New(1, "host1", "192.168.1.1")

		updated := d.
			WithAlive(true).
			WithServices(true, false, false).
			WithUname("Linux test 5.4.0").
			AddError("(snmp) Port 161 closed").
			MarkScanned()

		// the original value is untouched
		assert.False(st, d.Alive)
		assert.False(st, d.Scanned)
		assert.Empty(st, d.Errors)

		assert.True(st, updated.Alive)
		assert.True(st, updated.SSH)
		assert.Equal(st, "Linux test 5.4.0", updated.Uname)
		assert.Equal(st, []string{"(snmp) Port 161 closed"}, updated.Errors)
		assert.True(st, updated.Scanned)
	})

	t.Run("AddError never mutates the shared backing array", func(st *testing.T) {
		d := device.New(1, "host1", "192.168.1.1").AddError("first")

		a := d.AddError("second-a")
		b := d.AddError("second-b")

		assert.Equal(st, []string{"first", "second-a"}, a.Errors)
		assert.Equal(st, []string{"first", "second-b"}, b.Errors)
		assert.Equal(st, []string{"first"}, d.Errors)
	})

	t.Run("ResetServices clears service outcomes and uname", func(st *testing.T) {
		d := device.New(1, "host1", "192.168.1.1").
			WithServices(true, true, true).
			WithUname("Linux test 5.4.0")

		reset := d.ResetServices()

		assert.False(st, reset.SSH)
		assert.False(st, reset.SNMP)
		assert.False(st, reset.MySQL)
		assert.Equal(st, device.UnknownUname, reset.Uname)
	})

	t.Run("Key identifies a device record by id", func(st *testing.T) {
		d := device.New(7, "host7", "192.168.1.7")

		assert.Equal(st, "device:7", d.Key())
	})

	t.Run("Status summarizes outcome", func(st *testing.T) {
		d := device.New(1, "host1", "192.168.1.1").
			WithAlive(true).
			AddError("(ssh) Port closed")

		status := d.Status()

		assert.Contains(st, status, "host1")
		assert.Contains(st, status, "alive: true")
		assert.Contains(st, status, "(ssh) Port closed")
	})
}

func TestDeviceMapRoundTrip(t *testing.T) {
	d := device.New(42, "db1.example.com", "10.0.0.7").
		WithSnmpGroup("private").
		WithMySQLCredentials("root", "secret").
		WithAlive(true).
		WithServices(true, false, true).
		WithUname("Linux db1 6.1.0").
		AddErrors("(snmp) Port 161 closed").
		MarkScanned()

	t.Run("round trips through plain map", func(st *testing.T) {
		restored, err := device.FromMap(d.ToMap())

		assert.NoError(st, err)
		assert.Equal(st, d, restored)
		assert.True(st, d.Equal(restored))
	})

	t.Run("round trips through json decoded map", func(st *testing.T) {
		raw, err := json.Marshal(d.ToMap())
		assert.NoError(st, err)

		decoded := map[string]any{}
		assert.NoError(st, json.Unmarshal(raw, &decoded))

		restored, err := device.FromMap(decoded)

		assert.NoError(st, err)
		assert.Equal(st, d, restored)
	})

	t.Run("rejects map without usable id", func(st *testing.T) {
		m := d.ToMap()
		m["id"] = "not-a-number"

		_, err := device.FromMap(m)

		assert.Error(st, err)
	})
}
