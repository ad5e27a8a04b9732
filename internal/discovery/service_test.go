package discovery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/efuentes/discover/internal/config"
	"github.com/efuentes/discover/internal/device"
	"github.com/efuentes/discover/internal/discovery"
	"github.com/efuentes/discover/internal/exception"
	mock_device "github.com/efuentes/discover/internal/mock/device"
	mock_discovery "github.com/efuentes/discover/internal/mock/discovery"
	mock_scanner "github.com/efuentes/discover/internal/mock/scanner"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func markScanned(d device.Device) device.Device {
	return d.WithAlive(true).MarkScanned()
}

func serviceConf() config.Config {
	return config.Config{
		Discovery: config.Discovery{
			Concurrency: 10,
			SNMP: config.SNMPConfig{
				Community: "public",
			},
			Notify: config.NotifyConfig{
				Recipient: "admin",
			},
		},
	}
}

func TestDiscoverNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	ctx := context.Background()

	conf := serviceConf()

	t.Run("expands cidr to usable hosts and scans each one", func(st *testing.T) {
		mockScanner := mock_scanner.NewMockScanner(ctrl)

		mockScanner.EXPECT().
			ScanDevice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d device.Device) device.Device {
				return markScanned(d)
			}).
			Times(2)

		service := discovery.NewDiscoveryService(conf, mockScanner, nil, nil, nil)

		devices, err := service.DiscoverNetwork(ctx, "192.168.1.0/30")

		assert.NoError(st, err)
		assert.Equal(st, 2, len(devices))

		// network and broadcast addresses are excluded, ids are assigned
		// in address order
		assert.Equal(st, 1, devices[0].ID)
		assert.Equal(st, "192.168.1.1", devices[0].IP)
		assert.Equal(st, 2, devices[1].ID)
		assert.Equal(st, "192.168.1.2", devices[1].IP)

		for _, d := range devices {
			assert.True(st, d.Scanned)
		}
	})

	t.Run("returns invalid network format error", func(st *testing.T) {
		mockScanner := mock_scanner.NewMockScanner(ctrl)

		service := discovery.NewDiscoveryService(conf, mockScanner, nil, nil, nil)

		_, err := service.DiscoverNetwork(ctx, "not-a-network")

		assert.Error(st, err)
		assert.True(st, errors.Is(err, exception.ErrInvalidNetworkFormat))
	})

	t.Run("persists each device before and after its scan", func(st *testing.T) {
		mockScanner := mock_scanner.NewMockScanner(ctrl)
		mockRepo := mock_device.NewMockRepo(ctrl)

		mockScanner.EXPECT().
			ScanDevice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d device.Device) device.Device {
				return markScanned(d)
			}).
			Times(2)

		mockRepo.EXPECT().Save(gomock.Any()).Return(nil).Times(4)

		service := discovery.NewDiscoveryService(conf, mockScanner, mockRepo, nil, nil)

		_, err := service.DiscoverNetwork(ctx, "192.168.1.0/30")

		assert.NoError(st, err)
	})

	t.Run("notifies once when discovery completes", func(st *testing.T) {
		mockScanner := mock_scanner.NewMockScanner(ctrl)
		mockNotifier := mock_discovery.NewMockNotifier(ctrl)

		mockScanner.EXPECT().
			ScanDevice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d device.Device) device.Device {
				return markScanned(d)
			}).
			Times(2)

		mockNotifier.EXPECT().
			Send("admin", "Network Discovery Completed", gomock.Any()).
			Return(nil)

		service := discovery.NewDiscoveryService(conf, mockScanner, nil, mockNotifier, nil)

		_, err := service.DiscoverNetwork(ctx, "192.168.1.0/30")

		assert.NoError(st, err)
	})

	t.Run("applies configured community string and mysql credentials", func(st *testing.T) {
		mockScanner := mock_scanner.NewMockScanner(ctrl)

		custom := serviceConf()
		custom.Discovery.SNMP.Community = "private"
		custom.Discovery.MySQL.User = "monitor"
		custom.Discovery.MySQL.Password = "secret"

		var seen device.Device

		mockScanner.EXPECT().
			ScanDevice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d device.Device) device.Device {
				seen = d
				return markScanned(d)
			})

		service := discovery.NewDiscoveryService(custom, mockScanner, nil, nil, nil)

		_, err := service.DiscoverDevice(ctx, "10.0.0.5", 1)

		assert.NoError(st, err)
		assert.Equal(st, "private", seen.SnmpGroup)
		assert.Equal(st, "monitor", seen.MySQLUser)
		assert.Equal(st, "secret", seen.MySQLPassword)
	})
}

func TestDiscoverDevice(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	ctx := context.Background()

	conf := serviceConf()

	t.Run("scans a single host", func(st *testing.T) {
		mockScanner := mock_scanner.NewMockScanner(ctrl)

		mockScanner.EXPECT().
			ScanDevice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d device.Device) device.Device {
				return markScanned(d)
			})

		service := discovery.NewDiscoveryService(conf, mockScanner, nil, nil, nil)

		d, err := service.DiscoverDevice(ctx, "db1.example.com", 7)

		assert.NoError(st, err)
		assert.Equal(st, 7, d.ID)
		assert.Equal(st, "db1.example.com", d.Host)
		assert.True(st, d.Scanned)
	})

	t.Run("normalizes non positive ids", func(st *testing.T) {
		mockScanner := mock_scanner.NewMockScanner(ctrl)

		mockScanner.EXPECT().
			ScanDevice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d device.Device) device.Device {
				return markScanned(d)
			})

		service := discovery.NewDiscoveryService(conf, mockScanner, nil, nil, nil)

		d, err := service.DiscoverDevice(ctx, "db1.example.com", 0)

		assert.NoError(st, err)
		assert.Equal(st, 1, d.ID)
	})
}

func TestGetDevices(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	ctx := context.Background()

	conf := serviceConf()

	t.Run("prefers the repository when configured", func(st *testing.T) {
		mockScanner := mock_scanner.NewMockScanner(ctrl)
		mockRepo := mock_device.NewMockRepo(ctrl)

		persisted := []device.Device{device.New(1, "host1", "192.168.1.1")}

		mockRepo.EXPECT().GetAll().Return(persisted, nil)

		service := discovery.NewDiscoveryService(conf, mockScanner, mockRepo, nil, nil)

		devices, err := service.GetDevices()

		assert.NoError(st, err)
		assert.Equal(st, persisted, devices)
	})

	t.Run("falls back to last in memory results", func(st *testing.T) {
		mockScanner := mock_scanner.NewMockScanner(ctrl)

		mockScanner.EXPECT().
			ScanDevice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d device.Device) device.Device {
				return markScanned(d)
			})

		service := discovery.NewDiscoveryService(conf, mockScanner, nil, nil, nil)

		_, err := service.DiscoverDevice(ctx, "host1", 1)
		assert.NoError(st, err)

		devices, err := service.GetDevices()

		assert.NoError(st, err)
		assert.Equal(st, 1, len(devices))
		assert.Equal(st, "host1", devices[0].Host)
	})
}

func TestGenerateReport(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	conf := serviceConf()

	t.Run("returns empty path without a reporter", func(st *testing.T) {
		mockScanner := mock_scanner.NewMockScanner(ctrl)

		service := discovery.NewDiscoveryService(conf, mockScanner, nil, nil, nil)

		path, err := service.GenerateReport("html")

		assert.NoError(st, err)
		assert.Equal(st, "", path)
	})

	t.Run("delegates to the configured reporter", func(st *testing.T) {
		mockScanner := mock_scanner.NewMockScanner(ctrl)
		mockRepo := mock_device.NewMockRepo(ctrl)
		mockReporter := mock_discovery.NewMockReporter(ctrl)

		persisted := []device.Device{device.New(1, "host1", "192.168.1.1")}

		mockRepo.EXPECT().GetAll().Return(persisted, nil)
		mockReporter.EXPECT().
			Generate(persisted, "csv").
			Return("/tmp/reports/devices.csv", nil)

		service := discovery.NewDiscoveryService(
			conf,
			mockScanner,
			mockRepo,
			nil,
			mockReporter,
		)

		path, err := service.GenerateReport("csv")

		assert.NoError(st, err)
		assert.Equal(st, "/tmp/reports/devices.csv", path)
	})
}
