package discovery

import (
	"context"

	"github.com/efuentes/discover/internal/device"
)

//go:generate mockgen -destination=../mock/discovery/mock_discovery.go -package=mock_discovery . Notifier,Reporter,Service

// Notifier delivers a human readable summary message. Invoked at most
// once per top level discovery call.
type Notifier interface {
	Send(recipient, subject, message string) error
}

// Reporter renders a device list in a named format and returns the path
// of the generated file. Format tags are opaque to the discovery service.
type Reporter interface {
	Generate(devices []device.Device, format string) (string, error)
}

// Service interface for discovering devices on a network
type Service interface {
	DiscoverNetwork(ctx context.Context, cidr string) ([]device.Device, error)
	DiscoverDevice(ctx context.Context, host string, id int) (device.Device, error)
	GetDevices() ([]device.Device, error)
	GenerateReport(format string) (string, error)
}
