package scanner

import (
	"context"

	"github.com/efuentes/discover/internal/device"
)

//go:generate mockgen -destination=../mock/scanner/mock_scanner.go -package=mock_scanner . Prober,Scanner

// Prober issues low level network reachability checks against a single
// address. Implementations wrap icmp/tcp probes or an external nmap binary.
type Prober interface {
	IsAlive(ctx context.Context, ip string) (bool, error)
	IsPortOpen(ctx context.Context, ip string, port int) (bool, error)
}

// Scanner probes a device for administrative services and drives the per
// device scan state machine. Probe failures are reported as tagged error
// strings, never as returned errors.
type Scanner interface {
	IsAlive(ctx context.Context, d device.Device) bool
	IsPortOpen(ctx context.Context, d device.Device, port int) (bool, []string)
	CheckSSH(ctx context.Context, d device.Device) (bool, string, []string)
	CheckSNMP(ctx context.Context, d device.Device) (bool, []string)
	CheckMySQL(ctx context.Context, d device.Device) (bool, []string)
	ScanDevice(ctx context.Context, d device.Device) device.Device
}
