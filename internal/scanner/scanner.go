package scanner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/efuentes/discover/internal/config"
	"github.com/efuentes/discover/internal/device"
	"github.com/efuentes/discover/internal/logger"
)

const (
	sshPort   = 22
	snmpPort  = 161
	mysqlPort = 3306
)

// capabilities is the table of optional protocol support resolved once at
// scanner construction
type capabilities struct {
	snmp bool
}

// ProbeScanner implements the Scanner interface on top of a Prober
type ProbeScanner struct {
	conf   config.Discovery
	prober Prober
	caps   capabilities
	log    logger.Logger
}

// NewProbeScanner returns a new instance of ProbeScanner
func NewProbeScanner(conf config.Config, prober Prober) *ProbeScanner {
	return &ProbeScanner{
		conf:   conf.Discovery,
		prober: prober,
		caps:   capabilities{snmp: !conf.Discovery.SNMP.Disabled},
		log:    logger.New(),
	}
}

// probeResult is the outcome of one service probe
type probeResult struct {
	ok    bool
	uname string
	errs  []string
}

// ScanDevice runs the per device state machine: liveness gate, then the
// three service probes concurrently, then aggregation. The returned device
// is always marked scanned, even when the scan itself panics.
func (s *ProbeScanner) ScanDevice(ctx context.Context, d device.Device) (result device.Device) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().
				Str("host", d.Host).
				Interface("panic", r).
				Msg("unexpected error scanning device")

			result = d.
				AddError(fmt.Sprintf("(scan) Exception: %v", r)).
				MarkScanned()
		}
	}()

	s.log.Info().Str("host", d.Host).Str("ip", d.IP).Msg("scanning device")

	alive := s.IsAlive(ctx, d)
	d = d.WithAlive(alive)

	if !alive {
		// service handshakes cost far more than a liveness probe, so a
		// dead host skips them entirely
		return d.
			ResetServices().
			AddError("(alive) Host is down").
			MarkScanned()
	}

	var wg sync.WaitGroup
	var sshRes, snmpRes, mysqlRes probeResult

	wg.Add(3)

	go func() {
		defer wg.Done()
		sshRes = s.runProbe("ssh", func() probeResult {
			ok, uname, errs := s.CheckSSH(ctx, d)
			return probeResult{ok: ok, uname: uname, errs: errs}
		})
	}()

	go func() {
		defer wg.Done()
		snmpRes = s.runProbe("snmp", func() probeResult {
			ok, errs := s.CheckSNMP(ctx, d)
			return probeResult{ok: ok, errs: errs}
		})
	}()

	go func() {
		defer wg.Done()
		mysqlRes = s.runProbe("mysql", func() probeResult {
			ok, errs := s.CheckMySQL(ctx, d)
			return probeResult{ok: ok, errs: errs}
		})
	}()

	wg.Wait()

	d = d.WithServices(sshRes.ok, snmpRes.ok, mysqlRes.ok)

	if sshRes.ok {
		d = d.WithUname(sshRes.uname)
	}

	d = d.AddErrors(sshRes.errs...).
		AddErrors(snmpRes.errs...).
		AddErrors(mysqlRes.errs...)

	return d.MarkScanned()
}

// runProbe isolates a single service probe so that a panic in one probe
// degrades that capability instead of killing the whole scan
func (s *ProbeScanner) runProbe(name string, probe func() probeResult) (res probeResult) {
	defer func() {
		if r := recover(); r != nil {
			res = probeResult{
				errs: []string{fmt.Sprintf("(%s) Exception: %v", name, r)},
			}
		}
	}()

	return probe()
}

// IsAlive issues a network level reachability probe. Any probe error is
// treated as not alive rather than propagated.
func (s *ProbeScanner) IsAlive(ctx context.Context, d device.Device) bool {
	ctx, cancel := context.WithTimeout(ctx, s.timeout(s.conf.Timeouts.Ping))
	defer cancel()

	alive, err := s.prober.IsAlive(ctx, d.IP)

	if err != nil {
		s.log.Debug().
			Err(err).
			Str("host", d.Host).
			Msg("liveness probe failed")

		return false
	}

	return alive
}

// IsPortOpen checks tcp reachability of a single port before any protocol
// handshake is attempted
func (s *ProbeScanner) IsPortOpen(ctx context.Context, d device.Device, port int) (bool, []string) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout(s.conf.Timeouts.Port))
	defer cancel()

	open, err := s.prober.IsPortOpen(ctx, d.IP, port)

	if err != nil {
		return false, []string{fmt.Sprintf("(port %d) %s", port, err)}
	}

	return open, nil
}

func (s *ProbeScanner) timeout(seconds int) time.Duration {
	if seconds <= 0 {
		seconds = 2
	}

	return time.Duration(seconds) * time.Second
}
