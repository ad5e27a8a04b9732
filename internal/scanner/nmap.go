package scanner

import (
	"context"
	"strconv"

	"github.com/Ullaakut/nmap/v3"
	"github.com/efuentes/discover/internal/logger"
)

// NmapProber is a Prober implementation backed by the nmap binary.
// Selectable via the discovery.scanner config for environments where raw
// icmp sockets are unavailable.
type NmapProber struct {
	log logger.Logger
}

// NewNmapProber returns a new instance of NmapProber
func NewNmapProber() *NmapProber {
	return &NmapProber{log: logger.New()}
}

// IsAlive runs an nmap ping scan (-sn) against a single address
func (p *NmapProber) IsAlive(ctx context.Context, ip string) (bool, error) {
	scan, err := nmap.NewScanner(
		ctx,
		nmap.WithTargets(ip),
		nmap.WithPingScan(),
		nmap.WithTimingTemplate(nmap.TimingFastest),
	)

	if err != nil {
		return false, err
	}

	result, warnings, err := scan.Run()

	p.logWarnings(warnings)

	if err != nil {
		return false, err
	}

	for _, host := range result.Hosts {
		if host.Status.String() == "up" {
			return true, nil
		}
	}

	return false, nil
}

// IsPortOpen runs a single port nmap scan against a single address
func (p *NmapProber) IsPortOpen(ctx context.Context, ip string, port int) (bool, error) {
	scan, err := nmap.NewScanner(
		ctx,
		nmap.WithTargets(ip),
		nmap.WithPorts(strconv.Itoa(port)),
		nmap.WithTimingTemplate(nmap.TimingFastest),
	)

	if err != nil {
		return false, err
	}

	result, warnings, err := scan.Run()

	p.logWarnings(warnings)

	if err != nil {
		return false, err
	}

	for _, host := range result.Hosts {
		if host.Status.String() != "up" {
			continue
		}

		for _, scanned := range host.Ports {
			if int(scanned.ID) == port && scanned.Status() == nmap.Open {
				return true, nil
			}
		}
	}

	return false, nil
}

func (p *NmapProber) logWarnings(warnings *[]string) {
	if warnings == nil || len(*warnings) == 0 {
		return
	}

	fields := map[string]interface{}{}

	for i, warning := range *warnings {
		fields[strconv.Itoa(i)] = warning
	}

	p.log.Warn().Fields(fields).Msg("encountered nmap warnings")
}
