package discovery

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/efuentes/discover/internal/config"
	"github.com/efuentes/discover/internal/device"
	"github.com/efuentes/discover/internal/exception"
	"github.com/efuentes/discover/internal/logger"
	"github.com/efuentes/discover/internal/scanner"
	"github.com/projectdiscovery/mapcidr"
	"golang.org/x/sync/errgroup"
)

// DiscoveryService expands scan targets into devices, drives concurrent
// scans, and hands results to the optional repository, notification, and
// report collaborators.
type DiscoveryService struct {
	conf        config.Config
	scanner     scanner.Scanner
	repo        device.Repo
	notifier    Notifier
	reporter    Reporter
	log         logger.Logger
	mux         sync.Mutex
	lastResults []device.Device
}

// NewDiscoveryService returns a new instance of DiscoveryService. The
// repo, notifier, and reporter collaborators are optional and may be nil.
func NewDiscoveryService(
	conf config.Config,
	scnr scanner.Scanner,
	repo device.Repo,
	notifier Notifier,
	reporter Reporter,
) *DiscoveryService {
	return &DiscoveryService{
		conf:     conf,
		scanner:  scnr,
		repo:     repo,
		notifier: notifier,
		reporter: reporter,
		log:      logger.New(),
	}
}

// DiscoverNetwork expands a CIDR block into its usable host addresses and
// scans them concurrently. The returned list preserves address order, one
// entry per host, each carrying its own failure detail.
func (s *DiscoveryService) DiscoverNetwork(
	ctx context.Context,
	cidr string,
) ([]device.Device, error) {
	hosts, err := usableHostAddresses(cidr)

	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("network", cidr).
		Int("hosts", len(hosts)).
		Msg("starting network discovery")

	devices := make([]device.Device, len(hosts))

	for i, ip := range hosts {
		devices[i] = s.newDevice(i+1, ip)
		s.save(devices[i])
	}

	group, groupCtx := errgroup.WithContext(ctx)

	if s.conf.Discovery.Concurrency > 0 {
		group.SetLimit(s.conf.Discovery.Concurrency)
	}

	for i := range devices {
		i := i

		group.Go(func() error {
			devices[i] = s.scanner.ScanDevice(groupCtx, devices[i])
			s.save(devices[i])
			return nil
		})
	}

	// scan failures degrade individual devices, never the batch
	_ = group.Wait()

	s.setLastResults(devices)
	s.notify(cidr, devices)

	s.log.Info().Str("network", cidr).Msg("network discovery completed")

	return devices, nil
}

// DiscoverDevice scans exactly one host
func (s *DiscoveryService) DiscoverDevice(
	ctx context.Context,
	host string,
	id int,
) (device.Device, error) {
	if id < 1 {
		id = 1
	}

	s.log.Info().Str("host", host).Msg("starting device discovery")

	d := s.newDevice(id, host)
	s.save(d)

	d = s.scanner.ScanDevice(ctx, d)
	s.save(d)

	s.setLastResults([]device.Device{d})

	s.log.Info().Str("host", host).Msg("device discovery completed")

	return d, nil
}

// GetDevices returns persisted results when a repository is configured,
// otherwise the most recent in-memory result set
func (s *DiscoveryService) GetDevices() ([]device.Device, error) {
	if s.repo != nil {
		return s.repo.GetAll()
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	results := make([]device.Device, len(s.lastResults))
	copy(results, s.lastResults)

	return results, nil
}

// GenerateReport renders the current result set through the configured
// report collaborator. Returns an empty path when none is configured.
func (s *DiscoveryService) GenerateReport(format string) (string, error) {
	if s.reporter == nil {
		return "", nil
	}

	devices, err := s.GetDevices()

	if err != nil {
		return "", err
	}

	return s.reporter.Generate(devices, format)
}

// newDevice builds an unscanned device carrying the configured community
// string and default mysql credentials
func (s *DiscoveryService) newDevice(id int, host string) device.Device {
	d := device.New(id, host, host)

	if community := s.conf.Discovery.SNMP.Community; community != "" {
		d = d.WithSnmpGroup(community)
	}

	mysqlConf := s.conf.Discovery.MySQL

	if mysqlConf.User != "" {
		d = d.WithMySQLCredentials(mysqlConf.User, mysqlConf.Password)
	}

	return d
}

// save upserts fire-and-forget; persistence failures are logged, never
// allowed to interrupt a scan
func (s *DiscoveryService) save(d device.Device) {
	if s.repo == nil {
		return
	}

	if err := s.repo.Save(d); err != nil {
		s.log.Error().
			Err(err).
			Str("key", d.Key()).
			Str("host", d.Host).
			Msg("failed to save device")
	}
}

func (s *DiscoveryService) setLastResults(devices []device.Device) {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.lastResults = devices
}

func (s *DiscoveryService) notify(cidr string, devices []device.Device) {
	if s.notifier == nil {
		return
	}

	aliveCount := 0

	for _, d := range devices {
		if d.Alive {
			aliveCount++
		}
	}

	message := fmt.Sprintf(
		"Network discovery completed for %s.\nFound %d devices, %d are alive.",
		cidr,
		len(devices),
		aliveCount,
	)

	recipient := s.conf.Discovery.Notify.Recipient

	if err := s.notifier.Send(recipient, "Network Discovery Completed", message); err != nil {
		s.log.Error().Err(err).Msg("failed to send discovery notification")
	}
}

// usableHostAddresses expands a CIDR block to its usable host addresses,
// excluding the network and broadcast addresses per standard CIDR
// semantics. /31 and /32 blocks have no such reserved addresses.
func usableHostAddresses(cidr string) ([]string, error) {
	_, ipnet, err := net.ParseCIDR(cidr)

	if err != nil {
		return nil, fmt.Errorf("%w: %s", exception.ErrInvalidNetworkFormat, cidr)
	}

	ips, err := mapcidr.IPAddresses(cidr)

	if err != nil {
		return nil, fmt.Errorf("%w: %s", exception.ErrInvalidNetworkFormat, cidr)
	}

	ones, bits := ipnet.Mask.Size()

	if bits-ones < 2 {
		return ips, nil
	}

	network := ipnet.IP.String()
	broadcast := broadcastAddress(ipnet).String()

	hosts := make([]string, 0, len(ips))

	for _, ip := range ips {
		if ip == network || ip == broadcast {
			continue
		}

		hosts = append(hosts, ip)
	}

	return hosts, nil
}

func broadcastAddress(ipnet *net.IPNet) net.IP {
	ip := ipnet.IP.To4()

	if ip == nil {
		ip = ipnet.IP
	}

	broadcast := make(net.IP, len(ip))

	for i := range ip {
		broadcast[i] = ip[i] | ^ipnet.Mask[i]
	}

	return broadcast
}
