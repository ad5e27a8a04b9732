package scanner

import (
	"context"
	"net"
	"strconv"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

// NetProber is the default Prober implementation using icmp echo for
// liveness and tcp dials for port reachability
type NetProber struct {
	privileged bool
}

// NewNetProber returns a new instance of NetProber. Privileged mode sends
// raw icmp packets and requires elevated permissions; unprivileged mode
// uses udp style icmp available to regular users on linux.
func NewNetProber(privileged bool) *NetProber {
	return &NetProber{privileged: privileged}
}

// IsAlive sends a single icmp echo request and reports whether a reply
// came back before the context deadline
func (p *NetProber) IsAlive(ctx context.Context, ip string) (bool, error) {
	pinger, err := probing.NewPinger(ip)

	if err != nil {
		return false, err
	}

	pinger.Count = 1
	pinger.SetPrivileged(p.privileged)

	if deadline, ok := ctx.Deadline(); ok {
		pinger.Timeout = time.Until(deadline)
	}

	if err := pinger.RunWithContext(ctx); err != nil {
		return false, err
	}

	return pinger.Statistics().PacketsRecv > 0, nil
}

// IsPortOpen dials the tcp port. Any dial failure, refusal or timeout
// included, means the port is treated as closed.
func (p *NetProber) IsPortOpen(ctx context.Context, ip string, port int) (bool, error) {
	dialer := &net.Dialer{}

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(ip, strconv.Itoa(port)))

	if err != nil {
		return false, nil
	}

	conn.Close()

	return true, nil
}
