package scanner

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/efuentes/discover/internal/device"
	"golang.org/x/crypto/ssh"
)

// unameCommand is the fixed introspection command run on successful
// ssh authentication
const unameCommand = "uname -a"

// CheckSSH checks ssh availability. On an open port it attempts an
// authenticated connection using the configured identity and records the
// remote uname. Authentication, connection, and command failures each
// produce a distinct tagged error.
func (s *ProbeScanner) CheckSSH(ctx context.Context, d device.Device) (bool, string, []string) {
	port := s.sshPort()

	open, errs := s.IsPortOpen(ctx, d, port)

	if !open {
		return false, device.UnknownUname, append(errs, "(ssh) Port closed")
	}

	clientConf, err := s.sshClientConfig()

	if err != nil {
		return false, device.UnknownUname, append(errs, fmt.Sprintf("(ssh) %s", err))
	}

	retry := s.conf.SSH.Retry

	attempts := retry.Attempts

	if attempts < 1 {
		attempts = 1
	}

	if retry.InitialDelay > 0 {
		time.Sleep(time.Duration(retry.InitialDelay) * time.Second)
	}

	var lastErr string

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 && retry.Interval > 0 {
			time.Sleep(time.Duration(retry.Interval) * time.Second)
		}

		uname, errMsg, transient := s.sshExec(ctx, d.IP, port, clientConf)

		if errMsg == "" {
			return true, uname, errs
		}

		lastErr = errMsg

		// exhausting retries is equivalent to a single failed attempt;
		// only transient connection failures are worth retrying
		if !transient {
			break
		}
	}

	return false, device.UnknownUname, append(errs, lastErr)
}

// sshExec dials, authenticates, and runs the uname command in one scoped
// session. The connection is closed on every exit path. The returned
// transient flag marks failures worth retrying.
func (s *ProbeScanner) sshExec(
	ctx context.Context,
	ip string,
	port int,
	clientConf *ssh.ClientConfig,
) (uname string, errMsg string, transient bool) {
	addr := net.JoinHostPort(ip, strconv.Itoa(port))

	dialer := &net.Dialer{Timeout: clientConf.Timeout}

	conn, err := dialer.DialContext(ctx, "tcp", addr)

	if err != nil {
		return "", fmt.Sprintf("(ssh) Connection failed: %s", err), true
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, clientConf)

	if err != nil {
		conn.Close()

		if strings.Contains(err.Error(), "unable to authenticate") {
			return "", fmt.Sprintf("(ssh) Authentication failed: %s", err), false
		}

		return "", fmt.Sprintf("(ssh) Handshake failed: %s", err), false
	}

	client := ssh.NewClient(sshConn, chans, reqs)

	defer client.Close()

	session, err := client.NewSession()

	if err != nil {
		return "", fmt.Sprintf("(ssh) Session failed: %s", err), false
	}

	defer session.Close()

	output, err := session.Output(unameCommand)

	if err != nil {
		return "", fmt.Sprintf("(ssh) Command failed: %s", err), false
	}

	return strings.TrimSpace(string(output)), "", false
}

// sshPort returns the configured ssh port, falling back to the standard
// port
func (s *ProbeScanner) sshPort() int {
	if s.conf.SSH.Port > 0 {
		return s.conf.SSH.Port
	}

	return sshPort
}

// sshClientConfig builds the client config from the scanner's explicit ssh
// configuration. Key based auth is preferred; a configured password is
// used as fallback.
func (s *ProbeScanner) sshClientConfig() (*ssh.ClientConfig, error) {
	conf := s.conf.SSH

	if conf.User == "" {
		return nil, fmt.Errorf("No SSH user configured")
	}

	auth := []ssh.AuthMethod{}

	if conf.Identity != "" {
		key, err := os.ReadFile(conf.Identity)

		if err == nil {
			signer, parseErr := ssh.ParsePrivateKey(key)

			if parseErr != nil {
				return nil, fmt.Errorf("Invalid SSH identity: %s", parseErr)
			}

			auth = append(auth, ssh.PublicKeys(signer))
		}
	}

	if conf.Password != "" {
		auth = append(auth, ssh.Password(conf.Password))
	}

	if len(auth) == 0 {
		return nil, fmt.Errorf("No SSH credentials configured")
	}

	return &ssh.ClientConfig{
		User:            conf.User,
		Auth:            auth,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         s.timeout(s.conf.Timeouts.SSH),
	}, nil
}
