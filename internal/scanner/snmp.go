package scanner

import (
	"context"
	"fmt"

	"github.com/efuentes/discover/internal/device"
	"github.com/gosnmp/gosnmp"
)

// sysNameOID is the SNMPv2-MIB sysName.0 object used to confirm a
// responding agent
const sysNameOID = "1.3.6.1.2.1.1.5.0"

// CheckSNMP checks snmp availability by querying sysName with the device's
// community string. An empty or nil result is treated as failure.
func (s *ProbeScanner) CheckSNMP(ctx context.Context, d device.Device) (bool, []string) {
	if !s.caps.snmp {
		return false, []string{"(snmp) support not available"}
	}

	open, errs := s.IsPortOpen(ctx, d, snmpPort)

	if !open {
		return false, append(errs, fmt.Sprintf("(snmp) Port %d closed", snmpPort))
	}

	community := d.SnmpGroup

	if community == "" {
		community = s.conf.SNMP.Community
	}

	agent := &gosnmp.GoSNMP{
		Context:   ctx,
		Target:    d.IP,
		Port:      snmpPort,
		Community: community,
		Version:   gosnmp.Version2c,
		Timeout:   s.timeout(s.conf.Timeouts.SNMP),
		Retries:   1,
	}

	if err := agent.Connect(); err != nil {
		return false, append(errs, fmt.Sprintf("(snmp) %s", err))
	}

	defer agent.Conn.Close()

	packet, err := agent.Get([]string{sysNameOID})

	if err != nil {
		return false, append(errs, fmt.Sprintf("(snmp) %s", err))
	}

	if packet == nil || len(packet.Variables) == 0 {
		return false, append(errs, "(snmp) Empty response for sysName")
	}

	variable := packet.Variables[0]

	if variable.Value == nil ||
		variable.Type == gosnmp.NoSuchObject ||
		variable.Type == gosnmp.NoSuchInstance {
		return false, append(errs, "(snmp) No value for sysName")
	}

	return true, errs
}
