package device

import (
	"fmt"
	"strings"
)

// UnknownUname value recorded when no ssh introspection succeeded
const UnknownUname = "unknown"

// DefaultSNMPGroup default community string for snmp probes
const DefaultSNMPGroup = "public"

// Device is an immutable snapshot of one host's identity, credentials, and
// latest scan outcome. State transitions return a new value instead of
// mutating in place, so concurrent scans never share mutable state.
type Device struct {
	ID            int
	Host          string
	IP            string
	SnmpGroup     string
	Alive         bool
	SSH           bool
	SNMP          bool
	MySQL         bool
	MySQLUser     string
	MySQLPassword string
	Uname         string
	Errors        []string
	Scanned       bool
}

// New returns an unscanned device with all service flags unset
func New(id int, host, ip string) Device {
	return Device{
		ID:        id,
		Host:      host,
		IP:        ip,
		SnmpGroup: DefaultSNMPGroup,
		Uname:     UnknownUname,
		Errors:    []string{},
	}
}

// Key returns the repository key for this device
func (d Device) Key() string {
	return fmt.Sprintf("device:%d", d.ID)
}

// AddError returns a copy of the device with msg appended to its error log
func (d Device) AddError(msg string) Device {
	errs := make([]string, 0, len(d.Errors)+1)
	errs = append(errs, d.Errors...)
	errs = append(errs, msg)
	d.Errors = errs
	return d
}

// AddErrors returns a copy of the device with all msgs appended to its
// error log
func (d Device) AddErrors(msgs ...string) Device {
	if len(msgs) == 0 {
		return d
	}

	errs := make([]string, 0, len(d.Errors)+len(msgs))
	errs = append(errs, d.Errors...)
	errs = append(errs, msgs...)
	d.Errors = errs
	return d
}

// WithAlive returns a copy of the device with its liveness outcome set
func (d Device) WithAlive(alive bool) Device {
	d.Alive = alive
	return d
}

// WithServices returns a copy of the device with all three service
// outcomes set
func (d Device) WithServices(ssh, snmp, mysql bool) Device {
	d.SSH = ssh
	d.SNMP = snmp
	d.MySQL = mysql
	return d
}

// WithUname returns a copy of the device with its uname set
func (d Device) WithUname(uname string) Device {
	d.Uname = uname
	return d
}

// WithSnmpGroup returns a copy of the device with its community string set
func (d Device) WithSnmpGroup(group string) Device {
	d.SnmpGroup = group
	return d
}

// WithMySQLCredentials returns a copy of the device with device-level
// mysql credentials set
func (d Device) WithMySQLCredentials(user, password string) Device {
	d.MySQLUser = user
	d.MySQLPassword = password
	return d
}

// ResetServices returns a copy of the device with every service flag unset
// and uname back to unknown. Used on the dead branch where service
// outcomes are not meaningful.
func (d Device) ResetServices() Device {
	d.SSH = false
	d.SNMP = false
	d.MySQL = false
	d.Uname = UnknownUname
	return d
}

// MarkScanned returns a copy of the device in its terminal scanned state
func (d Device) MarkScanned() Device {
	d.Scanned = true
	return d
}

// Status returns a single line summary of the device's outcome
func (d Device) Status() string {
	return fmt.Sprintf(
		"%s -> alive: %t, ssh: %t, snmp: %t, mysql: %t, info: %s",
		d.Host,
		d.Alive,
		d.SSH,
		d.SNMP,
		d.MySQL,
		strings.Join(d.Errors, ", "),
	)
}

// Equal reports field for field equality including the error sequence
func (d Device) Equal(other Device) bool {
	if len(d.Errors) != len(other.Errors) {
		return false
	}

	for i, e := range d.Errors {
		if other.Errors[i] != e {
			return false
		}
	}

	return d.ID == other.ID &&
		d.Host == other.Host &&
		d.IP == other.IP &&
		d.SnmpGroup == other.SnmpGroup &&
		d.Alive == other.Alive &&
		d.SSH == other.SSH &&
		d.SNMP == other.SNMP &&
		d.MySQL == other.MySQL &&
		d.MySQLUser == other.MySQLUser &&
		d.MySQLPassword == other.MySQLPassword &&
		d.Uname == other.Uname &&
		d.Scanned == other.Scanned
}

// ToMap converts a device to a plain key value representation suitable
// for serialization
func (d Device) ToMap() map[string]any {
	errs := make([]string, len(d.Errors))
	copy(errs, d.Errors)

	return map[string]any{
		"id":             d.ID,
		"host":           d.Host,
		"ip":             d.IP,
		"snmp_group":     d.SnmpGroup,
		"alive":          d.Alive,
		"ssh":            d.SSH,
		"snmp":           d.SNMP,
		"mysql":          d.MySQL,
		"mysql_user":     d.MySQLUser,
		"mysql_password": d.MySQLPassword,
		"uname":          d.Uname,
		"errors":         errs,
		"scanned":        d.Scanned,
	}
}

// FromMap builds a device from its plain key value representation. Numeric
// ids and error lists may arrive as json decoded values.
func FromMap(m map[string]any) (Device, error) {
	id, err := toInt(m["id"])

	if err != nil {
		return Device{}, fmt.Errorf("device id: %w", err)
	}

	errs, err := toStringSlice(m["errors"])

	if err != nil {
		return Device{}, fmt.Errorf("device errors: %w", err)
	}

	return Device{
		ID:            id,
		Host:          toString(m["host"]),
		IP:            toString(m["ip"]),
		SnmpGroup:     toString(m["snmp_group"]),
		Alive:         toBool(m["alive"]),
		SSH:           toBool(m["ssh"]),
		SNMP:          toBool(m["snmp"]),
		MySQL:         toBool(m["mysql"]),
		MySQLUser:     toString(m["mysql_user"]),
		MySQLPassword: toString(m["mysql_password"]),
		Uname:         toString(m["uname"]),
		Errors:        errs,
		Scanned:       toBool(m["scanned"]),
	}, nil
}

func toInt(v any) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		return int(val), nil
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func toBool(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return false
}

func toStringSlice(v any) ([]string, error) {
	switch val := v.(type) {
	case nil:
		return []string{}, nil
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out, nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected element type %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unexpected type %T", v)
	}
}
