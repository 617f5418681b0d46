// Package nics inspects the local network interface table and hostname
// facility. It is read-only with respect to the host: one enumeration of
// the OS interface table or one hostname query per call, no caching.
package nics

import (
	"errors"
	"net"
	"os"
)

// ErrNotFound is returned when the named device does not exist or carries
// no IPv4 address.
var ErrNotFound = errors.New("no IPv4 address for device")

// NIC is a named interface together with its addresses in the order the OS
// reported them.
type NIC struct {
	Name  string
	Addrs []net.Addr
}

// IPv4 returns the first IPv4 address of the named device as a dotted quad.
// "First" follows OS enumeration order, which favours the primary address
// of the device but is not otherwise defined; it may differ across
// platforms.
func IPv4(device string) (string, error) {
	table, err := systemTable()
	if err != nil {
		return "", err
	}
	return firstIPv4(table, device)
}

// firstIPv4 walks an explicit interface table so the lookup is
// deterministic under test.
func firstIPv4(table []NIC, device string) (string, error) {
	for _, nic := range table {
		if nic.Name != device {
			continue
		}
		for _, addr := range nic.Addrs {
			if ip := addrIPv4(addr); ip != nil {
				return ip.String(), nil
			}
		}
	}
	return "", ErrNotFound
}

func addrIPv4(addr net.Addr) net.IP {
	var ip net.IP
	switch a := addr.(type) {
	case *net.IPNet:
		ip = a.IP
	case *net.IPAddr:
		ip = a.IP
	default:
		return nil
	}
	return ip.To4()
}

// systemTable snapshots the OS interface table. OS-level failures propagate
// unhandled; there is no useful recovery at this layer.
func systemTable() ([]NIC, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	table := make([]NIC, 0, len(ifaces))
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			return nil, err
		}
		table = append(table, NIC{Name: iface.Name, Addrs: addrs})
	}
	return table, nil
}

// Hostname returns the hostname reported by the OS.
func Hostname() (string, error) {
	return os.Hostname()
}
