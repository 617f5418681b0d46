package nics

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ipNet(cidr string) *net.IPNet {
	ip, network, err := net.ParseCIDR(cidr)
	if err != nil {
		panic(err)
	}
	network.IP = ip
	return network
}

func TestFirstIPv4(t *testing.T) {
	t.Parallel()
	table := []NIC{
		{Name: "lo", Addrs: []net.Addr{ipNet("127.0.0.1/8")}},
		{Name: "eth0", Addrs: []net.Addr{
			ipNet("fe80::1/64"),
			ipNet("10.0.0.5/24"),
			ipNet("10.0.0.6/24"),
		}},
		{Name: "eth1", Addrs: []net.Addr{ipNet("fe80::2/64")}},
	}

	t.Run("first IPv4 wins", func(t *testing.T) {
		t.Parallel()
		addr, err := firstIPv4(table, "eth0")
		require.NoError(t, err)
		assert.Equal(t, "10.0.0.5", addr)
	})
	t.Run("IPv6 only device is not found", func(t *testing.T) {
		t.Parallel()
		_, err := firstIPv4(table, "eth1")
		assert.ErrorIs(t, err, ErrNotFound)
	})
	t.Run("absent device is not found", func(t *testing.T) {
		t.Parallel()
		_, err := firstIPv4(table, "eth9")
		assert.ErrorIs(t, err, ErrNotFound)
	})
	t.Run("plain IP addresses are matched", func(t *testing.T) {
		t.Parallel()
		single := []NIC{{Name: "tun0", Addrs: []net.Addr{&net.IPAddr{IP: net.IPv4(192, 168, 1, 9)}}}}
		addr, err := firstIPv4(single, "tun0")
		require.NoError(t, err)
		assert.Equal(t, "192.168.1.9", addr)
	})
}

func TestHostname(t *testing.T) {
	t.Parallel()
	hostname, err := Hostname()
	require.NoError(t, err)
	assert.NotEmpty(t, hostname)
}
