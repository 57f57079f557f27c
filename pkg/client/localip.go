package client

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// DiscoverLocalIP returns the local address the system would use to send
// datagrams to host. No packet is sent.
func DiscoverLocalIP(host string) (net.IP, error) {
	conn, err := net.Dial("udp", net.JoinHostPort(host, "1"))
	if err != nil {
		return nil, fmt.Errorf("failed to find route to %s: %w", host, err)
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return nil, fmt.Errorf("unexpected local address type %T", conn.LocalAddr())
	}
	return addr.IP, nil
}

// defaultPort resolves the radius/udp service, falling back to DefaultPort
func defaultPort() string {
	if port, err := net.LookupPort("udp", "radius"); err == nil {
		return strconv.Itoa(port)
	}
	return strconv.Itoa(DefaultPort)
}

// splitServer splits "host[:port]" and fills in the default port
func splitServer(server string) (string, string, error) {
	if server == "" {
		return "", "", fmt.Errorf("server address cannot be empty")
	}

	host, port, err := net.SplitHostPort(server)
	if err != nil {
		// bare host or IPv6 literal without a port
		host, port = strings.TrimSuffix(strings.TrimPrefix(server, "["), "]"), defaultPort()
	}

	if host == "" {
		return "", "", fmt.Errorf("server address %q has no host", server)
	}
	if port == "" {
		port = defaultPort()
	}

	return host, port, nil
}
