package client

import (
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vitalvas/radclient/pkg/crypto"
	"github.com/vitalvas/radclient/pkg/dictionaries"
	"github.com/vitalvas/radclient/pkg/dictionary"
	"github.com/vitalvas/radclient/pkg/log"
	"github.com/vitalvas/radclient/pkg/packet"
)

const testSecret = "sharedkey"

// responder is an in-process UDP server. handle returns the datagrams to send back.
type responder struct {
	t    *testing.T
	conn *net.UDPConn
	dict *dictionary.Dictionary

	mu       sync.Mutex
	received [][]byte
}

func newResponder(t *testing.T, handle func(req *packet.Packet, raw []byte) [][]byte) *responder {
	t.Helper()

	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)

	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	r := &responder{t: t, conn: conn, dict: dict}

	done := make(chan struct{})
	go func() {
		defer close(done)

		buf := make([]byte, packet.MaxPacketLength)
		for {
			n, addr, err := conn.ReadFromUDP(buf)
			if err != nil {
				return
			}

			raw := append([]byte(nil), buf[:n]...)
			r.mu.Lock()
			r.received = append(r.received, raw)
			r.mu.Unlock()

			req, err := packet.Decode(dict, raw)
			if err != nil || handle == nil {
				continue
			}

			for _, out := range handle(req, raw) {
				_, _ = conn.WriteToUDP(out, addr)
			}
		}
	}()

	t.Cleanup(func() {
		conn.Close()
		<-done
	})

	return r
}

func (r *responder) addr() string {
	return r.conn.LocalAddr().String()
}

func (r *responder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.received)
}

func (r *responder) datagrams() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]byte(nil), r.received...)
}

// reply builds a signed response to req
func (r *responder) reply(req *packet.Packet, code packet.Code, identifier uint8, attrs map[string]any) []byte {
	r.t.Helper()

	resp := packet.New(r.dict, code, identifier)
	for name, value := range attrs {
		require.NoError(r.t, resp.SetAttribute(name, value))
	}

	data, err := resp.Encode()
	require.NoError(r.t, err)

	auth := crypto.CalculateResponseAuthenticator(uint8(code), identifier, uint16(len(data)),
		req.Authenticator, data[packet.PacketHeaderLength:], []byte(testSecret))
	copy(data[4:20], auth[:])
	return data
}

func newTestClient(t *testing.T, server string, opts ...Option) *Client {
	t.Helper()

	opts = append([]Option{
		WithNASIP(net.IPv4(127, 0, 0, 1)),
		WithNASIdentifier("test-nas"),
		WithLogger(log.NewDiscardLogger()),
	}, opts...)

	c, err := New(server, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}
