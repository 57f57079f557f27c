package client

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"maps"
	"net"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/vitalvas/radclient/pkg/dictionaries"
	"github.com/vitalvas/radclient/pkg/log"
	"github.com/vitalvas/radclient/pkg/packet"
)

var (
	// ErrRequestTimedOut indicates that no reply arrived after all attempts
	ErrRequestTimedOut = errors.New("request timed out")
	// ErrClientClosed indicates use of a closed client
	ErrClientClosed = errors.New("client closed")
	// ErrResponseAuthenticator indicates a reply whose Response Authenticator does not verify
	ErrResponseAuthenticator = errors.New("response authenticator verification failed")
	// ErrUnexpectedResponse indicates a reply whose code cannot answer the request
	ErrUnexpectedResponse = errors.New("unexpected response code")
)

// Reply is the decoded answer of the server
type Reply struct {
	Code packet.Code
	// Attributes maps attribute names to decoded values; unknown attributes
	// appear as "Attr-<code>" with raw []byte values
	Attributes map[string]any
	Packet     *packet.Packet
}

// Client talks to a single RADIUS server over one connected UDP socket.
// Exchanges on the same Client are serialized.
type Client struct {
	server string
	conn   *net.UDPConn
	opts   options
	logger log.Logger

	// held for the duration of an exchange
	mu     sync.Mutex
	closed atomic.Bool
	nextID atomic.Uint32

	stats statistics
}

// New creates a client for server given as "host" or "host:port".
func New(server string, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.replyTimeout <= 0 {
		return nil, fmt.Errorf("reply timeout must be positive, got %s", o.replyTimeout)
	}
	if o.retries < 0 {
		return nil, fmt.Errorf("retries cannot be negative, got %d", o.retries)
	}

	host, port, err := splitServer(server)
	if err != nil {
		return nil, err
	}

	if o.dict == nil {
		dict, err := dictionaries.NewDefault()
		if err != nil {
			return nil, fmt.Errorf("failed to load default dictionary: %w", err)
		}
		o.dict = dict
	}

	if o.logger == nil {
		o.logger = log.NewDefaultLogger()
	}

	if o.nasIP == nil || o.nasIdentifier == "" {
		ip, err := DiscoverLocalIP(host)
		if err != nil {
			return nil, err
		}
		if o.nasIP == nil {
			o.nasIP = ip
		}
		if o.nasIdentifier == "" {
			o.nasIdentifier = ip.String()
		}
	}

	addr := net.JoinHostPort(host, port)
	raddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve server address: %w", err)
	}

	conn, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		return nil, fmt.Errorf("failed to create UDP connection: %w", err)
	}

	c := &Client{
		server: addr,
		conn:   conn,
		opts:   o,
		logger: o.logger.WithFields(map[string]any{"server": addr}),
	}

	var seed [1]byte
	if _, err := rand.Read(seed[:]); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to seed identifier: %w", err)
	}
	c.nextID.Store(uint32(seed[0]))

	c.logger.Debugf("client ready, local address %s", conn.LocalAddr())
	return c, nil
}

// Close releases the socket. An exchange in progress fails with ErrClientClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	return c.conn.Close()
}

// Server returns the resolved "host:port" of the server
func (c *Client) Server() string {
	return c.server
}

// Statistics returns a snapshot of the client counters
func (c *Client) Statistics() Statistics {
	return c.stats.snapshot()
}

func (c *Client) newPacket(code packet.Code) *packet.Packet {
	return packet.New(c.opts.dict, code, uint8(c.nextID.Add(1)))
}

func (c *Client) setNASAttributes(pkt *packet.Packet) error {
	if err := pkt.Set(packet.AttrNASIdentifier, c.opts.nasIdentifier); err != nil {
		return err
	}

	if ip4 := c.opts.nasIP.To4(); ip4 != nil {
		return pkt.Set(packet.AttrNASIPAddress, ip4)
	}
	return pkt.SetAttribute("NAS-IPv6-Address", c.opts.nasIP)
}

// applyExtras appends caller supplied attributes in name order
func applyExtras(pkt *packet.Packet, extra map[string]any) error {
	for _, name := range slices.Sorted(maps.Keys(extra)) {
		if err := pkt.SetAttribute(name, extra[name]); err != nil {
			return fmt.Errorf("failed to add attribute %q: %w", name, err)
		}
	}
	return nil
}

// Authenticate sends an Access-Request for name and password and returns the
// decoded reply, whatever its code.
func (c *Client) Authenticate(ctx context.Context, name, password, secret string, extra map[string]any) (*Reply, error) {
	pkt := c.newPacket(packet.CodeAccessRequest)

	if err := pkt.Set(packet.AttrUserName, name); err != nil {
		return nil, err
	}
	if err := c.setNASAttributes(pkt); err != nil {
		return nil, err
	}
	if err := pkt.GenerateRequestAuthenticator(); err != nil {
		return nil, err
	}
	if err := pkt.SetUserPassword([]byte(password), []byte(secret)); err != nil {
		return nil, err
	}
	if err := applyExtras(pkt, extra); err != nil {
		return nil, err
	}

	reply, err := c.exchange(ctx, pkt, []byte(secret))
	if err != nil {
		return nil, err
	}

	return &Reply{
		Code:       reply.Code,
		Attributes: reply.Values(),
		Packet:     reply,
	}, nil
}

// AccountingRequest sends an Accounting-Request and reports whether the
// server answered with an Accounting-Response.
func (c *Client) AccountingRequest(ctx context.Context, status packet.AcctStatusType, name, secret, sessionID string, extra map[string]any) (bool, error) {
	pkt := c.newPacket(packet.CodeAccountingRequest)

	if err := pkt.Set(packet.AttrUserName, name); err != nil {
		return false, err
	}
	if err := c.setNASAttributes(pkt); err != nil {
		return false, err
	}
	if err := pkt.Set(packet.AttrAcctStatusType, status); err != nil {
		return false, err
	}
	if err := pkt.Set(packet.AttrAcctSessionID, sessionID); err != nil {
		return false, err
	}
	if err := pkt.Set(packet.AttrAcctAuthentic, packet.AcctAuthenticRADIUS); err != nil {
		return false, err
	}
	if err := applyExtras(pkt, extra); err != nil {
		return false, err
	}
	if err := pkt.GenerateSignedAuthenticator([]byte(secret)); err != nil {
		return false, err
	}

	reply, err := c.exchange(ctx, pkt, []byte(secret))
	if err != nil {
		return false, err
	}

	return reply.Code == packet.CodeAccountingResponse, nil
}

// AccountingStart sends an Accounting-Request with Acct-Status-Type Start
func (c *Client) AccountingStart(ctx context.Context, name, secret, sessionID string, extra map[string]any) (bool, error) {
	return c.AccountingRequest(ctx, packet.AcctStatusStart, name, secret, sessionID, extra)
}

// AccountingUpdate sends an Accounting-Request with Acct-Status-Type Interim-Update
func (c *Client) AccountingUpdate(ctx context.Context, name, secret, sessionID string, extra map[string]any) (bool, error) {
	return c.AccountingRequest(ctx, packet.AcctStatusInterimUpdate, name, secret, sessionID, extra)
}

// AccountingStop sends an Accounting-Request with Acct-Status-Type Stop
func (c *Client) AccountingStop(ctx context.Context, name, secret, sessionID string, extra map[string]any) (bool, error) {
	return c.AccountingRequest(ctx, packet.AcctStatusStop, name, secret, sessionID, extra)
}

// GenericRequest sends a signed request of the given code carrying the NAS
// attributes and extra. It reports whether the server acknowledged it
// (CoA-ACK, Disconnect-ACK, Accounting-Response, Access-Accept).
func (c *Client) GenericRequest(ctx context.Context, code packet.Code, secret string, extra map[string]any) (bool, error) {
	if code == packet.CodeAccessRequest {
		return false, fmt.Errorf("%s needs a User-Password, use Authenticate", code)
	}

	pkt := c.newPacket(code)

	if err := c.setNASAttributes(pkt); err != nil {
		return false, err
	}
	if err := applyExtras(pkt, extra); err != nil {
		return false, err
	}
	if err := pkt.GenerateSignedAuthenticator([]byte(secret)); err != nil {
		return false, err
	}

	reply, err := c.exchange(ctx, pkt, []byte(secret))
	if err != nil {
		return false, err
	}

	return reply.Code.IsPositiveResponse(), nil
}

// CoARequest sends a CoA-Request (RFC 3576)
func (c *Client) CoARequest(ctx context.Context, secret string, extra map[string]any) (bool, error) {
	return c.GenericRequest(ctx, packet.CodeCoARequest, secret, extra)
}

// DisconnectRequest sends a Disconnect-Request (RFC 3576)
func (c *Client) DisconnectRequest(ctx context.Context, secret string, extra map[string]any) (bool, error) {
	return c.GenericRequest(ctx, packet.CodeDisconnectRequest, secret, extra)
}
