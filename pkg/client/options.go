package client

import (
	"net"
	"time"

	"github.com/vitalvas/radclient/pkg/dictionary"
	"github.com/vitalvas/radclient/pkg/log"
)

const (
	// DefaultReplyTimeout is how long a single attempt waits for a reply
	DefaultReplyTimeout = 60 * time.Second
	// DefaultRetries is the number of retransmissions after the first attempt
	DefaultRetries = 1
	// DefaultPort is used when the server address has no port and the
	// "radius" service is not registered on the system
	DefaultPort = 1812
)

// Option configures a Client.
type Option func(*options)

type options struct {
	replyTimeout   time.Duration
	retries        int
	nasIP          net.IP
	nasIdentifier  string
	dict           *dictionary.Dictionary
	logger         log.Logger
	verifyResponse bool
}

func defaultOptions() options {
	return options{
		replyTimeout: DefaultReplyTimeout,
		retries:      DefaultRetries,
	}
}

// WithReplyTimeout sets how long each attempt waits for a reply.
func WithReplyTimeout(d time.Duration) Option {
	return func(o *options) {
		o.replyTimeout = d
	}
}

// WithRetries sets how many times a request is retransmitted after the first attempt times out.
func WithRetries(n int) Option {
	return func(o *options) {
		o.retries = n
	}
}

// WithNASIP sets the NAS-IP-Address sent with every request.
// Defaults to the local address used to reach the server.
func WithNASIP(ip net.IP) Option {
	return func(o *options) {
		o.nasIP = ip
	}
}

// WithNASIdentifier sets the NAS-Identifier sent with every request.
// Defaults to the local address used to reach the server.
func WithNASIdentifier(id string) Option {
	return func(o *options) {
		o.nasIdentifier = id
	}
}

// WithDictionary sets the attribute dictionary used to build requests and decode replies.
func WithDictionary(d *dictionary.Dictionary) Option {
	return func(o *options) {
		o.dict = d
	}
}

// WithLogger sets the logger.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithVerifyResponseAuthenticator enables checking the Response Authenticator
// of every reply. Replies that fail the check are dropped.
func WithVerifyResponseAuthenticator(b bool) Option {
	return func(o *options) {
		o.verifyResponse = b
	}
}
