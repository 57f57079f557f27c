package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"slices"
	"time"

	"github.com/vitalvas/radclient/pkg/log"
	"github.com/vitalvas/radclient/pkg/packet"
)

// outcome classifies how a single attempt ended
type outcome int

const (
	outcomeReply outcome = iota
	outcomeTimeout
	outcomeIOError
	outcomeFailed
)

func (o outcome) String() string {
	switch o {
	case outcomeReply:
		return "reply"
	case outcomeTimeout:
		return "timeout"
	case outcomeIOError:
		return "io error"
	case outcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

type attemptResult struct {
	kind  outcome
	reply *packet.Packet
	err   error
}

// exchange sends req and waits for the matching reply, retransmitting the
// same bytes on timeout or transient I/O failure until the retry budget is spent.
func (c *Client) exchange(ctx context.Context, req *packet.Packet, secret []byte) (*packet.Packet, error) {
	data, err := req.Encode()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	// unblock a pending read as soon as ctx is done
	poked := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		defer close(poked)
		_ = c.conn.SetReadDeadline(time.Now())
	})
	defer func() {
		if !stop() {
			<-poked
		}
	}()

	logger := c.logger.WithFields(map[string]any{
		"code": req.Code.String(),
		"id":   req.Identifier,
	})

	c.stats.request()
	attempts := c.opts.retries + 1

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		res := c.attempt(ctx, req, data, secret, attempt > 1, logger)
		logger.Debugf("attempt %d/%d ended with %s", attempt, attempts, res.kind)

		switch res.kind {
		case outcomeReply:
			return res.reply, nil
		case outcomeFailed:
			c.stats.failure()
			return nil, res.err
		case outcomeTimeout:
			c.stats.timeout()
			logger.Warnf("attempt %d/%d: no reply within %s", attempt, attempts, c.opts.replyTimeout)
			lastErr = res.err
		case outcomeIOError:
			c.stats.failure()
			logger.Warnf("attempt %d/%d: %v", attempt, attempts, res.err)
			lastErr = res.err
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w after %d attempts: %w", ErrRequestTimedOut, attempts, lastErr)
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrRequestTimedOut, attempts)
}

// attempt sends data once and reads until a matching reply arrives or the
// attempt deadline passes. Stale datagrams, replies with a code that cannot
// answer the request and unverifiable replies are dropped without ending the attempt.
func (c *Client) attempt(ctx context.Context, req *packet.Packet, data, secret []byte, retransmission bool, logger log.Logger) attemptResult {
	if err := contextError(ctx); err != nil {
		return attemptResult{kind: outcomeFailed, err: err}
	}

	start := time.Now()
	if _, err := c.conn.Write(data); err != nil {
		return c.readError(ctx, fmt.Errorf("failed to send request: %w", err))
	}
	c.stats.sent(len(data), retransmission)
	logger.Debugf("sent %d bytes", len(data))

	deadline := start.Add(c.opts.replyTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.conn.SetReadDeadline(deadline); err != nil {
		return c.readError(ctx, fmt.Errorf("failed to set read deadline: %w", err))
	}

	var discarded error
	buffer := make([]byte, packet.MaxPacketLength+1)
	for {
		if err := contextError(ctx); err != nil {
			return attemptResult{kind: outcomeFailed, err: err}
		}

		n, err := c.conn.Read(buffer)
		if err != nil {
			res := c.readError(ctx, fmt.Errorf("failed to read response: %w", err))
			if res.kind == outcomeTimeout && discarded != nil {
				res.err = discarded
			}
			return res
		}
		c.stats.received(n)
		logger.Debugf("received %d bytes", n)

		// a reply to an earlier, abandoned request
		if n >= packet.PacketHeaderLength && buffer[1] != req.Identifier {
			c.stats.discard()
			logger.Debugf("discarding reply with identifier %d", buffer[1])
			continue
		}

		reply, err := packet.Parse(c.opts.dict, req.Identifier, buffer[:n])
		if err != nil {
			return attemptResult{kind: outcomeFailed, err: fmt.Errorf("failed to decode response: %w", err)}
		}

		if !slices.Contains(req.Code.ExpectedResponseCodes(), reply.Code) {
			c.stats.discard()
			discarded = fmt.Errorf("%w: %s in answer to %s", ErrUnexpectedResponse, reply.Code, req.Code)
			logger.Debugf("discarding %s: not an answer to %s", reply.Code, req.Code)
			continue
		}

		if c.opts.verifyResponse && !reply.VerifyResponse(req, secret) {
			c.stats.discard()
			discarded = ErrResponseAuthenticator
			logger.Debugf("discarding %s: %v", reply.Code, ErrResponseAuthenticator)
			continue
		}

		rtt := time.Since(start)
		c.stats.reply(rtt)
		logger.Debugf("received %s in %s", reply.Code, rtt)
		return attemptResult{kind: outcomeReply, reply: reply}
	}
}

// readError classifies a socket error
func (c *Client) readError(ctx context.Context, err error) attemptResult {
	if ctxErr := contextError(ctx); ctxErr != nil {
		return attemptResult{kind: outcomeFailed, err: ctxErr}
	}

	if c.closed.Load() || errors.Is(err, net.ErrClosed) {
		return attemptResult{kind: outcomeFailed, err: ErrClientClosed}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return attemptResult{kind: outcomeTimeout}
	}

	return attemptResult{kind: outcomeIOError, err: err}
}

// contextError is ctx.Err, except that a passed deadline counts as exceeded
// even before the context timer has fired
func contextError(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d, ok := ctx.Deadline(); ok && !time.Now().Before(d) {
		return context.DeadlineExceeded
	}
	return nil
}
