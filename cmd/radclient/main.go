package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"net"
	"os"
	"os/signal"
	"slices"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/vitalvas/radclient/pkg/client"
	"github.com/vitalvas/radclient/pkg/dictionaries"
	"github.com/vitalvas/radclient/pkg/dictionary"
	"github.com/vitalvas/radclient/pkg/log"
	"github.com/vitalvas/radclient/pkg/packet"
	"golang.org/x/sync/errgroup"
)

const (
	exitAccepted = 0
	exitRejected = 1
	exitError    = 2
)

var actions = []string{"auth", "acct-start", "acct-update", "acct-stop", "coa", "disconnect"}

type request struct {
	action    string
	user      string
	password  string
	sessionID string
	attrs     map[string]any
}

// result is the outcome of one request as printed to the user
type result struct {
	code  packet.Code
	ok    bool
	attrs map[string]any
}

func parseAttributes(r io.Reader) (map[string]any, error) {
	attributes := make(map[string]any)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("invalid attribute format: %q (expected 'Name = value')", line)
		}

		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid attribute format: %q (missing name)", line)
		}

		attributes[name] = parseValue(strings.TrimSpace(value))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	return attributes, nil
}

// parseValue unquotes "..." values and turns 0x-prefixed hex into octets.
// Everything else is left to the dictionary data type.
func parseValue(s string) any {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	if rest, ok := strings.CutPrefix(s, "0x"); ok && rest != "" {
		if b, err := hex.DecodeString(rest); err == nil {
			return b
		}
	}

	return s
}

func loadDictionary(ctx context.Context, path string) (*dictionary.Dictionary, error) {
	dict, err := dictionaries.NewDefault()
	if err != nil {
		return nil, err
	}

	if path == "" {
		return dict, nil
	}

	source := &dictionary.FileSource{Path: path}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		source = &dictionary.FileSource{Dir: path}
	}

	if err := source.LoadInto(ctx, dict); err != nil {
		return nil, err
	}
	return dict, nil
}

func send(ctx context.Context, c *client.Client, secret string, req request) (result, error) {
	switch req.action {
	case "auth":
		reply, err := c.Authenticate(ctx, req.user, req.password, secret, req.attrs)
		if err != nil {
			return result{}, err
		}
		return result{code: reply.Code, ok: reply.Code == packet.CodeAccessAccept, attrs: reply.Attributes}, nil
	case "acct-start", "acct-update", "acct-stop":
		status := map[string]packet.AcctStatusType{
			"acct-start":  packet.AcctStatusStart,
			"acct-update": packet.AcctStatusInterimUpdate,
			"acct-stop":   packet.AcctStatusStop,
		}[req.action]

		ok, err := c.AccountingRequest(ctx, status, req.user, secret, req.sessionID, req.attrs)
		if err != nil {
			return result{}, err
		}
		return result{ok: ok}, nil
	case "coa":
		ok, err := c.CoARequest(ctx, secret, req.attrs)
		if err != nil {
			return result{}, err
		}
		return result{ok: ok}, nil
	case "disconnect":
		ok, err := c.DisconnectRequest(ctx, secret, req.attrs)
		if err != nil {
			return result{}, err
		}
		return result{ok: ok}, nil
	default:
		return result{}, fmt.Errorf("unknown action %q", req.action)
	}
}

func printResult(w io.Writer, dict *dictionary.Dictionary, n int, res result) {
	prefix := ""
	if n > 0 {
		prefix = fmt.Sprintf("[%d] ", n)
	}

	switch {
	case res.attrs != nil:
		fmt.Fprintf(w, "%sReceived %s\n", prefix, res.code)
		for _, name := range slices.Sorted(maps.Keys(res.attrs)) {
			fmt.Fprintf(w, "%s\t%s = %s\n", prefix, name, formatAttribute(dict, name, res.attrs[name]))
		}
	case res.ok:
		fmt.Fprintf(w, "%sAcknowledged\n", prefix)
	default:
		fmt.Fprintf(w, "%sNot acknowledged\n", prefix)
	}
}

// formatAttribute prints enumerated integers by their dictionary name
func formatAttribute(dict *dictionary.Dictionary, name string, v any) string {
	if n, ok := v.(uint32); ok {
		if def, found := dict.LookupByName(name); found {
			if valueName, found := def.ValueName(n); found {
				return valueName
			}
		}
	}
	return formatValue(v)
}

func formatValue(v any) string {
	switch val := v.(type) {
	case []byte:
		return "0x" + hex.EncodeToString(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("radclient", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "TOML configuration file")
		server     = fs.String("server", "", "RADIUS server address (host[:port], default port from the radius service or 1812)")
		secret     = fs.String("secret", "", "Shared secret")
		action     = fs.String("action", "auth", "Action: "+strings.Join(actions, ", "))
		user       = fs.String("user", "", "User-Name for auth and accounting")
		password   = fs.String("password", "", "User-Password for auth")
		session    = fs.String("session", "", "Acct-Session-Id for accounting")
		dictPath   = fs.String("dictionary", "", "YAML or JSON dictionary file or directory loaded on top of the built-in one")
		timeout    = fs.Duration("timeout", client.DefaultReplyTimeout, "Reply timeout per attempt")
		retries    = fs.Int("retries", client.DefaultRetries, "Retransmissions after the first attempt")
		nasIP      = fs.String("nas-ip", "", "NAS-IP-Address (default: local address towards the server)")
		nasID      = fs.String("nas-identifier", "", "NAS-Identifier (default: local address towards the server)")
		logLevel   = fs.String("log-level", "warn", "Log level")
		count      = fs.Int("count", 1, "Number of independent clients sending the request in parallel")
	)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: radclient -server <host[:port]> -secret <secret> [-action <action>] [flags]\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExtra attributes are read from stdin, one per line in format:\n")
		fmt.Fprintf(stderr, "  Attribute-Name = value\n")
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  radclient -server 127.0.0.1 -secret testing123 -user alice -password secret1 </dev/null\n")
		fmt.Fprintf(stderr, "  echo 'Acct-Session-Time = 60' | radclient -server 10.0.0.1:1813 -secret s -action acct-stop -user alice -session s1\n")
		fmt.Fprintf(stderr, "  echo 'User-Name = alice' | radclient -server 10.0.0.1:3799 -secret s -action disconnect\n")
	}

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	cfg := defaultConfig()
	if *configPath != "" {
		if err := loadConfigFile(*configPath, &cfg); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "server":
			cfg.Server = *server
		case "secret":
			cfg.Secret = *secret
		case "timeout":
			cfg.ReplyTimeout = *timeout
		case "retries":
			cfg.Retries = *retries
		case "nas-ip":
			if cfg.NASIP = net.ParseIP(*nasIP); cfg.NASIP == nil {
				flagErr = fmt.Errorf("invalid -nas-ip %q", *nasIP)
			}
		case "nas-identifier":
			cfg.NASIdentifier = *nasID
		case "dictionary":
			cfg.Dictionary = *dictPath
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if flagErr == nil {
		flagErr = cfg.validate()
	}
	if flagErr == nil && !slices.Contains(actions, *action) {
		flagErr = fmt.Errorf("invalid action %q", *action)
	}
	if flagErr == nil && *count < 1 {
		flagErr = fmt.Errorf("count must be at least 1")
	}
	if flagErr != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", flagErr)
		fs.Usage()
		return exitError
	}

	logger := log.NewLogger(stderr, cfg.LogLevel)

	dict, err := loadDictionary(ctx, cfg.Dictionary)
	if err != nil {
		logger.Errorf("Failed to load dictionary: %v", err)
		return exitError
	}

	attrs, err := parseAttributes(stdin)
	if err != nil {
		logger.Errorf("Failed to parse attributes: %v", err)
		return exitError
	}

	req := request{
		action:    *action,
		user:      *user,
		password:  *password,
		sessionID: *session,
		attrs:     attrs,
	}

	opts := []client.Option{
		client.WithDictionary(dict),
		client.WithLogger(logger),
		client.WithReplyTimeout(cfg.ReplyTimeout),
		client.WithRetries(cfg.Retries),
		client.WithNASIP(cfg.NASIP),
		client.WithNASIdentifier(cfg.NASIdentifier),
	}

	var (
		mu       sync.Mutex
		accepted = 0
	)

	g, gctx := errgroup.WithContext(ctx)
	for i := range *count {
		g.Go(func() error {
			c, err := client.New(cfg.Server, opts...)
			if err != nil {
				return err
			}
			defer c.Close()

			res, err := send(gctx, c, cfg.Secret, req)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()

			n := 0
			if *count > 1 {
				n = i + 1
			}
			printResult(stdout, dict, n, res)
			if res.ok {
				accepted++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, client.ErrRequestTimedOut) {
			logger.Errorf("No reply from %s: %v", cfg.Server, err)
		} else {
			logger.Errorf("Request failed: %v", err)
		}
		return exitError
	}

	if accepted == *count {
		return exitAccepted
	}
	return exitRejected
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
