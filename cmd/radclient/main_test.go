package main

import (
	"bytes"
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/radclient/pkg/crypto"
	"github.com/vitalvas/radclient/pkg/dictionaries"
	"github.com/vitalvas/radclient/pkg/packet"
)

func TestParseAttributes(t *testing.T) {
	input := `
# comment
User-Name = alice
Framed-MTU = 1500
Acct-Status-Type=Start
Reply-Message = "a = b"
Class = 0xcafe
`

	attrs, err := parseAttributes(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"User-Name":        "alice",
		"Framed-MTU":       "1500",
		"Acct-Status-Type": "Start",
		"Reply-Message":    "a = b",
		"Class":            []byte{0xca, 0xfe},
	}, attrs)
}

func TestParseAttributesErrors(t *testing.T) {
	for _, input := range []string{"User-Name alice", "= alice"} {
		_, err := parseAttributes(strings.NewReader(input))
		assert.Error(t, err, input)
	}
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, "plain", parseValue("plain"))
	assert.Equal(t, "quoted value", parseValue(`"quoted value"`))
	assert.Equal(t, []byte{0x01, 0x02}, parseValue("0x0102"))
	assert.Equal(t, "0xzz", parseValue("0xzz"))
	assert.Equal(t, "0x", parseValue("0x"))
}

func TestFormatAttribute(t *testing.T) {
	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	assert.Equal(t, "Framed-User", formatAttribute(dict, "Service-Type", uint32(2)))
	assert.Equal(t, "Stop", formatAttribute(dict, "Acct-Status-Type", uint32(2)))
	assert.Equal(t, "4242", formatAttribute(dict, "Service-Type", uint32(4242)))
	assert.Equal(t, "1500", formatAttribute(dict, "Framed-MTU", uint32(1500)))
	assert.Equal(t, "0xab", formatAttribute(dict, "Attr-250", []byte{0xab}))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "0xcafe", formatValue([]byte{0xca, 0xfe}))
	assert.Equal(t, "1500", formatValue(uint32(1500)))
	assert.Equal(t, "10.0.0.1", formatValue(net.IPv4(10, 0, 0, 1)))
}

// startServer answers every request with the code picked by respond
func startServer(t *testing.T, respond func(req *packet.Packet) (packet.Code, map[string]any)) string {
	t.Helper()

	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)

	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)

		buf := make([]byte, packet.MaxPacketLength)
		for {
			n, addr, err := conn.ReadFromUDP(buf)
			if err != nil {
				return
			}

			req, err := packet.Decode(dict, buf[:n])
			if err != nil {
				continue
			}

			code, attrs := respond(req)
			resp := packet.New(dict, code, req.Identifier)
			for name, value := range attrs {
				if err := resp.SetAttribute(name, value); err != nil {
					return
				}
			}

			data, err := resp.Encode()
			if err != nil {
				return
			}
			auth := crypto.CalculateResponseAuthenticator(uint8(code), req.Identifier, uint16(len(data)),
				req.Authenticator, data[packet.PacketHeaderLength:], []byte("testing123"))
			copy(data[4:20], auth[:])

			_, _ = conn.WriteToUDP(data, addr)
		}
	}()

	t.Cleanup(func() {
		conn.Close()
		<-done
	})

	return conn.LocalAddr().String()
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunAuthenticate(t *testing.T) {
	addr := startServer(t, func(req *packet.Packet) (packet.Code, map[string]any) {
		if req.Values()["User-Name"] != "alice" {
			return packet.CodeAccessReject, nil
		}
		return packet.CodeAccessAccept, map[string]any{"Framed-MTU": 1500, "Class": []byte{0x01}, "Service-Type": "Framed-User"}
	})

	code, stdout, stderr := runCLI(t, "", "-server", addr, "-secret", "testing123",
		"-user", "alice", "-password", "secret1", "-timeout", "1s")
	assert.Equal(t, exitAccepted, code, stderr)
	assert.Equal(t, "Received Access-Accept\n\tClass = 0x01\n\tFramed-MTU = 1500\n\tService-Type = Framed-User\n", stdout)

	code, stdout, _ = runCLI(t, "", "-server", addr, "-secret", "testing123",
		"-user", "bob", "-password", "secret1", "-timeout", "1s")
	assert.Equal(t, exitRejected, code)
	assert.Equal(t, "Received Access-Reject\n", stdout)
}

func TestRunAccountingWithStdinAttributes(t *testing.T) {
	addr := startServer(t, func(req *packet.Packet) (packet.Code, map[string]any) {
		values := req.Values()
		ts, _ := values["Event-Timestamp"].(time.Time)
		if values["Acct-Status-Type"] != uint32(packet.AcctStatusStop) || values["Acct-Session-Time"] != uint32(60) ||
			!ts.Equal(time.Unix(1700000000, 0)) {
			return packet.CodeAccessReject, nil
		}
		return packet.CodeAccountingResponse, nil
	})

	code, stdout, stderr := runCLI(t, "Acct-Session-Time = 60\nEvent-Timestamp = 1700000000\n", "-server", addr, "-secret", "testing123",
		"-action", "acct-stop", "-user", "alice", "-session", "s1", "-timeout", "1s")
	assert.Equal(t, exitAccepted, code, stderr)
	assert.Equal(t, "Acknowledged\n", stdout)
}

func TestRunParallelClients(t *testing.T) {
	addr := startServer(t, func(req *packet.Packet) (packet.Code, map[string]any) {
		return packet.CodeCoAACK, nil
	})

	code, stdout, stderr := runCLI(t, "User-Name = alice\n", "-server", addr, "-secret", "testing123",
		"-action", "coa", "-count", "3", "-timeout", "1s")
	assert.Equal(t, exitAccepted, code, stderr)
	assert.Equal(t, 3, strings.Count(stdout, "Acknowledged"))
	for _, prefix := range []string{"[1] ", "[2] ", "[3] "} {
		assert.Contains(t, stdout, prefix)
	}
}

func TestRunDisconnectNak(t *testing.T) {
	addr := startServer(t, func(req *packet.Packet) (packet.Code, map[string]any) {
		return packet.CodeDisconnectNAK, nil
	})

	code, stdout, _ := runCLI(t, "", "-server", addr, "-secret", "testing123", "-action", "disconnect", "-timeout", "1s")
	assert.Equal(t, exitRejected, code)
	assert.Equal(t, "Not acknowledged\n", stdout)
}

func TestRunConfigFile(t *testing.T) {
	addr := startServer(t, func(req *packet.Packet) (packet.Code, map[string]any) {
		if req.Values()["NAS-Identifier"] != "from-file" {
			return packet.CodeAccessReject, nil
		}
		return packet.CodeAccessAccept, nil
	})

	path := writeFile(t, "radclient.toml", `
server = "`+addr+`"
secret = "testing123"
reply_timeout = "1s"
nas_identifier = "from-file"
`)

	code, stdout, stderr := runCLI(t, "", "-config", path, "-user", "alice", "-password", "pw")
	assert.Equal(t, exitAccepted, code, stderr)
	assert.Equal(t, "Received Access-Accept\n", stdout)

	// flags override the file
	code, _, _ = runCLI(t, "", "-config", path, "-nas-identifier", "from-flag", "-user", "alice", "-password", "pw")
	assert.Equal(t, exitRejected, code)
}

func TestRunTimeout(t *testing.T) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	defer conn.Close()

	code, _, stderr := runCLI(t, "", "-server", conn.LocalAddr().String(), "-secret", "testing123",
		"-user", "alice", "-password", "pw", "-timeout", "50ms", "-retries", "0")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "No reply from")
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing server", []string{"-secret", "s"}},
		{"missing secret", []string{"-server", "127.0.0.1"}},
		{"bad action", []string{"-server", "127.0.0.1", "-secret", "s", "-action", "dance"}},
		{"bad count", []string{"-server", "127.0.0.1", "-secret", "s", "-count", "0"}},
		{"bad nas ip", []string{"-server", "127.0.0.1", "-secret", "s", "-nas-ip", "x"}},
		{"unknown flag", []string{"-bogus"}},
		{"missing config", []string{"-config", "/nonexistent/radclient.toml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := runCLI(t, "", tt.args...)
			assert.Equal(t, exitError, code)
		})
	}
}

func TestRunBadStdinAttribute(t *testing.T) {
	code, _, stderr := runCLI(t, "No-Such-Attribute = 1\n", "-server", "127.0.0.1:9", "-secret", "s",
		"-action", "coa", "-nas-ip", "127.0.0.1", "-nas-identifier", "n")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "unknown attribute")
}
