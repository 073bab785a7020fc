// Package probe implements the one-shot UDP liveness check against the game
// server itself, independent of the hosting panel.
package probe

import (
	"encoding/binary"
	"encoding/hex"
	"net"
	"strconv"
	"time"
)

// unconnectedPingHex is the Bedrock "unconnected ping" frame: packet ID,
// zeroed send-time placeholder, offline-message magic, and a client GUID.
// An 8-byte big-endian ping time is appended at send.
const unconnectedPingHex = "01000000000000000000ffff00fefefefefdfdfdfd12345678"

// DefaultTimeout bounds the whole send/receive exchange.
const DefaultTimeout = 3 * time.Second

// Check sends one unconnected ping and reports whether anything answered.
// Transient failures are indistinguishable from a downed server by design;
// both read as not alive.
func Check(host string, port int, timeout time.Duration) bool {
	payload, err := hex.DecodeString(unconnectedPingHex)
	if err != nil {
		return false
	}
	payload = binary.BigEndian.AppendUint64(payload, 0)

	conn, err := net.DialTimeout("udp", net.JoinHostPort(host, strconv.Itoa(port)), timeout)
	if err != nil {
		return false
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return false
	}
	if _, err := conn.Write(payload); err != nil {
		return false
	}

	buf := make([]byte, 1024)
	n, err := conn.Read(buf)
	return err == nil && n > 0
}
