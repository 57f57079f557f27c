package client

import (
	"sync"
	"time"
)

// Statistics holds client counters
type Statistics struct {
	// Request statistics
	Requests        uint64
	Retransmissions uint64
	Replies         uint64
	Timeouts        uint64
	Errors          uint64
	// Discarded counts datagrams dropped without ending the exchange
	Discarded uint64

	// Bytes transferred
	BytesSent     uint64
	BytesReceived uint64

	// Timing
	LastRequest  time.Time
	LastResponse time.Time
	LastRTT      time.Duration
	AverageRTT   time.Duration
}

type statistics struct {
	mu sync.RWMutex
	s  Statistics
}

func (st *statistics) request() {
	st.mu.Lock()
	st.s.Requests++
	st.s.LastRequest = time.Now()
	st.mu.Unlock()
}

func (st *statistics) sent(n int, retransmission bool) {
	st.mu.Lock()
	st.s.BytesSent += uint64(n)
	if retransmission {
		st.s.Retransmissions++
	}
	st.mu.Unlock()
}

func (st *statistics) received(n int) {
	st.mu.Lock()
	st.s.BytesReceived += uint64(n)
	st.mu.Unlock()
}

func (st *statistics) reply(rtt time.Duration) {
	st.mu.Lock()
	st.s.Replies++
	st.s.LastResponse = time.Now()
	st.s.LastRTT = rtt
	if st.s.AverageRTT == 0 {
		st.s.AverageRTT = rtt
	} else {
		st.s.AverageRTT = (st.s.AverageRTT + rtt) / 2
	}
	st.mu.Unlock()
}

func (st *statistics) timeout() {
	st.mu.Lock()
	st.s.Timeouts++
	st.mu.Unlock()
}

func (st *statistics) failure() {
	st.mu.Lock()
	st.s.Errors++
	st.mu.Unlock()
}

func (st *statistics) discard() {
	st.mu.Lock()
	st.s.Discarded++
	st.mu.Unlock()
}

func (st *statistics) snapshot() Statistics {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s
}
