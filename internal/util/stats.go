package util

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/pterm/pterm"
)

// ──────────────────────────────────────────────────────────────────────────────
// Global stats singleton
// ──────────────────────────────────────────────────────────────────────────────

// Stats is the process-wide traffic/roster counter.
var Stats = &stats{}

type stats struct {
	NodesAdded  atomic.Int64 // cumulative count of roster nodes added since process start
	NodesKilled atomic.Int64 // cumulative count of roster nodes killed since process start
	PacketsSent atomic.Int64 // cumulative packets written to data channels
	PacketsRecv atomic.Int64 // cumulative packets read  from data channels
	BytesSent   atomic.Int64 // cumulative bytes written to data channels
	BytesRecv   atomic.Int64 // cumulative bytes read  from data channels
}

func (s *stats) AddNode()      { s.NodesAdded.Add(1) }
func (s *stats) KillNode()     { s.NodesKilled.Add(1) }
func (s *stats) AddSent(n int) { s.PacketsSent.Add(1); s.BytesSent.Add(int64(n)) }
func (s *stats) AddRecv(n int) { s.PacketsRecv.Add(1); s.BytesRecv.Add(int64(n)) }

// ──────────────────────────────────────────────────────────────────────────────
// Periodic reporter
// ──────────────────────────────────────────────────────────────────────────────

// StartStatsReporter launches a goroutine that logs session statistics
// every 10 seconds. It stops when ctx is cancelled.
func StartStatsReporter(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()

		var prevSent, prevRecv, prevAdded, prevKilled int64
		for {
			select {
			case <-ticker.C:
				added := Stats.NodesAdded.Load()
				killed := Stats.NodesKilled.Load()
				sent := Stats.BytesSent.Load()
				recv := Stats.BytesRecv.Load()

				outS := float64(sent-prevSent) / 10.0
				inS := float64(recv-prevRecv) / 10.0
				inN := added - prevAdded
				outN := killed - prevKilled

				if inN > 0 || outN > 0 || inS > 10 || outS > 10 {
					pterm.DefaultLogger.Info(formatStats(inS, outS, inN, outN))
				}

				prevSent = sent
				prevRecv = recv
				prevAdded = added
				prevKilled = killed

			case <-ctx.Done():
				return
			}
		}
	}()
}

// byteUnits defines the units for formatting byte counts in a human-readable way.
var byteUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}

// formatBytes formats a byte count into a human-readable string with fixed width (exactly 8 chars)
// for example: "99.0   B", " 1.5 KiB", " 0.1 MiB", "98.9 GiB", etc.
func formatBytes(b float64) string {
	unitIdx := 0

	// to prevent "100.0 KiB", which is 9 chars
	for b > 99 && unitIdx < 5 {
		b /= 1024
		unitIdx++
	}

	return fmt.Sprintf("%4.1f %3s", b, byteUnits[unitIdx])
}

// formatStats returns a formatted string of the current stats for display in the logger.
func formatStats(inS, outS float64, inN, outN int64) string {
	return fmt.Sprintf("In: %s/s | Out: %s/s | Nodes: %2d↑ %2d↓",
		formatBytes(inS),
		formatBytes(outS),
		inN,
		outN,
	)
}
