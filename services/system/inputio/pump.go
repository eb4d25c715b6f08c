// Package inputio frames bytes arriving on the active input channel.
package inputio

import (
	"context"
	"time"

	"plen2-go/x/mathx"
)

// Port is the read side of a serial channel.
type Port interface {
	Name() string
	Available() int
	Read(p []byte) (int, error)
}

// Event is one frame read from a port.
type Event struct {
	Channel string // channel the bytes arrived on
	Data    []byte
	TS      time.Time
}

type Config struct {
	// Input returns the port to read this cycle. It is called on every
	// cycle so a toggle takes effect on the next read.
	Input     func() Port
	Mode      string        // "bytes" | "lines"
	MaxFrame  int           // clamp 16..256
	IdleFlush time.Duration // clamp 0..2s (lines mode)
	Poll      time.Duration // clamp 1ms..100ms
}

type Pump struct {
	outQ chan Event
}

func New(outBuf int) *Pump {
	if outBuf <= 0 {
		outBuf = 16
	}
	return &Pump{outQ: make(chan Event, outBuf)}
}

func (p *Pump) Events() <-chan Event { return p.outQ }

// Start runs the reader until ctx is cancelled. Frames are dropped if the
// consumer falls behind.
func (p *Pump) Start(ctx context.Context, cfg Config) {
	max := mathx.Clamp(cfg.MaxFrame, 16, 256)
	idle := mathx.Clamp(cfg.IdleFlush, 0, 2*time.Second)
	poll := mathx.Clamp(cfg.Poll, time.Millisecond, 100*time.Millisecond)
	lines := cfg.Mode == "lines"

	go func() {
		buf := make([]byte, max)
		var (
			line     []byte
			lineFrom string
			lastRX   time.Time
		)

		emit := func(ch string, data []byte, now time.Time) {
			select {
			case p.outQ <- Event{Channel: ch, Data: data, TS: now}:
			default:
				// drop if consumer is slow
			}
		}
		flush := func(now time.Time) {
			if len(line) == 0 {
				return
			}
			emit(lineFrom, append([]byte(nil), line...), now)
			line = line[:0]
		}

		tick := time.NewTicker(poll)
		defer tick.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-tick.C:
				port := cfg.Input()
				if port == nil {
					continue
				}
				// A partial line never spans a channel switch.
				if lines && len(line) > 0 && port.Name() != lineFrom {
					flush(now)
				}
				if port.Available() == 0 {
					if lines && idle > 0 && len(line) > 0 && now.Sub(lastRX) >= idle {
						flush(now)
					}
					continue
				}
				n, _ := port.Read(buf)
				if n <= 0 {
					continue
				}
				lastRX = now
				if !lines {
					emit(port.Name(), append([]byte(nil), buf[:n]...), now)
					continue
				}
				lineFrom = port.Name()
				for _, b := range buf[:n] {
					switch b {
					case '\n':
						flush(now)
					case '\r':
						// ignore
					default:
						if len(line) < max {
							line = append(line, b)
						}
					}
				}
			}
		}
	}()
}
