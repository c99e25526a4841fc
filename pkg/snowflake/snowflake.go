package snowflake

import (
	"fmt"
	"sync"
	"time"
)

// ID layout (63 bits, top bit always 0):
// - 41 bits: millisecond timestamp offset from Epoch
// - 12 bits: intra-millisecond sequence
// - 10 bits: worker id (low bits, so distinct workers never collide)

const (
	// Epoch is 2024-01-01 00:00:00 UTC in milliseconds.
	Epoch int64 = 1704067200000

	WorkerBits   = 10
	SequenceBits = 12

	MaxWorkerID = -1 ^ (-1 << WorkerBits)   // 1023
	MaxSequence = -1 ^ (-1 << SequenceBits) // 4095

	sequenceShift  = WorkerBits
	timestampShift = WorkerBits + SequenceBits
)

// Generator hands out strictly increasing ids for a fixed worker id.
// Safe for concurrent use.
type Generator struct {
	mu         sync.Mutex
	workerID   int64
	lastMillis int64
	sequence   int64
}

func NewGenerator(workerID int64) (*Generator, error) {
	if workerID < 0 || workerID > MaxWorkerID {
		return nil, fmt.Errorf("worker id must be between 0 and %d, got %d", MaxWorkerID, workerID)
	}
	return &Generator{workerID: workerID}, nil
}

// NextID returns the next id. When the intra-millisecond sequence is
// exhausted it spins until the clock advances rather than wrapping, so
// monotonicity holds even under a burst of more than 4096 calls/ms.
func (g *Generator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := currentMillis()

	// Clock moved backwards: wait it out instead of issuing ids that
	// would sort before already-issued ones.
	for now < g.lastMillis {
		time.Sleep(time.Duration(g.lastMillis-now) * time.Millisecond)
		now = currentMillis()
	}

	if now == g.lastMillis {
		g.sequence++
		if g.sequence > MaxSequence {
			for now <= g.lastMillis {
				now = currentMillis()
			}
			g.sequence = 0
		}
	} else {
		g.sequence = 0
	}
	g.lastMillis = now

	return (now-Epoch)<<timestampShift | g.sequence<<sequenceShift | g.workerID
}

// WorkerID reports the partition this generator stamps into the low bits.
func (g *Generator) WorkerID() int64 { return g.workerID }

func currentMillis() int64 { return time.Now().UnixMilli() }
