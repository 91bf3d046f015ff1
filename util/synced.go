package util

import (
	"fmt"
	"sync/atomic"
)

// Progress counts finished and skipped items across goroutines.
type Progress struct {
	total   int
	done    int32
	skipped int32
}

// NewProgress creates a Progress for total items.
func NewProgress(total int) *Progress {
	return &Progress{total: total}
}

// Done marks one item finished and returns how many are finished.
func (p *Progress) Done() int {
	return int(atomic.AddInt32(&p.done, 1))
}

// Skip marks one item finished without a result and returns how many are finished.
func (p *Progress) Skip() int {
	atomic.AddInt32(&p.skipped, 1)
	return p.Done()
}

// Finished returns the number of finished items, skipped ones included.
func (p *Progress) Finished() int {
	return int(atomic.LoadInt32(&p.done))
}

// Skipped returns the number of skipped items.
func (p *Progress) Skipped() int {
	return int(atomic.LoadInt32(&p.skipped))
}

// Total returns the item count given to NewProgress.
func (p *Progress) Total() int {
	return p.total
}

func (p *Progress) String() string {
	return fmt.Sprintf("%d/%d (%d skipped)", p.Finished(), p.total, p.Skipped())
}
