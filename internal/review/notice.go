package review

import (
	"sync"
	"time"
)

// NoticeTTL is how long a confirmation notice stays visible.
const NoticeTTL = 3 * time.Second

// Board holds a screen's transient confirmation notice and its persistent,
// dismissible error. Confirmations expire on their own after NoticeTTL;
// errors stay until dismissed or replaced. Setting an error never clears a
// still-live confirmation.
type Board struct {
	mu       sync.Mutex
	now      func() time.Time
	notice   string
	noticeAt time.Time
	errMsg   string
}

func NewBoard() *Board {
	return &Board{now: time.Now}
}

// NewBoardWithClock injects the time source, for expiry tests.
func NewBoardWithClock(now func() time.Time) *Board {
	return &Board{now: now}
}

func (b *Board) SetNotice(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notice = msg
	b.noticeAt = b.now()
}

// Notice returns the current confirmation, or "" once it has expired.
func (b *Board) Notice() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.notice == "" || b.now().Sub(b.noticeAt) >= NoticeTTL {
		return ""
	}
	return b.notice
}

func (b *Board) SetError(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.errMsg = msg
}

func (b *Board) Error() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errMsg
}

// Dismiss clears the error banner.
func (b *Board) Dismiss() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.errMsg = ""
}
