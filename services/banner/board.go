package bannersvc

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/trezcool/guruwali/core"
)

// DefaultTTL is how long a success or error notice stays up.
const DefaultTTL = 3 * time.Second

var nowFunc = time.Now // mockable

// Board keeps the latest notice so it can be polled. A new notice replaces the previous one.
type Board struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *core.Notice
	shownAt time.Time
}

var _ core.Banner = (*Board)(nil) // interface compliance check

func NewBoard(ttl time.Duration) *Board {
	return &Board{ttl: ttl}
}

func (b *Board) Show(kind core.NoticeKind, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = &core.Notice{Kind: kind, Message: msg}
	b.shownAt = nowFunc()
}

// Current returns the notice on display, if any. Loading notices never expire.
func (b *Board) Current() (core.Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return core.Notice{}, false
	}
	if b.current.Kind != core.NoticeLoading && nowFunc().Sub(b.shownAt) >= b.ttl {
		b.current = nil
		return core.Notice{}, false
	}
	return *b.current, true
}

// Console prints every notice on its own line.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

var _ core.Banner = (*Console)(nil) // interface compliance check

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Show(kind core.NoticeKind, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintf(c.w, "[%s] %s\n", kind, msg)
}

// Multi shows every notice on all the given banners.
func Multi(banners ...core.Banner) core.Banner {
	return multi(banners)
}

type multi []core.Banner

func (m multi) Show(kind core.NoticeKind, msg string) {
	for _, b := range m {
		b.Show(kind, msg)
	}
}
