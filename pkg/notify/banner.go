// Package notify implements the auto-hiding confirmation banner.
//
// The banner is presentation state. Drawing or deleting rectangles after a
// confirmation does not hide it, so a stale "success" message can stay on
// screen until its timer fires.
package notify

import (
	"sync"
	"time"
)

// DefaultDuration is how long the banner stays visible
const DefaultDuration = 3 * time.Second

// DefaultMessage is shown after a successful export
const DefaultMessage = "Coordinates generated successfully!"

// Banner is a message that hides itself after a fixed duration.
// It is safe for concurrent use; the hide callback runs on its own goroutine.
type Banner struct {
	mu       sync.Mutex
	duration time.Duration
	message  string
	visible  bool
	current  *Token
	afterFn  func(time.Duration, func()) stopper
}

type stopper interface {
	Stop() bool
}

// Token identifies one showing of the banner
type Token struct {
	banner *Banner
	timer  stopper
	shown  time.Time
}

// NewBanner creates a hidden banner. A zero duration uses DefaultDuration.
func NewBanner(message string, duration time.Duration) *Banner {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if message == "" {
		message = DefaultMessage
	}
	return &Banner{
		duration: duration,
		message:  message,
		afterFn: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
	}
}

// Show makes the banner visible and schedules it to hide. Showing again
// while visible cancels the pending hide and restarts the timer.
func (b *Banner) Show() *Token {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current != nil {
		b.current.timer.Stop()
	}

	tok := &Token{banner: b, shown: time.Now()}
	tok.timer = b.afterFn(b.duration, func() { b.hide(tok) })
	b.current = tok
	b.visible = true
	return tok
}

// Notify shows the banner; it satisfies session.Notifier
func (b *Banner) Notify() {
	b.Show()
}

func (b *Banner) hide(tok *Token) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current != tok {
		return
	}
	b.current = nil
	b.visible = false
}

// Visible reports whether the banner is on screen
func (b *Banner) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}

// Message returns the banner text
func (b *Banner) Message() string {
	return b.message
}

// Duration returns how long the banner stays visible
func (b *Banner) Duration() time.Duration {
	return b.duration
}

// Cancel hides the banner now if this token is still the current one
func (t *Token) Cancel() {
	t.timer.Stop()
	t.banner.hide(t)
}

// ShownAt returns when the banner was shown
func (t *Token) ShownAt() time.Time {
	return t.shown
}
