// Package notify is the notification sink behind the storefront's toasts.
// Use cases emit notifications; the HTTP adapter collects them into the
// response body and background jobs write them to the log.
package notify

import (
	"context"
	"log/slog"
	"sync"
)

// Kind is the toast variant.
type Kind string

const (
	Success     Kind = "success"
	Destructive Kind = "destructive"
)

// Notification is a single user-facing message.
type Notification struct {
	Kind        Kind   `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Notifier is fire-and-forget; nothing it does can fail the caller.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifySuccess is shorthand for a success notification.
func NotifySuccess(ctx context.Context, n Notifier, title, description string) {
	n.Notify(ctx, Notification{Kind: Success, Title: title, Description: description})
}

// NotifyFailure is shorthand for a destructive notification.
func NotifyFailure(ctx context.Context, n Notifier, title, description string) {
	n.Notify(ctx, Notification{Kind: Destructive, Title: title, Description: description})
}

// Collector keeps notifications in memory, in emission order.
type Collector struct {
	mu    sync.Mutex
	items []Notification
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Notify(_ context.Context, n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, n)
}

// Notifications returns a copy of everything collected so far, never nil.
func (c *Collector) Notifications() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

type collectorKey struct{}

// WithCollector attaches c to ctx.
func WithCollector(ctx context.Context, c *Collector) context.Context {
	return context.WithValue(ctx, collectorKey{}, c)
}

// ContextNotifier sends each notification to the Collector found in the
// context, falling back to the log when there is none.
type ContextNotifier struct {
	logger *slog.Logger
}

func NewContextNotifier(logger *slog.Logger) *ContextNotifier {
	return &ContextNotifier{logger: logger.With("component", "notifier")}
}

func (n *ContextNotifier) Notify(ctx context.Context, note Notification) {
	if c, ok := ctx.Value(collectorKey{}).(*Collector); ok {
		c.Notify(ctx, note)
		return
	}
	n.logger.InfoContext(ctx, note.Title,
		"kind", string(note.Kind),
		"description", note.Description,
	)
}
