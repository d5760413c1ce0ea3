// Package notify holds the in-memory notification feed. Every mutation
// returns a new Feed and leaves the receiver untouched, so callers can keep
// the previous value around without aliasing surprises.
package notify

import "github.com/nhle/boosted-portal/internal/model"

// Feed is an ordered sequence of notifications. Order is display order.
type Feed []model.Notification

// MarkAllRead returns a copy of the feed with every notification read.
func (f Feed) MarkAllRead() Feed {
	out := make(Feed, len(f))
	for i, n := range f {
		n.Read = true
		out[i] = n
	}
	return out
}

// MarkRead returns a copy of the feed with the notification identified by id
// marked as read. An unknown id yields an unchanged copy; it is not an error.
func (f Feed) MarkRead(id string) Feed {
	out := make(Feed, len(f))
	for i, n := range f {
		if n.ID == id {
			n.Read = true
		}
		out[i] = n
	}
	return out
}

// UnreadCount counts notifications not yet read. It is computed on every
// call and never cached.
func (f Feed) UnreadCount() int {
	count := 0
	for _, n := range f {
		if !n.Read {
			count++
		}
	}
	return count
}

// Find returns the notification with the given id.
func (f Feed) Find(id string) (model.Notification, bool) {
	for _, n := range f {
		if n.ID == id {
			return n, true
		}
	}
	return model.Notification{}, false
}

// OfType returns the notifications of the given type, in feed order.
// An empty type returns the whole feed.
func (f Feed) OfType(t model.NotificationType) Feed {
	if t == "" {
		return f
	}
	var out Feed
	for _, n := range f {
		if n.Type == t {
			out = append(out, n)
		}
	}
	return out
}
