package notify

import (
	"fmt"
	"sync"

	"github.com/nconklindev/stockcell/internal/types"

	"go.uber.org/zap"
)

// Notifier receives user-facing import outcomes.
type Notifier interface {
	Notify(n types.Notification)
}

func ImportSucceeded(count int) types.Notification {
	return types.Notification{
		Title:       "File loaded",
		Description: fmt.Sprintf("Imported %d products", count),
		Severity:    types.SeverityInfo,
	}
}

func ImportFailed() types.Notification {
	return types.Notification{
		Title:       "Load error",
		Description: "Check the spreadsheet format",
		Severity:    types.SeverityError,
	}
}

// LogNotifier writes notifications to a zap logger.
type LogNotifier struct {
	Logger *zap.Logger
}

func (l LogNotifier) Notify(n types.Notification) {
	fields := []zap.Field{zap.String("description", n.Description)}
	if n.Severity == types.SeverityError {
		l.Logger.Error(n.Title, fields...)
		return
	}
	l.Logger.Info(n.Title, fields...)
}

// Recorder keeps every notification it receives, oldest first.
type Recorder struct {
	mu    sync.Mutex
	items []types.Notification
}

func (r *Recorder) Notify(n types.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []types.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]types.Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (types.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return types.Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Multi fans a notification out to several notifiers in order.
type Multi []Notifier

func (m Multi) Notify(n types.Notification) {
	for _, target := range m {
		if target != nil {
			target.Notify(n)
		}
	}
}
