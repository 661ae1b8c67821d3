package board

import "sync"

// NoticeLevel grades user-visible feedback.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is feedback meant for the user, e.g. why an action was rejected.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Op      string      `json:"op"`
	Message string      `json:"message"`
}

// Notifier delivers notices to whatever is showing the board.
type Notifier interface {
	Notify(Notice)
}

// NoticeLog buffers notices until the next Drain.
type NoticeLog struct {
	mu      sync.Mutex
	notices []Notice
}

func (l *NoticeLog) Notify(n Notice) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notices = append(l.notices, n)
}

// Drain returns and clears the buffered notices.
func (l *NoticeLog) Drain() []Notice {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.notices
	l.notices = nil
	return out
}

type nopNotifier struct{}

func (nopNotifier) Notify(Notice) {}
