package client

import "log/slog"

// Notifier receives store lifecycle events. Hosts typically surface saving
// and error states in the page chrome.
type Notifier interface {
	// Changed fires after any store state change; hosts re-render from a
	// fresh snapshot.
	Changed()
	// SaveStateChanged fires when the number of visible in-flight saves
	// moves between zero and nonzero.
	SaveStateChanged(saving bool)
	// Error reports a failed background save. The optimistic state is kept.
	Error(op string, err error)
}

// slogNotifier is the default: change events dropped, errors logged.
type slogNotifier struct {
	logger *slog.Logger
}

func (n *slogNotifier) Changed() {}

func (n *slogNotifier) SaveStateChanged(saving bool) {}

func (n *slogNotifier) Error(op string, err error) {
	n.logger.Warn("background save failed", "op", op, "error", err)
}

func defaultNotifier(logger *slog.Logger) Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogNotifier{logger: logger}
}
