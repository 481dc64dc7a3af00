package services

import (
	"context"

	"fintrack/internal/logger"
)

// Notifiers fans a change out to every member. A failing member is logged
// and does not stop the others.
type Notifiers []ChangeNotifier

// Notify implements ChangeNotifier. It always returns nil.
func (n Notifiers) Notify(ctx context.Context, change RecordChange) error {
	for _, notifier := range n {
		if notifier == nil {
			continue
		}
		if err := notifier.Notify(ctx, change); err != nil {
			logger.Named("notify").Warnw("record change notification failed",
				"kind", change.Kind,
				"action", change.Action,
				"record_id", change.RecordID,
				"error", err,
			)
		}
	}
	return nil
}
