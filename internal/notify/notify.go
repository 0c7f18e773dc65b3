// Package notify emails accepted enquiries to staff.
package notify

import (
	"context"
	"errors"

	"github.com/nsara/website/internal/model"
)

var (
	// ErrNotConfigured means the sender or recipient address is missing, or
	// the provider client could not be built. No send is ever attempted.
	ErrNotConfigured = errors.New("enquiry notifications are not configured")
	// ErrSendFailed wraps a provider-side send failure.
	ErrSendFailed = errors.New("enquiry notification send failed")
)

// Notifier delivers one enquiry to the configured staff mailbox.
type Notifier interface {
	// Ready reports ErrNotConfigured (wrapped) when the notifier cannot send.
	Ready() error
	Notify(ctx context.Context, e *model.Enquiry) error
}
