package repository

import (
	"context"

	"github.com/nsara/website/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// EnquiryRepository defines the persistence interface for enquiries.
// Rows are append-only: there is no update or delete path.
type EnquiryRepository interface {
	// Save inserts e and fills in CreatedAt. A second enquiry with the same
	// email returns ErrDuplicate.
	Save(ctx context.Context, e *model.Enquiry) error
}
