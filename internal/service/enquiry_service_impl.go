package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nsara/website/internal/model"
	"github.com/nsara/website/internal/notify"
	"github.com/nsara/website/internal/repository"
	"github.com/nsara/website/internal/validation"
)

// enquiryServiceImpl is the production implementation of EnquiryService.
// repo and notifier are each optional; at least one must be set.
type enquiryServiceImpl struct {
	repo     repository.EnquiryRepository
	notifier notify.Notifier
	now      func() time.Time
	newID    func() string
}

// NewEnquiryService creates an EnquiryService. Pass a nil repo to skip
// persistence, a nil notifier to skip staff email.
func NewEnquiryService(repo repository.EnquiryRepository, notifier notify.Notifier) EnquiryService {
	return &enquiryServiceImpl{
		repo:     repo,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

func (s *enquiryServiceImpl) Persists() bool { return s.repo != nil }

// Submit runs the configuration check, the authoritative validation, and then
// the side effects. When both sinks are set the row is the system of record: a
// notification failure after a successful insert is logged, not returned.
func (s *enquiryServiceImpl) Submit(ctx context.Context, in validation.EnquiryInput) (*model.Enquiry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	e, err := validation.Validate(in)
	if err != nil {
		return nil, err
	}
	e.ID = s.newID()
	e.CreatedAt = s.now()
	if strings.TrimSpace(e.Country) == "" {
		e.Country = model.CountryNotSpecified
	}

	if s.repo != nil {
		if err := s.repo.Save(ctx, &e); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return nil, ErrDuplicateEntry
			}
			return nil, fmt.Errorf("save enquiry: %w", err)
		}
		slog.Info("enquiry saved", "enquiry_id", e.ID, "email", e.Email)
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, &e); err != nil {
			if s.repo != nil {
				slog.Error("enquiry saved but staff notification failed", "enquiry_id", e.ID, "error", err)
				return &e, nil
			}
			return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
		}
	}

	return &e, nil
}

func (s *enquiryServiceImpl) ready() error {
	if s.repo == nil && s.notifier == nil {
		return fmt.Errorf("%w: no enquiry sink configured", ErrMisconfiguredService)
	}
	if s.notifier != nil {
		if err := s.notifier.Ready(); err != nil {
			return fmt.Errorf("%w: %v", ErrMisconfiguredService, err)
		}
	}
	return nil
}
