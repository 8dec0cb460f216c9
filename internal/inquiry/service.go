package inquiry

import (
	"context"
	"strings"

	"gymhabit/internal/catalog"
	"gymhabit/internal/logger"
	"gymhabit/internal/metrics"
	"gymhabit/internal/validation"
)

// GymCatalog is the slice of the catalog the inquiry core needs: the
// existence check for the referenced gym.
type GymCatalog interface {
	GymByID(ctx context.Context, id int) (*catalog.Gym, error)
}

// Notifier receives fire-and-forget notifications after an inquiry is
// stored. May be nil when email is disabled.
type Notifier interface {
	InquiryReceived(ctx context.Context, email, name, gymName, plan string) error
	AdminAlert(ctx context.Context, adminEmail, requestID, gymName, plan string) error
}

type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*Request, error)
	All(ctx context.Context) ([]Request, error)
}

type service struct {
	repo       Repository
	gyms       GymCatalog
	notifier   Notifier
	adminEmail string
}

// NewService wires the inquiry core. adminEmail may be empty, which
// disables admin alerts; notifier may be nil, which disables all mail.
func NewService(repo Repository, gyms GymCatalog, notifier Notifier, adminEmail string) Service {
	return &service{
		repo:       repo,
		gyms:       gyms,
		notifier:   notifier,
		adminEmail: adminEmail,
	}
}

// Submit validates the form, cross-checks the referenced gym and appends
// the inquiry to the log. Invalid submissions report every violated field
// and persist nothing.
func (s *service) Submit(ctx context.Context, req SubmitRequest) (*Request, error) {
	req.FullName = strings.TrimSpace(req.FullName)

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.gyms.GymByID(ctx, req.GymID); err != nil {
		return nil, err
	}

	stored, err := s.repo.Append(ctx, Request{
		GymID:          req.GymID,
		GymName:        req.GymName,
		PartnerName:    req.PartnerName,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		PreferredPlan:  req.PreferredPlan,
		BillingAddress: req.BillingAddress,
		Message:        req.Message,
		UserLatitude:   req.UserLatitude,
		UserLongitude:  req.UserLongitude,
		UserCity:       req.UserCity,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordInquiry(stored.PreferredPlan)

	if s.notifier != nil {
		if err := s.notifier.InquiryReceived(ctx, stored.Email, stored.FullName, stored.GymName, stored.PreferredPlan); err != nil {
			// The inquiry is already stored; a notification failure is
			// logged, not surfaced.
			logger.Error("inquiry notification failed", "request_id", stored.RequestID, "error", err)
		}
		if s.adminEmail != "" {
			if err := s.notifier.AdminAlert(ctx, s.adminEmail, stored.RequestID, stored.GymName, stored.PreferredPlan); err != nil {
				logger.Error("admin alert failed", "request_id", stored.RequestID, "error", err)
			}
		}
	}

	return stored, nil
}

func (s *service) All(ctx context.Context) ([]Request, error) {
	return s.repo.All(ctx)
}
