package wellbeing

import (
	"context"
	"errors"
	"strings"

	domain "goyo/internal/domain/wellbeing"
	"goyo/internal/errs"
	"goyo/internal/ports"
)

const defaultCounselorCapacity = 8

func (s *Service) CreateCounselor(ctx context.Context, input CreateCounselorInput) (ports.Counselor, error) {
	if ctx == nil {
		return ports.Counselor{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.Counselor{}, errs.Wrap(err, "check context")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return ports.Counselor{}, errs.Wrap(domain.ErrValidation, "name is required")
	}
	specialties := strings.TrimSpace(input.Specialties)
	if specialties == "" {
		return ports.Counselor{}, errs.Wrap(domain.ErrValidation, "specialties are required")
	}

	availability := strings.TrimSpace(input.Availability)
	if availability == "" {
		availability = domain.AvailabilityAvailable
	}
	availability, err := domain.NormalizeAvailability(availability)
	if err != nil {
		return ports.Counselor{}, err
	}

	capacity := input.MaxCapacity
	if capacity <= 0 {
		capacity = defaultCounselorCapacity
	}

	return s.counseling.CreateCounselor(ctx, ports.CounselorCreate{
		Name:          name,
		Specialties:   specialties,
		Phone:         strings.TrimSpace(input.Phone),
		Email:         strings.TrimSpace(input.Email),
		LicenseNumber: strings.TrimSpace(input.LicenseNumber),
		Availability:  availability,
		MaxCapacity:   capacity,
		CreatedAt:     nowUTCString(s.now()),
	})
}

func (s *Service) UpdateCounselor(ctx context.Context, input UpdateCounselorInput) (ports.Counselor, error) {
	if ctx == nil {
		return ports.Counselor{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.Counselor{}, errs.Wrap(err, "check context")
	}

	availability := strings.TrimSpace(input.Availability)
	if availability != "" {
		normalized, err := domain.NormalizeAvailability(availability)
		if err != nil {
			return ports.Counselor{}, err
		}
		availability = normalized
	}

	if err := s.counseling.UpdateCounselor(ctx, input.CounselorID, ports.CounselorUpdate{
		Name:          strings.TrimSpace(input.Name),
		Specialties:   strings.TrimSpace(input.Specialties),
		Phone:         strings.TrimSpace(input.Phone),
		Email:         strings.TrimSpace(input.Email),
		LicenseNumber: strings.TrimSpace(input.LicenseNumber),
		Availability:  availability,
		MaxCapacity:   input.MaxCapacity,
	}); err != nil {
		return ports.Counselor{}, err
	}
	return s.counseling.GetCounselor(ctx, input.CounselorID)
}

func (s *Service) ListCounselors(ctx context.Context) ([]ports.Counselor, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	return s.counseling.ListCounselors(ctx)
}

func (s *Service) GetCounselor(ctx context.Context, counselorID uint64) (ports.Counselor, error) {
	if ctx == nil {
		return ports.Counselor{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.Counselor{}, errs.Wrap(err, "check context")
	}
	return s.counseling.GetCounselor(ctx, counselorID)
}
