package service

import (
	"context"
	"errors"

	catalogerrors "studycafe/internal/catalog/errors"
	"studycafe/internal/catalog/repository"
	"studycafe/internal/catalog/validator"
	apperrors "studycafe/pkg/errors"
	"studycafe/pkg/logger"
	"studycafe/pkg/model"
)

type CatalogService interface {
	LoadPassCatalog(ctx context.Context) (*model.PassCatalog, error)
	LoadLockerCatalog(ctx context.Context) (*model.LockerCatalog, error)
}

type catalogService struct {
	seatRepo   repository.SeatPassRepository
	lockerRepo repository.LockerPassRepository
	validator  *validator.PassValidator
	log        *logger.Logger

	seatSource   string
	lockerSource string
}

// NewCatalogService wires the repositories; the source names only label logs
// and error details.
func NewCatalogService(
	seatRepo repository.SeatPassRepository,
	seatSource string,
	lockerRepo repository.LockerPassRepository,
	lockerSource string,
	validator *validator.PassValidator,
	log *logger.Logger,
) CatalogService {
	return &catalogService{
		seatRepo:     seatRepo,
		lockerRepo:   lockerRepo,
		validator:    validator,
		log:          log,
		seatSource:   seatSource,
		lockerSource: lockerSource,
	}
}

func (s *catalogService) LoadPassCatalog(ctx context.Context) (*model.PassCatalog, error) {
	passes, err := s.seatRepo.FindAll(ctx)
	if err != nil {
		return nil, s.translate(s.seatSource, err)
	}

	for i, p := range passes {
		if err := s.validator.ValidateSeatPass(p); err != nil {
			return nil, s.translate(s.seatSource, catalogerrors.NewRowError(i+1, err))
		}
	}

	s.log.Info("Seat pass catalog loaded",
		"path", s.seatSource,
		"passes", len(passes),
	)
	return model.NewPassCatalog(passes), nil
}

func (s *catalogService) LoadLockerCatalog(ctx context.Context) (*model.LockerCatalog, error) {
	passes, err := s.lockerRepo.FindAll(ctx)
	if err != nil {
		return nil, s.translate(s.lockerSource, err)
	}

	for i, p := range passes {
		if err := s.validator.ValidateLockerPass(p); err != nil {
			return nil, s.translate(s.lockerSource, catalogerrors.NewRowError(i+1, err))
		}
	}

	s.log.Info("Locker pass catalog loaded",
		"path", s.lockerSource,
		"passes", len(passes),
	)
	return model.NewLockerCatalog(passes), nil
}

func (s *catalogService) translate(source string, err error) error {
	var rowErr *catalogerrors.RowError
	switch {
	case errors.As(err, &rowErr):
		s.log.Error("Catalog row is malformed",
			"path", source,
			"row", rowErr.Row,
			"error", rowErr.Err,
		)
		return apperrors.CatalogMalformed(source, rowErr.Row, err)

	case errors.Is(err, catalogerrors.ErrUnavailable):
		s.log.Error("Catalog could not be read",
			"path", source,
			"error", err,
		)
		return apperrors.CatalogUnavailable(source, err)

	default:
		s.log.Error("Failed to load catalog",
			"path", source,
			"error", err,
		)
		return apperrors.Internal("Failed to load catalog", err)
	}
}
