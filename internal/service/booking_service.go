package service

import (
	"context"
	"errors"
	"time"

	"github.com/coworkly/coworking-booking/internal/models"
	"github.com/coworkly/coworking-booking/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrSlotUnavailable   = errors.New("time slot not available")
	ErrBookingNotPending = errors.New("booking is not pending")
	ErrNotBookingOwner   = errors.New("you are not allowed to modify this booking")
)

// EventPublisher emits booking lifecycle events. A nil publisher disables
// publishing; delivery failures never fail the booking operation.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type BookingService interface {
	CreateBooking(ctx context.Context, userID, workspaceID uint, start, end time.Time) (*models.Booking, error)
	ConfirmBooking(ctx context.Context, bookingID, adminID uint) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID, callerID uint) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListUserBookings(ctx context.Context, userID uint) ([]models.Booking, error)
	ListWorkspaceBookings(ctx context.Context, workspaceID, adminID uint, status *models.BookingStatus) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo   repository.BookingRepository
	workspaceRepo repository.WorkspaceRepository
	publisher     EventPublisher
}

func NewBookingService(bookingRepo repository.BookingRepository, workspaceRepo repository.WorkspaceRepository, publisher EventPublisher) BookingService {
	return &bookingService{
		bookingRepo:   bookingRepo,
		workspaceRepo: workspaceRepo,
		publisher:     publisher,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID, workspaceID uint, start, end time.Time) (*models.Booking, error) {
	rng, err := models.NewTimeRange(start, end)
	if err != nil {
		return nil, err
	}

	var result *models.Booking

	err = s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the workspace row — serializes check-and-insert per workspace
		workspace, err := s.workspaceRepo.FindByIDForUpdate(ctx, tx, workspaceID)
		if err != nil {
			return ErrWorkspaceNotFound
		}

		// 2. Overlap scan against active (pending or confirmed) bookings
		_, err = s.bookingRepo.FindActiveOverlapping(ctx, tx, workspaceID, rng, 0)
		if err == nil {
			return ErrSlotUnavailable
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// 3. Price and persist as pending
		booking := &models.Booking{
			UserID:      userID,
			WorkspaceID: workspaceID,
			StartTime:   rng.Start,
			EndTime:     rng.End,
			TotalPrice:  TotalPrice(rng, workspace.PricePerHour),
			Status:      models.StatusPending,
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			if isRangeConflict(err) {
				return ErrSlotUnavailable
			}
			return err
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "booking.created", result)
	return result, nil
}

func (s *bookingService) ConfirmBooking(ctx context.Context, bookingID, adminID uint) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByID(ctx, bookingID)
		if err != nil {
			return ErrBookingNotFound
		}

		workspace, err := s.workspaceRepo.FindByIDForUpdate(ctx, tx, booking.WorkspaceID)
		if err != nil {
			return err
		}
		if workspace.AdminID != adminID {
			return ErrNotOwner
		}

		// Re-read under the workspace lock; a racing transition may have
		// committed between the first lookup and lock acquisition.
		booking, err = s.bookingRepo.FindByIDForUpdate(ctx, tx, booking.ID)
		if err != nil {
			return ErrBookingNotFound
		}
		if booking.Status != models.StatusPending {
			return ErrBookingNotPending
		}

		// Confirmed bookings must stay overlap-free; another booking may have
		// claimed the slot since this one was created.
		_, err = s.bookingRepo.FindActiveOverlapping(ctx, tx, booking.WorkspaceID, booking.Range(), booking.ID)
		if err == nil {
			return ErrSlotUnavailable
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := s.bookingRepo.UpdateStatus(ctx, tx, booking.ID, models.StatusConfirmed); err != nil {
			if isRangeConflict(err) {
				return ErrSlotUnavailable
			}
			return err
		}

		booking.Status = models.StatusConfirmed
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "booking.confirmed", result)
	return result, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID, callerID uint) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByID(ctx, bookingID)
		if err != nil {
			return ErrBookingNotFound
		}

		workspace, err := s.workspaceRepo.FindByIDForUpdate(ctx, tx, booking.WorkspaceID)
		if err != nil {
			return err
		}
		if booking.UserID != callerID && workspace.AdminID != callerID {
			return ErrNotBookingOwner
		}

		booking, err = s.bookingRepo.FindByIDForUpdate(ctx, tx, booking.ID)
		if err != nil {
			return ErrBookingNotFound
		}
		if booking.Status != models.StatusPending {
			return ErrBookingNotPending
		}

		if err := s.bookingRepo.UpdateStatus(ctx, tx, booking.ID, models.StatusCancelled); err != nil {
			return err
		}

		booking.Status = models.StatusCancelled
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "booking.cancelled", result)
	return result, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (s *bookingService) ListUserBookings(ctx context.Context, userID uint) ([]models.Booking, error) {
	return s.bookingRepo.FindByUserID(ctx, userID)
}

func (s *bookingService) ListWorkspaceBookings(ctx context.Context, workspaceID, adminID uint, status *models.BookingStatus) ([]models.Booking, error) {
	workspace, err := s.workspaceRepo.FindByID(ctx, workspaceID)
	if err != nil {
		return nil, ErrWorkspaceNotFound
	}
	if workspace.AdminID != adminID {
		return nil, ErrNotOwner
	}
	return s.bookingRepo.FindByWorkspaceID(ctx, workspaceID, status)
}

func (s *bookingService) publish(ctx context.Context, routingKey string, booking *models.Booking) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, routingKey, booking); err != nil {
		logrus.WithError(err).Warnf("failed to publish %s for booking %d", routingKey, booking.ID)
	}
}

// isRangeConflict recognizes a violation of the exclusion constraint on
// confirmed ranges (Postgres 23P01), the DB-level backstop for the row lock.
func isRangeConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}
