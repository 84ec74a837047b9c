package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
	"github.com/m04kA/GameLounge-BookingService/internal/scheduling"
)

// validateRequest checks the fields that do not depend on the lounge schedule
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone longer than %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if req.Email != nil && *req.Email != "" {
		if len(*req.Email) > domain.MaxEmailLength || !strings.Contains(*req.Email, "@") {
			return fmt.Errorf("%w: invalid email", ErrInvalidInput)
		}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.NumPeople < domain.MinNumPeople || req.NumPeople > domain.MaxNumPeople {
		return fmt.Errorf("%w: numPeople must be between %d and %d",
			ErrInvalidInput, domain.MinNumPeople, domain.MaxNumPeople)
	}

	if req.SpecialRequests != nil && utf8.RuneCountInString(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests longer than %d characters",
			ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	return nil
}

// validateSchedule checks game type, slot and duration against the lounge schedule
func validateSchedule(req *Request, schedule *scheduling.Config) error {
	if !schedule.IsKnownGameType(req.GameType) {
		return fmt.Errorf("%w: %s", ErrUnknownGameType, req.GameType)
	}

	grid := schedule.Grid()
	if !grid.Contains(scheduling.SlotLabel(req.TimeSlot)) {
		return fmt.Errorf("%w: %q is not a lounge slot", ErrInvalidTimeSlot, req.TimeSlot)
	}

	if req.DurationMinutes > domain.MaxBookingDurationMinutes {
		return fmt.Errorf("%w: duration exceeds %d minutes", ErrInvalidDuration, domain.MaxBookingDurationMinutes)
	}
	if _, err := scheduling.SlotCount(req.DurationMinutes, grid.Interval()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	}

	return nil
}

// validateStart rejects slots that have already started in the lounge time zone
func validateStart(req *Request, now time.Time, loc *time.Location) error {
	clock, err := scheduling.ParseSlotLabel(scheduling.SlotLabel(req.TimeSlot))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	start := clock.On(req.Date, loc)
	if start.Before(now) {
		return fmt.Errorf("%w: slot %s on %s has already started",
			ErrInvalidDate, req.TimeSlot, req.Date.Format(domain.DateFormat))
	}

	return nil
}
