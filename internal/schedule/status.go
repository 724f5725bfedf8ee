package schedule

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// CanCancel reports whether an appointment in the given status may be
// cancelled. Cancelled is terminal; rebooking requires a new appointment.
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return StateError{Status: current}
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
