package entity

// AttendanceStatus estados válidos de asistencia.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceHalfDay AttendanceStatus = "half_day"
	AttendanceLeave   AttendanceStatus = "leave"
)

// Valid indica si el estado pertenece al conjunto cerrado.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceHalfDay, AttendanceLeave:
		return true
	}
	return false
}

// AttendanceRecord asistencia de un trabajador en un día.
type AttendanceRecord struct {
	ID          int64            `json:"id"`
	Date        Date             `json:"date"`
	UserID      int64            `json:"userId"`
	User        *UserRef         `json:"user,omitempty"`
	Status      AttendanceStatus `json:"status"`
	WorkEntryID *int64           `json:"workEntryId,omitempty"`
}

// AttendanceSummary conteos por estado para un rango.
type AttendanceSummary struct {
	Present    int `json:"present"`
	Absent     int `json:"absent"`
	HalfDay    int `json:"halfDay"`
	Leave      int `json:"leave"`
	TotalDays  int `json:"totalDays"`
	WorkerDays int `json:"workerDays"`
}
