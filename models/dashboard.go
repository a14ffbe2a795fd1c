package models

// DashboardStats aggregates ledger counts for the admin panel. It is a pure
// read model; nothing here may write back to the calendar.
type DashboardStats struct {
	Doctors            int64         `json:"doctors"`
	Patients           int64         `json:"patients"`
	Appointments       int64         `json:"appointments"`
	LatestAppointments []Appointment `json:"latestAppointments"`
}
