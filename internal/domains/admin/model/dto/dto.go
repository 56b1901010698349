package dto

type DashboardStatsResponse struct {
	TotalAppointments    int            `json:"total_appointments"`
	AppointmentsByStatus map[string]int `json:"appointments_by_status"`
	TotalContacts        int            `json:"total_contacts"`
	TotalSubscribers     int            `json:"total_subscribers"`
	ActiveSubscribers    int            `json:"active_subscribers"`
	TotalLeads           int            `json:"total_leads"`
}
