package responses

type AdminUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type AdminLogin struct {
	AccessToken string    `json:"access_token"`
	Admin       AdminUser `json:"admin"`
}

type AdminStats struct {
	TotalUsers        int `json:"total_users"`
	TotalPatients     int `json:"total_patients"`
	TotalAppointments int `json:"total_appointments"`
	ActiveSessions    int `json:"active_sessions"`
}

type AdminUserList struct {
	Users []UserProfile `json:"users"`
}
