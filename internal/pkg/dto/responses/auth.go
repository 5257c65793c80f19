package responses

// UserProfile is a read-only snapshot returned by the backend. It is never
// mutated in place, only replaced wholesale on a fresh identity check.
type UserProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type Login struct {
	AccessToken string      `json:"access_token"`
	User        UserProfile `json:"user"`
}

type UpdateProfile struct {
	Message string      `json:"message"`
	User    UserProfile `json:"user"`
}
