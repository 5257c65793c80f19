package responses

// ErrorBody is the shape every backend endpoint uses for non-2xx responses.
type ErrorBody struct {
	Error string `json:"error"`
}
