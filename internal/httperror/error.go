package httperror

// Error is the body of every error response.
type Error struct {
	Message string `json:"error" example:"the start date must be set and must not be after the end date"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

func NewFromString(s string) Error {
	return Error{
		Message: s,
	}
}
