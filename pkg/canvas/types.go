package canvas

// User is the subset of /users/self needed to scope cached data.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ShortName    string `json:"short_name"`
	LoginID      string `json:"login_id"`
	PrimaryEmail string `json:"primary_email"`
}

// Favorite is the body Canvas returns when a favorite is added or removed.
type Favorite struct {
	ContextID   int64  `json:"context_id"`
	ContextType string `json:"context_type"`
}

// apiErrorBody is the error envelope Canvas uses for 4xx responses.
type apiErrorBody struct {
	Errors  []apiErrorItem `json:"errors"`
	Message string         `json:"message"`
}

type apiErrorItem struct {
	Message string `json:"message"`
}

func (b apiErrorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	if len(b.Errors) > 0 {
		return b.Errors[0].Message
	}
	return ""
}
