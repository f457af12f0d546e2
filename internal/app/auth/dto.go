package auth

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginBody is the JSON body some backends answer with; others hand the
// token back in the Authorization response header instead.
type loginBody struct {
	Token string `json:"token"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type RegisteredUser struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
