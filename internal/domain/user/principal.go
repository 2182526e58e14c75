package user

// Principal is the verified identity behind a bearer token.
type Principal struct {
	UserID string
	Email  string
}
