package auth

// Claims representa al operador extraído del token.
type Claims struct {
	UserID string
	Email  string
	Role   string
}
