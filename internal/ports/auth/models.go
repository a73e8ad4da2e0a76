package auth

// Claims identifica al administrador dueño de una sesión.
type Claims struct {
	AdminID  uint
	Username string
	Email    string
}
