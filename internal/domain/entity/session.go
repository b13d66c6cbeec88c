package entity

// Session sesión del operador de la consola.
type Session struct {
	Token string
	Email string
}

// IsAuthenticated hay sesión si hay token.
func (s Session) IsAuthenticated() bool { return s.Token != "" }
