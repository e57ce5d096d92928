package models

// Home is the payload served at the API root
type Home struct {
	Message string `json:"message"`
	Doc     string `json:"doc"`
}

// NewHome returns the welcome payload
func NewHome() Home {
	return Home{
		Message: "Bem vindo a API de veículos - Minimal API",
		Doc:     "/swagger/index.html",
	}
}
