package admin

import "gorm.io/gorm"

// Usuário e senha padrão do setup inicial (trocados pelo admin no primeiro acesso).
const (
	UsuarioPadrao = "admin"
	SenhaPadrao   = "admin123"
)

// Admin é a credencial única do administrador.
type Admin struct {
	gorm.Model
	Username  string `json:"username" gorm:"unique"`
	SenhaHash string `json:"-"`
}
