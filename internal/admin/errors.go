package admin

import "errors"

var (
	// ErrCredenciaisInvalidas cobre tanto usuário inexistente quanto senha
	// errada; a mensagem é deliberadamente a mesma nos dois casos.
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
	ErrSenhaFraca           = errors.New("nova senha deve ter pelo menos 6 caracteres")
)
