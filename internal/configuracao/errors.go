package configuracao

import "fmt"

// ErroValidacao aponta o campo rejeitado na validação.
type ErroValidacao struct {
	Campo    string
	Mensagem string
}

func (e *ErroValidacao) Error() string {
	return fmt.Sprintf("%s: %s", e.Campo, e.Mensagem)
}
