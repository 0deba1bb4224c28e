package configuracao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configuracaoValida() Configuracao {
	return Configuracao{
		ChavePix:        "familia@example.com",
		TipoChavePix:    TipoEmail,
		NomeTitular:     "Maria Silva",
		ValorTotal:      34.90,
		NumeroMembros:   6,
		MembrosPagantes: 5,
		DiaVencimento:   5,
	}
}

func TestValidarConfiguracaoValida(t *testing.T) {
	c := configuracaoValida()
	assert.NoError(t, c.Validar())
}

func TestValidarPagantesMaiorQueMembros(t *testing.T) {
	c := configuracaoValida()
	c.MembrosPagantes = 7

	err := c.Validar()
	require.Error(t, err)

	var ev *ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, "paying_members", ev.Campo)
}

func TestValidarValorTotalNaoPositivo(t *testing.T) {
	for _, valor := range []float64{0, -10} {
		c := configuracaoValida()
		c.ValorTotal = valor

		var ev *ErroValidacao
		require.ErrorAs(t, c.Validar(), &ev)
		assert.Equal(t, "total_monthly_cost", ev.Campo)
	}
}

func TestValidarDiaVencimentoForaDoIntervalo(t *testing.T) {
	for _, dia := range []int{0, 32, -1} {
		c := configuracaoValida()
		c.DiaVencimento = dia

		var ev *ErroValidacao
		require.ErrorAs(t, c.Validar(), &ev)
		assert.Equal(t, "due_day", ev.Campo)
	}
}

func TestValidarTipoChaveDesconhecido(t *testing.T) {
	c := configuracaoValida()
	c.TipoChavePix = "iban"

	var ev *ErroValidacao
	require.ErrorAs(t, c.Validar(), &ev)
	assert.Equal(t, "pix_type", ev.Campo)
}

func TestValorPorPagante(t *testing.T) {
	c := Configuracao{ValorTotal: 34.90, MembrosPagantes: 5}
	assert.InDelta(t, 6.98, c.ValorPorPagante(), 0.0001)
}

func TestValorPorPaganteSemPagantes(t *testing.T) {
	c := Configuracao{ValorTotal: 34.90}
	assert.Zero(t, c.ValorPorPagante())
}
