package pagamento

import (
	"sort"

	"github.com/PlanoFamilia/api-pagamentos/internal/configuracao"
)

// MontarResumoMensal consolida os pagamentos do mês informado. Derivação
// pura: recalculada a cada leitura, sem cache nem estado incremental.
// Com configuração ausente o total do plano é zero e nada estoura.
func MontarResumoMensal(pagamentos []Pagamento, cfg *configuracao.Configuracao, mes string) ResumoMensalDTO {
	resumo := ResumoMensalDTO{
		Mes:         mes,
		Confirmados: []Pagamento{},
		EmAberto:    []Pagamento{},
	}

	for _, p := range pagamentos {
		if p.MesPagamento != mes {
			continue
		}
		if ContaComoPago(p.Status) {
			resumo.TotalPago += p.Valor
			resumo.Pagos++
			resumo.Confirmados = append(resumo.Confirmados, p)
		} else if p.Status == StatusPendente {
			resumo.Pendentes++
			resumo.EmAberto = append(resumo.EmAberto, p)
		}
	}

	if cfg != nil {
		resumo.TotalPlano = cfg.ValorTotal
		resumo.MembrosPagantes = cfg.MembrosPagantes
		if resumo.MembrosPagantes == 0 {
			resumo.MembrosPagantes = cfg.NumeroMembros
		}
	}
	// pode ficar negativo quando o mês foi pago a mais
	resumo.Restante = resumo.TotalPlano - resumo.TotalPago

	return resumo
}

// AgruparHistorico particiona os registros em meses estritamente
// anteriores ao mês informado, com total e contagem por grupo, ordenados
// do mês mais recente para o mais antigo. O mês de cada registro é sempre
// o carimbado na criação; registros sem mês são ignorados.
func AgruparHistorico(pagamentos []Pagamento, mesAtual string) []GrupoMensalDTO {
	porMes := make(map[string][]Pagamento)
	for _, p := range pagamentos {
		if p.MesPagamento == "" || p.MesPagamento >= mesAtual {
			continue
		}
		porMes[p.MesPagamento] = append(porMes[p.MesPagamento], p)
	}

	meses := make([]string, 0, len(porMes))
	for mes := range porMes {
		meses = append(meses, mes)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(meses)))

	grupos := make([]GrupoMensalDTO, 0, len(meses))
	for _, mes := range meses {
		grupo := GrupoMensalDTO{
			Mes:        mes,
			Quantidade: len(porMes[mes]),
			Pagamentos: porMes[mes],
		}
		for _, p := range porMes[mes] {
			grupo.Total += p.Valor
		}
		grupos = append(grupos, grupo)
	}
	return grupos
}
