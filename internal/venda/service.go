// internal/venda/service.go
package venda

import (
	"errors"
	"strings"
	"time"

	"github.com/racondash/api-comissoes/internal/apperr"
	"github.com/racondash/api-comissoes/internal/auth"
	"github.com/racondash/api-comissoes/internal/comissao"
	"github.com/racondash/api-comissoes/internal/consultor"
	"github.com/racondash/api-comissoes/internal/cota"
	"github.com/racondash/api-comissoes/internal/moeda"
	"github.com/racondash/api-comissoes/internal/parcela"
	"github.com/racondash/api-comissoes/internal/produto"

	"gorm.io/gorm"
)

// Servico é o reconciliador de vendas: mantém venda, livro de cotas e
// cronograma de parcelas mutuamente consistentes sob os quatro pontos de
// edição (criação, metadados, só-cotas, só-parcelas). Toda validação
// acontece antes de qualquer escrita; cada mutação roda em uma transação.
type Servico struct {
	DB          *gorm.DB
	Vendas      Repository
	Cotas       *cota.Repository
	Parcelas    *parcela.Repository
	Consultores consultor.Repository

	// Agora existe para os testes fixarem o "hoje" do status derivado.
	Agora func() time.Time
}

func NewServico(db *gorm.DB) *Servico {
	return &Servico{
		DB:          db,
		Vendas:      NewRepository(),
		Cotas:       cota.NewRepository(db),
		Parcelas:    parcela.NewRepository(db),
		Consultores: consultor.NewRepository(),
		Agora:       time.Now,
	}
}

func (s *Servico) hoje() time.Time {
	t := s.Agora()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// resolverValoresCotas normaliza as três formas de entrada em uma única
// lista canônica de valores: lista explícita > base_value avulso (vira uma
// cota única, caminho legado) > par quantidade+valor unitário.
func resolverValoresCotas(lista []float64, qtd *int, unitario *float64, base *float64) ([]float64, error) {
	valores, err := cota.NormalizarValores(lista)
	if err != nil {
		return nil, err
	}
	if valores != nil {
		return valores, nil
	}
	if base != nil && qtd == nil && unitario == nil {
		if !moeda.Finito(*base) {
			return nil, apperr.ErrMissingFields
		}
		return []float64{moeda.Round2(*base)}, nil
	}
	n := 1
	if qtd != nil {
		n = *qtd
	}
	var u float64
	if unitario != nil {
		u = *unitario
	}
	if !moeda.Finito(u) {
		return nil, apperr.ErrMissingFields
	}
	return cota.ExpandirLegado(n, u), nil
}

// montarCronograma converte o payload de parcelas no cronograma a gravar.
// Lista vazia regenera o cronograma padrão a partir do total vigente: uma
// venda nunca fica sem parcelas.
func (s *Servico) montarCronograma(payload []ParcelaPayload, total float64, dataVenda time.Time) ([]parcela.Parcela, error) {
	parcelas, err := paraParcelas(payload)
	if err != nil {
		return nil, err
	}
	if len(parcelas) == 0 {
		return parcela.GerarPadrao(total, dataVenda), nil
	}
	return parcela.Normalizar(parcelas, s.hoje()), nil
}

// validarCriacao aplica as regras de campos obrigatórios do create antes de
// qualquer escrita.
func validarCriacao(req CriarVendaRequest) error {
	if strings.TrimSpace(req.ClienteNome) == "" || strings.TrimSpace(req.Produto) == "" || req.DataVenda == "" {
		return apperr.ErrMissingFields
	}
	if req.PercentualComissao == nil || !moeda.Finito(*req.PercentualComissao) {
		return apperr.ErrMissingFields
	}
	if !produto.Valido(strings.TrimSpace(req.Produto)) {
		return apperr.New(apperr.KindInvalidArgument, "invalid_product")
	}
	return nil
}

// Criar registra uma venda com livro de cotas e cronograma. Consultores só
// criam para si; admin escolhe o consultor no corpo.
func (s *Servico) Criar(atuante auth.Atuante, req CriarVendaRequest) (*VendaDetalhada, error) {
	cid := atuante.ConsultorID
	if atuante.Admin() {
		if req.ConsultorID == nil || *req.ConsultorID == 0 {
			return nil, apperr.New(apperr.KindMissingFields, "missing_consultant")
		}
		cid = *req.ConsultorID
	}
	if cid == 0 {
		return nil, apperr.New(apperr.KindMissingFields, "missing_consultant")
	}

	cons, err := s.Consultores.BuscarPorID(s.DB, cid)
	if err != nil {
		return nil, apperr.ErrInvalidConsultant
	}

	if err := validarCriacao(req); err != nil {
		return nil, err
	}
	dataVenda, err := parseData(req.DataVenda)
	if err != nil {
		return nil, err
	}

	valores, err := resolverValoresCotas(req.QuotasValues, req.QtdCotas, req.ValorUnitario, req.ValorBase)
	if err != nil {
		return nil, err
	}
	base := cota.Soma(valores)
	total, err := comissao.Calcular(base, *req.PercentualComissao)
	if err != nil {
		return nil, err
	}

	parcelas, err := s.montarCronograma(req.Installments, total, dataVenda)
	if err != nil {
		return nil, err
	}

	credito := 0.0
	if req.CreditoGerado != nil && moeda.Finito(*req.CreditoGerado) {
		credito = *req.CreditoGerado
	}

	v := Venda{
		ConsultorID:        cid,
		ConsultorNome:      cons.Nome,
		ClienteNome:        strings.TrimSpace(req.ClienteNome),
		Produto:            strings.TrimSpace(req.Produto),
		DataVenda:          dataVenda,
		Seguro:             bool(req.Seguro),
		ValorBase:          base,
		QtdCotas:           len(valores),
		ValorUnitario:      valores[0],
		PercentualComissao: *req.PercentualComissao,
		TotalComissao:      total,
		CreditoGerado:      credito,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Vendas.Salvar(tx, &v); err != nil {
			return err
		}
		if err := s.Cotas.SubstituirPorVenda(tx, v.ID, valores); err != nil {
			return err
		}
		return s.Parcelas.SubstituirPorVenda(tx, v.ID, parcelas)
	})
	if err != nil {
		return nil, err
	}
	return s.detalhar(&v)
}

// carregarParaMutacao resolve venda + autorização para os quatro pontos de
// edição.
func (s *Servico) carregarParaMutacao(atuante auth.Atuante, id uint) (*Venda, error) {
	v, err := s.Vendas.BuscarPorID(s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	if !atuante.PodeMutarVenda(v.ConsultorID) {
		return nil, apperr.ErrForbidden
	}
	return v, nil
}

// aplicarEdicao aplica a edição de metadados sobre a venda carregada. As
// colunas legadas quotas/unit_value são atualizadas mesmo sem base_value; a
// lista explícita de cotas, quando presente, sobrepõe as duas e rederiva a
// base. O total é recomputado ao final.
func aplicarEdicao(v *Venda, req AtualizarVendaRequest, novasCotas []float64) error {
	if req.ClienteNome != nil {
		v.ClienteNome = strings.TrimSpace(*req.ClienteNome)
	}
	if req.Produto != nil {
		v.Produto = strings.TrimSpace(*req.Produto)
	}
	if req.DataVenda != nil {
		d, err := parseData(*req.DataVenda)
		if err != nil {
			return err
		}
		v.DataVenda = d
	}
	if req.Seguro != nil {
		v.Seguro = *req.Seguro
	}
	if req.CreditoGerado != nil {
		v.CreditoGerado = *req.CreditoGerado
	}
	if req.PercentualComissao != nil {
		if !moeda.Finito(*req.PercentualComissao) {
			return apperr.ErrMissingFields
		}
		v.PercentualComissao = *req.PercentualComissao
	}
	if req.QtdCotas != nil {
		v.QtdCotas = cota.ClampQuantidade(*req.QtdCotas)
	}
	if req.ValorUnitario != nil {
		v.ValorUnitario = *req.ValorUnitario
	}

	switch {
	case novasCotas != nil:
		v.ValorBase = cota.Soma(novasCotas)
		v.QtdCotas = len(novasCotas)
		v.ValorUnitario = novasCotas[0]
	case req.ValorBase != nil:
		if !moeda.Finito(*req.ValorBase) {
			return apperr.ErrMissingFields
		}
		v.ValorBase = moeda.Round2(*req.ValorBase)
	}

	total, err := comissao.Calcular(v.ValorBase, v.PercentualComissao)
	if err != nil {
		return err
	}
	v.TotalComissao = total
	return nil
}

// Atualizar é a edição de metadados. Mudança de percentual ou de cotas
// recalcula o total; um cronograma explícito substitui o atual por inteiro
// (lista vazia regenera o padrão). Sem payload de parcelas o cronograma
// existente NÃO é reescalado, mesmo que o total tenha mudado — só o endpoint
// dedicado de cotas reescalona.
func (s *Servico) Atualizar(atuante auth.Atuante, id uint, req AtualizarVendaRequest) (*VendaDetalhada, error) {
	v, err := s.carregarParaMutacao(atuante, id)
	if err != nil {
		return nil, err
	}

	novasCotas, err := cota.NormalizarValores(req.QuotasValues)
	if err != nil {
		return nil, err
	}

	if err := aplicarEdicao(v, req, novasCotas); err != nil {
		return nil, err
	}

	var novasParcelas []parcela.Parcela
	if req.Installments != nil {
		novasParcelas, err = s.montarCronograma(req.Installments, v.TotalComissao, v.DataVenda)
		if err != nil {
			return nil, err
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if novasCotas != nil {
			if err := s.Cotas.SubstituirPorVenda(tx, v.ID, novasCotas); err != nil {
				return err
			}
		}
		if err := s.Vendas.Salvar(tx, v); err != nil {
			return err
		}
		if novasParcelas != nil {
			return s.Parcelas.SubstituirPorVenda(tx, v.ID, novasParcelas)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.detalhar(v)
}

// AtualizarCotas é o único caminho que reescalona o cronograma: substitui o
// livro de cotas, recomputa base e total e redistribui proporcionalmente os
// valores das parcelas existentes.
func (s *Servico) AtualizarCotas(atuante auth.Atuante, id uint, req AtualizarCotasRequest) (*VendaDetalhada, error) {
	v, err := s.carregarParaMutacao(atuante, id)
	if err != nil {
		return nil, err
	}

	valores, err := cota.NormalizarValores(req.QuotasValues)
	if err != nil {
		return nil, err
	}
	if valores == nil {
		return nil, apperr.New(apperr.KindMissingFields, "missing_quotas_values")
	}

	base := cota.Soma(valores)
	total, err := comissao.Calcular(base, v.PercentualComissao)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Cotas.SubstituirPorVenda(tx, v.ID, valores); err != nil {
			return err
		}
		atuais, err := s.Parcelas.ListarPorVenda(tx, v.ID)
		if err != nil {
			return err
		}
		if len(atuais) > 0 {
			reescaladas := parcela.Reescalar(atuais, v.TotalComissao, total)
			if err := s.Parcelas.SubstituirPorVenda(tx, v.ID, reescaladas); err != nil {
				return err
			}
		}
		v.ValorBase = base
		v.QtdCotas = len(valores)
		v.ValorUnitario = valores[0]
		v.TotalComissao = total
		return s.Vendas.Salvar(tx, v)
	})
	if err != nil {
		return nil, err
	}
	return s.detalhar(v)
}

// AtualizarParcelas substitui o cronograma por inteiro sem tocar em cotas ou
// valor base.
func (s *Servico) AtualizarParcelas(atuante auth.Atuante, id uint, req AtualizarParcelasRequest) ([]ParcelaLeitura, error) {
	v, err := s.carregarParaMutacao(atuante, id)
	if err != nil {
		return nil, err
	}
	if req.Installments == nil {
		return nil, apperr.New(apperr.KindMissingFields, "missing_installments")
	}

	parcelas, err := s.montarCronograma(req.Installments, v.TotalComissao, v.DataVenda)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Parcelas.SubstituirPorVenda(tx, v.ID, parcelas)
	})
	if err != nil {
		return nil, err
	}

	gravadas, err := s.Parcelas.ListarPorVenda(s.DB, v.ID)
	if err != nil {
		return nil, err
	}
	return paraLeitura(gravadas, s.hoje()), nil
}

// Deletar remove a venda com o livro de cotas e o cronograma (cascata).
func (s *Servico) Deletar(atuante auth.Atuante, id uint) error {
	v, err := s.carregarParaMutacao(atuante, id)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Cotas.SubstituirPorVenda(tx, v.ID, nil); err != nil {
			return err
		}
		if err := s.Parcelas.SubstituirPorVenda(tx, v.ID, nil); err != nil {
			return err
		}
		return s.Vendas.Deletar(tx, v.ID)
	})
}

// Listar devolve as vendas visíveis ao atuante com cotas e parcelas
// embutidas. Vendas anteriores ao livro de cotas têm as cotas materializadas
// na primeira leitura a partir das colunas legadas.
func (s *Servico) Listar(atuante auth.Atuante) ([]VendaDetalhada, error) {
	var escopo *uint
	if !atuante.Admin() {
		cid := atuante.ConsultorID
		escopo = &cid
	}
	vendas, err := s.Vendas.Listar(s.DB, escopo)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(vendas))
	for i, v := range vendas {
		ids[i] = v.ID
	}
	cotasPorVenda, err := s.Cotas.MapearPorVendas(s.DB, ids)
	if err != nil {
		return nil, err
	}

	for i := range vendas {
		v := &vendas[i]
		if len(cotasPorVenda[v.ID]) > 0 {
			continue
		}
		valores := cota.ExpandirLegado(v.QtdCotas, v.ValorUnitario)
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			return s.Cotas.SubstituirPorVenda(tx, v.ID, valores)
		})
		if err != nil {
			return nil, err
		}
		materializadas, err := s.Cotas.ListarPorVenda(s.DB, v.ID)
		if err != nil {
			return nil, err
		}
		cotasPorVenda[v.ID] = materializadas
	}

	parcelasPorVenda, err := s.Parcelas.MapearPorVendas(s.DB, ids)
	if err != nil {
		return nil, err
	}

	hoje := s.hoje()
	saida := make([]VendaDetalhada, len(vendas))
	for i, v := range vendas {
		saida[i] = VendaDetalhada{
			Venda:        v,
			QuotasValues: cota.Valores(cotasPorVenda[v.ID]),
			Installments: paraLeitura(parcelasPorVenda[v.ID], hoje),
		}
	}
	return saida, nil
}

// detalhar monta a projeção de leitura de uma venda recém-gravada.
func (s *Servico) detalhar(v *Venda) (*VendaDetalhada, error) {
	cotas, err := s.Cotas.ListarPorVenda(s.DB, v.ID)
	if err != nil {
		return nil, err
	}
	parcelas, err := s.Parcelas.ListarPorVenda(s.DB, v.ID)
	if err != nil {
		return nil, err
	}
	return &VendaDetalhada{
		Venda:        *v,
		QuotasValues: cota.Valores(cotas),
		Installments: paraLeitura(parcelas, s.hoje()),
	}, nil
}
