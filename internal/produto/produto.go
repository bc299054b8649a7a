// internal/produto/produto.go
package produto

// Categorias de produto aceitas em uma venda (carta de crédito por segmento).
const (
	Imovel   = "Imóvel"
	Auto     = "Auto"
	Moto     = "Moto"
	Agro     = "Agro"
	Servicos = "Serviços"
)

var categorias = map[string]bool{
	Imovel:   true,
	Auto:     true,
	Moto:     true,
	Agro:     true,
	Servicos: true,
}

// Valido informa se a categoria é conhecida.
func Valido(categoria string) bool {
	return categorias[categoria]
}

// Categorias lista as categorias aceitas, na ordem de exibição.
func Categorias() []string {
	return []string{Imovel, Auto, Moto, Agro, Servicos}
}
