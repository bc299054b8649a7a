package consultor

// Consultor é o vendedor dono de vendas e comissões. O nome é congelado na
// venda no momento da criação (snapshot), então renomear um consultor não
// reescreve o histórico.
type Consultor struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Nome  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100" json:"email"`
	Ativo bool   `gorm:"not null;default:true" json:"active"`
}

func (Consultor) TableName() string { return "consultores" }
