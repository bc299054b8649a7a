package usuario

// Usuario é a credencial de acesso. Consultores carregam o ConsultorID que
// escopa todas as consultas; o admin fica com o campo nulo.
type Usuario struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Username    string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	SenhaHash   string `gorm:"size:255;not null" json:"-"`
	Role        string `gorm:"size:20;not null" json:"role"`
	ConsultorID *uint  `gorm:"index" json:"consultant_id"`
}

func (Usuario) TableName() string { return "usuarios" }
