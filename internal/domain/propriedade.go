package domain

// Propriedade maps the PROPRIEDADE table: a person's share of a rural property.
type Propriedade struct {
	IDImovelRural         int64   `gorm:"column:id_imovel_rural;primaryKey;autoIncrement:false" json:"id_imovel_rural"`
	IDPessoa              uint    `gorm:"column:id_pessoa;primaryKey;autoIncrement:false" json:"id_pessoa"`
	PercentualPropriedade float64 `gorm:"column:percentual_propriedade;type:decimal(5,2);not null" json:"percentual_propriedade"`
}

func (Propriedade) TableName() string {
	return "propriedade"
}
