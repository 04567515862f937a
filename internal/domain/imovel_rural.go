package domain

// ImovelRural maps the IMOVEL_RURAL table (rural property).
type ImovelRural struct {
	IDImovelRural int64              `gorm:"column:id_imovel_rural;primaryKey" json:"id_imovel_rural"`
	NomeImovel    string             `gorm:"column:nome_imovel;not null" json:"nome_imovel"`
	AreaTotalHa   float64            `gorm:"column:area_total_ha;type:decimal(12,2);not null" json:"area_total_ha"`
	Producoes     []ProducaoAgricola `gorm:"foreignKey:IDImovelRural;references:IDImovelRural" json:"-"`
}

func (ImovelRural) TableName() string {
	return "imovel_rural"
}
