package domain

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StatusPlanejada is the status every new production starts with.
const StatusPlanejada = "Planejada"

// ProducaoAgricola maps the PRODUCAO_AGRICOLA table (one crop planting on a property).
// Only the six columns the portal writes are mapped; the table's own key is never read,
// so inserts carry no RETURNING clause.
type ProducaoAgricola struct {
	IDImovelRural   int64          `gorm:"column:id_imovel_rural;not null" json:"id_imovel_rural"`
	CulturaPlantada string         `gorm:"column:cultura_plantada;not null" json:"cultura_plantada"`
	AreaCultivadaHa float64        `gorm:"column:area_cultivada_ha;type:decimal(12,2);not null" json:"area_cultivada_ha"`
	DataPlantio     datatypes.Date `gorm:"column:data_plantio;not null" json:"data_plantio"`
	Safra           string         `gorm:"column:safra;not null" json:"safra"`
	StatusProducao  string         `gorm:"column:status_producao;not null" json:"status_producao"`
}

func (ProducaoAgricola) TableName() string {
	return "producao_agricola"
}

// BeforeCreate: a production is always registered as planned.
func (p *ProducaoAgricola) BeforeCreate(tx *gorm.DB) error {
	if p.StatusProducao == "" {
		p.StatusProducao = StatusPlanejada
	}
	return nil
}
