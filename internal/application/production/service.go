package production

import (
	"context"
	"fmt"

	"agro-portal/internal/domain"
	"agro-portal/internal/infrastructure/database"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service registers agricultural productions.
type Service struct {
	Conn database.Opener
}

func newProducao(in Input) *domain.ProducaoAgricola {
	return &domain.ProducaoAgricola{
		IDImovelRural:   in.PropertyID,
		CulturaPlantada: in.Crop,
		AreaCultivadaHa: in.AreaHa,
		DataPlantio:     datatypes.Date(in.PlantingDate),
		Safra:           in.Season,
		StatusProducao:  domain.StatusPlanejada,
	}
}

// insertProducao is the single INSERT the registration issues.
func insertProducao(tx *gorm.DB, p *domain.ProducaoAgricola) *gorm.DB {
	return tx.Create(p)
}

// Register inserts one production with status Planejada in its own transaction.
// Any database error rolls the transaction back; the session is released on every path.
func (s *Service) Register(ctx context.Context, in Input) (*domain.ProducaoAgricola, error) {
	db, err := s.Conn.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer database.Close(db)

	p := newProducao(in)
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return insertProducao(tx, p).Error
	})
	if err != nil {
		log.Error().Err(err).Int64("id_imovel_rural", in.PropertyID).Str("cultura", in.Crop).Msg("insert producao_agricola rolled back")
		return nil, fmt.Errorf("insert producao_agricola: %w", err)
	}

	log.Info().Int64("id_imovel_rural", p.IDImovelRural).Str("cultura", p.CulturaPlantada).Msg("producao_agricola registered")
	return p, nil
}
