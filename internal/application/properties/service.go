package properties

import (
	"context"
	"fmt"

	"agro-portal/internal/domain"
	"agro-portal/internal/infrastructure/database"
)

// Service lists rural properties.
type Service struct {
	Conn database.Opener
}

// List returns every rural property ordered by name. An empty table yields an empty slice.
func (s *Service) List(ctx context.Context) ([]domain.ImovelRural, error) {
	db, err := s.Conn.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer database.Close(db)

	var imoveis []domain.ImovelRural
	if err := db.WithContext(ctx).
		Select("id_imovel_rural", "nome_imovel", "area_total_ha").
		Order("nome_imovel").
		Find(&imoveis).Error; err != nil {
		return nil, fmt.Errorf("list imovel_rural: %w", err)
	}
	return imoveis, nil
}
