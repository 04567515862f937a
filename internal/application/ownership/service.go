package ownership

import (
	"context"
	"fmt"

	"agro-portal/internal/domain"
	"agro-portal/internal/infrastructure/database"
)

// Row is one (property, owner) line of the ownership report.
type Row struct {
	NomeImovel            string  `gorm:"column:nome_imovel"`
	AreaTotalHa           float64 `gorm:"column:area_total_ha"`
	Proprietario          string  `gorm:"column:proprietario"`
	TipoPessoa            string  `gorm:"column:tipo_pessoa"`
	PercentualPropriedade float64 `gorm:"column:percentual_propriedade"`
}

// TypeLabel is "Física" for individuals and "Jurídica" for organizations.
func (r Row) TypeLabel() string {
	return domain.TipoPessoaLabel(r.TipoPessoa)
}

// The owner's display name comes from the subtype table selected by tipo_pessoa.
const reportQuery = `
SELECT
	ir.nome_imovel,
	ir.area_total_ha,
	COALESCE(pf.nome_completo, pj.razao_social, '') AS proprietario,
	p.tipo_pessoa,
	pr.percentual_propriedade
FROM imovel_rural ir
JOIN propriedade pr ON ir.id_imovel_rural = pr.id_imovel_rural
JOIN pessoa p ON pr.id_pessoa = p.id_pessoa
LEFT JOIN pessoa_fisica pf ON p.id_pessoa = pf.id_pessoa AND p.tipo_pessoa = 'F'
LEFT JOIN pessoa_juridica pj ON p.id_pessoa = pj.id_pessoa AND p.tipo_pessoa = 'J'
ORDER BY ir.nome_imovel, proprietario`

// Service builds the ownership report.
type Service struct {
	Conn database.Opener
}

// Report runs the read-only ownership join. An empty result is not an error.
func (s *Service) Report(ctx context.Context) ([]Row, error) {
	db, err := s.Conn.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer database.Close(db)

	var rows []Row
	if err := db.WithContext(ctx).Raw(reportQuery).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("ownership report: %w", err)
	}
	return rows, nil
}
