package dbtest

import (
	"context"
	"testing"
	"time"

	"agro-portal/internal/domain"
	"agro-portal/internal/infrastructure/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func createSQL(t *testing.T, db *gorm.DB, table string) string {
	t.Helper()
	var ddl string
	require.NoError(t, db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&ddl).Error)
	require.NotEmpty(t, ddl, "table %s missing", table)
	return ddl
}

func TestNew_ForeignKeysOnChildTables(t *testing.T) {
	_, db := New(t)

	assert.NotContains(t, createSQL(t, db, "imovel_rural"), "FOREIGN KEY")
	assert.Contains(t, createSQL(t, db, "producao_agricola"), "REFERENCES `imovel_rural`")
	assert.NotContains(t, createSQL(t, db, "producao_agricola"), "id_producao")
}

func TestNew_SeedAndReadBack(t *testing.T) {
	conn, db := New(t)
	SeedImovel(t, db, 3, "Fazenda Boa Vista", 450)
	SeedPessoaFisica(t, db, 10, "Maria Silva")
	SeedPropriedade(t, db, 3, 10, 100)

	session, err := conn.Open(context.Background())
	require.NoError(t, err)
	defer database.Close(session)

	var imovel domain.ImovelRural
	require.NoError(t, session.First(&imovel, "id_imovel_rural = ?", 3).Error)
	assert.Equal(t, "Fazenda Boa Vista", imovel.NomeImovel)
	assert.InDelta(t, 450, imovel.AreaTotalHa, 0.001)
}

func TestNew_ProductionRequiresExistingProperty(t *testing.T) {
	_, db := New(t)
	SeedImovel(t, db, 3, "Fazenda Boa Vista", 450)

	p := domain.ProducaoAgricola{
		IDImovelRural:   99,
		CulturaPlantada: "Milho",
		AreaCultivadaHa: 10,
		DataPlantio:     datatypes.Date(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
		Safra:           "2023/2024",
	}
	require.Error(t, db.Create(&p).Error)

	p.IDImovelRural = 3
	require.NoError(t, db.Create(&p).Error)

	var n int64
	require.NoError(t, db.Model(&domain.ProducaoAgricola{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}
