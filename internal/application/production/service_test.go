package production

import (
	"context"
	"errors"
	"testing"
	"time"

	"agro-portal/internal/domain"
	"agro-portal/internal/infrastructure/database"
	"agro-portal/internal/infrastructure/database/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestRegister_PersistsPlannedProduction(t *testing.T) {
	conn, db := dbtest.New(t)
	dbtest.SeedImovel(t, db, 3, "Fazenda Boa Vista", 450)
	svc := &Service{Conn: conn}

	in, err := ParseInput(validRaw())
	require.NoError(t, err)
	p, err := svc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPlanejada, p.StatusProducao)

	var rows []domain.ProducaoAgricola
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	got := rows[0]
	assert.Equal(t, int64(3), got.IDImovelRural)
	assert.Equal(t, "Soja", got.CulturaPlantada)
	assert.InDelta(t, 120.5, got.AreaCultivadaHa, 0.001)
	assert.Equal(t, "2024-03-15", time.Time(got.DataPlantio).Format(DateLayout))
	assert.Equal(t, "2023/2024", got.Safra)
	assert.Equal(t, domain.StatusPlanejada, got.StatusProducao)
}

func TestRegister_UnknownPropertyRollsBack(t *testing.T) {
	conn, db := dbtest.New(t)
	dbtest.SeedImovel(t, db, 3, "Fazenda Boa Vista", 450)
	svc := &Service{Conn: conn}

	in, err := ParseInput(validRaw())
	require.NoError(t, err)
	in.PropertyID = 99

	_, err = svc.Register(context.Background(), in)
	require.Error(t, err)

	var n int64
	require.NoError(t, db.Model(&domain.ProducaoAgricola{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

func TestRegister_ConnectionFailure(t *testing.T) {
	svc := &Service{Conn: dbtest.Broken(t)}

	in, err := ParseInput(validRaw())
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, database.ErrConnection))
}

func TestRegister_NegativePropertyIDReachesDatabase(t *testing.T) {
	conn, db := dbtest.New(t)
	dbtest.SeedImovel(t, db, 3, "Fazenda Boa Vista", 450)
	svc := &Service{Conn: conn}

	raw := validRaw()
	raw.PropertyID = "-1"
	in, err := ParseInput(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), in.PropertyID)

	_, err = svc.Register(context.Background(), in)
	require.Error(t, err)

	var n int64
	require.NoError(t, db.Model(&domain.ProducaoAgricola{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

func TestInsertProducao_PostgresStatement(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	in, err := ParseInput(validRaw())
	require.NoError(t, err)
	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return insertProducao(tx, newProducao(in))
	})

	assert.Contains(t, sql, `INSERT INTO "producao_agricola"`)
	for _, col := range []string{"id_imovel_rural", "cultura_plantada", "area_cultivada_ha", "data_plantio", "safra", "status_producao"} {
		assert.Contains(t, sql, col)
	}
	assert.Contains(t, sql, "'Planejada'")
	assert.NotContains(t, sql, "RETURNING")
	assert.NotContains(t, sql, "id_producao")
}
