// Package dbtest builds SQLite-backed databases with the portal schema for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"agro-portal/internal/domain"
	"agro-portal/internal/infrastructure/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// New creates a file database in t.TempDir() with foreign keys enforced and the
// schema migrated. It returns a Connector that opens fresh sessions on that file
// and a long-lived handle for seeding and assertions.
func New(t *testing.T) (*database.Connector, *gorm.DB) {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "agro.db") + "?_pragma=foreign_keys(1)"
	conn := &database.Connector{
		Dialector: func() gorm.Dialector { return sqlite.Open(dsn) },
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.ImovelRural{},
		&domain.Pessoa{},
		&domain.PessoaFisica{},
		&domain.PessoaJuridica{},
		&domain.Propriedade{},
		&domain.ProducaoAgricola{},
	))
	t.Cleanup(func() { database.Close(db) })
	return conn, db
}

// Broken returns a Connector whose sessions always fail to open.
func Broken(t *testing.T) *database.Connector {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "missing", "dir", "agro.db") + "?mode=rw"
	return &database.Connector{
		Dialector: func() gorm.Dialector { return sqlite.Open(dsn) },
	}
}

// SeedImovel inserts a rural property.
func SeedImovel(t *testing.T, db *gorm.DB, id int64, nome string, area float64) {
	t.Helper()
	require.NoError(t, db.Create(&domain.ImovelRural{IDImovelRural: id, NomeImovel: nome, AreaTotalHa: area}).Error)
}

// SeedPessoaFisica inserts an individual and its PESSOA row.
func SeedPessoaFisica(t *testing.T, db *gorm.DB, id uint, nome string) {
	t.Helper()
	require.NoError(t, db.Create(&domain.Pessoa{IDPessoa: id, TipoPessoa: domain.TipoPessoaFisica}).Error)
	require.NoError(t, db.Create(&domain.PessoaFisica{IDPessoa: id, NomeCompleto: nome}).Error)
}

// SeedPessoaJuridica inserts an organization and its PESSOA row.
func SeedPessoaJuridica(t *testing.T, db *gorm.DB, id uint, razao string) {
	t.Helper()
	require.NoError(t, db.Create(&domain.Pessoa{IDPessoa: id, TipoPessoa: domain.TipoPessoaJuridica}).Error)
	require.NoError(t, db.Create(&domain.PessoaJuridica{IDPessoa: id, RazaoSocial: razao}).Error)
}

// SeedPropriedade links a person to a property.
func SeedPropriedade(t *testing.T, db *gorm.DB, imovelID int64, pessoaID uint, percentual float64) {
	t.Helper()
	require.NoError(t, db.Create(&domain.Propriedade{
		IDImovelRural:         imovelID,
		IDPessoa:              pessoaID,
		PercentualPropriedade: percentual,
	}).Error)
}
