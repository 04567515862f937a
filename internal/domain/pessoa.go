package domain

// Person type discriminator values stored in PESSOA.tipo_pessoa.
const (
	TipoPessoaFisica   = "F"
	TipoPessoaJuridica = "J"
)

// Pessoa maps the PESSOA table; the subtype row lives in PessoaFisica or PessoaJuridica.
type Pessoa struct {
	IDPessoa   uint   `gorm:"column:id_pessoa;primaryKey" json:"id_pessoa"`
	TipoPessoa string `gorm:"column:tipo_pessoa;type:char(1);not null" json:"tipo_pessoa"`
}

func (Pessoa) TableName() string {
	return "pessoa"
}

// PessoaFisica maps PESSOA_FISICA (individual).
type PessoaFisica struct {
	IDPessoa     uint   `gorm:"column:id_pessoa;primaryKey;autoIncrement:false" json:"id_pessoa"`
	NomeCompleto string `gorm:"column:nome_completo;not null" json:"nome_completo"`
}

func (PessoaFisica) TableName() string {
	return "pessoa_fisica"
}

// PessoaJuridica maps PESSOA_JURIDICA (organization).
type PessoaJuridica struct {
	IDPessoa    uint   `gorm:"column:id_pessoa;primaryKey;autoIncrement:false" json:"id_pessoa"`
	RazaoSocial string `gorm:"column:razao_social;not null" json:"razao_social"`
}

func (PessoaJuridica) TableName() string {
	return "pessoa_juridica"
}

// TipoPessoaLabel returns the report label for a discriminator value.
func TipoPessoaLabel(tipo string) string {
	if tipo == TipoPessoaFisica {
		return "Física"
	}
	return "Jurídica"
}
