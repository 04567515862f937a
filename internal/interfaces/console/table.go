package console

import (
	"fmt"
	"strings"

	"agro-portal/internal/application/ownership"
	"agro-portal/internal/domain"

	"github.com/mattn/go-runewidth"
)

// Report column widths in terminal cells.
const (
	colImovel       = 30
	colArea         = 10
	colProprietario = 40
	colTipo         = 5
	colPosse        = 10
)

const reportRuleWidth = 110

func reportHeader() string {
	return joinColumns("Imóvel Rural", "Área (ha)", "Proprietário", "Tipo", "Posse (%)")
}

func reportLine(r ownership.Row) string {
	return joinColumns(
		r.NomeImovel,
		fmt.Sprintf("%.2f", r.AreaTotalHa),
		r.Proprietario,
		r.TypeLabel(),
		fmt.Sprintf("%.2f", r.PercentualPropriedade),
	)
}

// joinColumns left-aligns each value to its column; longer values are not cut.
func joinColumns(imovel, area, proprietario, tipo, posse string) string {
	return strings.Join([]string{
		runewidth.FillRight(imovel, colImovel),
		runewidth.FillRight(area, colArea),
		runewidth.FillRight(proprietario, colProprietario),
		runewidth.FillRight(tipo, colTipo),
		runewidth.FillRight(posse, colPosse),
	}, " | ")
}

func propertyLine(p domain.ImovelRural) string {
	return fmt.Sprintf("ID: %-5d | Nome: %s", p.IDImovelRural, p.NomeImovel)
}
