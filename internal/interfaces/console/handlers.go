package console

import (
	"context"
	"errors"
	"strings"

	"agro-portal/internal/application/ownership"
	"agro-portal/internal/application/production"
	"agro-portal/internal/health"
	"agro-portal/internal/infrastructure/database"

	"github.com/rs/zerolog"
)

// reportError prints "<prefix>: <diagnostic>", using the connection prefix when
// the session could not be opened.
func (m *Menu) reportError(prefix string, err error) {
	if errors.Is(err, database.ErrConnection) {
		prefix = database.ErrConnection.Error()
	}
	m.Console.Printf("%s: %s\n", prefix, database.Describe(err))
}

// ListProperties prints every rural property as "ID | Nome".
func (m *Menu) ListProperties(ctx context.Context) error {
	imoveis, err := m.Properties.List(ctx)
	if err != nil {
		m.reportError("Erro ao buscar imóveis", err)
		return err
	}
	if len(imoveis) == 0 {
		m.Console.Println("Nenhum imóvel rural cadastrado.")
		return nil
	}

	m.Console.Println("\n--- Imóveis Rurais Disponíveis ---")
	for _, p := range imoveis {
		m.Console.Println(propertyLine(p))
	}
	m.Console.Println("---------------------------------")
	return nil
}

// RegisterProduction collects a production from the operator and stores it.
// Nothing is written when a field fails to parse.
func (m *Menu) RegisterProduction(ctx context.Context) error {
	c := m.Console
	c.Clear()
	c.Println("--- Cadastro de Nova Produção Agrícola ---")

	// The listing only helps the operator pick an ID; its failure is already on screen.
	_ = m.ListProperties(ctx)

	var raw production.RawInput
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Digite o ID do Imóvel Rural: ", &raw.PropertyID},
		{"Digite o nome da cultura plantada (ex: Soja, Milho): ", &raw.Crop},
		{"Digite a área cultivada em hectares (ex: 50.5): ", &raw.Area},
		{"Digite a data de plantio (formato AAAA-MM-DD): ", &raw.PlantingDate},
		{"Digite a safra (ex: 2023/2024): ", &raw.Season},
	}
	for _, p := range prompts {
		v, ok := c.Prompt(p.label)
		if !ok {
			return errInputClosed
		}
		*p.dst = v
	}

	in, err := production.ParseInput(raw)
	if err != nil {
		c.Printf("\nErro: %s. Verifique os valores e tente novamente.\n", strings.TrimSuffix(err.Error(), "."))
		return err
	}

	p, err := m.Production.Register(ctx, in)
	if err != nil {
		c.Println()
		m.reportError("Erro ao inserir no banco de dados", err)
		return err
	}
	c.Printf("\nSucesso! Produção de '%s' cadastrada no imóvel ID %d.\n", p.CulturaPlantada, p.IDImovelRural)
	return nil
}

// OwnershipReport prints properties with their owners as a fixed-width table.
func (m *Menu) OwnershipReport(ctx context.Context) error {
	c := m.Console
	c.Clear()
	c.Println("--- Relatório de Imóveis e Proprietários ---")

	rows, err := m.Ownership.Report(ctx)
	if err != nil {
		m.reportError("Erro ao gerar o relatório", err)
		return err
	}
	if len(rows) == 0 {
		c.Println(ownership.ErrEmptyReport.Error())
		return nil
	}

	c.Println(reportHeader())
	c.Println(strings.Repeat("-", reportRuleWidth))
	for _, r := range rows {
		c.Println(reportLine(r))
	}
	return nil
}

// ExportReport writes the ownership report to a spreadsheet chosen by the operator.
func (m *Menu) ExportReport(ctx context.Context) error {
	c := m.Console
	c.Clear()
	c.Println("--- Exportar Relatório de Proprietários ---")

	path, ok := c.Prompt("Arquivo de destino [" + m.ExportPath + "]: ")
	if !ok {
		return errInputClosed
	}
	path = strings.TrimSpace(path)
	if path == "" {
		path = m.ExportPath
	}

	rows, err := m.Ownership.Report(ctx)
	if err != nil {
		m.reportError("Erro ao gerar o relatório", err)
		return err
	}
	if err := ownership.WriteXLSX(rows, path); err != nil {
		if errors.Is(err, ownership.ErrEmptyReport) {
			c.Println(err.Error())
			return nil
		}
		c.Printf("Erro ao exportar o relatório: %s\n", err)
		return err
	}
	zerolog.Ctx(ctx).Info().Str("path", path).Int("rows", len(rows)).Msg("report exported")
	c.Printf("Relatório exportado para %s (%d linhas).\n", path, len(rows))
	return nil
}

// SystemStatus prints database and Redis reachability and usage counters.
func (m *Menu) SystemStatus(ctx context.Context) error {
	c := m.Console
	c.Clear()
	c.Println("--- Status do Sistema ---")

	res := health.Collect(ctx, m.DB, m.Rdb, m.StartedAt)
	c.Printf("Situação geral: %s\n", res.Status)
	for _, name := range []string{"database", "redis"} {
		dep := res.Dependencies[name]
		label := "Banco de dados"
		if name == "redis" {
			label = "Redis"
		}
		switch {
		case dep.PingMs != nil:
			c.Printf("%s: %s (%d ms)\n", label, dep.Status, *dep.PingMs)
		case dep.Error != "":
			c.Printf("%s: %s (%s)\n", label, dep.Status, dep.Error)
		default:
			c.Printf("%s: %s\n", label, dep.Status)
		}
	}

	if len(res.Usage) > 0 {
		c.Println("Operações registradas:")
		for _, s := range res.Usage {
			c.Printf("  %-22s total=%d falhas=%d média=%.1f ms\n", s.Operation, s.Total, s.Failed, s.AvgMs)
		}
	}
	if res.LastOperation != "" {
		c.Printf("Última operação: %s\n", res.LastOperation)
	}
	c.Printf("Go %s %s, heap %d MB, ativo há %d s\n",
		res.Runtime.GoVersion, res.Runtime.Platform, res.Runtime.HeapMB, res.Runtime.UptimeSeconds)
	return nil
}
