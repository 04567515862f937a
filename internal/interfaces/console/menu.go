package console

import (
	"context"
	"errors"
	"strings"
	"time"

	"agro-portal/internal/application/ownership"
	"agro-portal/internal/application/production"
	"agro-portal/internal/application/properties"
	"agro-portal/internal/application/usage"
	"agro-portal/internal/health"

	"github.com/redis/go-redis/v9"
)

// Operation names used in logs and usage counters.
const (
	OpRegisterProduction = "register_production"
	OpOwnershipReport    = "ownership_report"
	OpListProperties     = "list_properties"
	OpExportReport       = "export_report"
	OpSystemStatus       = "system_status"
)

// Menu is the interactive main loop of the portal.
type Menu struct {
	Console    *Console
	Properties *properties.Service
	Production *production.Service
	Ownership  *ownership.Service
	Recorder   usage.Recorder

	// Status screen dependencies. DB and Rdb may be nil.
	DB        health.DBPinger
	Rdb       *redis.Client
	StartedAt time.Time

	ExportPath string
}

func (m *Menu) printBanner() {
	c := m.Console
	c.Println("===== Portal da Agricultura e Meio Ambiente =====")
	c.Println("1. Cadastrar nova Produção Agrícola")
	c.Println("2. Gerar Relatório de Proprietários")
	c.Println("3. Listar Imóveis Rurais")
	c.Println("4. Exportar Relatório de Proprietários (XLSX)")
	c.Println("5. Status do Sistema")
	c.Println("0. Sair")
	c.Println("================================================")
}

// Run shows the menu until the operator exits, input ends or ctx is cancelled.
// Operation failures are reported on screen and never end the loop.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.Console.Clear()
		m.printBanner()

		choice, ok := m.Console.Prompt("Escolha uma opção: ")
		if !ok {
			m.sayGoodbye()
			return nil
		}

		var err error
		switch strings.TrimSpace(choice) {
		case "1":
			err = m.trace(ctx, OpRegisterProduction, m.RegisterProduction)
		case "2":
			err = m.trace(ctx, OpOwnershipReport, m.OwnershipReport)
		case "3":
			err = m.trace(ctx, OpListProperties, m.ListProperties)
		case "4":
			err = m.trace(ctx, OpExportReport, m.ExportReport)
		case "5":
			err = m.trace(ctx, OpSystemStatus, m.SystemStatus)
		case "0":
			m.sayGoodbye()
			return nil
		default:
			m.Console.Println("Opção inválida, tente novamente.")
		}
		if errors.Is(err, errInputClosed) {
			m.sayGoodbye()
			return nil
		}

		if _, ok := m.Console.Prompt("\nPressione Enter para continuar..."); !ok {
			m.sayGoodbye()
			return nil
		}
	}
}

func (m *Menu) sayGoodbye() {
	m.Console.Println("Saindo do sistema. Até logo!")
}
