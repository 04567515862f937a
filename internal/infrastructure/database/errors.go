package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var ErrConnection = errors.New("Erro ao conectar ao banco de dados")

// PostgreSQL SQLSTATE codes the portal explains to the user.
const (
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
	codeInvalidDatetime     = "22007"
	codeDatetimeOverflow    = "22008"
	codeInvalidPassword     = "28P01"
	codeUnknownDatabase     = "3D000"
)

// Describe turns a database error into the message shown on the console.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeForeignKeyViolation:
			return "o imóvel rural informado não existe"
		case codeCheckViolation:
			return "valor rejeitado pelas regras do banco: " + pgErr.Message
		case codeNotNullViolation:
			return "campo obrigatório ausente: " + pgErr.ColumnName
		case codeInvalidDatetime, codeDatetimeOverflow:
			return "data inválida: " + pgErr.Message
		case codeInvalidPassword:
			return "usuário ou senha rejeitados pelo servidor"
		case codeUnknownDatabase:
			return "banco de dados não encontrado: " + pgErr.Message
		}
		return pgErr.Message
	}
	msg := err.Error()
	if errors.Is(err, ErrConnection) {
		msg = strings.TrimPrefix(msg, ErrConnection.Error()+": ")
	}
	return msg
}
