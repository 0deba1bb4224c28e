package pagamento

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func novoDBMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return gormDB, mock
}

func TestListarOrdenaEDelimita(t *testing.T) {
	db, mock := novoDBMock(t)

	linhas := sqlmock.NewRows([]string{"id", "nome_membro", "valor", "status", "mes_pagamento", "criado_em"}).
		AddRow("id-2", "Bruno", 6.98, StatusPago, "2025-01", time.Now()).
		AddRow("id-1", "Ana", 6.98, StatusPendente, "2025-01", time.Now().Add(-time.Hour))

	mock.ExpectQuery(`SELECT \* FROM "pagamentos" ORDER BY criado_em DESC LIMIT`).
		WillReturnRows(linhas)

	pagamentos, err := NewRepository().Listar(db, 2)
	require.NoError(t, err)
	require.Len(t, pagamentos, 2)
	assert.Equal(t, "id-2", pagamentos[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListarSemLimiteNaoDelimita(t *testing.T) {
	db, mock := novoDBMock(t)

	mock.ExpectQuery(`SELECT \* FROM "pagamentos" ORDER BY criado_em DESC$`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewRepository().Listar(db, 0)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAtualizarStatusTrocaApenasOStatus(t *testing.T) {
	db, mock := novoDBMock(t)

	mock.ExpectExec(`UPDATE "pagamentos" SET "status"=\$1 WHERE id = \$2`).
		WithArgs(StatusPendente, "id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "pagamentos" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow("id-1", StatusPendente))

	p, err := NewRepository().AtualizarStatus(db, "id-1", StatusPendente)
	require.NoError(t, err)
	assert.Equal(t, StatusPendente, p.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAtualizarStatusInexistente(t *testing.T) {
	db, mock := novoDBMock(t)

	mock.ExpectExec(`UPDATE "pagamentos" SET "status"=\$1 WHERE id = \$2`).
		WithArgs(StatusPago, "nao-existe").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := NewRepository().AtualizarStatus(db, "nao-existe", StatusPago)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
