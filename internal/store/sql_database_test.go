// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "oracle", DSN: "x"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func Test_newDB_UnsupportedDriver(t *testing.T) {
	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	_, err = newDB(conn, "oracle", logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestInsertReturningID_PostgresUsesReturning(t *testing.T) {
	db, mock := newTestDB(t, config.DriverPostgres)

	mock.ExpectQuery(`INSERT INTO users .* RETURNING user_id`).
		WithArgs("Ana", "ana@x.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(11)))

	id, err := db.insertReturningID(context.Background(),
		buildInsertUserQuery(db.builder, models.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "hash"}),
		userIDColumn)
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertReturningID_MySQLUsesLastInsertID(t *testing.T) {
	db, mock := newTestDB(t, config.DriverMySQL)

	mock.ExpectExec(`INSERT INTO users \(name,email,password_hash\) VALUES \(\?,\?,\?\)$`).
		WithArgs("Ana", "ana@x.com", "hash").
		WillReturnResult(sqlmock.NewResult(12, 1))

	id, err := db.insertReturningID(context.Background(),
		buildInsertUserQuery(db.builder, models.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "hash"}),
		userIDColumn)
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	require.NoError(t, mock.ExpectationsWereMet())
}
