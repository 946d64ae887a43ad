// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
)

// MySQL server error numbers the repositories translate.
const (
	mysqlErrDupEntry           = 1062
	mysqlErrNoReferencedRow    = 1216
	mysqlErrNoReferencedRowTwo = 1452
)

// NewConnectMySQL opens a MySQL connection pool for cfg.DSN.
//
// The DSN is forced to parse DATETIME columns into time.Time and to report
// matched rather than changed rows, so an UPDATE that writes identical values
// still counts as affecting the recipe.
func NewConnectMySQL(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	mysqlCfg, err := mysql.ParseDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("invalid mysql dsn")
		return nil, fmt.Errorf("invalid mysql dsn: %w", err)
	}
	mysqlCfg.ParseTime = true
	mysqlCfg.ClientFoundRows = true

	connector, err := mysql.NewConnector(mysqlCfg)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn := sql.OpenDB(connector)
	configurePool(conn, cfg)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectMySQL").Msg("connected to database successfully")

	return newDB(conn, config.DriverMySQL, log)
}

// MySQLErrorClassifier implements [ErrorClassificator] for go-sql-driver/mysql.
type MySQLErrorClassifier struct{}

// NewMySQLErrorClassifier constructs a [MySQLErrorClassifier].
func NewMySQLErrorClassifier() *MySQLErrorClassifier {
	return &MySQLErrorClassifier{}
}

// Classify unwraps err as a *mysql.MySQLError and inspects its number.
func (c *MySQLErrorClassifier) Classify(err error) ErrorClassification {
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return Other
	}

	switch myErr.Number {
	case mysqlErrDupEntry:
		return UniqueViolation
	case mysqlErrNoReferencedRow, mysqlErrNoReferencedRowTwo:
		return ForeignKeyViolation
	}

	return Other
}
