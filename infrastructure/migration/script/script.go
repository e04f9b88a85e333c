package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

const createReportSnapshots = `
	CREATE TABLE report_snapshots (
		id           VARCHAR(21) PRIMARY KEY,
		customer_id  VARCHAR(20) NOT NULL,
		report_type  VARCHAR(20) NOT NULL,
		date         DATE NOT NULL,
		row_count    INT NOT NULL DEFAULT 0,
		report_table JSONB NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT report_snapshots_customer_type_date_unique UNIQUE (customer_id, report_type, date)
	)`

const createReportSnapshotsDateIndex = `
	CREATE INDEX IF NOT EXISTS report_snapshots_date_idx ON report_snapshots (date)`

func tableExists(ctx context.Context, conn postgres.Conn, table string) (bool, error) {
	var exists bool
	err := conn.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_name = $1
		)
	`, table).Scan(&exists)
	return exists, err
}

func createReportSnapshotsTable(ctx context.Context, conn postgres.Conn) error {
	logrus.Info("Criando tabela report_snapshots...")

	exists, err := tableExists(ctx, conn, "report_snapshots")
	if err != nil {
		return err
	}

	if exists {
		logrus.Info("Tabela report_snapshots já existe")
		return nil
	}

	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, createReportSnapshots); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, createReportSnapshotsDateIndex)
		return err
	})
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	logrus.Info("Iniciando script de migração...")
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	if err := createReportSnapshotsTable(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("ERRO ao criar tabela report_snapshots")
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}
