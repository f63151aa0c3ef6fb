package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/lib/pq"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"golang.org/x/crypto/bcrypt"
)

const (
	idLength   = 12
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

const usersDDL = `CREATE TABLE IF NOT EXISTS users (
	id            VARCHAR(32) PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	active        BOOLEAN NOT NULL DEFAULT FALSE,
	role_id       INTEGER NOT NULL DEFAULT 2,
	countries     TEXT[] NOT NULL DEFAULT '{}',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func detailTableDDL(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id                     CHAR(64) PRIMARY KEY,
	country                TEXT NOT NULL,
	source_row             INTEGER NOT NULL,
	invoice_number         TEXT NOT NULL,
	purchase_order         TEXT,
	invoice_type           TEXT,
	batch_name             TEXT,
	provider               TEXT NOT NULL,
	tax_id                 TEXT,
	document_date          DATE,
	store                  TEXT,
	branch                 TEXT,
	amount                 NUMERIC(20,6) NOT NULL,
	currency               TEXT NOT NULL,
	due_date               DATE,
	account                TEXT,
	account_id             TEXT,
	payment_method         TEXT,
	independent_payment    TEXT,
	priority               INTEGER NOT NULL,
	capex_ext              NUMERIC(20,6) NOT NULL,
	capex_ord              NUMERIC(20,6) NOT NULL,
	cadm                   NUMERIC(20,6) NOT NULL,
	created_date           DATE,
	requester              TEXT,
	payment_date           DATE,
	store_lookup           TEXT,
	cost_center            TEXT,
	project                TEXT,
	area                   TEXT,
	receipt_date           TEXT,
	description            TEXT,
	amount_usd             NUMERIC(20,6) NOT NULL,
	amount_capex           NUMERIC(20,6) NOT NULL,
	amount_opex            NUMERIC(20,6) NOT NULL,
	validation             NUMERIC(20,6) NOT NULL,
	category               TEXT NOT NULL,
	payment_currency       TEXT NOT NULL,
	payment_method_calc    TEXT NOT NULL,
	payment_day            TEXT NOT NULL,
	capex_type             TEXT NOT NULL,
	amount_ord             NUMERIC(20,6) NOT NULL,
	amount_ext             NUMERIC(20,6) NOT NULL,
	feed_rate              NUMERIC(20,6) NOT NULL,
	central_bank_rate      NUMERIC(20,6) NOT NULL,
	conversion_ves         NUMERIC(24,6) NOT NULL,
	conversion_feed_rate   NUMERIC(24,6) NOT NULL,
	real_reconverted       NUMERIC(20,6) NOT NULL,
	real_month_reconverted NUMERIC(20,6) NOT NULL,
	week                   INTEGER NOT NULL,
	payment_month          TEXT NOT NULL,
	fiscal_year            TEXT NOT NULL,
	inserted_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`, table)
}

func differenceTableDDL(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id          CHAR(64) PRIMARY KEY,
	country     TEXT NOT NULL,
	fiscal_year TEXT NOT NULL,
	month       TEXT NOT NULL,
	row_number  INTEGER NOT NULL,
	area        TEXT,
	remanente   NUMERIC(20,6) NOT NULL,
	presupuesto NUMERIC(20,6) NOT NULL,
	ejecutado   NUMERIC(20,6) NOT NULL,
	executed_at TIMESTAMPTZ NOT NULL
)`, table)
}

func centralBankTableDDL(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	"Date" DATE PRIMARY KEY,
	"USD"  NUMERIC(20,6)
)`, table)
}

// indexDDL cria o índice usado pela consulta de histórico do ano fiscal
func indexDDL(table string) string {
	name := strings.NewReplacer(".", "_", `"`, "").Replace(table) + "_country_fy_idx"
	return fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (country, fiscal_year)", pq.QuoteIdentifier(name), table)
}

// statements devolve o DDL de todas as tabelas dos perfis, sem repetir tabelas compartilhadas
func statements(profiles config.Profiles) []string {
	stmts := []string{usersDDL}
	seen := map[string]bool{}

	add := func(table string, ddls ...func(string) string) {
		if table == "" || seen[table] {
			return
		}
		seen[table] = true
		if i := strings.Index(table, "."); i > 0 {
			stmts = append(stmts, fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", table[:i]))
		}
		for _, ddl := range ddls {
			stmts = append(stmts, ddl(table))
		}
	}

	for _, key := range profiles.Keys() {
		profile := profiles[key]
		add(profile.Warehouse.DetailTable, detailTableDDL, indexDDL)
		add(profile.Warehouse.DifferenceTable, differenceTableDDL)
		add(profile.Rates.CentralBankTable, centralBankTableDDL)
	}

	return stmts
}

func generateID() string {
	id, _ := gonanoid.Generate(characters, idLength)
	return id
}

// seedAdmin cria o operador administrador quando ADMIN_EMAIL e ADMIN_PASSWORD estão definidos
func seedAdmin(ctx context.Context, tx *sql.Tx) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD não definidos, operador administrador não criado")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, active, role_id) VALUES ($1, $2, $3, $4, TRUE, 1) ON CONFLICT (email) DO NOTHING`,
		generateID(), "Administrador", email, string(hash),
	)
	if err != nil {
		return err
	}

	log.Printf("Operador administrador garantido: %s", email)
	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	log.Println("Conectando ao banco de dados...")
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Fatalf("ERRO ao iniciar transação: %v", err)
	}

	for i, stmt := range statements(cfg.Profiles) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			log.Fatalf("ERRO no comando %d: %v\n%s", i+1, err, stmt)
		}
	}

	if err := seedAdmin(ctx, tx); err != nil {
		_ = tx.Rollback()
		log.Fatalf("ERRO ao criar operador administrador: %v", err)
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("ERRO ao confirmar transação: %v", err)
	}

	log.Printf("Migração concluída em %v!", time.Since(startTime))
}
