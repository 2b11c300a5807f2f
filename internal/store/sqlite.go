package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/jocross/leadboard/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL
// mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS leads (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	nome         TEXT,
	email        TEXT,
	source       TEXT,
	campanha     TEXT,
	possui_plano TEXT,
	plano_tipo   TEXT,
	idade        TEXT,
	especialista TEXT,
	resumo       TEXT,
	whatsapp     TEXT,
	created_at   DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads(created_at);
CREATE INDEX IF NOT EXISTS idx_leads_campanha ON leads(campanha);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return eris.Wrap(s.db.PingContext(ctx), "sqlite: ping")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) FetchAll(ctx context.Context) ([]model.Lead, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, nome, email, source, campanha, possui_plano, plano_tipo,
		        idade, especialista, resumo, whatsapp, created_at
		 FROM leads ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: fetch leads")
	}
	defer rows.Close()

	var leads []model.Lead
	for rows.Next() {
		var l model.Lead
		var nome, email, source, campanha, plano, tipo, idade, esp, resumo, whats sql.NullString
		if err := rows.Scan(&l.ID, &nome, &email, &source, &campanha, &plano,
			&tipo, &idade, &esp, &resumo, &whats, &l.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan lead")
		}
		l.Name = nome.String
		l.Email = email.String
		l.Source = source.String
		l.Campaign = campanha.String
		l.HasPlan = plano.String
		l.PlanType = tipo.String
		l.AgeBracket = idade.String
		l.Specialist = esp.String
		l.Summary = resumo.String
		l.WhatsApp = whats.String
		leads = append(leads, l)
	}
	return leads, eris.Wrap(rows.Err(), "sqlite: fetch leads iterate")
}

func (s *SQLiteStore) CountLeads(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`).Scan(&count)
	return count, eris.Wrap(err, "sqlite: count leads")
}

func (s *SQLiteStore) DeleteAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM leads`)
	return eris.Wrap(err, "sqlite: delete leads")
}

func (s *SQLiteStore) InsertLeads(ctx context.Context, leads []model.Lead) error {
	if len(leads) == 0 {
		return nil
	}
	if len(leads) > MaxInsertBatch {
		return eris.Errorf("sqlite: batch of %d exceeds limit %d", len(leads), MaxInsertBatch)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin tx")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO leads (nome, email, source, campanha, possui_plano, plano_tipo,
		                    idade, especialista, resumo, whatsapp, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return eris.Wrap(err, "sqlite: prepare insert")
	}
	defer stmt.Close()

	for _, l := range leads {
		createdAt := l.CreatedAt.UTC()
		if l.CreatedAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		if _, err := stmt.ExecContext(ctx,
			l.Name, l.Email, l.Source, l.Campaign, l.HasPlan, l.PlanType,
			l.AgeBracket, l.Specialist, l.Summary, l.WhatsApp, createdAt,
		); err != nil {
			return eris.Wrap(err, "sqlite: insert lead")
		}
	}

	return eris.Wrap(tx.Commit(), "sqlite: commit insert")
}
