package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/rotisserie/eris"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jocross/leadboard/internal/db"
	"github.com/jocross/leadboard/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	// Apply pool sizing from config with sensible defaults.
	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS leads (
	id           BIGSERIAL PRIMARY KEY,
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
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_leads_campanha ON leads(campanha);
CREATE INDEX IF NOT EXISTS idx_leads_especialista ON leads(especialista);
`

// leadColumns are the insertable columns, in COPY order.
var leadColumns = []string{
	"nome", "email", "source", "campanha", "possui_plano", "plano_tipo",
	"idade", "especialista", "resumo", "whatsapp", "created_at",
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "SELECT 1")
	return eris.Wrap(err, "postgres: ping")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) FetchAll(ctx context.Context) ([]model.Lead, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, nome, email, source, campanha, possui_plano, plano_tipo,
		        idade, especialista, resumo, whatsapp, created_at
		 FROM leads ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: fetch leads")
	}
	defer rows.Close()

	var leads []model.Lead
	for rows.Next() {
		var l model.Lead
		var nome, email, source, campanha, plano, tipo, idade, esp, resumo, whats sql.NullString
		if err := rows.Scan(&l.ID, &nome, &email, &source, &campanha, &plano,
			&tipo, &idade, &esp, &resumo, &whats, &l.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan lead")
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
	return leads, eris.Wrap(rows.Err(), "postgres: fetch leads iterate")
}

func (s *PostgresStore) CountLeads(ctx context.Context) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM leads`).Scan(&count)
	return count, eris.Wrap(err, "postgres: count leads")
}

func (s *PostgresStore) DeleteAll(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM leads`)
	return eris.Wrap(err, "postgres: delete leads")
}

func (s *PostgresStore) InsertLeads(ctx context.Context, leads []model.Lead) error {
	if len(leads) == 0 {
		return nil
	}
	if len(leads) > MaxInsertBatch {
		return eris.Errorf("postgres: batch of %d exceeds limit %d", len(leads), MaxInsertBatch)
	}

	rows := make([][]any, len(leads))
	for i, l := range leads {
		createdAt := l.CreatedAt.UTC()
		if l.CreatedAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		rows[i] = []any{
			l.Name, l.Email, l.Source, l.Campaign, l.HasPlan, l.PlanType,
			l.AgeBracket, l.Specialist, l.Summary, l.WhatsApp, createdAt,
		}
	}

	_, err := db.CopyFrom(ctx, s.pool, "leads", leadColumns, rows)
	return eris.Wrap(err, "postgres: insert leads")
}
