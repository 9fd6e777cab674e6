package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/yourusername/telegram-deals-bot/internal/domain/entity"
	"github.com/yourusername/telegram-deals-bot/internal/domain/repository"
)

const (
	postgresMaxOpenConns    = 10
	postgresMaxIdleConns    = 5
	postgresConnMaxLifetime = 30 * time.Minute
)

func openPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(postgresMaxOpenConns)
	db.SetMaxIdleConns(postgresMaxIdleConns)
	db.SetConnMaxLifetime(postgresConnMaxLifetime)
	return db, nil
}

type postgresSessionRepository struct {
	db *sql.DB
}

// NewPostgresSessionRepository creates a session repository backed by
// Postgres, so in-flight previews survive a restart. The schema is created
// on first connect.
func NewPostgresSessionRepository(dsn string) (repository.SessionRepository, error) {
	db, err := openPostgres(dsn)
	if err != nil {
		return nil, err
	}

	schema := `
CREATE TABLE IF NOT EXISTS chat_sessions (
	chat_id BIGINT PRIMARY KEY,
	record JSONB NOT NULL,
	editing_field TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMPTZ DEFAULT NOW()
);
`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create chat_sessions table: %w", err)
	}

	return &postgresSessionRepository{db: db}, nil
}

type sessionRecordRow struct {
	Title           string `json:"title"`
	ImageURL        string `json:"image_url"`
	OfferPrice      string `json:"offer_price"`
	MRP             string `json:"mrp"`
	DiscountAmount  string `json:"discount_amount"`
	DiscountPercent string `json:"discount_percent"`
	AffiliateLink   string `json:"affiliate_link"`
	PromoCode       string `json:"promo_code"`
}

func recordToRow(r entity.ProductRecord) sessionRecordRow {
	return sessionRecordRow{
		Title:           r.Title,
		ImageURL:        r.ImageURL,
		OfferPrice:      r.OfferPrice,
		MRP:             r.MRP,
		DiscountAmount:  r.DiscountAmount,
		DiscountPercent: r.DiscountPercent,
		AffiliateLink:   r.AffiliateLink,
		PromoCode:       r.PromoCode,
	}
}

func rowToRecord(row sessionRecordRow) entity.ProductRecord {
	return entity.ProductRecord{
		Title:           row.Title,
		ImageURL:        row.ImageURL,
		OfferPrice:      row.OfferPrice,
		MRP:             row.MRP,
		DiscountAmount:  row.DiscountAmount,
		DiscountPercent: row.DiscountPercent,
		AffiliateLink:   row.AffiliateLink,
		PromoCode:       row.PromoCode,
	}
}

func (p *postgresSessionRepository) Get(ctx context.Context, chatID int64) (*entity.SessionState, error) {
	var raw []byte
	var editingField string
	err := p.db.QueryRowContext(ctx, `
	SELECT record, editing_field FROM chat_sessions WHERE chat_id = $1
	`, chatID).Scan(&raw, &editingField)
	if err == sql.ErrNoRows {
		return nil, entity.ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	var row sessionRecordRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, err
	}

	state := &entity.SessionState{Record: rowToRecord(row)}
	if editingField != "" {
		state.Editing = entity.EditAwaitingValue
		state.EditingField = entity.EditField(editingField)
	}
	return state, nil
}

func (p *postgresSessionRepository) Put(ctx context.Context, chatID int64, state entity.SessionState) error {
	raw, err := json.Marshal(recordToRow(state.Record))
	if err != nil {
		return err
	}
	editingField := ""
	if state.Editing == entity.EditAwaitingValue {
		editingField = string(state.EditingField)
	}
	_, err = p.db.ExecContext(ctx, `
	INSERT INTO chat_sessions (chat_id, record, editing_field, updated_at)
	VALUES ($1, $2, $3, NOW())
	ON CONFLICT (chat_id) DO UPDATE
	SET record = EXCLUDED.record, editing_field = EXCLUDED.editing_field, updated_at = NOW()
	`, chatID, raw, editingField)
	return err
}

func (p *postgresSessionRepository) SetEditing(ctx context.Context, chatID int64, field entity.EditField) error {
	res, err := p.db.ExecContext(ctx, `
	UPDATE chat_sessions SET editing_field = $2, updated_at = NOW() WHERE chat_id = $1
	`, chatID, string(field))
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entity.ErrNoSession
	}
	return nil
}

func (p *postgresSessionRepository) ClearEditing(ctx context.Context, chatID int64) error {
	res, err := p.db.ExecContext(ctx, `
	UPDATE chat_sessions SET editing_field = '', updated_at = NOW() WHERE chat_id = $1
	`, chatID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entity.ErrNoSession
	}
	return nil
}

func (p *postgresSessionRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chat_sessions`).Scan(&count)
	return count, err
}

type postgresPostLogRepository struct {
	db *sql.DB
}

// NewPostgresPostLogRepository creates a Postgres-backed publish audit log
func NewPostgresPostLogRepository(dsn string) (repository.PostLogRepository, error) {
	db, err := openPostgres(dsn)
	if err != nil {
		return nil, err
	}

	schema := `
CREATE TABLE IF NOT EXISTS published_posts (
	id TEXT PRIMARY KEY,
	chat_id BIGINT NOT NULL,
	title TEXT,
	affiliate_link TEXT,
	created_at TIMESTAMPTZ DEFAULT NOW()
);
`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create published_posts table: %w", err)
	}

	return &postgresPostLogRepository{db: db}, nil
}

func (p *postgresPostLogRepository) Save(ctx context.Context, post repository.PublishedPost) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	_, err := p.db.ExecContext(ctx, `
	INSERT INTO published_posts (id, chat_id, title, affiliate_link, created_at)
	VALUES ($1, $2, $3, $4, $5)
	`, post.ID, post.ChatID, post.Title, post.AffiliateLink, post.CreatedAt)
	return err
}

func (p *postgresPostLogRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM published_posts`).Scan(&count)
	return count, err
}

// NewSessionRepositoryFromEnv picks Postgres when a DSN is configured and
// falls back to memory on empty DSN or connect failure
func NewSessionRepositoryFromEnv(dsn string) repository.SessionRepository {
	if dsn == "" {
		return NewMemorySessionRepository()
	}
	repo, err := NewPostgresSessionRepository(dsn)
	if err != nil {
		log.Printf("session store: Postgres unavailable, using memory store: %v", err)
		return NewMemorySessionRepository()
	}
	return repo
}

// NewPostLogRepositoryFromEnv mirrors NewSessionRepositoryFromEnv for the
// publish audit log
func NewPostLogRepositoryFromEnv(dsn string) repository.PostLogRepository {
	if dsn == "" {
		return NewMemoryPostLogRepository()
	}
	repo, err := NewPostgresPostLogRepository(dsn)
	if err != nil {
		log.Printf("post log: Postgres unavailable, using memory store: %v", err)
		return NewMemoryPostLogRepository()
	}
	return repo
}
