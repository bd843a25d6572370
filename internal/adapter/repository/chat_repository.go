package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hugohenrick/central-brain/internal/domain/chat"
	"github.com/hugohenrick/central-brain/internal/infrastructure/database"
)

// PostgresChatRepository implementa chat.Repository usando PostgreSQL
type PostgresChatRepository struct {
	conn ClientProvider[*database.PostgresClient]
	opts repoOptions
}

// NewPostgresChatRepository cria uma nova instância de PostgresChatRepository
func NewPostgresChatRepository(conn ClientProvider[*database.PostgresClient], opts ...Option) *PostgresChatRepository {
	return &PostgresChatRepository{
		conn: conn,
		opts: newOptions(opts),
	}
}

// Append implementa chat.Repository.Append
func (r *PostgresChatRepository) Append(ctx context.Context, text string, origin chat.Origin) (*chat.Entry, error) {
	entry, err := chat.NewEntry(text, origin, r.opts.now())
	if err != nil {
		return nil, err
	}

	client, err := r.conn.Client()
	if err != nil {
		return nil, storeUnavailable(err)
	}

	entry.ID = uuid.New().String()

	query := `
		INSERT INTO chat_messages (id, text, origin, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err = client.Pool().Exec(ctx, query,
		entry.ID,
		entry.Text,
		string(entry.Origin),
		entry.Timestamp,
	)
	if err != nil {
		return nil, writeFailure(err)
	}

	return entry, nil
}

// ListAll implementa chat.Repository.ListAll
func (r *PostgresChatRepository) ListAll(ctx context.Context) ([]*chat.Entry, error) {
	client, err := r.conn.Client()
	if err != nil {
		return nil, storeUnavailable(err)
	}

	query := `
		SELECT id::text, text, origin, created_at
		FROM chat_messages
		ORDER BY created_at ASC, seq ASC
	`

	rows, err := client.Pool().Query(ctx, query)
	if err != nil {
		return nil, readFailure(err)
	}
	defer rows.Close()

	entries := make([]*chat.Entry, 0)
	for rows.Next() {
		var (
			entry  chat.Entry
			origin string
		)
		if err := rows.Scan(&entry.ID, &entry.Text, &origin, &entry.Timestamp); err != nil {
			return nil, readFailure(err)
		}
		entry.Origin = chat.Origin(origin)
		entry.Timestamp = entry.Timestamp.UTC()
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, readFailure(err)
	}

	return entries, nil
}
