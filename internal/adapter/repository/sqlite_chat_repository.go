package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/central-brain/internal/domain/chat"
	"github.com/hugohenrick/central-brain/internal/infrastructure/database"
)

// SQLiteChatRepository implementa chat.Repository sobre um arquivo SQLite local
type SQLiteChatRepository struct {
	conn ClientProvider[*database.SQLiteClient]
	opts repoOptions
}

// NewSQLiteChatRepository cria uma nova instância de SQLiteChatRepository
func NewSQLiteChatRepository(conn ClientProvider[*database.SQLiteClient], opts ...Option) *SQLiteChatRepository {
	return &SQLiteChatRepository{
		conn: conn,
		opts: newOptions(opts),
	}
}

// Append implementa chat.Repository.Append
func (r *SQLiteChatRepository) Append(ctx context.Context, text string, origin chat.Origin) (*chat.Entry, error) {
	entry, err := chat.NewEntry(text, origin, r.opts.now())
	if err != nil {
		return nil, err
	}

	client, err := r.conn.Client()
	if err != nil {
		return nil, storeUnavailable(err)
	}

	entry.ID = uuid.New().String()

	_, err = client.DB().ExecContext(ctx, `
		INSERT INTO chat_messages (id, text, origin, created_at)
		VALUES (?, ?, ?, ?)`,
		entry.ID,
		entry.Text,
		string(entry.Origin),
		entry.Timestamp.UnixMilli(),
	)
	if err != nil {
		return nil, writeFailure(err)
	}

	return entry, nil
}

// ListAll implementa chat.Repository.ListAll
func (r *SQLiteChatRepository) ListAll(ctx context.Context) ([]*chat.Entry, error) {
	client, err := r.conn.Client()
	if err != nil {
		return nil, storeUnavailable(err)
	}

	rows, err := client.DB().QueryContext(ctx, `
		SELECT id, text, origin, created_at
		FROM chat_messages
		ORDER BY created_at ASC, seq ASC`)
	if err != nil {
		return nil, readFailure(err)
	}
	defer rows.Close()

	entries := make([]*chat.Entry, 0)
	for rows.Next() {
		var (
			entry     chat.Entry
			origin    string
			createdAt int64
		)
		if err := rows.Scan(&entry.ID, &entry.Text, &origin, &createdAt); err != nil {
			return nil, readFailure(err)
		}
		entry.Origin = chat.Origin(origin)
		entry.Timestamp = time.UnixMilli(createdAt).UTC()
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, readFailure(err)
	}

	return entries, nil
}
