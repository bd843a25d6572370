package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/central-brain/internal/domain/chat"
	"github.com/hugohenrick/central-brain/internal/infrastructure/database"
	"github.com/hugohenrick/central-brain/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessagesCollection é a coleção das mensagens do chat
const MessagesCollection = "messages"

// messageDocument é o formato armazenado no MongoDB.
// Os campos isUser/isAI mantêm compatibilidade com documentos já existentes.
type messageDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Text      string             `bson:"text"`
	IsAI      bool               `bson:"isAI"`
	IsUser    bool               `bson:"isUser"`
	Timestamp time.Time          `bson:"timestamp"`
}

// MongoChatRepository implementa chat.Repository usando MongoDB
type MongoChatRepository struct {
	conn   ClientProvider[*database.MongoClient]
	logger logger.Logger
	opts   repoOptions
}

// NewMongoChatRepository cria uma nova instância de MongoChatRepository
func NewMongoChatRepository(conn ClientProvider[*database.MongoClient], log logger.Logger, opts ...Option) *MongoChatRepository {
	return &MongoChatRepository{
		conn:   conn,
		logger: log,
		opts:   newOptions(opts),
	}
}

// EnsureMongoIndexes cria o índice usado na leitura ordenada
func EnsureMongoIndexes(ctx context.Context, client *database.MongoClient) error {
	_, err := client.Database().Collection(MessagesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}},
		Options: options.Index().SetName("timestamp_1__id_1"),
	})
	if err != nil {
		return fmt.Errorf("erro ao criar índice de mensagens: %w", err)
	}
	return nil
}

// Append implementa chat.Repository.Append
func (r *MongoChatRepository) Append(ctx context.Context, text string, origin chat.Origin) (*chat.Entry, error) {
	entry, err := chat.NewEntry(text, origin, r.opts.now())
	if err != nil {
		return nil, err
	}

	client, err := r.conn.Client()
	if err != nil {
		return nil, storeUnavailable(err)
	}

	isUser, isAI := entry.Origin.Flags()
	doc := messageDocument{
		Text:      entry.Text,
		IsUser:    isUser,
		IsAI:      isAI,
		Timestamp: entry.Timestamp,
	}

	result, err := client.Database().Collection(MessagesCollection).InsertOne(ctx, doc)
	if err != nil {
		return nil, writeFailure(err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, writeFailure(fmt.Errorf("identificador inesperado: %T", result.InsertedID))
	}
	entry.ID = id.Hex()

	return entry, nil
}

// ListAll implementa chat.Repository.ListAll.
// Documentos com origem ambígua são ignorados e registrados em log.
func (r *MongoChatRepository) ListAll(ctx context.Context) ([]*chat.Entry, error) {
	client, err := r.conn.Client()
	if err != nil {
		return nil, storeUnavailable(err)
	}

	findOpts := options.Find().SetSort(bson.D{
		{Key: "timestamp", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := client.Database().Collection(MessagesCollection).Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, readFailure(err)
	}
	defer cursor.Close(ctx)

	var docs []messageDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, readFailure(err)
	}

	entries := make([]*chat.Entry, 0, len(docs))
	for _, doc := range docs {
		origin, err := chat.OriginFromFlags(doc.IsUser, doc.IsAI)
		if err != nil {
			r.logger.Warn("Mensagem ignorada", "id", doc.ID.Hex(), "error", err)
			continue
		}
		entries = append(entries, &chat.Entry{
			ID:        doc.ID.Hex(),
			Text:      doc.Text,
			Origin:    origin,
			Timestamp: doc.Timestamp.UTC(),
		})
	}

	return entries, nil
}
