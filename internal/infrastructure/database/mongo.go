package database

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// DefaultMongoDatabase é usado quando a URI não informa o banco
const DefaultMongoDatabase = "central_brain"

// MongoClient é o handle de uma conexão MongoDB
type MongoClient struct {
	client   *mongo.Client
	database string
	hosts    []string
}

// DialMongo conecta ao MongoDB e confirma a conexão com um ping no primário
func DialMongo(ctx context.Context, uri string) (*MongoClient, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar URI do MongoDB: %w", err)
	}

	dbName := cs.Database
	if dbName == "" {
		dbName = DefaultMongoDatabase
	}

	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(DefaultConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("erro ao verificar conexão com o MongoDB: %w", err)
	}

	return &MongoClient{
		client:   client,
		database: dbName,
		hosts:    cs.Hosts,
	}, nil
}

// Database retorna o banco configurado
func (c *MongoClient) Database() *mongo.Database {
	return c.client.Database(c.database)
}

// Host implementa Client
func (c *MongoClient) Host() string {
	return strings.Join(c.hosts, ",")
}

// Close implementa Client
func (c *MongoClient) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
