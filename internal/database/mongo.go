package database

import (
	"context"
	"fmt"
	"log"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type connectFunc func(ctx context.Context, uri string) (*mongo.Client, error)

// MongoProvider hands out one shared client, created on first use.
// Concurrent first callers wait for a single connection attempt; a failed
// attempt is not remembered, so the next caller retries.
type MongoProvider struct {
	uri    string
	dbName string

	mu      sync.Mutex
	client  *mongo.Client
	connect connectFunc
}

func NewMongoProvider(uri, dbName string) *MongoProvider {
	return &MongoProvider{uri: uri, dbName: dbName, connect: dialMongo}
}

func dialMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

func (p *MongoProvider) Client(ctx context.Context) (*mongo.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}
	client, err := p.connect(ctx, p.uri)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	p.client = client
	log.Println("mongo: connected")
	return client, nil
}

func (p *MongoProvider) Database(ctx context.Context) (*mongo.Database, error) {
	client, err := p.Client(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(p.dbName), nil
}

func (p *MongoProvider) Close(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client == nil {
		return nil
	}
	err := p.client.Disconnect(ctx)
	p.client = nil
	return err
}
