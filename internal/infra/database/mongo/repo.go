package mongox

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ---- Подключение к MongoDB (один клиент на процесс) ----

const musicCollection = "musics"

type Repo struct {
	logger *log.Logger
	client *mongo.Client
	db     *mongo.Database
	music  *mongo.Collection
}

// Connect устанавливает соединение и проверяет его пингом; до успешного
// возврата сервер запросы не принимает.
func Connect(ctx context.Context, logger *log.Logger, uri, dbName string) (*Repo, error) {
	logger.Println("connecting to MongoDB...")
	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	logger.Printf("connected to MongoDB, database %q", dbName)

	db := client.Database(dbName)
	return &Repo{
		logger: logger,
		client: client,
		db:     db,
		music:  db.Collection(musicCollection),
	}, nil
}

// Database отдаёт хэндл базы для GridFS.
func (r *Repo) Database() *mongo.Database { return r.db }

func (r *Repo) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx, readpref.Primary()); err != nil {
		r.logger.Printf("ping failed: %v", err)
		return err
	}
	return nil
}

func (r *Repo) Close(ctx context.Context) {
	r.logger.Println("disconnecting...")
	if err := r.client.Disconnect(ctx); err != nil {
		r.logger.Printf("disconnect error: %v", err)
		return
	}
	r.logger.Println("disconnected")
}
