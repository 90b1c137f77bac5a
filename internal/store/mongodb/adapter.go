package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rana718/edubench/internal/store/common"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Adapter struct {
	client   *mongo.Client
	database *mongo.Database
	dbName   string
	opts     common.Options
}

func New(opts common.Options) *Adapter {
	return &Adapter{opts: opts.Normalized()}
}

func (a *Adapter) Connect(ctx context.Context, url string) error {
	clientOpts := options.Client().ApplyURI(url)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	a.client = client
	a.dbName = extractDBName(url, clientOpts)
	a.database = client.Database(a.dbName)

	return nil
}

func extractDBName(url string, opts *options.ClientOptions) string {
	// Database name comes from the URL path when present.
	parts := strings.Split(url, "/")
	if len(parts) > 3 {
		dbPart := parts[len(parts)-1]
		if idx := strings.Index(dbPart, "?"); idx > 0 {
			dbPart = dbPart[:idx]
		}
		if dbPart != "" && dbPart != "admin" {
			return dbPart
		}
	}

	if opts != nil && opts.Auth != nil && opts.Auth.AuthSource != "" && opts.Auth.AuthSource != "admin" {
		return opts.Auth.AuthSource
	}

	return "edubench"
}

func (a *Adapter) Close() error {
	if a.client != nil {
		return a.client.Disconnect(context.Background())
	}
	return nil
}

func (a *Adapter) Ping(ctx context.Context) error {
	return a.client.Ping(ctx, nil)
}

func (a *Adapter) CreateSchema(ctx context.Context) error {
	for _, table := range a.opts.Tables {
		name := table
		err := common.RetryDDL(ctx, a.opts, func(ctx context.Context) error {
			if err := a.database.CreateCollection(ctx, name); err != nil {
				// NamespaceExists matches CREATE TABLE IF NOT EXISTS semantics.
				var cmdErr mongo.CommandError
				if errors.As(err, &cmdErr) && cmdErr.Name == "NamespaceExists" {
					return nil
				}
				return err
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}
	}
	return nil
}

func (a *Adapter) DropSchema(ctx context.Context) error {
	for _, table := range a.opts.Tables {
		name := table
		err := common.RetryDDL(ctx, a.opts, func(ctx context.Context) error {
			return a.database.Collection(name).Drop(ctx)
		})
		if err != nil {
			return fmt.Errorf("failed to drop collection %s: %w", name, err)
		}
	}
	return nil
}

func (a *Adapter) Put(ctx context.Context, table string, rec map[string]interface{}) error {
	id, ok := rec["id"].(string)
	if !ok || id == "" {
		return fmt.Errorf("record for %s has no id", table)
	}

	doc := bson.M{}
	for k, v := range rec {
		if k == "_id" {
			continue
		}
		doc[k] = v
	}
	doc["_id"] = id

	_, err := a.database.Collection(table).ReplaceOne(ctx,
		bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to put record into %s: %w", table, err)
	}
	return nil
}

func (a *Adapter) Query(ctx context.Context, table string) ([]map[string]interface{}, error) {
	cursor, err := a.database.Collection(table).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer cursor.Close(ctx)

	var records []map[string]interface{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode record from %s: %w", table, err)
		}
		records = append(records, normalize(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error on %s: %w", table, err)
	}

	return records, nil
}

func (a *Adapter) Delete(ctx context.Context, table, id string) error {
	_, err := a.database.Collection(table).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s from %s: %w", id, table, err)
	}
	return nil
}

// normalize strips driver-specific value types so callers only ever
// see plain maps, slices, and time.Time.
func normalize(doc bson.M) map[string]interface{} {
	rec := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		rec[k] = normalizeValue(v)
	}
	return rec
}

func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.A:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	case primitive.M:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = normalizeValue(item)
		}
		return out
	case primitive.DateTime:
		return val.Time()
	default:
		return v
	}
}
