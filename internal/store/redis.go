package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quotegen/quotegen/internal/model"
)

// Redis stores each document as a JSON string under
// "<db>:<collection>:doc:<id>". A sorted set "<db>:<collection>:index"
// scored by a per-collection counter keeps insertion order.
type Redis struct {
	client *redis.Client
	prefix string
}

// insertScript writes a document, allocates its sequence number and indexes
// it in one step, so a document key never exists without its index entry.
var insertScript = redis.NewScript(`
	local doc = KEYS[1]
	local seq = KEYS[2]
	local index = KEYS[3]

	if redis.call('SETNX', doc, ARGV[1]) == 0 then
		return 0
	end

	local n = redis.call('INCR', seq)
	redis.call('ZADD', index, n, ARGV[2])
	return 1
`)

// NewRedis connects to Redis and namespaces every key under database.
func NewRedis(ctx context.Context, redisURL, database string) (*Redis, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	// Connection pool settings
	opt.PoolSize = 2
	opt.MinIdleConns = 1
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)

	// Verify connection
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &Redis{client: client, prefix: database + ":"}, nil
}

func (s *Redis) indexKey(collection string) string {
	return s.prefix + collection + ":index"
}

func (s *Redis) seqKey(collection string) string {
	return s.prefix + collection + ":seq"
}

func (s *Redis) docKey(collection, id string) string {
	return s.prefix + collection + ":doc:" + id
}

// Ping checks Redis connectivity.
func (s *Redis) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// DeleteAllPeople empties the people collection.
func (s *Redis) DeleteAllPeople(ctx context.Context) (int64, error) {
	return s.deleteAll(ctx, PeopleCollection)
}

// DeleteAllQuotes empties the quotes collection.
func (s *Redis) DeleteAllQuotes(ctx context.Context) (int64, error) {
	return s.deleteAll(ctx, QuotesCollection)
}

func (s *Redis) deleteAll(ctx context.Context, collection string) (int64, error) {
	ids, err := s.client.ZRange(ctx, s.indexKey(collection), 0, -1).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read %s index: %w", collection, err)
	}

	keys := make([]string, 0, len(ids)+2)
	for _, id := range ids {
		keys = append(keys, s.docKey(collection, id))
	}
	keys = append(keys, s.indexKey(collection), s.seqKey(collection))

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return 0, fmt.Errorf("failed to delete %s: %w", collection, err)
	}
	return int64(len(ids)), nil
}

// InsertPerson inserts a single person document.
func (s *Redis) InsertPerson(ctx context.Context, p *model.Person) error {
	return s.insert(ctx, PeopleCollection, p.ID, p)
}

// InsertQuote inserts a single quote document.
func (s *Redis) InsertQuote(ctx context.Context, q *model.Quote) error {
	return s.insert(ctx, QuotesCollection, q.ID, q)
}

func (s *Redis) insert(ctx context.Context, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s document: %w", collection, err)
	}

	keys := []string{s.docKey(collection, id), s.seqKey(collection), s.indexKey(collection)}
	created, err := insertScript.Run(ctx, s.client, keys, data, id).Int()
	if err != nil {
		return fmt.Errorf("failed to insert %s document: %w", collection, err)
	}
	if created == 0 {
		return ErrDuplicateID
	}
	return nil
}

// ListPeople returns all people in insertion order.
func (s *Redis) ListPeople(ctx context.Context) ([]*model.Person, error) {
	var people []*model.Person
	err := s.scanDocs(ctx, PeopleCollection, func(doc []byte) error {
		var p model.Person
		if err := json.Unmarshal(doc, &p); err != nil {
			return err
		}
		people = append(people, &p)
		return nil
	})
	return people, err
}

// ListQuotes returns all quotes in insertion order.
func (s *Redis) ListQuotes(ctx context.Context) ([]*model.Quote, error) {
	var quotes []*model.Quote
	err := s.scanDocs(ctx, QuotesCollection, func(doc []byte) error {
		var q model.Quote
		if err := json.Unmarshal(doc, &q); err != nil {
			return err
		}
		quotes = append(quotes, &q)
		return nil
	})
	return quotes, err
}

func (s *Redis) scanDocs(ctx context.Context, collection string, fn func(doc []byte) error) error {
	ids, err := s.client.ZRange(ctx, s.indexKey(collection), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", collection, err)
	}
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.docKey(collection, id)
	}

	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return fmt.Errorf("failed to fetch %s documents: %w", collection, err)
	}

	for _, v := range vals {
		// Deleted between ZRANGE and MGET.
		str, ok := v.(string)
		if !ok {
			continue
		}
		if err := fn([]byte(str)); err != nil {
			return fmt.Errorf("failed to decode %s document: %w", collection, err)
		}
	}
	return nil
}

// Client returns the underlying Redis client.
// Use sparingly - prefer adding methods to Redis.
func (s *Redis) Client() *redis.Client {
	return s.client
}

// Close closes the Redis client.
func (s *Redis) Close() error {
	return s.client.Close()
}
