package cache

import (
	"strconv"
	"strings"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/logger"
)

const (
	generationSuffix = ":gen"
	defaultTTL       = 24 * 60 * 60
)

type config interface {
	Hosts() []string
}

type client interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Add(item *memcache.Item) error
	Increment(key string, delta uint64) (uint64, error)
}

// MemcacheClient caches rendered reports per user. Every key carries the
// user's generation counter, so bumping the counter drops all of the user's
// reports at once.
type MemcacheClient struct {
	client client
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, errors.Wrap(mc.Ping(), "ping memcached")
}

func newWithClient(c client) *MemcacheClient {
	return &MemcacheClient{c}
}

func formatKey(userID string, generation uint64, option string) string {
	key := userID + ":" + strconv.FormatUint(generation, 10) + ":" + option
	return strings.Map(func(r rune) rune {
		if r <= ' ' || r == 0x7f {
			return '_'
		}
		return r
	}, key)
}

func (mc *MemcacheClient) generation(userID string) (uint64, error) {
	item, err := mc.client.Get(userID + generationSuffix)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(string(item.Value), 10, 64)
}

// CacheReport stores report under the generation returned by the GetReport
// that missed. A report computed before an invalidation lands under a stale
// generation and is never read.
func (mc *MemcacheClient) CacheReport(userID string, generation uint64, option string, report string) error {
	logger.Debug("cache report", zap.String("userID", userID), zap.String("option", option))
	return mc.client.Set(&memcache.Item{
		Key:        formatKey(userID, generation, option),
		Value:      []byte(report),
		Expiration: defaultTTL,
	})
}

// GetReport also returns the user's current generation, on a miss as well.
func (mc *MemcacheClient) GetReport(userID string, option string) (string, uint64, error) {
	logger.Debug("get report from cache", zap.String("userID", userID), zap.String("option", option))
	gen, err := mc.generation(userID)
	if err != nil {
		return "", 0, errors.Wrap(err, "get report")
	}
	item, err := mc.client.Get(formatKey(userID, gen, option))
	if err != nil {
		return "", gen, err
	}
	return string(item.Value), gen, nil
}

// InvalidateCache bumps the user's generation. Old entries expire on their own.
func (mc *MemcacheClient) InvalidateCache(userID string) error {
	logger.Info("invalidate cache", zap.String("userID", userID))

	key := userID + generationSuffix
	_, err := mc.client.Increment(key, 1)
	if !errors.Is(err, memcache.ErrCacheMiss) {
		return err
	}
	err = mc.client.Add(&memcache.Item{Key: key, Value: []byte("1")})
	if errors.Is(err, memcache.ErrNotStored) {
		// someone else created the counter in between
		_, err = mc.client.Increment(key, 1)
	}
	return err
}
