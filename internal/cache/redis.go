package cache

import (
	"context"
	"encoding/json"
	"time"

	"tripdesk/config"
	"tripdesk/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	enquiryTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, enquiryTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		enquiryTTL: enquiryTTL,
	}
}

func (c *RedisCache) GetEnquiries(ctx context.Context) ([]domain.Enquiry, error) {
	data, err := c.client.Get(ctx, enquiriesKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var enquiries []domain.Enquiry
	if err := json.Unmarshal(data, &enquiries); err != nil {
		return nil, err
	}
	return enquiries, nil
}

func (c *RedisCache) SetEnquiries(ctx context.Context, enquiries []domain.Enquiry) error {
	payload, err := json.Marshal(enquiries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, enquiriesKey(), payload, c.enquiryTTL).Err()
}

// InvalidateEnquiries drops the cached board snapshot after any write so the
// next load sees the store's truth.
func (c *RedisCache) InvalidateEnquiries(ctx context.Context) error {
	return c.client.Del(ctx, enquiriesKey()).Err()
}

func enquiriesKey() string {
	return "cache:enquiries"
}
