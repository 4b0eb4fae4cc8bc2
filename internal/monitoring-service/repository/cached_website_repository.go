package repository

import (
	"Website_Monitoring_Service/internal/monitoring-service/model"
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// cachedWebsiteRepository caches website reads in Redis. The scheduler hits
// GetEnabledWebsites every pass and the checker re-reads individual sites,
// so both are cached; every write path invalidates.
type cachedWebsiteRepository struct {
	redis    *redis.Client
	repo     WebsiteRepository
	cacheTTL time.Duration
}

const enabledWebsitesCacheKey = "websites:enabled"

func (*cachedWebsiteRepository) getWebsiteCacheKey(id string) string {
	return fmt.Sprintf("website:%s", id)
}

func encodeWebsites(websites []model.Website) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(websites); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeWebsites(b []byte) ([]model.Website, error) {
	var websites []model.Website
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&websites); err != nil {
		return nil, err
	}
	return websites, nil
}

func (c *cachedWebsiteRepository) CreateWebsite(ctx context.Context, website model.Website) (model.Website, error) {
	created, err := c.repo.CreateWebsite(ctx, website)
	if err != nil {
		return created, err
	}
	c.redis.Del(ctx, enabledWebsitesCacheKey)
	return created, nil
}

func (c *cachedWebsiteRepository) GetWebsiteById(ctx context.Context, websiteId string) (model.Website, error) {
	key := c.getWebsiteCacheKey(websiteId)
	data, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		websites, decodeErr := decodeWebsites(data)
		if decodeErr == nil && len(websites) == 1 {
			return websites[0], nil
		}
	}
	website, err := c.repo.GetWebsiteById(ctx, websiteId)
	if err != nil {
		return website, err
	}
	if b, encodeErr := encodeWebsites([]model.Website{website}); encodeErr == nil {
		c.redis.Set(ctx, key, b, c.cacheTTL)
	}
	return website, nil
}

func (c *cachedWebsiteRepository) GetWebsitesByUserId(ctx context.Context, userId string) ([]model.Website, error) {
	return c.repo.GetWebsitesByUserId(ctx, userId)
}

func (c *cachedWebsiteRepository) GetEnabledWebsites(ctx context.Context) ([]model.Website, error) {
	data, err := c.redis.Get(ctx, enabledWebsitesCacheKey).Bytes()
	if err == nil {
		websites, decodeErr := decodeWebsites(data)
		if decodeErr == nil {
			return websites, nil
		}
	}
	websites, err := c.repo.GetEnabledWebsites(ctx)
	if err != nil {
		return nil, err
	}
	if b, encodeErr := encodeWebsites(websites); encodeErr == nil {
		c.redis.Set(ctx, enabledWebsitesCacheKey, b, c.cacheTTL)
	}
	return websites, nil
}

func (c *cachedWebsiteRepository) UpdateWebsite(ctx context.Context, websiteId string, update model.WebsiteUpdate) (model.Website, error) {
	err := c.redis.Del(ctx, c.getWebsiteCacheKey(websiteId), enabledWebsitesCacheKey).Err()
	if err != nil {
		return model.Website{}, fmt.Errorf("cachedWebsiteRepository.UpdateWebsite: %w", err)
	}
	return c.repo.UpdateWebsite(ctx, websiteId, update)
}

func (c *cachedWebsiteRepository) UpdateCheckState(ctx context.Context, websiteId string, state model.CheckState) error {
	err := c.redis.Del(ctx, c.getWebsiteCacheKey(websiteId), enabledWebsitesCacheKey).Err()
	if err != nil {
		return fmt.Errorf("cachedWebsiteRepository.UpdateCheckState: %w", err)
	}
	return c.repo.UpdateCheckState(ctx, websiteId, state)
}

func (c *cachedWebsiteRepository) DeleteWebsiteById(ctx context.Context, websiteId string) error {
	err := c.redis.Del(ctx, c.getWebsiteCacheKey(websiteId), enabledWebsitesCacheKey).Err()
	if err != nil {
		return fmt.Errorf("cachedWebsiteRepository.DeleteWebsiteById: %w", err)
	}
	return c.repo.DeleteWebsiteById(ctx, websiteId)
}

func (c *cachedWebsiteRepository) GetMonitoringSummary(ctx context.Context) (MonitoringSummary, error) {
	return c.repo.GetMonitoringSummary(ctx)
}

func NewCachedWebsiteRepository(redisClient *redis.Client, repo WebsiteRepository, cacheTTL time.Duration) WebsiteRepository {
	return &cachedWebsiteRepository{
		redis:    redisClient,
		repo:     repo,
		cacheTTL: cacheTTL,
	}
}
