// Package cache provides the optional Redis layer used to keep the
// current customs rate schedule hot. The service degrades to
// database-only reads when Redis is not configured.
package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Client wraps go-redis with a health check. A nil *Client is a valid
// "cache disabled" value; callers must nil-check before use.
type Client struct {
	*redis.Client
}

// New creates a Redis client from a URL, or returns (nil, nil) when the
// URL is empty and caching is disabled.
func New(ctx context.Context, url string) (*Client, error) {
	if url == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{Client: client}, nil
}

// Health checks connectivity.
func (c *Client) Health(ctx context.Context) error {
	return c.Ping(ctx).Err()
}
