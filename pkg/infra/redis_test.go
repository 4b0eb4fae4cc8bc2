package infra

import (
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestNewRedisConnection(t *testing.T) {
	redisContainer, err := tcredis.Run(context.Background(), "redis:7.4")
	if err != nil {
		log.Fatalf("error creating redis: %s", err)
	}
	defer func() {
		if redisContainer == nil {
			return
		}
		if e := redisContainer.Terminate(context.Background()); e != nil {
			log.Fatalf("failed to terminate container: %s", e)
		}
	}()

	host, err := redisContainer.Host(context.Background())
	require.NoError(t, err)

	port, err := redisContainer.MappedPort(context.Background(), "6379")
	require.NoError(t, err)

	testCases := []struct {
		name        string
		input       RedisConfig
		expectedErr bool
	}{
		{
			name: "valid config",
			input: RedisConfig{
				Host: host,
				Port: port.Int(),
			},
			expectedErr: false,
		},
		{
			name: "unreachable port",
			input: RedisConfig{
				Host: host,
				Port: 8001,
			},
			expectedErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, e := NewRedisConnection(tc.input)
			if tc.expectedErr {
				assert.Error(t, e)
			} else {
				assert.NoError(t, e)
				assert.NotNil(t, client)
			}
		})
	}
}
