package redis_test

import (
	"context"
	"net"
	"testing"

	"kwagala/config"
	"kwagala/infras/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configFor(addr string) *config.Config {
	host, port, _ := net.SplitHostPort(addr)

	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = host
	cfg.Cache.Redis.Primary.Port = port

	return cfg
}

func TestNew(t *testing.T) {
	mr := miniredis.RunT(t)

	client := redis.New(configFor(mr.Addr()))
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNew_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	client := redis.New(configFor(addr))
	t.Cleanup(func() { _ = client.Close() })

	assert.NotNil(t, client)
	assert.Error(t, client.Ping(context.Background()).Err())
}
