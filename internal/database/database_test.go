package database

import (
	"testing"

	"go-gin-stream-events/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	cfg := config.LoadTestConfig()

	dsn := DSN(&cfg.Database)

	assert.Equal(t, "host=localhost port=5433 user=postgres password=postgres dbname=test_db sslmode=disable timezone=UTC", dsn)
}

func TestInitRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	rdb, err := InitRedis(&config.RedisConfig{Host: mr.Host(), Port: mr.Port()})

	require.NoError(t, err)
	defer rdb.Close()
	assert.Equal(t, "PONG", rdb.Ping(t.Context()).Val())
}

func TestInitRedis_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port := mr.Host(), mr.Port()
	mr.Close()

	_, err := InitRedis(&config.RedisConfig{Host: host, Port: port})

	assert.Error(t, err)
}
