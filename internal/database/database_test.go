package database

import (
	"context"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestConnectRedis(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client, err := ConnectRedis(context.Background(), m.Addr(), "", 0, time.Second)
	require.NoError(t, err)
	defer client.Close()
	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := m.Get("k")
	require.NoError(t, err)
	require.Equal(t, "v", got)
}

func TestConnectRedis_Unreachable(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	addr := m.Addr()
	m.Close()

	_, err = ConnectRedis(context.Background(), addr, "", 0, 500*time.Millisecond)
	require.Error(t, err)
}

func TestConnectMongoWithBackoff_InvalidURI(t *testing.T) {
	var retries []int
	_, err := ConnectMongoWithBackoff(context.Background(), "not-a-mongo-uri", time.Second, 3, time.Millisecond, func(attempt int, err error) {
		retries = append(retries, attempt)
	})
	require.Error(t, err)
	require.Equal(t, []int{1, 2, 3}, retries)
}
