package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	_, err := NewClient("", nil)
	assert.Error(t, err)

	mr := miniredis.RunT(t)
	client, err := NewClient(mr.Addr(), &Options{PoolSize: 2})
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNewClientFromURL(t *testing.T) {
	_, err := NewClientFromURL("", nil)
	assert.Error(t, err)

	_, err = NewClientFromURL("http://not-redis", nil)
	assert.Error(t, err)

	mr := miniredis.RunT(t)
	client, err := NewClientFromURL("redis://"+mr.Addr()+"/0", nil)
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Get(context.Background(), "missing").Result()
	assert.ErrorIs(t, err, Nil)
}
