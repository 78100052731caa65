package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisClient_Get(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	c := NewRedisClient[testRecord](db)

	record := testRecord{ID: "1", Name: "one"}
	raw, err := json.Marshal(record)
	require.NoError(t, err)

	mock.ExpectGet("record:1").SetVal(string(raw))

	got, err := c.Get(ctx, "record:1")
	require.NoError(t, err)
	assert.Equal(t, record, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Get_Missing(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	c := NewRedisClient[testRecord](db)

	mock.ExpectGet("record:1").RedisNil()

	_, err := c.Get(ctx, "record:1")
	assert.ErrorIs(t, err, ErrNotExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Set(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	c := NewRedisClient[testRecord](db)

	record := testRecord{ID: "1", Name: "one"}
	raw, err := json.Marshal(record)
	require.NoError(t, err)

	mock.ExpectSet("record:1", string(raw), time.Minute).SetVal("OK")

	require.NoError(t, c.Set(ctx, "record:1", record, time.Minute))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GetOrSet_MissPopulates(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	c := NewRedisClient[testRecord](db)

	record := testRecord{ID: "1", Name: "one"}
	raw, err := json.Marshal(record)
	require.NoError(t, err)

	mock.ExpectGet("record:1").RedisNil()
	mock.ExpectSet("record:1", string(raw), time.Minute).SetVal("OK")

	got, err := c.GetOrSet(ctx, GetOrSetOpts[testRecord]{
		Key: "record:1",
		TTL: time.Minute,
		Callback: func() (testRecord, error) {
			return record, nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, record, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GetOrSet_Hit(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	c := NewRedisClient[testRecord](db)

	record := testRecord{ID: "1", Name: "one"}
	raw, err := json.Marshal(record)
	require.NoError(t, err)

	mock.ExpectGet("record:1").SetVal(string(raw))

	got, err := c.GetOrSet(ctx, GetOrSetOpts[testRecord]{
		Key: "record:1",
		TTL: time.Minute,
		Callback: func() (testRecord, error) {
			t.Fatal("callback must not run on a cache hit")
			return testRecord{}, nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, record, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
