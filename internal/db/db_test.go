package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectInvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "this is not a connection string")
	require.Error(t, err)
}

func TestCloseNilPool(t *testing.T) {
	db := &DB{}
	assert.NotPanics(t, func() { db.Close() })
}
