package postgresql

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/database"
)

type stubTx struct{ pgx.Tx }

func TestGetQuerierPrefersOpenTransaction(t *testing.T) {
	db := &database.DB{}
	tx := stubTx{}
	ctx := context.WithValue(context.Background(), txKey{}, pgx.Tx(tx))

	q := GetQuerier(ctx, db)

	assert.Equal(t, tx, q)
}

func TestGetQuerierFallsBackToPool(t *testing.T) {
	db := &database.DB{}

	q := GetQuerier(context.Background(), db)

	_, isTx := q.(pgx.Tx)
	assert.False(t, isTx, "without a transaction on the context the pool serves queries")
}
