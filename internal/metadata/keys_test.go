package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crossdb-graphql/internal/backends/postgres"
	"crossdb-graphql/internal/metadata"
	"crossdb-graphql/internal/primitive"
)

func TestConstraint_SameObject(t *testing.T) {
	a := metadata.Constraint[postgres.ConstraintName]{Name: "users_pkey", OID: primitive.OID(16385)}
	renamed := metadata.Constraint[postgres.ConstraintName]{Name: "users_pk", OID: primitive.OID(16385)}
	other := metadata.Constraint[postgres.ConstraintName]{Name: "users_pkey", OID: primitive.OID(16999)}

	// Identity follows the OID, not the name.
	assert.True(t, a.SameObject(renamed))
	assert.False(t, a.SameObject(other))
}

func TestNewPrimaryKey(t *testing.T) {
	constraint := metadata.Constraint[postgres.ConstraintName]{Name: "users_pkey", OID: 16385}

	pk, err := metadata.NewPrimaryKey(constraint, []postgres.ColumnName{"tenant_id", "id"})
	require.NoError(t, err)
	assert.Equal(t, []postgres.ColumnName{"tenant_id", "id"}, pk.Columns)

	_, err = metadata.NewPrimaryKey(constraint, []postgres.ColumnName{})
	assert.ErrorContains(t, err, "at least one column")
}

func TestPrimaryKey_FingerprintColumnOrder(t *testing.T) {
	constraint := metadata.Constraint[postgres.ConstraintName]{Name: "users_pkey", OID: 16385}

	a, err := metadata.NewPrimaryKey(constraint, []postgres.ColumnName{"tenant_id", "id"})
	require.NoError(t, err)
	b, err := metadata.NewPrimaryKey(constraint, []postgres.ColumnName{"id", "tenant_id"})
	require.NoError(t, err)

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestForeignKey_LocalColumns(t *testing.T) {
	remote, err := postgres.NewTableName("public", "users")
	require.NoError(t, err)

	fk := metadata.ForeignKey[postgres.ConstraintName, postgres.TableName, postgres.ColumnName]{
		Constraint:   metadata.Constraint[postgres.ConstraintName]{Name: "articles_author_fkey", OID: 17001},
		ForeignTable: remote,
		ColumnMapping: map[postgres.ColumnName]postgres.ColumnName{
			"tenant_id": "tenant_id",
			"author_id": "id",
		},
	}

	// Output order is independent of map iteration order.
	assert.Equal(t, []postgres.ColumnName{"author_id", "tenant_id"}, metadata.LocalColumns(fk))
}

func TestForeignKey_FingerprintDeterministic(t *testing.T) {
	remote, err := postgres.NewTableName("public", "users")
	require.NoError(t, err)

	build := func() metadata.ForeignKey[postgres.ConstraintName, postgres.TableName, postgres.ColumnName] {
		return metadata.ForeignKey[postgres.ConstraintName, postgres.TableName, postgres.ColumnName]{
			Constraint:   metadata.Constraint[postgres.ConstraintName]{Name: "articles_author_fkey", OID: 17001},
			ForeignTable: remote,
			ColumnMapping: map[postgres.ColumnName]postgres.ColumnName{
				"author_id": "id",
				"tenant_id": "tenant_id",
			},
		}
	}

	assert.Equal(t, build().Fingerprint(), build().Fingerprint())
}
