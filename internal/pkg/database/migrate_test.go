package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_SortedAndNonEmpty(t *testing.T) {
	migrations, err := Migrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	for i, m := range migrations {
		assert.NotEmpty(t, m.SQL, m.Name)
		if i > 0 {
			assert.Less(t, migrations[i-1].Name, m.Name)
		}
	}
	assert.Equal(t, "0001_init.sql", migrations[0].Name)
}
