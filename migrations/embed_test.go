//go:build unit

package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles(t *testing.T) {
	names, err := Files()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "001_initial_schema.sql", names[0])
}

func TestInitialSchemaDefinesProcedures(t *testing.T) {
	raw, err := files.ReadFile("001_initial_schema.sql")
	require.NoError(t, err)
	sql := string(raw)

	for _, proc := range []string{
		"make_booking", "search_room", "cancel_booking",
		"insert_new_member", "delete_member", "update_member_password", "update_member_email",
	} {
		assert.True(t, strings.Contains(sql, "PROCEDURE "+proc+"("), "missing procedure %s", proc)
	}
	assert.Contains(t, sql, "VIEW member_bookings")
}
