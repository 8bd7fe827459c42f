package mysql

import (
	"strings"
	"testing"

	"moodmate/be/biz/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.MySQLConf{
		DBName:   "moodmate",
		IP:       "10.0.0.2",
		Port:     3307,
		Username: "svc",
		Password: "pw",
	})

	assert.True(t, strings.HasPrefix(dsn, "svc:pw@tcp(10.0.0.2:3307)/moodmate?"), dsn)
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "clientFoundRows=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestOpen_SQLite(t *testing.T) {
	db, err := Open(config.MySQLConf{SQLitePath: ":memory:"})
	assert.NoError(t, err)

	for _, table := range []string{"users", "todos", "conversations", "emotions", "songs", "ratings"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
