package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMySQLConfig_DSN(t *testing.T) {
	cfg := DefaultMySQLConfig()
	dsn := cfg.DSN()

	assert.Contains(t, dsn, "root:root@tcp(mysql:3306)/weddingserver")
	assert.Contains(t, dsn, "charset=utf8mb4")
	assert.Contains(t, dsn, "parseTime=True")
	// RowsAffected 必须按匹配行数计算，重复停用用户才不会被误判成不存在
	assert.Contains(t, dsn, "clientFoundRows=true")
}
