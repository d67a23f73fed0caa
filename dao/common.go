package dao

import (
	"strings"
	"time"

	"gitee.com/taoJie_1/erp-agent/model/db"
)

type dbUtils struct{}

// getUpsertSql 按库类型生成"存在即更新"语句
// 冲突键为 conflictKey, updates 为冲突时需要刷新的列
func (u *dbUtils) getUpsertSql(d db.Dbfunc, dbType string, conflictKey string, cols []string, updates []string) string {
	var sql strings.Builder
	sql.WriteString("INSERT INTO `")
	sql.WriteString(d.TableName())
	sql.WriteString("` (")
	for i, c := range cols {
		if i > 0 {
			sql.WriteString(", ")
		}
		sql.WriteByte('`')
		sql.WriteString(c)
		sql.WriteByte('`')
	}
	sql.WriteString(") VALUES (?")
	sql.WriteString(strings.Repeat(", ?", len(cols)-1))
	sql.WriteString(")")

	switch dbType {
	case "mysql":
		sql.WriteString(" ON DUPLICATE KEY UPDATE ")
		for i, c := range updates {
			if i > 0 {
				sql.WriteString(", ")
			}
			sql.WriteString("`" + c + "` = VALUES(`" + c + "`)")
		}
	default: // sqlite3
		sql.WriteString(" ON CONFLICT(`" + conflictKey + "`) DO UPDATE SET ")
		for i, c := range updates {
			if i > 0 {
				sql.WriteString(", ")
			}
			sql.WriteString("`" + c + "` = excluded.`" + c + "`")
		}
	}
	return sql.String()
}

func nowUnix() int64 {
	return time.Now().Unix()
}
