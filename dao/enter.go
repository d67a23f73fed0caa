package dao

import "github.com/jmoiron/sqlx"

// DB 由 initialize 赋值, 业务代码只读
var DB *sqlx.DB

var utils = new(dbUtils)

type DaoGroup struct {
	CacheDb
}

var App = new(DaoGroup)
