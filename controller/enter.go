package controller

import "gitee.com/taoJie_1/erp-agent/controller/user"

var Api = new(ApiGroup)

type ApiGroup struct {
	UserApiGroup user.ApiGroup
}
