package service

import (
	"gitee.com/taoJie_1/erp-agent/service/user"
)

type ServiceGroup struct {
	UserServiceGroup user.ServiceGroup
}

var Service = new(ServiceGroup)

// Setup 在配置与底层客户端就绪后装配服务组
func Setup() {
	Service.UserServiceGroup = user.NewServiceGroup()
}
