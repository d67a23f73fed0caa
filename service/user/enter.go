package user

import "gitee.com/taoJie_1/erp-agent/dao"

type ServiceGroup struct {
	QueryService  IQueryService
	MenuService   IMenuService
	IntentService IIntentService
	Validator     IValidator
}

func NewServiceGroup() ServiceGroup {
	menu := NewMenuService()
	intents := NewIntentService()
	post := NewPostProcessService()

	return ServiceGroup{
		QueryService: NewQueryService(
			&dao.App.CacheDb,
			NewAnswerService(),
			menu,
			intents,
			post,
		),
		MenuService:   menu,
		IntentService: intents,
		Validator:     &Validator{},
	}
}
