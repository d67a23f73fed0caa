package dto

// MenuPath 两级菜单定位: [categoryId, pageId]
// 空切片表示"无具体页面"
type MenuPath []string

// Equal 比较两条菜单路径
func (p MenuPath) Equal(other MenuPath) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// MenuItem 目录中的单个页面
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Path        string `json:"path"`
	Description string `json:"description,omitempty"`
	// ActionButtons 页面内可引导点击的操作按钮(如"새 고객 추가")
	ActionButtons []string `json:"actionButtons,omitempty"`
}

// MenuCategory 目录中的一个分类及其下属页面
type MenuCategory struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Children []MenuItem `json:"children"`
}

// MenuTree 完整的菜单目录, 分类有序
type MenuTree struct {
	Categories []MenuCategory `json:"categories"`
}

// FindCategory 按ID查找分类
func (t *MenuTree) FindCategory(categoryID string) *MenuCategory {
	for i := range t.Categories {
		if t.Categories[i].ID == categoryID {
			return &t.Categories[i]
		}
	}
	return nil
}

// FindItem 按分类ID与页面ID查找页面
func (t *MenuTree) FindItem(categoryID, itemID string) (*MenuCategory, *MenuItem) {
	cat := t.FindCategory(categoryID)
	if cat == nil {
		return nil, nil
	}
	for i := range cat.Children {
		if cat.Children[i].ID == itemID {
			return cat, &cat.Children[i]
		}
	}
	return cat, nil
}

// NavigationPath 引导用户到达某页面的完整定位信息
type NavigationPath struct {
	CategoryID   string   `json:"categoryId"`
	CategoryName string   `json:"categoryName"`
	MenuID       string   `json:"menuId"`
	MenuName     string   `json:"menuName"`
	Path         string   `json:"path"`
	Steps        []string `json:"steps"`
}

// DriverStep 前端逐步高亮引导的单个步骤
type DriverStep struct {
	Element string            `json:"element"`
	Popover DriverStepPopover `json:"popover"`
}

type DriverStepPopover struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Side        string `json:"side"`
	Align       string `json:"align"`
}
