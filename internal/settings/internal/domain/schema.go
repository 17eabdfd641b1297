package domain

type FieldType string

const (
	FieldToggle     FieldType = "toggle"
	FieldSelect     FieldType = "select"
	FieldColor      FieldType = "color"
	FieldText       FieldType = "text"
	FieldDomainList FieldType = "domain-list"
)

// Field 管理后台设置表单的一项。
// 由前端按顺序渲染，VisibleWhen 决定当前配置下要不要展示
type Field struct {
	Key         string
	Type        FieldType
	Label       string
	Help        string
	Options     []string
	VisibleWhen func(s Settings) bool
}

// FormSchema 挂件设置页的表单结构。
// 展示类字段只在挂件开启之后出现
func FormSchema() []Field {
	enabled := func(s Settings) bool { return s.Enabled }
	always := func(s Settings) bool { return true }
	return []Field{
		{
			Key:         "enabled",
			Type:        FieldToggle,
			Label:       "启用挂件",
			Help:        "关闭后所有站点上的挂件都不再展示，接口只返回 enabled=false",
			VisibleWhen: always,
		},
		{
			Key:   "position",
			Type:  FieldSelect,
			Label: "挂件位置",
			Help:  "悬浮按钮在宿主页面上的停靠位置",
			Options: []string{
				string(PositionBottomRight), string(PositionBottomLeft),
				string(PositionTopRight), string(PositionTopLeft),
			},
			VisibleWhen: enabled,
		},
		{
			Key:         "primary_color",
			Type:        FieldColor,
			Label:       "主题色",
			VisibleWhen: enabled,
		},
		{
			Key:         "button_text",
			Type:        FieldText,
			Label:       "按钮文案",
			VisibleWhen: enabled,
		},
		{
			Key:         "allowed_domains",
			Type:        FieldDomainList,
			Label:       "域名白名单",
			Help:        "留空表示任意站点都可以嵌入；配置之后只有列表里的域名能用",
			VisibleWhen: enabled,
		},
	}
}
