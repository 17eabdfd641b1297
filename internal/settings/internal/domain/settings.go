package domain

type Position string

const (
	PositionBottomRight Position = "bottom-right"
	PositionBottomLeft  Position = "bottom-left"
	PositionTopRight    Position = "top-right"
	PositionTopLeft     Position = "top-left"
)

func (p Position) Valid() bool {
	switch p {
	case PositionBottomRight, PositionBottomLeft,
		PositionTopRight, PositionTopLeft:
		return true
	default:
		return false
	}
}

// Settings 挂件的全局配置，全站一份
type Settings struct {
	Enabled      bool
	Position     Position
	PrimaryColor string
	ButtonText   string
	// AllowedDomains 允许加载挂件的域名，空表示不限
	AllowedDomains []string
}

func Default() Settings {
	return Settings{
		Enabled:      false,
		Position:     PositionBottomRight,
		PrimaryColor: "#6366f1",
		ButtonText:   "Feedback",
	}
}
