package encode

import "github.com/fatih/color"

type ColorAttr int

const (
	literalColor ColorAttr = iota
	defNameColor
	opColor
	headerColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			literalColor: color.RGB(128, 216, 236).SprintfFunc(),
			defNameColor: color.RGB(196, 96, 16).SprintfFunc(),
			opColor:      color.RGB(255, 0, 196).SprintfFunc(),
			headerColor:  color.RGB(128, 168, 196).SprintfFunc(),
		},
	}
}

func colorDefault(f string, args ...any) string {
	return color.WhiteString(f, args...)
}
