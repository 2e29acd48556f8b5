package catalog

import "strings"

// Info is the display metadata of a plan kind.
type Info struct {
	Kind  Kind
	Icon  string
	Label string
	// Color is a terminal color (ANSI 256 code or hex).
	Color string
	// Generic is set when the workout could not be classified.
	Generic bool
}

var typeInfo = map[Kind]Info{
	KindPush: {Kind: KindPush, Icon: "🏋️", Label: "PUSH", Color: "#EF4444"},
	KindPull: {Kind: KindPull, Icon: "💪", Label: "PULL", Color: "#3B82F6"},
	KindLegs: {Kind: KindLegs, Icon: "🦵", Label: "LEGS", Color: "#22C55E"},
}

const (
	genericIcon  = "🏋️‍♀️"
	genericColor = "#6B7280"
)

// TypeInfo returns the display metadata of a known kind.
func TypeInfo(kind Kind) (Info, bool) {
	info, ok := typeInfo[kind]
	return info, ok
}

// StyleFor classifies the workout title and returns its display metadata,
// falling back to a gray style labeled with the title's first word.
func StyleFor(workoutTitle string) Info {
	if info, ok := typeInfo[ClassifyWorkoutName(workoutTitle)]; ok {
		return info
	}

	label := workoutTitle
	if fields := strings.Fields(workoutTitle); len(fields) > 0 {
		label = fields[0]
	}
	return Info{
		Kind:    KindUnknown,
		Icon:    genericIcon,
		Label:   label,
		Color:   genericColor,
		Generic: true,
	}
}
