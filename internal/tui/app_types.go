package tui

type mode int

const (
	modeTree mode = iota
	modeAdd
	modeRename
	modeImport
	modeConfirmClear
	modeInstructions
)

func (m mode) title() string {
	switch m {
	case modeAdd:
		return "Add node"
	case modeRename:
		return "Rename node"
	case modeImport:
		return "Import tree"
	case modeConfirmClear:
		return "Clear tree"
	case modeInstructions:
		return "Instructions"
	default:
		return "Tree"
	}
}

type statusClearMsg struct{ seq int }
