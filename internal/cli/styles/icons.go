package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGithub    = "" //  github
	IconGo        = "" //  go gopher
	IconArrow     = "" //  arrow right

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info
	IconConfig  = "" // gear
	IconFolder  = "" // folder
	IconCursor  = "" // chevron-right

	// Container tree
	IconRoot      = "" // tree
	IconMonitor   = "" // desktop
	IconWorkspace = "" // clone
	IconSplit     = "" // columns
	IconWindow    = "" // window-maximize
	IconFloating  = "" // expand
	IconMinimized = "" // compress
	IconFocus     = "" // circle
	IconEvent     = "" // bolt
)
