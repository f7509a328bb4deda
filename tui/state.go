package tui

type state int

const (
	gridState state = iota
	overlayState
)
