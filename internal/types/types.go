// Package types provides shared type definitions for the application.
package types

// Settings is the persisted shell configuration.
type Settings struct {
	Name            string  `json:"name"`
	TargetURL       string  `json:"target_url"`
	DefaultZoom     float64 `json:"default_zoom,omitempty"`
	DisableDevTools bool    `json:"disable_dev_tools,omitempty"`
	Width           int     `json:"width,omitempty"`
	Height          int     `json:"height,omitempty"`
}

// Default window geometry and zoom if not specified.
const (
	DefaultWidth  = 1280
	DefaultHeight = 800
	DefaultZoom   = 1.0
)

// Zoom bounds accepted by the shell.
const (
	MinZoom = 0.25
	MaxZoom = 5.0
)

// MenuAction is emitted to the frontend whenever a menu action runs.
type MenuAction struct {
	Action    string `json:"action"`
	Timestamp int64  `json:"timestamp"` // Unix timestamp in milliseconds
}

// NavigationState describes the page currently shown by the shell.
type NavigationState struct {
	URL  string  `json:"url"`
	Zoom float64 `json:"zoom"`
}
