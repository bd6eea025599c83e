// Package app provides the core application service for Wails bindings.
package app

// Event names for frontend communication.
const (
	EventMenuAction = "menu-action"
	EventNavigation = "navigation"
	EventDataClear  = "app-data-cleared"
)

// Menu action names, used as event payloads and metric labels.
const (
	ActionQuit         = "quit"
	ActionZoomIn       = "zoom_in"
	ActionZoomOut      = "zoom_out"
	ActionZoomReset    = "zoom_reset"
	ActionGoBack       = "go_back"
	ActionGoForward    = "go_forward"
	ActionCopyURL      = "copy_url"
	ActionClearAppData = "clear_app_data"
)
