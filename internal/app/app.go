// Package app provides the core application service for Wails bindings.
package app

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"go.aimuz.me/webshell/config"
	"go.aimuz.me/webshell/internal/types"
	"go.aimuz.me/webshell/menu"
	"go.aimuz.me/webshell/metric"
	"go.aimuz.me/webshell/store"
)

// zoomStep is the zoom factor change of one Zoom In/Out.
const zoomStep = 0.1

const (
	jsBack         = "window.history.back();"
	jsForward      = "window.history.forward();"
	jsClearStorage = "try { window.localStorage.clear(); window.sessionStorage.clear(); } catch (e) {}"
)

// Page is the web content the shell displays.
type Page interface {
	ExecJS(js string)
	SetURL(url string)
	SetZoom(factor float64)
}

// Emitter sends events to the frontend.
type Emitter func(name string, data any)

// Service owns the shell state behind the application menu callbacks.
type Service struct {
	cfg     *config.Config
	store   *store.Store
	actions metric.IncrementalCounter

	// UI references - set via Init
	page Page
	quit func()
	emit Emitter

	mu         sync.Mutex
	currentURL string
	zoom       float64

	// Version info (set by caller)
	version string
}

// New creates a new Service. Call Init() after the Wails app is created.
// st and actions may be nil.
func New(version string, cfg *config.Config, st *store.Store, actions metric.IncrementalCounter) *Service {
	s := &Service{
		cfg:        cfg,
		store:      st,
		actions:    actions,
		currentURL: cfg.TargetURL,
		zoom:       cfg.DefaultZoom,
		version:    version,
	}
	if st != nil {
		if u, ok, err := st.LastURL(); err != nil {
			slog.Warn("load last url", "error", err)
		} else if ok {
			s.currentURL = u
		}
	}
	return s
}

// Init wires the service to the displayed page and the application.
func (s *Service) Init(page Page, quit func(), emit Emitter) {
	s.page = page
	s.quit = quit
	s.emit = emit
}

// GetVersion returns the application version.
func (s *Service) GetVersion() string {
	return s.version
}

// StartURL returns the URL the window should open.
func (s *Service) StartURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentURL
}

// Shutdown cleans up resources.
func (s *Service) Shutdown() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			slog.Error("close store", "error", err)
		}
	}
}

// MenuConfig returns the application menu configuration bound to this
// service. Every callback is counted and announced to the frontend.
func (s *Service) MenuConfig() menu.Config {
	return menu.Config{
		ProductVersion:  s.version,
		Quit:            s.track(ActionQuit, s.Quit),
		ZoomIn:          s.track(ActionZoomIn, s.ZoomIn),
		ZoomOut:         s.track(ActionZoomOut, s.ZoomOut),
		ZoomReset:       s.track(ActionZoomReset, s.ZoomReset),
		GoBack:          s.track(ActionGoBack, s.GoBack),
		GoForward:       s.track(ActionGoForward, s.GoForward),
		CurrentURL:      s.trackURL(),
		ClearAppData:    s.track(ActionClearAppData, s.ClearAppData),
		DefaultZoom:     s.cfg.DefaultZoom,
		DisableDevTools: s.cfg.DisableDevTools,
	}
}

func (s *Service) track(action string, f func()) func() {
	return func() {
		s.record(action)
		f()
	}
}

func (s *Service) trackURL() func() string {
	return func() string {
		s.record(ActionCopyURL)
		return s.CurrentURL()
	}
}

func (s *Service) record(action string) {
	slog.Debug("menu action", "action", action)
	if s.actions != nil {
		s.actions.Increment(action)
	}
	s.emitEvent(EventMenuAction, types.MenuAction{
		Action:    action,
		Timestamp: time.Now().UnixMilli(),
	})
}

// emitEvent is a safe wrapper around the frontend emitter.
func (s *Service) emitEvent(name string, data any) {
	if s.emit != nil {
		s.emit(name, data)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Navigation
// ─────────────────────────────────────────────────────────────────────────────

// GoBack navigates the page back in history.
func (s *Service) GoBack() {
	if s.page != nil {
		s.page.ExecJS(jsBack)
	}
}

// GoForward navigates the page forward in history.
func (s *Service) GoForward() {
	if s.page != nil {
		s.page.ExecJS(jsForward)
	}
}

// CurrentURL returns the URL of the page currently shown.
func (s *Service) CurrentURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentURL
}

// RecordNavigation records that the shell loaded url in the page. Wails
// reports no URL for in-page navigation, so history moves and links followed
// inside the page are not seen here.
func (s *Service) RecordNavigation(url string) {
	if url == "" {
		return
	}
	s.mu.Lock()
	s.currentURL = url
	zoom := s.zoom
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.SetLastURL(url); err != nil {
			slog.Warn("persist last url", "error", err)
		}
	}
	s.emitEvent(EventNavigation, types.NavigationState{URL: url, Zoom: zoom})
}

// ─────────────────────────────────────────────────────────────────────────────
// Zoom
// ─────────────────────────────────────────────────────────────────────────────

// ZoomIn increases the page zoom by one step.
func (s *Service) ZoomIn() { s.setZoom(s.Zoom() + zoomStep) }

// ZoomOut decreases the page zoom by one step.
func (s *Service) ZoomOut() { s.setZoom(s.Zoom() - zoomStep) }

// ZoomReset restores the configured default zoom.
func (s *Service) ZoomReset() { s.setZoom(s.cfg.DefaultZoom) }

// Zoom returns the current zoom factor.
func (s *Service) Zoom() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.zoom
}

func (s *Service) setZoom(z float64) {
	z = math.Round(z*100) / 100
	z = math.Max(types.MinZoom, math.Min(types.MaxZoom, z))

	s.mu.Lock()
	s.zoom = z
	s.mu.Unlock()

	if s.page != nil {
		s.page.SetZoom(z)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// App data & lifecycle
// ─────────────────────────────────────────────────────────────────────────────

// ClearAppData drops stored shell data and web storage, then loads the
// target URL.
func (s *Service) ClearAppData() {
	if s.store != nil {
		if err := s.store.Clear(); err != nil {
			slog.Error("clear store", "error", err)
		}
	}

	if s.page != nil {
		s.page.ExecJS(jsClearStorage)
		s.page.SetURL(s.cfg.TargetURL)
	}
	s.RecordNavigation(s.cfg.TargetURL)
	slog.Info("app data cleared")
	s.emitEvent(EventDataClear, s.cfg.TargetURL)
}

// Quit terminates the application.
func (s *Service) Quit() {
	if s.quit != nil {
		s.quit()
	}
}
