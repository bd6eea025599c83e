package app

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.aimuz.me/webshell/config"
	"go.aimuz.me/webshell/internal/types"
	"go.aimuz.me/webshell/menu"
	"go.aimuz.me/webshell/metric"
	"go.aimuz.me/webshell/store"
)

type fakePage struct {
	js   []string
	urls []string
	zoom float64
}

func (p *fakePage) ExecJS(js string) { p.js = append(p.js, js) }
func (p *fakePage) SetURL(url string) { p.urls = append(p.urls, url) }
func (p *fakePage) SetZoom(factor float64) { p.zoom = factor }

type event struct {
	name string
	data any
}

func newTestService(t *testing.T) (*Service, *fakePage, *metric.Counter, *[]event) {
	t.Helper()

	st, err := store.Open("")
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{Settings: types.Settings{
		TargetURL:   "https://example.com",
		DefaultZoom: 1.5,
	}}
	counter := metric.NewCounterWithRegistry(prometheus.NewRegistry(), "menu_actions_total", "test", "action")

	s := New("1.2.3", cfg, st, counter)
	t.Cleanup(s.Shutdown)

	page := &fakePage{}
	var events []event
	s.Init(page, func() {}, func(name string, data any) {
		events = append(events, event{name, data})
	})
	return s, page, counter, &events
}

func TestService_Zoom(t *testing.T) {
	s, page, _, _ := newTestService(t)

	if got := s.Zoom(); got != 1.5 {
		t.Fatalf("initial zoom = %v, want 1.5", got)
	}

	s.ZoomIn()
	if page.zoom != 1.6 {
		t.Errorf("after ZoomIn page zoom = %v, want 1.6", page.zoom)
	}
	s.ZoomOut()
	s.ZoomOut()
	if page.zoom != 1.4 {
		t.Errorf("after ZoomOut page zoom = %v, want 1.4", page.zoom)
	}
	s.ZoomReset()
	if page.zoom != 1.5 {
		t.Errorf("after ZoomReset page zoom = %v, want 1.5", page.zoom)
	}
}

func TestService_ZoomClamped(t *testing.T) {
	s, page, _, _ := newTestService(t)
	for i := 0; i < 100; i++ {
		s.ZoomOut()
	}
	if page.zoom != types.MinZoom {
		t.Errorf("zoom = %v, want %v", page.zoom, types.MinZoom)
	}
	for i := 0; i < 100; i++ {
		s.ZoomIn()
	}
	if page.zoom != types.MaxZoom {
		t.Errorf("zoom = %v, want %v", page.zoom, types.MaxZoom)
	}
}

func TestService_Navigation(t *testing.T) {
	s, page, _, events := newTestService(t)

	if got := s.CurrentURL(); got != "https://example.com" {
		t.Fatalf("CurrentURL() = %q", got)
	}

	s.GoBack()
	s.GoForward()
	if len(page.js) != 2 || page.js[0] != jsBack || page.js[1] != jsForward {
		t.Errorf("js = %q", page.js)
	}

	s.RecordNavigation("https://example.com/next")
	s.RecordNavigation("")
	if got := s.CurrentURL(); got != "https://example.com/next" {
		t.Errorf("CurrentURL() = %q", got)
	}
	if got, ok, _ := s.store.LastURL(); !ok || got != "https://example.com/next" {
		t.Errorf("stored last url = %q, %v", got, ok)
	}
	if len(*events) != 1 || (*events)[0].name != EventNavigation {
		t.Errorf("events = %+v", *events)
	}
}

func TestService_ClearAppData(t *testing.T) {
	s, page, _, events := newTestService(t)
	s.RecordNavigation("https://example.com/deep")

	s.ClearAppData()

	if got := s.CurrentURL(); got != "https://example.com" {
		t.Errorf("CurrentURL() = %q, want target url", got)
	}
	if got, _, _ := s.store.LastURL(); got != "https://example.com" {
		t.Errorf("stored last url = %q, want target url", got)
	}
	if len(page.urls) != 1 || page.urls[0] != "https://example.com" {
		t.Errorf("page loaded %q, want the target url once", page.urls)
	}
	if len(page.js) != 1 || page.js[0] != jsClearStorage {
		t.Errorf("js = %q", page.js)
	}
	last := (*events)[len(*events)-1]
	if last.name != EventDataClear {
		t.Errorf("last event = %q, want %q", last.name, EventDataClear)
	}
}

func TestService_MenuConfig(t *testing.T) {
	s, page, counter, events := newTestService(t)
	quit := 0
	s.quit = func() { quit++ }

	cfg := s.MenuConfig()
	if cfg.ProductVersion != "1.2.3" || cfg.DefaultZoom != 1.5 || cfg.DisableDevTools {
		t.Fatalf("config = %+v", cfg)
	}

	cfg.ZoomIn()
	cfg.ZoomIn()
	cfg.GoBack()
	cfg.Quit()
	if got := cfg.CurrentURL(); got != "https://example.com" {
		t.Errorf("CurrentURL() = %q", got)
	}

	tests := []struct {
		action string
		want   float64
	}{
		{ActionZoomIn, 2},
		{ActionGoBack, 1},
		{ActionQuit, 1},
		{ActionCopyURL, 1},
		{ActionZoomOut, 0},
	}
	for _, tt := range tests {
		if got := counter.Value(tt.action); got != tt.want {
			t.Errorf("counter[%s] = %v, want %v", tt.action, got, tt.want)
		}
	}

	if quit != 1 {
		t.Errorf("quit calls = %d, want 1", quit)
	}
	if page.zoom != 1.7 {
		t.Errorf("page zoom = %v, want 1.7", page.zoom)
	}
	if len(*events) != 5 {
		t.Errorf("menu events = %d, want 5", len(*events))
	}
}

func TestService_MenuConfigBuilds(t *testing.T) {
	s, _, _, _ := newTestService(t)
	for _, p := range []menu.Platform{menu.Other, menu.Darwin} {
		tree, err := menu.Build(s.MenuConfig(), p, nopClipboard{}, nopOpener{})
		if err != nil {
			t.Fatalf("Build(%s) error = %v", p, err)
		}
		if n := menu.Find(tree, "Reset (to 150%, set as default)"); n == nil {
			t.Errorf("reset label not derived from default zoom on %s", p)
		}
	}
}

type nopClipboard struct{}

func (nopClipboard) SetText(string) {}

type nopOpener struct{}

func (nopOpener) OpenExternal(string) {}
