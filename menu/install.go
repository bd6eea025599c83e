package menu

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Handle is a host menu built from a template.
type Handle any

// Host is the native menu API.
type Host interface {
	BuildFromTemplate(tree []*Node) (Handle, error)
	SetApplicationMenu(h Handle)
}

// Builder owns the process-wide application menu. It is the only component
// that installs one; each Install replaces the previous menu wholesale.
type Builder struct {
	host      Host
	platform  Platform
	clipboard Clipboard
	opener    Opener

	mu         sync.Mutex
	tree       []*Node
	generation string
}

// NewBuilder creates a Builder installing menus for platform p through host.
func NewBuilder(host Host, p Platform, cb Clipboard, op Opener) *Builder {
	return &Builder{host: host, platform: p, clipboard: cb, opener: op}
}

// Install builds the menu for cfg and installs it as the application menu.
// It returns the generation id of the installed menu.
func (b *Builder) Install(cfg Config) (string, error) {
	tree, err := Build(cfg, b.platform, b.clipboard, b.opener)
	if err != nil {
		return "", err
	}
	if err := Validate(tree, b.platform); err != nil {
		return "", fmt.Errorf("validate menu: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	h, err := b.host.BuildFromTemplate(tree)
	if err != nil {
		return "", fmt.Errorf("build from template: %w", err)
	}
	b.host.SetApplicationMenu(h)

	b.tree = tree
	b.generation = uuid.NewString()
	return b.generation, nil
}

// Installed returns the tree and generation id of the current menu.
// The tree is nil before the first Install.
func (b *Builder) Installed() ([]*Node, string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tree, b.generation
}
