package roomgraph

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/automoto/labhunt/logger"
	"gopkg.in/yaml.v3"
)

// ParseLayout decodes one YAML room graph.
func ParseLayout(data []byte) (*Graph, error) {
	var g Graph
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if len(g.Rooms) == 0 {
		return nil, fmt.Errorf("parse layout: no rooms")
	}
	return &g, nil
}

// LoadLayout reads one YAML room graph from disk.
func LoadLayout(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	g, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// LayoutProvider serves YAML layouts from a directory, cycling through them by
// level number in file name order. A dirty provider rereads the directory on
// the next request.
type LayoutProvider struct {
	dir string

	mu      sync.Mutex
	layouts []*Graph
	names   []string
	dirty   bool
}

// NewLayoutProvider loads every .yaml/.yml file in dir.
func NewLayoutProvider(dir string) (*LayoutProvider, error) {
	p := &LayoutProvider{dir: dir}
	if err := p.reload(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *LayoutProvider) reload() error {
	var matches []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		m, err := filepath.Glob(filepath.Join(p.dir, pattern))
		if err != nil {
			return fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no layouts found in %s", p.dir)
	}
	sort.Strings(matches)

	layouts := make([]*Graph, 0, len(matches))
	for _, path := range matches {
		g, err := LoadLayout(path)
		if err != nil {
			return err
		}
		layouts = append(layouts, g)
	}

	p.layouts = layouts
	p.names = matches
	p.dirty = false
	return nil
}

// MarkDirty schedules a reload before the next level starts.
func (p *LayoutProvider) MarkDirty() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dirty = true
}

// Names returns the loaded layout paths.
func (p *LayoutProvider) Names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.names...)
}

func (p *LayoutProvider) Graph(level int) (*Graph, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.dirty {
		if err := p.reload(); err != nil {
			logger.For("roomgraph").WithError(err).Warn("layout reload failed, keeping previous layouts")
			p.dirty = false
		}
	}
	idx := (level - 1) % len(p.layouts)
	if idx < 0 {
		idx += len(p.layouts)
	}
	return p.layouts[idx], nil
}
