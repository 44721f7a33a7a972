// Package data loads item catalogs from YAML files.
package data

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/sparsestats/internal/model"
)

// ErrDuplicateItem is returned when two catalog entries share a name.
var ErrDuplicateItem = errors.New("duplicate item name")

// catalogFile is the on-disk layout of an item catalog.
type catalogFile struct {
	Items []*model.ItemTemplate `yaml:"items"`
}

// LoadItemCatalog reads and validates one catalog file.
// Item names must be unique within the file.
func LoadItemCatalog(path string) ([]*model.ItemTemplate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var f catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(f.Items))
	for i, tmpl := range f.Items {
		if tmpl == nil {
			return nil, fmt.Errorf("catalog %s: item %d: %w: empty entry", path, i, model.ErrInvalidItem)
		}
		if err := tmpl.Validate(); err != nil {
			return nil, fmt.Errorf("catalog %s: item %d: %w", path, i, err)
		}
		if _, dup := seen[tmpl.Name]; dup {
			return nil, fmt.Errorf("catalog %s: %w: %q", path, ErrDuplicateItem, tmpl.Name)
		}
		seen[tmpl.Name] = struct{}{}
	}

	slog.Info("loaded item catalog", "path", path, "items", len(f.Items))
	return f.Items, nil
}

// Catalog — реестр шаблонов предметов по имени.
type Catalog struct {
	items map[string]*model.ItemTemplate
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{items: make(map[string]*model.ItemTemplate)}
}

// Add registers templates. It fails on the first name already present and
// leaves earlier templates of the batch registered.
func (c *Catalog) Add(templates ...*model.ItemTemplate) error {
	for _, t := range templates {
		if _, dup := c.items[t.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateItem, t.Name)
		}
		c.items[t.Name] = t
	}
	return nil
}

// Get returns the template with the given name, or nil.
func (c *Catalog) Get(name string) *model.ItemTemplate {
	return c.items[name]
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Names returns every template name, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.items))
	for name := range c.items {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LoadItemCatalogs parses paths in parallel and merges them in path order.
// A name defined in two files is an error.
func LoadItemCatalogs(ctx context.Context, paths []string) (*Catalog, error) {
	loaded := make([][]*model.ItemTemplate, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			items, err := LoadItemCatalog(path)
			if err != nil {
				return err
			}
			loaded[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := NewCatalog()
	for i, items := range loaded {
		if err := c.Add(items...); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", paths[i], err)
		}
	}

	slog.Debug("item catalogs merged", "files", len(paths), "items", c.Len())
	return c, nil
}
