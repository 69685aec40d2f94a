// Package i18n looks up interface strings by typed key in the embedded
// English and Spanish catalogs.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/arturxdev/interview-helper/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

type Catalog struct {
	messages map[models.Locale]map[string]string

	mu      sync.Mutex
	missing map[string]int
}

// Load reads <locale>.yaml for every supported locale from fsys and flattens
// nested sections into dotted keys.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	c := &Catalog{
		messages: make(map[models.Locale]map[string]string),
		missing:  make(map[string]int),
	}
	for _, l := range models.SupportedLocales {
		data, err := fs.ReadFile(fsys, path.Join(dir, string(l)+".yaml"))
		if err != nil {
			return nil, fmt.Errorf("read %s catalog: %w", l, err)
		}
		var raw map[string]interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s catalog: %w", l, err)
		}
		flat := make(map[string]string)
		flatten("", raw, flat)
		c.messages[l] = flat
	}
	return c, nil
}

func flatten(prefix string, in map[string]interface{}, out map[string]string) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// T returns the text for key in locale with {{name}} placeholders replaced.
// A missing entry falls back to the key itself and is recorded.
func (c *Catalog) T(l models.Locale, key Key, vars map[string]string) string {
	text, ok := c.messages[l][string(key)]
	if !ok {
		c.recordMissing(l, key)
		text = string(key)
	}
	for k, v := range vars {
		text = strings.ReplaceAll(text, "{{"+k+"}}", v)
	}
	return text
}

func (c *Catalog) recordMissing(l models.Locale, key Key) {
	id := string(l) + ":" + string(key)
	c.mu.Lock()
	c.missing[id]++
	first := c.missing[id] == 1
	c.mu.Unlock()
	if first {
		log.Printf("i18n: missing translation %s", id)
	}
}

// Missing returns the "<locale>:<key>" pairs looked up without a translation.
func (c *Catalog) Missing() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.missing))
	for id := range c.missing {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Check reports keys from AllKeys absent in any catalog.
func (c *Catalog) Check() []string {
	var out []string
	for _, l := range models.SupportedLocales {
		for _, k := range AllKeys {
			if _, ok := c.messages[l][string(k)]; !ok {
				out = append(out, string(l)+":"+string(k))
			}
		}
	}
	return out
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(localeFS, "locales")
		if err != nil {
			log.Fatalf("i18n: %v", err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func T(l models.Locale, key Key, vars map[string]string) string {
	return Default().T(l, key, vars)
}
