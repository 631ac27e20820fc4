// Package icons maps windows to the glyphs shown in workspace labels.
//
// Lookup order for a window: rules (in declared order), then the icon
// table keyed by app_id, X11 class and X11 instance (after alias
// resolution), then the default icon. Keys are case-insensitive.
package icons

import (
	"regexp"
	"strings"

	"github.com/mj1618/wsicons/internal/model"
)

// Resolver returns the icon for a window, or "" when none applies.
// Implementations must be pure: no I/O, no side effects.
type Resolver interface {
	Icon(w model.Window) string
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(w model.Window) string

// Icon calls f(w).
func (f ResolverFunc) Icon(w model.Window) string { return f(w) }

// Rule assigns an icon to windows whose attributes match all non-empty
// patterns. Patterns are regular expressions.
type Rule struct {
	AppID string `toml:"app_id" yaml:"app_id,omitempty" json:"app_id,omitempty"`
	Class string `toml:"class"  yaml:"class,omitempty"  json:"class,omitempty"`
	Title string `toml:"title"  yaml:"title,omitempty"  json:"title,omitempty"`
	Icon  string `toml:"icon"   yaml:"icon"             json:"icon"`

	appID *regexp.Regexp
	class *regexp.Regexp
	title *regexp.Regexp
}

func (r *Rule) compile() error {
	var err error
	if r.appID, err = compileOptional(r.AppID); err != nil {
		return err
	}
	if r.class, err = compileOptional(r.Class); err != nil {
		return err
	}
	r.title, err = compileOptional(r.Title)
	return err
}

func compileOptional(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	return regexp.Compile(pattern)
}

func (r *Rule) matches(w model.Window) bool {
	if r.appID == nil && r.class == nil && r.title == nil {
		return false
	}
	if r.appID != nil && !r.appID.MatchString(w.AppID) {
		return false
	}
	if r.class != nil && !r.class.MatchString(w.Class) {
		return false
	}
	if r.title != nil && !r.title.MatchString(w.Name) {
		return false
	}
	return true
}

// Config is the loaded icon configuration. It is read-only once loaded
// and implements Resolver.
type Config struct {
	Icons   map[string]string `yaml:"icons"                  json:"icons"`
	Aliases map[string]string `yaml:"aliases,omitempty"      json:"aliases,omitempty"`
	Rules   []Rule            `yaml:"rules,omitempty"        json:"rules,omitempty"`
	Default string            `yaml:"default_icon,omitempty" json:"default_icon,omitempty"`
}

// Icon resolves the icon for w.
func (c *Config) Icon(w model.Window) string {
	for i := range c.Rules {
		if c.Rules[i].matches(w) {
			return c.Rules[i].Icon
		}
	}
	for _, key := range []string{w.AppID, w.Class, w.Instance} {
		if key == "" {
			continue
		}
		if icon, ok := c.lookup(key); ok {
			return icon
		}
	}
	return c.Default
}

func (c *Config) lookup(key string) (string, bool) {
	key = strings.ToLower(key)
	if alias, ok := c.Aliases[key]; ok {
		key = alias
	}
	icon, ok := c.Icons[key]
	return icon, ok
}

// DefaultConfig returns the built-in icon table.
func DefaultConfig() *Config {
	return &Config{
		Icons: map[string]string{
			"alacritty":   "🖥️",
			"chromium":    "🌐",
			"code":        "📝",
			"discord":     "💬",
			"firefox":     "🦊",
			"foot":        "🖥️",
			"gimp":        "🎨",
			"kitty":       "🖥️",
			"libreoffice": "📄",
			"mpv":         "🎬",
			"nautilus":    "📁",
			"slack":       "💬",
			"spotify":     "🎵",
			"steam":       "🎮",
			"telegram":    "✈️",
			"thunar":      "📁",
			"thunderbird": "✉️",
			"xterm":       "🖥️",
			"zathura":     "📖",
		},
		Aliases: map[string]string{
			"code-oss":                "code",
			"google-chrome":           "chromium",
			"org.gnome.nautilus":      "nautilus",
			"org.mozilla.firefox":     "firefox",
			"org.pwmt.zathura":        "zathura",
			"org.telegram.desktop":    "telegram",
			"telegramdesktop":         "telegram",
			"libreoffice-startcenter": "libreoffice",
			"libreoffice-writer":      "libreoffice",
		},
	}
}
