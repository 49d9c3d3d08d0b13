package theme

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// tomlTheme is the on-disk form of a Theme:
//
//	name = "paper"
//	[light]
//	background = "#ffffff"
//	...
//	[dark]
//	background = "#101010"
//	...
type tomlTheme struct {
	Name  string      `toml:"name"`
	Light tomlPalette `toml:"light"`
	Dark  tomlPalette `toml:"dark"`
}

type tomlPalette struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
	Secondary  string `toml:"secondary"`
	Surface    string `toml:"surface"`
	Border     string `toml:"border"`
	Heading    string `toml:"heading"`
	Link       string `toml:"link"`
	Caret      string `toml:"caret"`
	BarFilled  string `toml:"bar_filled"`
	BarEmpty   string `toml:"bar_empty"`
	HelpKey    string `toml:"help_key"`
}

func (tp tomlPalette) palette() Palette {
	return Palette(tp)
}

func fromPalette(p Palette) tomlPalette {
	return tomlPalette(p)
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt tomlTheme
	md, err := toml.Decode(string(data), &tt)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Theme{}, fmt.Errorf("theme: unknown key %q", undecoded[0].String())
	}

	t := Theme{
		Name:  tt.Name,
		Light: tt.Light.palette(),
		Dark:  tt.Dark.palette(),
	}
	if err := validateTheme(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// SaveToTOML serializes a theme to TOML.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := tomlTheme{
		Name:  t.Name,
		Light: fromPalette(t.Light),
		Dark:  fromPalette(t.Dark),
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadDir registers every *.toml theme in dir and returns the names
// loaded. A missing directory loads nothing. Invalid files are collected
// into the returned error; valid ones are still registered.
func LoadDir(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("theme: scan %s: %w", dir, err)
	}
	sort.Strings(paths)

	var names []string
	var errs []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", filepath.Base(path), err))
			continue
		}
		t, err := LoadFromTOML(data)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", filepath.Base(path), err))
			continue
		}
		Register(t)
		names = append(names, strings.ToLower(t.Name))
	}
	if len(errs) > 0 {
		return names, fmt.Errorf("theme: load %s: %s", dir, strings.Join(errs, "; "))
	}
	return names, nil
}

// paletteFields lists a palette's colours under their TOML keys.
func paletteFields(p *Palette) []struct {
	key string
	val *string
} {
	return []struct {
		key string
		val *string
	}{
		{"background", &p.Background},
		{"foreground", &p.Foreground},
		{"dim", &p.Dim},
		{"accent", &p.Accent},
		{"secondary", &p.Secondary},
		{"surface", &p.Surface},
		{"border", &p.Border},
		{"heading", &p.Heading},
		{"link", &p.Link},
		{"caret", &p.Caret},
		{"bar_filled", &p.BarFilled},
		{"bar_empty", &p.BarEmpty},
		{"help_key", &p.HelpKey},
	}
}

// validateTheme checks that the theme is named and every colour of both
// variants is a #RRGGBB hex value.
func validateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}
	for _, v := range []struct {
		name string
		p    Palette
	}{{"light", t.Light}, {"dark", t.Dark}} {
		for _, f := range paletteFields(&v.p) {
			if *f.val == "" {
				return fmt.Errorf("theme: missing required field %q", v.name+"."+f.key)
			}
			if !hexColorRegex.MatchString(*f.val) {
				return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", *f.val, v.name+"."+f.key)
			}
		}
	}
	return nil
}
