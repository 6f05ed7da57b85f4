package theme

import (
	"fmt"
	"math"
	"os"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/slimy/pkg/errors"
	"github.com/go-drift/slimy/pkg/graphics"
)

// supportedMajor is the only theme file major version understood here.
const supportedMajor = "v1"

// file mirrors the YAML layout. Absent fields keep the defaults.
type file struct {
	Version     string          `yaml:"version"`
	ProgressBar progressBarFile `yaml:"progress_bar"`
	TextInput   textInputFile   `yaml:"text_input"`
}

type progressBarFile struct {
	Fill   *string  `yaml:"fill"`
	Track  *string  `yaml:"track"`
	Height *float64 `yaml:"height"`
}

type textInputFile struct {
	Text        *string  `yaml:"text"`
	Background  *string  `yaml:"background"`
	Border      *string  `yaml:"border"`
	Focus       *string  `yaml:"focus"`
	Placeholder *string  `yaml:"placeholder"`
	Caret       *string  `yaml:"caret"`
	Selection   *string  `yaml:"selection"`
	Padding     *float64 `yaml:"padding"`
	BlinkMs     *int     `yaml:"blink_ms"`
}

// Load reads and parses a theme file.
func Load(path string) (*ThemeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a YAML theme over the default theme. A missing version is
// read as CurrentVersion. Versions with a major other than v1 are rejected
// with a *errors.WidgetError of kind KindConfig; malformed values yield
// kind KindParsing.
func Parse(data []byte) (*ThemeData, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &errors.WidgetError{Op: "theme.Parse", Kind: errors.KindParsing, Err: err}
	}

	version := f.Version
	if version == "" {
		version = CurrentVersion
	}
	if !semver.IsValid(version) {
		return nil, &errors.WidgetError{
			Op:   "theme.Parse",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("invalid theme version %q", f.Version),
		}
	}
	if semver.Major(version) != supportedMajor {
		return nil, &errors.WidgetError{
			Op:   "theme.Parse",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("unsupported theme version %s (want %s.x.y)", version, supportedMajor),
		}
	}

	t := Default()
	t.Version = version
	d := decoder{}
	d.color("progress_bar.fill", f.ProgressBar.Fill, &t.ProgressBar.Fill)
	d.color("progress_bar.track", f.ProgressBar.Track, &t.ProgressBar.Track)
	d.size("progress_bar.height", f.ProgressBar.Height, &t.ProgressBar.Height)

	ti := &t.TextInput
	d.color("text_input.text", f.TextInput.Text, &ti.Text)
	d.color("text_input.background", f.TextInput.Background, &ti.Background)
	d.color("text_input.border", f.TextInput.Border, &ti.Border)
	d.color("text_input.focus", f.TextInput.Focus, &ti.Focus)
	d.color("text_input.placeholder", f.TextInput.Placeholder, &ti.Placeholder)
	d.color("text_input.caret", f.TextInput.Caret, &ti.Caret)
	d.color("text_input.selection", f.TextInput.Selection, &ti.Selection)
	d.size("text_input.padding", f.TextInput.Padding, &ti.Padding)
	if f.TextInput.BlinkMs != nil {
		if *f.TextInput.BlinkMs < 0 {
			d.fail("text_input.blink_ms", "non-negative integer", *f.TextInput.BlinkMs)
		} else {
			ti.BlinkInterval = time.Duration(*f.TextInput.BlinkMs) * time.Millisecond
		}
	}

	if d.err != nil {
		return nil, &errors.WidgetError{Op: "theme.Parse", Kind: errors.KindParsing, Err: d.err}
	}
	return t, nil
}

// Marshal encodes a theme in the YAML file format.
func Marshal(t *ThemeData) ([]byte, error) {
	version := t.Version
	if version == "" {
		version = CurrentVersion
	}
	hex := func(c graphics.Color) *string {
		s := c.Hex()
		return &s
	}
	ti := t.TextInput
	blink := int(ti.BlinkInterval / time.Millisecond)
	f := file{
		Version: version,
		ProgressBar: progressBarFile{
			Fill:   hex(t.ProgressBar.Fill),
			Track:  hex(t.ProgressBar.Track),
			Height: &t.ProgressBar.Height,
		},
		TextInput: textInputFile{
			Text:        hex(ti.Text),
			Background:  hex(ti.Background),
			Border:      hex(ti.Border),
			Focus:       hex(ti.Focus),
			Placeholder: hex(ti.Placeholder),
			Caret:       hex(ti.Caret),
			Selection:   hex(ti.Selection),
			Padding:     &ti.Padding,
			BlinkMs:     &blink,
		},
	}
	return yaml.Marshal(&f)
}

// decoder keeps the first field error.
type decoder struct {
	err error
}

func (d *decoder) fail(field, dataType string, got any) {
	if d.err == nil {
		d.err = &errors.ParseError{Field: field, DataType: dataType, Got: got}
	}
}

func (d *decoder) color(field string, raw *string, dst *graphics.Color) {
	if raw == nil {
		return
	}
	c, err := graphics.ParseHex(*raw)
	if err != nil {
		d.fail(field, "color", *raw)
		return
	}
	*dst = c
}

func (d *decoder) size(field string, raw *float64, dst *float64) {
	if raw == nil {
		return
	}
	if *raw < 0 || math.IsNaN(*raw) {
		d.fail(field, "non-negative number", *raw)
		return
	}
	*dst = *raw
}
