package theme

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/slimy/pkg/errors"
	"github.com/go-drift/slimy/pkg/graphics"
)

const sampleTheme = `
version: v1.2.0
progress_bar: {fill: "#FF0000", track: "#E0E0E0", height: 8}
text_input:
  text: "#112233"
  focus: "#80007AFF"
  padding: 6
  blink_ms: 500
`

func TestParse(t *testing.T) {
	th, err := Parse([]byte(sampleTheme))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Version != "v1.2.0" {
		t.Errorf("Version = %q, want v1.2.0", th.Version)
	}
	if th.ProgressBar.Fill != graphics.ColorRed {
		t.Errorf("ProgressBar.Fill = %s, want #FFFF0000", th.ProgressBar.Fill.Hex())
	}
	if th.ProgressBar.Height != 8 {
		t.Errorf("ProgressBar.Height = %v, want 8", th.ProgressBar.Height)
	}
	if th.TextInput.Text != graphics.RGB(0x11, 0x22, 0x33) {
		t.Errorf("TextInput.Text = %s", th.TextInput.Text.Hex())
	}
	if th.TextInput.Focus != graphics.RGBA8(0x00, 0x7A, 0xFF, 0x80) {
		t.Errorf("TextInput.Focus = %s", th.TextInput.Focus.Hex())
	}
	if th.TextInput.Padding != 6 {
		t.Errorf("TextInput.Padding = %v, want 6", th.TextInput.Padding)
	}
	if th.TextInput.BlinkInterval != 500*time.Millisecond {
		t.Errorf("TextInput.BlinkInterval = %v, want 500ms", th.TextInput.BlinkInterval)
	}

	// Fields absent from the file keep their defaults.
	def := Default()
	if th.TextInput.Background != def.TextInput.Background {
		t.Errorf("TextInput.Background = %s, want default %s", th.TextInput.Background.Hex(), def.TextInput.Background.Hex())
	}
}

func TestParseEmptyIsDefault(t *testing.T) {
	th, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if *th != *Default() {
		t.Errorf("Parse(nil) = %+v, want defaults", th)
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{"v1.0.0", true},
		{"v1.9.3", true},
		{"v1", true},
		{"v2.0.0", false},
		{"v0.9.0", false},
		{"1.0.0", false},
		{"latest", false},
	}
	for _, tt := range tests {
		_, err := Parse([]byte("version: " + tt.version + "\n"))
		if tt.ok {
			if err != nil {
				t.Errorf("version %s: unexpected error %v", tt.version, err)
			}
			continue
		}
		werr, ok := err.(*errors.WidgetError)
		if !ok {
			t.Errorf("version %s: err = %v, want *errors.WidgetError", tt.version, err)
			continue
		}
		if werr.Kind != errors.KindConfig {
			t.Errorf("version %s: Kind = %v, want %v", tt.version, werr.Kind, errors.KindConfig)
		}
	}
}

func TestParseBadValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{"bad color", "progress_bar: {fill: green}", "progress_bar.fill"},
		{"short color", "text_input: {caret: \"#FFF\"}", "text_input.caret"},
		{"negative padding", "text_input: {padding: -1}", "text_input.padding"},
		{"negative blink", "text_input: {blink_ms: -5}", "text_input.blink_ms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			werr, ok := err.(*errors.WidgetError)
			if !ok {
				t.Fatalf("err = %v, want *errors.WidgetError", err)
			}
			if werr.Kind != errors.KindParsing {
				t.Errorf("Kind = %v, want %v", werr.Kind, errors.KindParsing)
			}
			var perr *errors.ParseError
			if !stderrors.As(err, &perr) {
				t.Fatalf("err = %v, want a wrapped *errors.ParseError", err)
			}
			if perr.Field != tt.field {
				t.Errorf("Field = %q, want %q", perr.Field, tt.field)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("progress_bar: [unclosed"))
	werr, ok := err.(*errors.WidgetError)
	if !ok || werr.Kind != errors.KindParsing {
		t.Errorf("err = %v, want a parsing WidgetError", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Dark())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	th, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v\n%s", err, data)
	}
	if *th != *Dark() {
		t.Errorf("round trip = %+v, want %+v", th, Dark())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(path, []byte("version: v2.0.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	var werr *errors.WidgetError
	if !stderrors.As(err, &werr) || werr.Kind != errors.KindConfig {
		t.Errorf("Load(v2) err = %v, want a config WidgetError", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !stderrors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) err = %v, want os.ErrNotExist", err)
	}
}
