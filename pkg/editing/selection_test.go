package editing

import "testing"

func TestSelectionBounds(t *testing.T) {
	tests := []struct {
		sel        Selection
		start, end int
		collapsed  bool
	}{
		{Selection{Base: 1, Extent: 4}, 1, 4, false},
		{Selection{Base: 4, Extent: 1}, 1, 4, false},
		{Collapsed(3), 3, 3, true},
	}
	for _, tt := range tests {
		if got := tt.sel.Start(); got != tt.start {
			t.Errorf("%+v.Start() = %d, want %d", tt.sel, got, tt.start)
		}
		if got := tt.sel.End(); got != tt.end {
			t.Errorf("%+v.End() = %d, want %d", tt.sel, got, tt.end)
		}
		if got := tt.sel.Len(); got != tt.end-tt.start {
			t.Errorf("%+v.Len() = %d, want %d", tt.sel, got, tt.end-tt.start)
		}
		if got := tt.sel.IsCollapsed(); got != tt.collapsed {
			t.Errorf("%+v.IsCollapsed() = %v, want %v", tt.sel, got, tt.collapsed)
		}
	}
}

func TestModifiers(t *testing.T) {
	m := ModShift | ModCtrl
	if !m.Has(ModShift) || !m.Has(ModShift|ModCtrl) || m.Has(ModAlt) {
		t.Errorf("Has() wrong for %b", m)
	}
	if !ModMeta.shortcut() || ModShift.shortcut() {
		t.Error("shortcut() should accept Ctrl or Meta only")
	}
	if KeyBackspace.String() != "backspace" || Key(99).String() != "Key(99)" {
		t.Error("unexpected key names")
	}
}
