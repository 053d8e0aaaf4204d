package nanogui

import "testing"

func TestIconKind(t *testing.T) {
	tests := []struct {
		name      string
		icon      int
		wantImage bool
	}{
		{"zero", 0, true},
		{"last image ID", 1023, true},
		{"first font ID", 1024, false},
		{"entypo heart", 0x2764, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsImageIcon(tt.icon); got != tt.wantImage {
				t.Errorf("IsImageIcon(%d) = %v, want %v", tt.icon, got, tt.wantImage)
			}
			if got := IsFontIcon(tt.icon); got == tt.wantImage {
				t.Errorf("IsFontIcon(%d) = %v, want %v", tt.icon, got, !tt.wantImage)
			}
		})
	}
}

func TestIconString(t *testing.T) {
	if got := IconString(0x2764); got != "❤" {
		t.Errorf("IconString(0x2764) = %q, want %q", got, "❤")
	}
	if got := IconString(42); got != "" {
		t.Errorf("IconString(42) = %q, want empty for image icon", got)
	}
}
