package validation

import (
	"testing"

	"habitix/internal/models"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "plain value", value: "Read", want: true},
		{name: "empty", value: "", want: false},
		{name: "whitespace only", value: "   \t", want: false},
		{name: "padded value", value: "  Read  ", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Required(tt.value); got != tt.want {
				t.Errorf("Required(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestRequiredField(t *testing.T) {
	check := RequiredField("habit name")
	if err := check(""); err == nil {
		t.Error("RequiredField() expected error for empty value")
	}
	if err := check("Meditate"); err != nil {
		t.Errorf("RequiredField() unexpected error: %v", err)
	}
}

func TestDate(t *testing.T) {
	if err := Date("2025-06-15"); err != nil {
		t.Errorf("Date() unexpected error: %v", err)
	}
	for _, bad := range []string{"2025-6-15", "15/06/2025", "yesterday", ""} {
		if err := Date(bad); err == nil {
			t.Errorf("Date(%q) expected error", bad)
		}
	}
}

func TestColorToken(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"#3b82f6", true},
		{"#fff", true},
		{"#ABC123", true},
		{"3b82f6", false},
		{"#3b82f", false},
		{"#3b82fg", false},
		{"blue", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ColorToken(tt.value); got != tt.want {
			t.Errorf("ColorToken(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestMood(t *testing.T) {
	if got := Mood("excited"); got != models.MoodExcited {
		t.Errorf("Mood(excited) = %s", got)
	}
	if got := Mood("grumpy"); got != models.MoodNeutral {
		t.Errorf("Mood(grumpy) = %s, want neutral fallback", got)
	}
	if got := Mood(""); got != models.MoodNeutral {
		t.Errorf("Mood(\"\") = %s, want neutral fallback", got)
	}
}

func TestTheme(t *testing.T) {
	if err := Theme("dark"); err != nil {
		t.Errorf("Theme(dark) unexpected error: %v", err)
	}
	if err := Theme("light"); err != nil {
		t.Errorf("Theme(light) unexpected error: %v", err)
	}
	if err := Theme("solarized"); err == nil {
		t.Error("Theme(solarized) expected error")
	}
}
