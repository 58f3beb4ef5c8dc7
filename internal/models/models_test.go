package models

import "testing"

func TestClip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short string unchanged", "Cardio", 49, "Cardio"},
		{"exact length unchanged", "abcde", 5, "abcde"},
		{"ascii truncated", "abcdefgh", 5, "abcde"},
		{"multi-byte rune not split", "cafés", 4, "caf"},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clip(tt.in, tt.max); got != tt.want {
				t.Errorf("Clip(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestMemberSubscribed(t *testing.T) {
	m := Member{ID: 1, CurrentPlanID: NoPlan}
	if m.Subscribed() {
		t.Error("member with NoPlan should not be subscribed")
	}
	m.CurrentPlanID = 3
	if !m.Subscribed() {
		t.Error("member with plan 3 should be subscribed")
	}
}
