package models

import "testing"

func TestGenresRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		genres []string
	}{
		{"single", []string{"Jazz"}},
		{"several", []string{"Jazz", "Classical", "Folk"}},
		{"hyphenated and ampersand", []string{"Hip-Hop", "R&B", "Rock n Roll"}},
		{"empty", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitGenres(JoinGenres(tt.genres))
			if len(got) != len(tt.genres) {
				t.Fatalf("round trip returned %d genres, want %d", len(got), len(tt.genres))
			}
			want := map[string]bool{}
			for _, g := range tt.genres {
				want[g] = true
			}
			for _, g := range got {
				if !want[g] {
					t.Errorf("unexpected genre %q after round trip", g)
				}
			}
		})
	}
}

func TestSplitGenresEmptyString(t *testing.T) {
	if got := SplitGenres(""); len(got) != 0 {
		t.Errorf("SplitGenres(\"\") = %v, want empty", got)
	}
}
