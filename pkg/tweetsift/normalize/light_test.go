package normalize

import "testing"

func TestLight(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips url mention and RT marker",
			in:   "RT @alice check https://example.com/x now",
			want: "check now",
		},
		{
			name: "unescapes html entities",
			in:   "law &amp; order",
			want: "law & order",
		},
		{
			name: "collapses whitespace and trims",
			in:   "  spaced   out\ttext \n",
			want: "spaced out text",
		},
		{
			name: "RT inside a word survives",
			in:   "heaRTfelt support",
			want: "heaRTfelt support",
		},
		{
			name: "www link",
			in:   "see www.example.org today",
			want: "see today",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Light([]string{tt.in})
			if got[0] != tt.want {
				t.Errorf("Light(%q) = %q, want %q", tt.in, got[0], tt.want)
			}
		})
	}
}

func TestLightPreservesOrderAndLength(t *testing.T) {
	in := []string{"one", "two @x", "three"}
	got := Light(in)
	if len(got) != 3 {
		t.Fatalf("outputs = %d, want 3", len(got))
	}
	if got[0] != "one" || got[1] != "two" || got[2] != "three" {
		t.Errorf("got %v", got)
	}
}
