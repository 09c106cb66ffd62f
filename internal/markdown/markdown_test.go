package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		notWant []string
	}{
		{
			name:  "emphasis",
			input: "Sevdiğine **özel** bir mesaj",
			want:  []string{"<strong>özel</strong>"},
		},
		{
			name:    "script removed",
			input:   "Merhaba <script>alert(1)</script>",
			notWant: []string{"<script", "alert(1)"},
		},
		{
			name:    "event handler removed",
			input:   `<a href="https://example.com" onclick="x()">link</a>`,
			notWant: []string{"onclick"},
		},
		{
			name:  "links get nofollow",
			input: "[site](https://birmesajmutluluk.com)",
			want:  []string{`rel="nofollow`},
		},
		{
			name:  "hard wraps",
			input: "satır bir\nsatır iki",
			want:  []string{"<br"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.input)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("ToHTML(%q) = %q, want it to contain %q", tt.input, got, w)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(got, nw) {
					t.Errorf("ToHTML(%q) = %q, must not contain %q", tt.input, got, nw)
				}
			}
		})
	}
}

func TestStripTags(t *testing.T) {
	got := StripTags("<b>Harika</b> şablon <img src=x onerror=y>")
	if strings.Contains(got, "<") {
		t.Errorf("StripTags left markup: %q", got)
	}
	if !strings.Contains(got, "Harika") {
		t.Errorf("StripTags dropped text: %q", got)
	}
}
