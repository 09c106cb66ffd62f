package storage

import "testing"

func TestNewWithoutCredentials(t *testing.T) {
	c, err := New(Config{Endpoint: "https://s3.example.com"})
	if err != nil || c != nil {
		t.Fatalf("New() = %v, %v; want nil, nil", c, err)
	}
	if _, err := New(Config{Endpoint: "https://s3.example.com", AccessKey: "a", SecretKey: "b"}); err == nil {
		t.Error("expected error without bucket")
	}
}

func TestURLAndKey(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantURL string
	}{
		{"path style", Config{Endpoint: "https://s3.example.com/", Bucket: "share"}, "https://s3.example.com/share/og/abc.jpg"},
		{"cdn", Config{Endpoint: "https://s3.example.com", Bucket: "share", PublicURL: "https://cdn.example.com/"}, "https://cdn.example.com/og/abc.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.AccessKey, tt.cfg.SecretKey = "a", "b"
			c, err := New(tt.cfg)
			if err != nil {
				t.Fatal(err)
			}
			u := c.URL("og/abc.jpg")
			if u != tt.wantURL {
				t.Errorf("URL = %q, want %q", u, tt.wantURL)
			}
			if k, ok := c.Key(u); !ok || k != "og/abc.jpg" {
				t.Errorf("Key(%q) = %q, %v", u, k, ok)
			}
			if _, ok := c.Key("https://elsewhere.example.com/og/abc.jpg"); ok {
				t.Error("foreign URL must not match")
			}
		})
	}
}
