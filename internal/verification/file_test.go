package verification

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

type stubTransport struct {
	status int
	body   string
	gotURL string
}

func (st *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	st.gotURL = req.URL.String()
	return &http.Response{
		StatusCode: st.status,
		Body:       io.NopCloser(strings.NewReader(st.body)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func TestFileCheckerCheck(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   bool
	}{
		{"exact match", 200, "tok123", true},
		{"trailing newline", 200, "tok123\n", true},
		{"wrong content", 200, "something-else", false},
		{"not found", 404, "tok123", false},
		{"server error", 500, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &stubTransport{status: tt.status, body: tt.body}
			fc := &FileChecker{client: &http.Client{Transport: st}}

			got, err := fc.Check(context.Background(), "shop.example.com", "tok123")
			if err != nil {
				t.Fatalf("Check() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Check() = %v, want %v", got, tt.want)
			}
			wantURL := "https://shop.example.com/.well-known/domain-verification.txt"
			if st.gotURL != wantURL {
				t.Errorf("fetched %q, want %q", st.gotURL, wantURL)
			}
		})
	}
}
