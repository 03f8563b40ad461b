package cli

import (
	"bytes"
	"strings"
	"testing"
)

// TestPrompterConfirm verifies yes/no parsing, retries and defaults.
func TestPrompterConfirm(t *testing.T) {
	cases := []struct {
		input      string
		defaultYes bool
		want       bool
		wantErr    bool
	}{
		{input: "\n", defaultYes: true, want: true},
		{input: "", defaultYes: false, want: false},
		{input: "YES\n", want: true},
		{input: "maybe\nn\n", defaultYes: true, want: false},
		{input: "maybe", wantErr: true},
	}
	for _, tc := range cases {
		var out bytes.Buffer
		got, err := newPrompter(strings.NewReader(tc.input), &out).confirm("Continue?", tc.defaultYes)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

// TestPrompterText verifies defaults and CRLF handling.
func TestPrompterText(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("\r\n i18n \r\n"), &out)

	got, err := p.text("Locales directory", "config/locales")
	if err != nil || got != "config/locales" {
		t.Fatalf("expected default, got %q, %v", got, err)
	}
	got, err = p.text("Locales directory", "config/locales")
	if err != nil || got != "i18n" {
		t.Fatalf("expected i18n, got %q, %v", got, err)
	}
	if !strings.Contains(out.String(), "Locales directory [config/locales]: ") {
		t.Fatalf("unexpected prompt %q", out.String())
	}
	if _, err := p.text("Name", ""); err == nil {
		t.Fatalf("expected error at end of input without default")
	}
}
