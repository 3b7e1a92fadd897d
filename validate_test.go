package rfc3986_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/sigmavirus24/rfc3986"
	"github.com/sigmavirus24/rfc3986/internal/util"
)

func TestURI_ValidateScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"alphabetic scheme", "https://google.com/", nil},
		{"upper case scheme", "HTTPS://google.com/", nil},
		{"no scheme", "google.com/", nil},
		{"empty input", "", nil},
		{"digit in scheme", "h0tps://github.com", rfc3986.ErrInvalidSchemeChar},
		{"plus in scheme", "https+git://github.com/rust-lang/rust", rfc3986.ErrInvalidSchemeChar},
		{"dash in scheme", "web-socket://example.com", rfc3986.ErrInvalidSchemeChar},
		{"dot in scheme", "a.b://example.com", rfc3986.ErrInvalidSchemeChar},
		{"non-ASCII scheme", "httpé://example.com", rfc3986.ErrInvalidSchemeChar},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u := util.Must(rfc3986.Parse(c.input))
			got, err := u.ValidateScheme()
			if c.wantErr == nil {
				if err != nil {
					t.Fatalf("uri.ValidateScheme() error = %v, want nil", err)
				}
				if got != u {
					t.Errorf("uri.ValidateScheme() = %v, want the receiver %v", got, u)
				}
			} else {
				if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
					t.Errorf("uri.ValidateScheme() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
				}
				if got != nil {
					t.Errorf("uri.ValidateScheme() = %v, want nil", got)
				}
				if rfc3986.IsSyntaxErr(err) {
					t.Errorf("rfc3986.IsSyntaxErr(%v) = true, want false", err)
				}
			}
		})
	}
}

func TestURI_ValidateSchemeOneOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		allowed []string
		wantErr error
	}{
		{"allowed scheme", "https://github.com", []string{"https", "http", "git"}, nil},
		{"no scheme", "github.com/sigmavirus24", []string{"https"}, nil},
		{"disallowed scheme", "https+git://github.com/rust-lang/rust", []string{"https", "http", "git"}, rfc3986.ErrSchemeNotAllowed},
		{"case-sensitive match", "HTTPS://github.com", []string{"https"}, rfc3986.ErrSchemeNotAllowed},
		{"empty allow-list", "https://github.com", nil, rfc3986.ErrSchemeNotAllowed},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u := util.Must(rfc3986.Parse(c.input))
			got, err := u.ValidateSchemeOneOf(c.allowed...)
			if c.wantErr == nil {
				if err != nil {
					t.Fatalf("uri.ValidateSchemeOneOf(%q) error = %v, want nil", c.allowed, err)
				}
				if got != u {
					t.Errorf("uri.ValidateSchemeOneOf(%q) = %v, want the receiver %v", c.allowed, got, u)
				}
			} else if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.ValidateSchemeOneOf(%q) error = %v, want %v\ndiff (-got +want):\n%v",
					c.allowed, err, c.wantErr, diff,
				)
			}
		})
	}
}

func TestURI_ValidateChaining(t *testing.T) {
	t.Parallel()

	u := util.Must(rfc3986.Parse("https://example.com/index.html"))

	v, err := u.ValidateScheme()
	if err != nil {
		t.Fatalf("uri.ValidateScheme() error = %v, want nil", err)
	}
	v, err = v.ValidateSchemeOneOf("https", "http")
	if err != nil {
		t.Fatalf("uri.ValidateSchemeOneOf() error = %v, want nil", err)
	}
	if v != u {
		t.Errorf("chained validation = %v, want the receiver %v", v, u)
	}
}
