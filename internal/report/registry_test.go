package report

import (
	"strings"
	"testing"
	"time"
)

func TestNewRegistry(t *testing.T) {
	t.Run("with nil timezone uses default", func(t *testing.T) {
		r := NewRegistry(nil, "")

		if r == nil {
			t.Fatal("expected non-nil registry")
		}
		if len(r.writers) != 4 {
			t.Errorf("expected 4 writers, got %d", len(r.writers))
		}
		for _, format := range []string{"lis", "excel", "html", "yaml"} {
			if _, ok := r.writers[format]; !ok {
				t.Errorf("expected %s writer to be registered", format)
			}
		}
	})

	t.Run("with custom timezone", func(t *testing.T) {
		r := NewRegistry(time.FixedZone("CET", 3600), "")
		if len(r.writers) != 4 {
			t.Errorf("expected 4 writers, got %d", len(r.writers))
		}
	})

	t.Run("with custom template path", func(t *testing.T) {
		r := NewRegistry(nil, "/custom/template.html")

		htmlWriter, ok := r.writers["html"]
		if !ok {
			t.Fatal("expected html writer to be registered")
		}
		if htmlWriter.Format() != "html" {
			t.Errorf("expected html format, got %s", htmlWriter.Format())
		}
	})
}

func TestRegistry_Get_Lis(t *testing.T) {
	r := NewRegistry(nil, "")

	writer, err := r.Get("lis")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if writer.Format() != "lis" {
		t.Errorf("expected format 'lis', got %q", writer.Format())
	}
}

func TestRegistry_Get_Unknown(t *testing.T) {
	r := NewRegistry(nil, "")

	writer, err := r.Get("pdf")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if writer != nil {
		t.Error("expected nil writer for unknown format")
	}
	if !strings.Contains(err.Error(), "pdf") {
		t.Errorf("error message should mention the unsupported format 'pdf': %v", err)
	}
	if !strings.Contains(err.Error(), "excel, html, lis, yaml") {
		t.Errorf("error message should list supported formats: %v", err)
	}
}

func TestRegistry_Get_CaseInsensitive(t *testing.T) {
	r := NewRegistry(nil, "")

	testCases := []struct {
		input    string
		expected string
	}{
		{"lis", "lis"},
		{"LIS", "lis"},
		{"Excel", "excel"},
		{"HTML", "html"},
		{" yaml ", "yaml"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			writer, err := r.Get(tc.input)
			if err != nil {
				t.Fatalf("unexpected error for input %q: %v", tc.input, err)
			}
			if writer.Format() != tc.expected {
				t.Errorf("expected format %q, got %q", tc.expected, writer.Format())
			}
		})
	}
}

func TestRegistry_GetAll(t *testing.T) {
	r := NewRegistry(nil, "")

	formats := r.GetAll()
	expected := []string{"excel", "html", "lis", "yaml"}
	if len(formats) != len(expected) {
		t.Fatalf("expected %d formats, got %d", len(expected), len(formats))
	}
	for i, format := range expected {
		if formats[i] != format {
			t.Errorf("expected formats[%d] = %q, got %q", i, format, formats[i])
		}
	}
}

func TestRegistry_GetLookup(t *testing.T) {
	r := NewRegistry(nil, "")

	testCases := []struct {
		format   string
		expected bool
	}{
		{"lis", true},
		{"excel", true},
		{"yaml", true},
		{"pdf", false},
		{"HTML", true},
		{"", false},
		{"   ", false},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			_, err := r.Get(tc.format)
			if got := err == nil; got != tc.expected {
				t.Errorf("Get(%q) found = %v, expected %v (err: %v)", tc.format, got, tc.expected, err)
			}
		})
	}
}
