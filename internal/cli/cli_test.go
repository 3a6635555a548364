package cli

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestParseVars(t *testing.T) {
	vars, err := parseVars([]string{"msg=hello", "term=a=b"})
	if err != nil {
		t.Fatalf("parseVars: %v", err)
	}
	want := map[string]string{"msg": "hello", "term": "a=b"}
	if !reflect.DeepEqual(vars, want) {
		t.Fatalf("parseVars = %v, want %v", vars, want)
	}
}

func TestParseVarsEmpty(t *testing.T) {
	vars, err := parseVars(nil)
	if err != nil {
		t.Fatalf("parseVars: %v", err)
	}
	if vars != nil {
		t.Fatalf("expected nil map, got %v", vars)
	}
}

func TestParseVarsInvalid(t *testing.T) {
	for _, pair := range []string{"novalue", "=empty-name"} {
		if _, err := parseVars([]string{pair}); err == nil {
			t.Fatalf("expected error for %q", pair)
		}
	}
}

func TestFormatTokens(t *testing.T) {
	got := formatTokens([]string{"git", "log", "--since", "1 day ago"})
	want := `git log --since "1 day ago"`
	if got != want {
		t.Fatalf("formatTokens = %q, want %q", got, want)
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := writeTable(&buf, []string{"NAME", "EXIT"}, [][]string{
		{"basic", "0"},
		{"broken", "128"},
	})
	if err != nil {
		t.Fatalf("writeTable: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"NAME", "basic", "128"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}
}
