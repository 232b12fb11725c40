package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestDumpVarDeclaration(t *testing.T) {
	var buf bytes.Buffer
	if err := dump([]byte("var x = 0x1F;"), false, &buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "keyword") || !strings.Contains(lines[0], "var") {
		t.Errorf("first line = %q, want it to describe the var keyword", lines[0])
	}
	if !strings.Contains(lines[3], "31") {
		t.Errorf("fourth line = %q, want it to show the decoded SmallInt value 31", lines[3])
	}
}

func TestDumpPropagatesLexError(t *testing.T) {
	var buf bytes.Buffer
	err := dump([]byte("\"unterminated"), false, &buf)
	if err == nil {
		t.Fatal("expected an error for an unterminated string")
	}
}
