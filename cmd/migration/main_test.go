package main

import "testing"

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("expected default of 1 step, got=%d err=%v", got, err)
	}
	if got, err := parseSteps([]string{" 3 "}); err != nil || got != 3 {
		t.Fatalf("expected 3 steps, got=%d err=%v", got, err)
	}
	if _, err := parseSteps([]string{"0"}); err == nil {
		t.Fatalf("expected error for zero steps")
	}
	if _, err := parseSteps([]string{"abc"}); err == nil {
		t.Fatalf("expected error for non numeric steps")
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if got, err := parseVersion("1771900000"); err != nil || got != 1771900000 {
		t.Fatalf("unexpected version: %d %v", got, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if got, err := parseTarget("42"); err != nil || got != 42 {
		t.Fatalf("unexpected target: %d %v", got, err)
	}
	if _, err := parseTarget("-2"); err == nil {
		t.Fatalf("expected error for negative target")
	}
}

func TestEnvBool(t *testing.T) {
	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "Yes")
	if !envBool("DB_DISABLE_PREPARED_BINARY_RESULT") {
		t.Fatalf("expected yes to parse as true")
	}
	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "off")
	if envBool("DB_DISABLE_PREPARED_BINARY_RESULT") {
		t.Fatalf("expected off to parse as false")
	}
}
