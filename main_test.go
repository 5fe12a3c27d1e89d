package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun_PlaysAndReturnsZero(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-seed", "3", "-ticks", "30", "-color=false"}, &out, &errOut)
	if code != 0 {
		t.Fatalf("run() = %d, want 0 (stderr: %s)", code, errOut.String())
	}
	if !strings.HasPrefix(out.String(), "seed 3\n") {
		t.Errorf("output starts %q, want the session seed first", firstLine(out.String()))
	}
	if !strings.Contains(out.String(), "tier 1/2") {
		t.Error("output has no summary line for tier 1/2")
	}
}

func TestRun_BuildFailureReturnsOne(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-width", "32", "-height", "32", "-color=false"}, &out, &errOut); code != 1 {
		t.Errorf("run() on a 64x64 area = %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "Error building game") {
		t.Errorf("stderr = %q, want the build error", errOut.String())
	}
}

func TestRun_BadFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-no-such-flag"}, &out, &errOut); code != 2 {
		t.Errorf("run() with an unknown flag = %d, want 2", code)
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
