package onnxcommon_test

import (
	"os"
	"os/exec"
	"testing"
)

// TestBuildWithCGODisabled ensures the module and its CLI build with CGO disabled. The ONNX
// codec is pure Go and must stay that way.
func TestBuildWithCGODisabled(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping build check in short mode")
	}
	modRoot, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	cmd := exec.Command("go", "build", "-o", os.DevNull, "./cmd/onnxcommon")
	cmd.Dir = modRoot
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("build failed with CGO disabled: %v\n%s", err, out)
	}
}
