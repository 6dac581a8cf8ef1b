package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildCommand compiles ./cmd/<name> into a temporary directory and
// returns the binary path. go test runs with the package directory as
// working directory, so the build runs from the module root two levels up.
func buildCommand(t *testing.T, name string) string {
	t.Helper()
	binName := name
	if runtime.GOOS == "windows" {
		binName += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/"+name)
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build %s: %v", name, err)
	}
	return binPath
}

type e2eCase struct {
	name       string
	args       []string
	stdin      string
	wantStdout string // exact match unless empty
	wantStderr string // substring match unless empty
	wantCode   int
}

func runCases(t *testing.T, binPath string, tests []e2eCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			cmd.Stdin = strings.NewReader(tt.stdin)
			var stdout, stderr strings.Builder
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr

			err := cmd.Run()
			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("failed to run %s: %v", binPath, err)
			}

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nstderr: %s", code, tt.wantCode, stderr.String())
			}
			if tt.wantStdout != "" && stdout.String() != tt.wantStdout {
				t.Errorf("stdout mismatch.\nwant: %q\ngot:  %q", tt.wantStdout, stdout.String())
			}
			if tt.wantStderr != "" && !strings.Contains(strings.ToLower(stderr.String()), strings.ToLower(tt.wantStderr)) {
				t.Errorf("stderr missing %q, got:\n%s", tt.wantStderr, stderr.String())
			}
		})
	}
}

func TestFibonacci_E2E(t *testing.T) {
	bin := buildCommand(t, "fibonacci")
	runCases(t, bin, []e2eCase{
		{
			name:       "basic",
			stdin:      "10\n",
			wantStdout: "Please input n.\n10-th fibonacci number is 55.\n",
		},
		{
			name:       "invalid then valid",
			stdin:      "abc\n20\n",
			wantStdout: "Please input n.\nHey, input a number!\n20-th fibonacci number is 6765.\n",
		},
		{
			name:       "iterative largest term",
			args:       []string{"-algo", "iterative"},
			stdin:      "93\n",
			wantStdout: "Please input n.\n93-th fibonacci number is 12200160415121876738.\n",
		},
		{
			name:       "overflow",
			stdin:      "94\n",
			wantStderr: "overflows",
			wantCode:   5,
		},
		{
			name:     "closed input",
			stdin:    "",
			wantCode: 3,
		},
		{
			name:       "timeout",
			args:       []string{"-timeout", "50ms"},
			stdin:      "90\n",
			wantStderr: "timed out",
			wantCode:   2,
		},
		{
			name:       "unknown flag",
			args:       []string{"-n", "10"},
			wantStderr: "flag provided but not defined",
			wantCode:   4,
		},
		{
			name:       "help",
			args:       []string{"-help"},
			wantStderr: "usage",
		},
	})
}

func TestTempConv_E2E(t *testing.T) {
	bin := buildCommand(t, "tempconv")
	runCases(t, bin, []e2eCase{
		{
			name:  "basic",
			stdin: "32\n100\n",
			wantStdout: "Please input fahrenheit temperature.\n32[°F] is 0 [°C].\n" +
				"Please input celsius temperature.\n100[°C] is 212 [°F].\n",
		},
		{
			name:  "fractions and retries",
			stdin: "ninety\n212\n37.5\n",
			wantStdout: "Please input fahrenheit temperature.\nHey, input a number!\n212[°F] is 100 [°C].\n" +
				"Please input celsius temperature.\n37.5[°C] is 99.5 [°F].\n",
		},
		{
			name:       "metrics",
			args:       []string{"-metrics"},
			stdin:      "0\n0\n",
			wantStderr: "primer_calculations_total",
		},
	})
}

func TestTwelveDays_E2E(t *testing.T) {
	bin := buildCommand(t, "twelvedays")

	cmd := exec.Command(bin)
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	output, err := cmd.Output()
	if err != nil {
		t.Fatalf("twelvedays failed: %v", err)
	}

	text := string(output)
	if !strings.HasPrefix(text, "On the first day of Christmas\nMy true love sent to me:\nA partridge in a pear tree\n\n") {
		t.Errorf("unexpected opening:\n%s", text)
	}
	if !strings.HasSuffix(text, "Two turtle doves and\nA partridge in a pear tree\n\n") {
		t.Errorf("unexpected ending:\n%s", text)
	}
	if n := strings.Count(text, "day of Christmas"); n != 12 {
		t.Errorf("found %d stanza headers, want 12", n)
	}

	version, err := exec.Command(bin, "-version").Output()
	if err != nil || !strings.HasPrefix(string(version), "twelvedays ") {
		t.Errorf("-version output %q, err %v", version, err)
	}
}
