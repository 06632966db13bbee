package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DEVCONSOLE_CONFIG", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestExec(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"joined arguments", []string{"exec", "add", "1", "2"}, "1 + 2 = 3\n[ok]\n", false},
		{"quoted line", []string{"exec", `log "a b" 2`}, "a b\na b\n[ok]\n", false},
		{"unknown command", []string{"exec", "nope"}, "[error] unknown command 'nope'\n", true},
		{"decode error", []string{"exec", "volume", "bass"}, "[error] invalid value 'bass'", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runRoot(t, "", tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("Execute() output = %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestREPL(t *testing.T) {
	got, err := runRoot(t, "log hi\n\nexit\nlog never\n", "repl")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if want := "$ hi\n[ok]\n$ $ [ok]\n"; got != want {
		t.Errorf("Execute() output = %q, want %q", got, want)
	}
}

func TestCommands(t *testing.T) {
	got, err := runRoot(t, "", "commands")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Commands:", "help", "volume", "Aliases:", "vol", "-> volume"} {
		if !strings.Contains(got, want) {
			t.Errorf("Execute() output = %q, want it to contain %q", got, want)
		}
	}
}

func TestConfig(t *testing.T) {
	got, err := runRoot(t, "", "config", "--format", "toml")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"[console]", `prompt = "$ "`, "[log]"} {
		if !strings.Contains(got, want) {
			t.Errorf("Execute() output = %q, want it to contain %q", got, want)
		}
	}

	if _, err := runRoot(t, "", "config", "--format", "ini"); err == nil {
		t.Errorf("Execute(config --format ini) error = nil, want error")
	}
}
