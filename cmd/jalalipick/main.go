package main

import (
	"fmt"
	"os"
	"strings"

	"jalali-picker/internal/cli"
	"jalali-picker/internal/numeral"
)

func isYear(s string) bool {
	_, err := numeral.Parse(s)
	return err == nil && strings.TrimSpace(s) != ""
}

// rewriteBareYearArgs turns `jalalipick 1403` into `jalalipick leap 1403`.
//
// Cobra treats the first non-flag token as a subcommand, so argv is rewritten
// before parsing. Persistent flags may come first, so the first positional
// token is searched for rather than taking argv[1].
func rewriteBareYearArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--config-dir": true,
		"--format":     true,
		"--log-level":  true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isYear(argv[i+1]) {
				return insertAt(argv, i+1, "leap")
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}
		if isYear(a) {
			return insertAt(argv, i, "leap")
		}
		return argv
	}
	return argv
}

func insertAt(argv []string, i int, tokens ...string) []string {
	out := make([]string, 0, len(argv)+len(tokens))
	out = append(out, argv[:i]...)
	out = append(out, tokens...)
	out = append(out, argv[i:]...)
	return out
}

func main() {
	os.Args = rewriteBareYearArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		if !cli.Reported(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
