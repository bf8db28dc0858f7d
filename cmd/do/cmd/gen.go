package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
)

const (
	cssInput  = "assets/css/input.css"
	cssOutput = "assets/css/output.css"
)

type generator struct {
	name   string
	bin    string
	args   []string
	skipFn func() bool
}

func GenCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Run code generators (templ, tailwind) in parallel",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "regenerate even when outputs are up to date")

	return cmd
}

func generators() []generator {
	return []generator{
		{
			name:   "tailwindcss",
			bin:    "tailwindcss",
			args:   []string{"-i", cssInput, "-o", cssOutput, "--minify"},
			skipFn: skipTailwind,
		},
		{
			name:   "templ",
			bin:    "templ",
			args:   []string{"generate"},
			skipFn: skipTempl,
		},
	}
}

func runGen(force bool) error {
	gens := generators()

	var missing []string
	for _, g := range gens {
		if _, err := exec.LookPath(g.bin); err != nil {
			missing = append(missing, g.bin)
		}
	}
	if len(missing) > 0 {
		fmt.Println("Missing binaries:", missing)
		fmt.Println("Install with:")
		fmt.Println("  go install github.com/a-h/templ/cmd/templ@latest")
		fmt.Println("  # tailwindcss: https://tailwindcss.com/blog/standalone-cli")
		return fmt.Errorf("missing required binaries: %v", missing)
	}

	start := time.Now()
	var wg sync.WaitGroup
	errCh := make(chan error, len(gens))

	for _, g := range gens {
		wg.Add(1)
		go func(g generator) {
			defer wg.Done()

			if !force && g.skipFn != nil && g.skipFn() {
				fmt.Printf("[%s] skipped\n", g.name)
				return
			}

			genStart := time.Now()
			cmd := exec.Command(g.bin, g.args...)
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
			if err := cmd.Run(); err != nil {
				errCh <- fmt.Errorf("%s: %w", g.name, err)
				return
			}

			fmt.Printf("[%s] done (%s)\n", g.name, time.Since(genStart).Round(time.Millisecond))
		}(g)
	}

	wg.Wait()
	close(errCh)

	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Println("error:", err)
		}
		return fmt.Errorf("generation failed")
	}

	fmt.Printf("done (%s)\n", time.Since(start).Round(time.Millisecond))
	return nil
}

// skipTailwind reports whether output.css is newer than the stylesheet
// input and every template or script that may mention a class.
func skipTailwind() bool {
	return isUpToDate(cssOutput, tailwindInputs("."))
}

func tailwindInputs(root string) []string {
	inputs := []string{filepath.Join(root, cssInput)}
	_ = filepath.WalkDir(filepath.Join(root, "internal", "ui"), func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".templ") || strings.HasSuffix(path, ".go") {
			inputs = append(inputs, path)
		}
		return nil
	})
	_ = filepath.WalkDir(filepath.Join(root, "internal", "markdown"), func(path string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() && strings.HasSuffix(path, ".go") {
			inputs = append(inputs, path)
		}
		return nil
	})
	jsFiles, _ := filepath.Glob(filepath.Join(root, "assets", "js", "*.js"))
	return append(inputs, jsFiles...)
}

func skipTempl() bool {
	return len(staleTemplates(".")) == 0
}

// staleTemplates lists .templ files whose generated _templ.go is missing or
// older than the template.
func staleTemplates(root string) []string {
	var stale []string
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "public" || name == "tmp") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".templ") {
			return nil
		}
		outFile := strings.TrimSuffix(path, ".templ") + "_templ.go"
		if !isUpToDate(outFile, []string{path}) {
			stale = append(stale, path)
		}
		return nil
	})
	return stale
}

func isUpToDate(output string, inputs []string) bool {
	outInfo, err := os.Stat(output)
	if err != nil {
		return false
	}
	outMod := outInfo.ModTime()

	for _, input := range inputs {
		inInfo, err := os.Stat(input)
		if err != nil {
			continue
		}
		if inInfo.ModTime().After(outMod) {
			return false
		}
	}
	return true
}
