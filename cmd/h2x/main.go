package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kilianc/h2x/internal/h2x/outfile"
	"github.com/kilianc/h2x/pkg/h2x"
)

var rootCmd = &cobra.Command{
	Use:   "h2x [flags] [paths...]",
	Short: "Convert HTML fragments to JSX",
	Long: `h2x converts HTML fragment files into JSX files.

Each *.html source produces a sibling file with the configured output
extension (default .jsx). Pass "-" as the only path to read from stdin
and write to stdout.

Paths behave like Go patterns:
  - ./...        recurse from cwd
  - ./dir        only that directory (non-recursive)
  - ./dir/...    recurse from that directory
  - ./file.html  only that file`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	cobra.OnInitialize(initConfig)
	initFlags()
}

func initFlags() {
	rootCmd.Flags().String("indent", "", "indent unit for the emitted JSX (default two spaces)")
	rootCmd.Flags().String("ext", "", "output file extension (default .jsx)")
	rootCmd.Flags().Bool("stdout", false, "write converted output to stdout instead of sibling files")
	_ = viper.BindPFlag("indent", rootCmd.Flags().Lookup("indent"))
	_ = viper.BindPFlag("ext", rootCmd.Flags().Lookup("ext"))

	viper.SetDefault("indent", "  ")
	viper.SetDefault("ext", ".jsx")
}

// initConfig reads an optional .h2x.yaml from the working directory and
// H2X_* environment variables. Absent config leaves the defaults untouched.
func initConfig() {
	viper.SetConfigName(".h2x")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("h2x")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fatal(err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func run(cmd *cobra.Command, args []string) error {
	opts := h2x.Options{Indent: viper.GetString("indent")}

	if len(args) == 1 && args[0] == "-" {
		return convertStream(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	patterns := args
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	paths, err := collectHTMLPaths(cwd, patterns)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return nil
	}
	sort.Strings(paths)

	toStdout, _ := cmd.Flags().GetBool("stdout")
	ext := viper.GetString("ext")

	var allErr error
	for _, pth := range paths {
		if err := convertFile(cmd.OutOrStdout(), pth, ext, opts, toStdout); err != nil {
			allErr = errors.Join(allErr, err)
		}
	}
	return allErr
}

func convertStream(in io.Reader, out io.Writer, opts h2x.Options) error {
	src, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	jsx, err := h2x.ConvertStringOptions(string(src), opts)
	if err != nil {
		return err
	}
	if jsx != "" {
		_, err = fmt.Fprintln(out, jsx)
	}
	return err
}

func convertFile(out io.Writer, pth, ext string, opts h2x.Options, toStdout bool) error {
	b, err := os.ReadFile(pth)
	if err != nil {
		return err
	}
	jsx, err := h2x.ConvertStringOptions(string(b), opts)
	if err != nil {
		return fmt.Errorf("%s: %w", pth, err)
	}
	if toStdout {
		if jsx != "" {
			_, err = fmt.Fprintln(out, jsx)
		}
		return err
	}
	outPath := strings.TrimSuffix(pth, filepath.Ext(pth)) + ext
	if jsx != "" {
		jsx += "\n"
	}
	return outfile.WriteConvertedFile(outPath, []byte(jsx))
}

func collectHTMLPaths(cwd string, patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var out []string

	add := func(p string) error {
		abs := p
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(cwd, abs)
		}
		abs, err := filepath.Abs(abs)
		if err != nil {
			return err
		}
		if !seen[abs] {
			seen[abs] = true
			out = append(out, abs)
		}
		return nil
	}

	for _, raw := range patterns {
		pat := strings.TrimSpace(raw)
		if pat == "" {
			continue
		}

		// Recursive pattern: <dir>/...
		if strings.HasSuffix(pat, "/...") || pat == "./..." || pat == "..." {
			base := strings.TrimSuffix(pat, "...")
			base = strings.TrimSuffix(base, "/")
			if base == "" {
				base = "."
			}
			dir := base
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(cwd, dir)
			}
			dir, err := filepath.Abs(dir)
			if err != nil {
				return nil, err
			}
			if err := walkHTML(dir, func(p string) error { return add(p) }); err != nil {
				return nil, err
			}
			continue
		}

		// Non-recursive: file.html or directory.
		target := pat
		if !filepath.IsAbs(target) {
			target = filepath.Join(cwd, target)
		}
		target, err := filepath.Abs(target)
		if err != nil {
			return nil, err
		}
		st, err := os.Stat(target)
		if err != nil {
			return nil, err
		}
		if st.IsDir() {
			entries, err := os.ReadDir(target)
			if err != nil {
				return nil, err
			}
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				if strings.HasSuffix(e.Name(), ".html") {
					if err := add(filepath.Join(target, e.Name())); err != nil {
						return nil, err
					}
				}
			}
			continue
		}
		if !strings.HasSuffix(target, ".html") {
			return nil, fmt.Errorf("h2x: not a .html file: %s", target)
		}
		if err := add(target); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func walkHTML(root string, add func(string) error) error {
	return filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			name := de.Name()
			if name == "vendor" || name == "node_modules" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(de.Name(), ".html") {
			return add(path)
		}
		return nil
	})
}
