package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slam0615/sc2026/internal/answers"
	"github.com/slam0615/sc2026/internal/basicinfo"
	"github.com/slam0615/sc2026/internal/catalog"
	"github.com/slam0615/sc2026/internal/render"
	"github.com/slam0615/sc2026/internal/review"
	"github.com/slam0615/sc2026/internal/submission"
	"github.com/slam0615/sc2026/internal/ui"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// scoreFlags holds the parsed flags for the score command.
type scoreFlags struct {
	format      string
	out         string
	catalogPath string
	verbose     bool
}

func main() {
	root := &cobra.Command{
		Use:   "healthscore",
		Short: "職場健康促進表現計分表",
		Long:  "Healthscore runs the workplace health promotion scorecard: a five-part yes/no questionnaire with weighted scoring and a banded evaluation.",
	}

	var runCatalogPath string
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start an interactive questionnaire session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(runCatalogPath)
		},
	}
	runCmd.Flags().StringVar(&runCatalogPath, "catalog", "", "Reference data override file (YAML)")

	var flags scoreFlags
	scoreCmd := &cobra.Command{
		Use:   "score <submission-file>",
		Short: "Validate and score a submission file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(args[0], flags)
		},
	}
	f := scoreCmd.Flags()
	f.StringVar(&flags.format, "format", "json", "Output format: json, md, or html")
	f.StringVar(&flags.out, "out", "", "Write output to file instead of stdout")
	f.StringVar(&flags.catalogPath, "catalog", "", "Reference data override file (YAML)")
	f.BoolVar(&flags.verbose, "verbose", false, "Print processing steps to stderr")

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect or verify reference data",
	}
	var showFormat string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the built-in question catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogShow(showFormat)
		},
	}
	showCmd.Flags().StringVar(&showFormat, "format", "md", "Output format: json or md")
	verifyCmd := &cobra.Command{
		Use:   "verify <catalog-file>",
		Short: "Verify a reference data file's invariants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogVerify(args[0])
		},
	}
	catalogCmd.AddCommand(showCmd, verifyCmd)

	root.AddCommand(runCmd, scoreCmd, catalogCmd)

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		// cobra already printed the error
		os.Exit(1)
	}
}

// loadCatalog returns the built-in reference data, or the verified override
// file when a path is given.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

func runInteractive(catalogPath string) error {
	cat, err := loadCatalog(catalogPath)
	if err != nil {
		return codeError(3, "loading reference data: %s", err)
	}
	if err := ui.Run(os.Stdin, os.Stdout, cat, version); err != nil {
		return codeError(1, "session error: %s", err)
	}
	return nil
}

func runScore(subPath string, flags scoreFlags) error {
	if err := validateScoreFlags(flags); err != nil {
		return codeError(3, "invalid flags: %s", err)
	}

	cat, err := loadCatalog(flags.catalogPath)
	if err != nil {
		return codeError(3, "loading reference data: %s", err)
	}

	logVerbose(flags.verbose, "Loading submission: %s", subPath)
	sub, err := submission.Load(subPath)
	if err != nil {
		return codeError(3, "loading submission: %s", err)
	}

	info := basicinfo.New()
	ans := answers.New()
	if err := sub.Populate(info, ans); err != nil {
		return codeError(3, "applying submission: %s", err)
	}

	if in := review.Validate(info, ans, cat); in != nil {
		return codeError(2, "%s：%s", in.Title(), in.Message())
	}

	logVerbose(flags.verbose, "Scoring %d answered question(s)", ans.Answered())
	report := review.Build(info, ans, cat, version)

	renderer, err := render.NewRenderer(flags.format)
	if err != nil {
		return codeError(3, "invalid format: %s", err)
	}
	outputBytes, err := renderer.Render(report)
	if err != nil {
		return codeError(3, "rendering output: %s", err)
	}

	return writeOutput(flags.out, outputBytes)
}

func runCatalogShow(format string) error {
	cat := catalog.Default()
	switch format {
	case "json":
		out, err := json.MarshalIndent(cat, "", "  ")
		if err != nil {
			return codeError(3, "rendering catalog: %s", err)
		}
		return writeOutput("", out)
	case "md":
		return writeOutput("", []byte(formatCatalogMarkdown(cat)))
	default:
		return codeError(3, "--format must be json or md, got %q", format)
	}
}

func runCatalogVerify(path string) error {
	if _, err := catalog.Load(path); err != nil {
		return codeError(1, "%s", err)
	}
	fmt.Println("OK")
	return nil
}

// formatCatalogMarkdown lists the parts and questions in catalog order.
func formatCatalogMarkdown(cat *catalog.Catalog) string {
	var sb strings.Builder
	sb.WriteString("# 職場健康促進表現計分表\n")
	for _, part := range cat.Parts {
		sb.WriteString(fmt.Sprintf("\n## %s（%d 分）\n\n", part.Title, part.Points))
		for _, q := range cat.PartQuestions(part.ID) {
			sb.WriteString(fmt.Sprintf("%d. %s（配分 %d）\n", q.ID, q.Text, q.Points))
			if q.Note != "" {
				sb.WriteString(fmt.Sprintf("   ※ %s\n", q.Note))
			}
		}
	}
	return sb.String()
}

// writeOutput writes to the given file, or to stdout with a trailing newline.
func writeOutput(path string, data []byte) error {
	if path != "" {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return codeError(3, "writing output file: %s", err)
		}
		return nil
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return codeError(3, "writing output: %s", err)
	}
	// Ensure output ends with a newline for terminal friendliness.
	if len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

// validateScoreFlags returns an error if any flag value is invalid.
func validateScoreFlags(flags scoreFlags) error {
	switch flags.format {
	case "json", "md", "html":
	default:
		return fmt.Errorf("--format must be json, md, or html, got %q", flags.format)
	}
	return nil
}

// logVerbose writes a message to stderr when verbose mode is enabled.
func logVerbose(verbose bool, format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "INFO: "+format+"\n", args...)
	}
}
