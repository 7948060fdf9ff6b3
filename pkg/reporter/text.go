package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/nblint/internal/ui/pretty"
	"github.com/yaklabco/nblint/pkg/runner"
)

// englishPlural returns singular for 1, plural otherwise.
func englishPlural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// TextReporter formats results as styled terminal output, one line per
// finding:
//
//	<display name> <Cell: pos> <message> [<rule name>]
//
// Documents with zero findings get a single success line, suppressed in
// quiet mode.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var total int
	for _, doc := range result.Documents {
		name := displayPath(doc.Path, r.opts.WorkingDir)

		if doc.Err != nil {
			fmt.Fprintf(r.bw, "%s %s\n",
				r.styles.FilePath.Render(name),
				r.styles.Error.Render(fmt.Sprintf("error: %v", doc.Err)),
			)
			continue
		}

		if !doc.Failed() {
			if !r.opts.Quiet {
				fmt.Fprintf(r.bw, "%s %s\n", r.styles.FilePath.Render(name), r.styles.Success.Render("✓"))
			}
			continue
		}

		for _, ruleResult := range doc.Results {
			for _, finding := range ruleResult.Findings {
				fmt.Fprintf(r.bw, "%s %s %s %s\n",
					r.styles.FilePath.Render(name),
					r.styles.Location.Render(fmt.Sprintf("<Cell: %d>", finding.Pos)),
					finding.Message,
					r.styles.RuleName.Render(fmt.Sprintf("[%s]", ruleResult.RuleName)),
				)
				total++
			}
		}
	}

	// A trailing summary helps at an interactive terminal but would get
	// in the way of line-oriented consumers, so piped output skips it.
	if total > 0 && pretty.IsInteractive(r.opts.Writer) {
		fmt.Fprintf(r.bw, "%s\n", r.styles.Dim.Render(fmt.Sprintf(
			"%d %s in %d %s",
			total, englishPlural(total, "finding", "findings"),
			result.Stats.FilesWithFindings,
			englishPlural(result.Stats.FilesWithFindings, "notebook", "notebooks"),
		)))
	}

	return total, nil
}
