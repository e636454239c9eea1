package reporter

import (
	"fmt"
	"strings"

	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/pkg/global"
	"github.com/google/uuid"
)

// Marker returns the hidden tag identifying report comments of repository
// with the given title. It is stable across runs.
func Marker(repository, title string) string {
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(repository+"#"+title))
	return fmt.Sprintf(global.CommentMarkerFormat, id.String())
}

// Body renders the comment posted for report.
func Body(runCtx *core.RunContext, report *core.CoverageReport) string {
	heading := global.ReportHeading
	if title := strings.TrimSpace(report.Title); title != "" {
		heading = title
	}

	var b strings.Builder
	fmt.Fprintf(&b, "### %s of commit [<code>%s</code>](%s) during [%s #%d](%s)\n",
		heading,
		runCtx.ShortSHA(global.ShortSHALength),
		runCtx.CommitURL(),
		runCtx.Workflow,
		runCtx.RunNumber,
		runCtx.RunURL())
	fmt.Fprintf(&b, "<pre>%s</pre>\n", report.Summary)
	fmt.Fprintf(&b, "<details><summary>Files changed coverage rate</summary><pre>%s</pre></details>\n", report.Detail)
	if report.ErrorMessage != "" {
		fmt.Fprintf(&b, ":no_entry: %s\n", report.ErrorMessage)
	}
	b.WriteString(Marker(runCtx.RepoSlug(), report.Title))
	return b.String()
}
