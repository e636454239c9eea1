package testutils

// Paths of the fixtures under testdata, relative to the repository root
const (
	TraceFilesDir     = "testutils/testdata/tracefiles"                    // TraceFilesDir holds sample lcov tracefiles
	SummaryOutputPath = "testutils/testdata/lcov/summary.txt"              // SummaryOutputPath is captured `lcov --summary` output
	ListOutputPath    = "testutils/testdata/lcov/list.txt"                 // ListOutputPath is captured `lcov --list` output
	PullRequestEvent  = "testutils/testdata/events/pull_request.json"      // PullRequestEvent is a pull_request webhook payload
	PushEvent         = "testutils/testdata/events/push.json"              // PushEvent is a push webhook payload
	WorkflowDispatch  = "testutils/testdata/events/workflow_dispatch.json" // WorkflowDispatch is a workflow_dispatch webhook payload
)
