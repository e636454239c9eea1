// Package actions writes GitHub Actions workflow commands and step outputs.
package actions

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/pkg/global"
	"github.com/LambdaTest/lcov-reporter/pkg/lumber"
	"github.com/google/uuid"
)

// EnvOutput names the file step outputs are appended to.
const EnvOutput = "GITHUB_OUTPUT"

type output struct {
	stdout     io.Writer
	outputFile string
	logger     lumber.Logger
}

// New returns an ActionOutput printing workflow commands to stdout and
// appending outputs to outputFile. With an empty outputFile outputs are only logged.
func New(stdout io.Writer, outputFile string, logger lumber.Logger) core.ActionOutput {
	return &output{stdout: stdout, outputFile: outputFile, logger: logger}
}

// FromEnv returns an ActionOutput bound to os.Stdout and $GITHUB_OUTPUT.
func FromEnv(logger lumber.Logger) core.ActionOutput {
	return New(os.Stdout, os.Getenv(EnvOutput), logger)
}

// SetOutput records a step output. Multi-line values use the heredoc form.
func (o *output) SetOutput(name, value string) error {
	o.logger.Infof("output %s=%s", name, value)
	if o.outputFile == "" {
		return nil
	}
	f, err := os.OpenFile(o.outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, global.FilePermissions)
	if err != nil {
		o.logger.Errorf("failed to open %s, error: %v", EnvOutput, err)
		return err
	}
	defer f.Close()

	line := fmt.Sprintf("%s=%s\n", name, value)
	if strings.ContainsAny(value, "\r\n") {
		delimiter := "ghadelimiter_" + uuid.NewString()
		line = fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
	}
	_, err = f.WriteString(line)
	return err
}

// SetFailed emits an error annotation. The exit code is left to the caller.
func (o *output) SetFailed(message string) {
	fmt.Fprintf(o.stdout, "::error::%s\n", escapeData(message))
}

func escapeData(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A").Replace(s)
}
