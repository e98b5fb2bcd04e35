package style_test

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/orghub/orgs-cli/internal/pkg/tea/style"
)

func TestCLIHeader(t *testing.T) {
	header := style.CLIHeader("Organization Console", "Manage organizations")

	assert.Assert(t, strings.Contains(header, "Organization Console"))
	assert.Assert(t, strings.Contains(header, "Manage organizations"))
	// The description sits on its own line below the boxed title.
	assert.Assert(t, strings.HasSuffix(header, "\nManage organizations"))
}

func TestForegroundPrint(t *testing.T) {
	// Without a color profile the text passes through unchanged.
	rendered := style.ForegroundPrint("hello", "2")
	assert.Assert(t, strings.Contains(rendered, "hello"))
}
