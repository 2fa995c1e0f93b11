package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/raygun/internal/domain"
	domainmocks "gooze.dev/pkg/raygun/internal/domain/mocks"
	m "gooze.dev/pkg/raygun/internal/model"
)

func TestViewCmd_UsesRootOutputFlagByDefault(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().
		View(mock.Anything, domain.ViewArgs{Reports: m.Path(defaultReportsDir)}).
		Return(nil).
		Once()

	cmd, _ := newTestRootCmd(newViewCmd())
	cmd.SetArgs([]string{"view"})

	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RootOutputFlagIsPassedThrough(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().
		View(mock.Anything, domain.ViewArgs{Reports: m.Path("./reports-dir")}).
		Return(nil).
		Once()

	cmd, _ := newTestRootCmd(newViewCmd())
	cmd.SetArgs([]string{"view", "--output", "./reports-dir"})

	require.NoError(t, cmd.Execute())
}

func TestViewCmd_PositionalReportPath(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().
		View(mock.Anything, domain.ViewArgs{Reports: m.Path("ci/raygun-report.yaml")}).
		Return(nil).
		Once()

	cmd, _ := newTestRootCmd(newViewCmd())
	cmd.SetArgs([]string{"view", "ci/raygun-report.yaml"})

	require.NoError(t, cmd.Execute())
}

func TestViewCmd_TooManyArgs(t *testing.T) {
	useWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd, _ := newTestRootCmd(newViewCmd())
	cmd.SetArgs([]string{"view", "a", "b"})

	require.Error(t, cmd.Execute())
}
