package cmd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/raygun/internal/domain"
	domainmocks "gooze.dev/pkg/raygun/internal/domain/mocks"
	m "gooze.dev/pkg/raygun/internal/model"
)

func TestBaselineCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().
		Baseline(mock.Anything, mock.MatchedBy(func(args domain.TestArgs) bool {
			return len(args.Paths) == 1 && args.Paths[0] == m.Path("./...") &&
				args.Command.Command == "go test ./..."
		})).
		Return(nil).
		Once()

	cmd, _ := newTestRootCmd(newBaselineCmd())
	cmd.SetArgs([]string{"baseline", "./...", "--", "go", "test", "./..."})

	require.NoError(t, cmd.Execute())
}

func TestBaselineCmd_Failure(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().
		Baseline(mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: killed in .", domain.ErrBaselineFailed)).
		Once()

	cmd, _ := newTestRootCmd(newBaselineCmd())
	cmd.SetArgs([]string{"baseline", "--command", "go test ./..."})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBaselineFailed)
}
