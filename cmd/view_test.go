package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/sensorgrid/internal/domain"
	domainmocks "github.com/mouse-blink/sensorgrid/internal/domain/mocks"
	m "github.com/mouse-blink/sensorgrid/internal/model"
)

func TestViewCmd_RootReportsFlagIsPassedThrough(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("View", domain.ViewArgs{Reports: m.Path("custom-reports")}).Return(nil)

	cmd, _, _ := newTestRootCmd()
	cmd.SetArgs([]string{"--reports", "custom-reports", "view"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RejectsArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd, _, _ := newTestRootCmd()
	cmd.SetArgs([]string{"view", "extra"})
	require.Error(t, cmd.Execute())
}

func TestNewViewCmd(t *testing.T) {
	cmd := newViewCmd()

	assert.Equal(t, "view", cmd.Use)
	assert.NotEmpty(t, cmd.Long)
}
