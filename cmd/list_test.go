package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/sensorgrid/internal/domain"
	domainmocks "github.com/mouse-blink/sensorgrid/internal/domain/mocks"
	m "github.com/mouse-blink/sensorgrid/internal/model"
)

func TestListCmd_ReadsInput(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("List", domain.ListArgs{Input: m.Path("input.txt")}).Return(nil)

	cmd, _, _ := newTestRootCmd()
	cmd.SetArgs([]string{"list", "input.txt"})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_DefaultsToStdin(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("List", domain.ListArgs{Input: m.Stdin}).Return(nil)

	cmd, _, _ := newTestRootCmd()
	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.Execute())
}

func TestEndToEnd_List(t *testing.T) {
	useWorkflow(t, nil)

	cmd, stdout, _ := newTestRootCmd()
	cmd.SetArgs([]string{"list", exampleInput})
	require.NoError(t, cmd.Execute())

	output := stdout.String()
	assert.Contains(t, output, "(8, 7)")
	assert.Contains(t, output, "TOTAL SENSORS 14")
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list [input]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
}
