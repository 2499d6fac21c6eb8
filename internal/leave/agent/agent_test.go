package agent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hragent "hr-assistant/internal/agent"
	"hr-assistant/internal/conversation"
	convMemory "hr-assistant/internal/conversation/repository/memory"
	"hr-assistant/internal/extractor"
	"hr-assistant/internal/flow"
	"hr-assistant/internal/leave"
	"hr-assistant/internal/leave/repository/memory"
	"hr-assistant/internal/leave/usecase"
	"hr-assistant/internal/model"
	"hr-assistant/pkg/llmprovider"
	pkgLog "hr-assistant/pkg/log"
)

type fakeGenerator struct {
	answer string
	err    error
	system string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.system = req.System
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Content: f.answer}, nil
}

func (f *fakeGenerator) Available() bool { return true }

type brokenUseCase struct{}

func (brokenUseCase) Summary(context.Context, string) (leave.Summary, error) {
	return leave.Summary{}, errors.New("hr system down")
}

func (brokenUseCase) Apply(context.Context, string, leave.ApplyInput) (leave.Application, error) {
	return leave.Application{}, errors.New("hr system down")
}

func newTestAgent(t *testing.T, uc leave.UseCase, gen hragent.Generator) (*Agent, *flow.Engine) {
	t.Helper()
	l := pkgLog.NewNop()
	store := convMemory.New(convMemory.Config{TTL: time.Minute}, l)
	engine := flow.New(store, extractor.New(), l)
	if uc == nil {
		uc = usecase.New(l, memory.New(), time.UTC)
	}
	var aug *hragent.Augmenter
	if gen != nil {
		aug = hragent.NewAugmenter(gen, hragent.AugmenterConfig{})
	}
	return New(l, uc, engine, aug), engine
}

func ask(t *testing.T, a *Agent, query string) model.AgentResponse {
	t.Helper()
	resp, err := a.Handle(context.Background(), hragent.Request{UserID: "u1", Query: query})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Text)
	return resp
}

func TestHandle_ApplicationFlow(t *testing.T) {
	a, engine := newTestAgent(t, nil, nil)
	assert.Equal(t, "leave", a.Name())

	resp := ask(t, a, "I want to apply for leave")
	assert.Equal(t, "Please select the type of leave you want to apply for:", resp.Text)
	require.True(t, resp.UI.HasComponents)
	assert.Equal(t, model.ComponentDropdown, resp.UI.Components["leaveType"].Kind)

	resp = ask(t, a, "leaveType:sick_leave")
	assert.Equal(t, "You selected Sick Leave (SL). Please select the start date:", resp.Text)

	resp = ask(t, a, "fromDate:2024-03-04")
	assert.Contains(t, resp.Text, "Please select the end date:")

	resp = ask(t, a, "toDate:2024-03-05")
	assert.Contains(t, resp.Text, "Please provide a reason (optional):")
	assert.Equal(t, model.ComponentTextInput, resp.UI.Components["reason"].Kind)

	// Contains "apply" but answers the awaited reason instead of restarting.
	resp = ask(t, a, "I want to apply this to a family function")
	assert.True(t, resp.Completed)
	assert.False(t, resp.UI.HasComponents)
	assert.Contains(t, resp.Text, "✅ **Leave Application Submitted Successfully!**")
	assert.Contains(t, resp.Text, "• Leave Type: Sick Leave (SL)\n")
	assert.Contains(t, resp.Text, "• Reason: I want to apply this to a family function\n")

	_, active := engine.Active(context.Background(), "u1", conversation.FlowLeaveApplication)
	assert.False(t, active)

	resp = ask(t, a, "show my leave balance")
	assert.True(t, strings.HasSuffix(resp.Text, usecase.Tips))
	assert.Contains(t, resp.Text, "\n3. **Sick Leave (SL)**\n   📅 Dates: 2024-03-04 to 2024-03-05\n")
}

func TestHandle_TriggerRestartsFlow(t *testing.T) {
	a, _ := newTestAgent(t, nil, nil)

	ask(t, a, "apply leave")
	resp := ask(t, a, "leaveType:casual_leave")
	assert.Contains(t, resp.Text, "Casual Leave (CL)")

	resp = ask(t, a, "new application please")
	assert.Equal(t, "Please select the type of leave you want to apply for:", resp.Text)
}

func TestHandle_TriggerWithFields(t *testing.T) {
	a, _ := newTestAgent(t, nil, nil)

	resp := ask(t, a, "I want to apply for sick leave from 2024-03-04 to 2024-03-05")
	assert.Contains(t, resp.Text, "Please provide a reason (optional):")
}

func TestHandle_Summary(t *testing.T) {
	t.Run("no model", func(t *testing.T) {
		a, _ := newTestAgent(t, nil, nil)
		resp := ask(t, a, "what is my leave balance")
		assert.True(t, strings.HasPrefix(resp.Text, "📋 **Leave Information:**"))
		assert.True(t, strings.HasSuffix(resp.Text, usecase.Tips))
		assert.False(t, resp.Completed)
	})

	t.Run("model answer with data", func(t *testing.T) {
		gen := &fakeGenerator{answer: "You have 9 casual leaves left."}
		a, _ := newTestAgent(t, nil, gen)
		resp := ask(t, a, "how many days do I have?")
		assert.True(t, strings.HasPrefix(resp.Text, "You have 9 casual leaves left.\n\n---\n\n📋 **Leave Information:**"))
		assert.Contains(t, gen.system, "Here is the current leave information in a formatted way:\n\n📋 **Leave Information:**")
	})

	t.Run("model answer only", func(t *testing.T) {
		a, _ := newTestAgent(t, nil, &fakeGenerator{answer: "Anytime!"})
		resp := ask(t, a, "thanks")
		assert.Equal(t, "Anytime!", resp.Text)
	})

	t.Run("model failure", func(t *testing.T) {
		a, _ := newTestAgent(t, nil, &fakeGenerator{err: llmprovider.ErrAllProvidersFailed})
		resp := ask(t, a, "leave balance")
		assert.True(t, strings.HasSuffix(resp.Text, usecase.Tips))
	})
}

func TestHandle_Errors(t *testing.T) {
	a, _ := newTestAgent(t, brokenUseCase{}, nil)

	_, err := a.Handle(context.Background(), hragent.Request{UserID: "u1", Query: "leave balance"})
	assert.Error(t, err)

	ask(t, a, "apply leave")
	ask(t, a, "leaveType:sick_leave|fromDate:2024-03-04|toDate:2024-03-05")
	resp := ask(t, a, "reason:fever")
	assert.Equal(t, flow.ApologyLeaveApplication, resp.Text)
	assert.False(t, resp.Completed)
}
