package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-assistant/internal/agent"
	"hr-assistant/internal/agent/orchestrator"
	"hr-assistant/internal/conversation"
	convMemory "hr-assistant/internal/conversation/repository/memory"
	"hr-assistant/internal/form"
	"hr-assistant/internal/message"
	"hr-assistant/internal/model"
	"hr-assistant/internal/router"
	pkgLog "hr-assistant/pkg/log"
)

type stubRouter struct {
	out   router.RouterOutput
	err   error
	calls int
	query string
}

func (s *stubRouter) Classify(_ context.Context, msg string, _ []model.Turn) (router.RouterOutput, error) {
	s.calls++
	s.query = msg
	return s.out, s.err
}

type echoAgent struct {
	name string
	last agent.Request
}

func (e *echoAgent) Name() string { return e.name }

func (e *echoAgent) Handle(_ context.Context, req agent.Request) (model.AgentResponse, error) {
	e.last = req
	return model.TextResponse(e.name + " answer"), nil
}

type intentLog struct {
	seen []string
}

func (i *intentLog) ObserveIntent(intent, source string) {
	i.seen = append(i.seen, intent+"/"+source)
}

type fixture struct {
	uc         message.UseCase
	router     *stubRouter
	store      conversation.Store
	leave      *echoAgent
	attendance *echoAgent
	intents    *intentLog
}

func newFixture(out router.RouterOutput) fixture {
	l := pkgLog.NewNop()
	f := fixture{
		router:     &stubRouter{out: out},
		store:      convMemory.New(convMemory.Config{TTL: time.Minute}, l),
		leave:      &echoAgent{name: "leave"},
		attendance: &echoAgent{name: "attendance"},
		intents:    &intentLog{},
	}
	orch := orchestrator.New(agent.NewRegistry(f.leave, f.attendance), nil, l)
	f.uc = New(l, f.router, orch, f.store, f.intents)
	return f
}

func userTurn(text string) []model.Turn {
	return []model.Turn{{Role: model.RoleUser, Text: text}}
}

func TestProcess_Validation(t *testing.T) {
	f := newFixture(router.RouterOutput{Intent: router.IntentLeave})

	_, err := f.uc.Process(context.Background(), message.ProcessInput{UserID: "u1"})
	assert.ErrorIs(t, err, message.ErrEmptyContents)

	_, err = f.uc.Process(context.Background(), message.ProcessInput{UserID: " ", Contents: userTurn("hi")})
	assert.ErrorIs(t, err, message.ErrMissingUserID)
	assert.Zero(t, f.router.calls)
}

func TestProcess_RoutesByClassification(t *testing.T) {
	f := newFixture(router.RouterOutput{Intent: router.IntentLeave, Source: router.SourceKeyword, Confidence: 100})
	history := []model.Turn{
		{Role: model.RoleUser, Text: "hello"},
		{Role: model.RoleModel, Text: "hi there"},
		{Role: model.RoleUser, Text: "leave balance"},
	}

	out, err := f.uc.Process(context.Background(), message.ProcessInput{UserID: "u1", Contents: history})
	require.NoError(t, err)
	assert.Equal(t, "leave answer", out.Response.Text)
	assert.Equal(t, router.IntentLeave, out.Route.Intent)
	assert.Equal(t, "leave balance", f.router.query)
	assert.Equal(t, "leave balance", f.leave.last.Query)
	assert.Equal(t, "u1", f.leave.last.UserID)
	assert.Len(t, f.leave.last.History, 3)
	assert.Equal(t, []string{"leave/keyword"}, f.intents.seen)
}

func TestProcess_QueryFallsBackToLastTurn(t *testing.T) {
	f := newFixture(router.RouterOutput{Intent: router.IntentGeneral})
	history := []model.Turn{{Role: model.RoleSystem, Text: "be brief"}}

	_, err := f.uc.Process(context.Background(), message.ProcessInput{UserID: "u1", Contents: history})
	require.NoError(t, err)
	assert.Equal(t, "be brief", f.router.query)
}

func TestProcess_ClassifyErrorFallsBackToGeneral(t *testing.T) {
	f := newFixture(router.RouterOutput{})
	f.router.err = errors.New("boom")

	out, err := f.uc.Process(context.Background(), message.ProcessInput{UserID: "u1", Contents: userTurn("hmm")})
	require.NoError(t, err)
	assert.Equal(t, router.IntentGeneral, out.Route.Intent)
	assert.Equal(t, router.SourceFallback, out.Route.Source)
	assert.Equal(t, orchestrator.HelpText, out.Response.Text)
}

func TestProcess_ActiveFlowOverride(t *testing.T) {
	awaitingCustom := conversation.NewState("u1", conversation.FlowRegularization).Merge(map[string]string{
		form.FieldDate:   "2024-01-15",
		form.FieldReason: form.ReasonOther,
	})
	awaitingDate := conversation.NewState("u1", conversation.FlowRegularization)
	awaitingLeaveDate := conversation.NewState("u1", conversation.FlowLeaveApplication).Merge(map[string]string{
		form.FieldLeaveType: "casual",
	})

	tests := []struct {
		name       string
		state      *conversation.State
		query      string
		wantIntent router.Intent
		wantSource router.Source
		wantCalls  int
	}{
		{
			name:       "no state classifies",
			query:      "2024-01-15",
			wantIntent: router.IntentHoliday,
			wantSource: router.SourceLLM,
			wantCalls:  1,
		},
		{
			name:       "plain answer stays in flow",
			state:      &awaitingDate,
			query:      "2024-01-15",
			wantIntent: router.IntentAttendance,
			wantSource: router.SourceFlow,
		},
		{
			name:       "free text naming another domain stays in flow",
			state:      &awaitingCustom,
			query:      "was on leave for a holiday",
			wantIntent: router.IntentAttendance,
			wantSource: router.SourceFlow,
		},
		{
			name:       "other domain keyword leaves the flow",
			state:      &awaitingDate,
			query:      "show my leave balance",
			wantIntent: router.IntentHoliday,
			wantSource: router.SourceLLM,
			wantCalls:  1,
		},
		{
			name:       "owner keyword stays in flow",
			state:      &awaitingLeaveDate,
			query:      "leave from 2024-03-04",
			wantIntent: router.IntentLeave,
			wantSource: router.SourceFlow,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(router.RouterOutput{Intent: router.IntentHoliday, Source: router.SourceLLM})
			if tc.state != nil {
				require.NoError(t, f.store.Set(context.Background(), "u1", *tc.state))
			}

			out, err := f.uc.Process(context.Background(), message.ProcessInput{UserID: "u1", Contents: userTurn(tc.query)})
			require.NoError(t, err)
			assert.Equal(t, tc.wantIntent, out.Route.Intent)
			assert.Equal(t, tc.wantSource, out.Route.Source)
			assert.Equal(t, tc.wantCalls, f.router.calls)
		})
	}
}

func TestLatestQuery(t *testing.T) {
	got := latestQuery([]model.Turn{
		{Role: model.RoleUser, Text: "first"},
		{Role: model.RoleUser, Text: "second"},
		{Role: model.RoleModel, Text: "reply"},
	})
	assert.Equal(t, "second", got)
}
