package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-assistant/internal/message"
	"hr-assistant/internal/model"
	"hr-assistant/pkg/log"
	"hr-assistant/pkg/response"
)

type stubUseCase struct {
	out   message.ProcessOutput
	err   error
	input message.ProcessInput
	calls int
}

func (s *stubUseCase) Process(_ context.Context, in message.ProcessInput) (message.ProcessOutput, error) {
	s.calls++
	s.input = in
	return s.out, s.err
}

func serve(t *testing.T, uc message.UseCase, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc, "user123"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/message", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMessage_OK(t *testing.T) {
	uc := &stubUseCase{out: message.ProcessOutput{Response: model.TextResponse("You have 9 casual leaves.")}}
	body := `{"contents":[
		{"role":"user","parts":[{"text":"hi"}]},
		{"role":"model","parts":[{"text":"hello"}]},
		{"role":"user","parts":[{"text":"leave"},{"text":"balance"}]}
	]}`

	w := serve(t, uc, body, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"candidates":[{"content":{"parts":[{"text":"You have 9 casual leaves."}]}}],"completed":false}`, w.Body.String())

	assert.Equal(t, "user123", uc.input.UserID)
	require.Len(t, uc.input.Contents, 3)
	assert.Equal(t, model.RoleModel, uc.input.Contents[1].Role)
	assert.Equal(t, "leave\nbalance", uc.input.Contents[2].Text)
}

func TestMessage_UserIDResolution(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		header map[string]string
		want   string
	}{
		{"body wins", `{"user_id":"alice","contents":[{"role":"user","parts":[{"text":"x"}]}]}`, map[string]string{HeaderUserID: "bob"}, "alice"},
		{"header", `{"contents":[{"role":"user","parts":[{"text":"x"}]}]}`, map[string]string{HeaderUserID: "bob"}, "bob"},
		{"default", `{"contents":[{"role":"user","parts":[{"text":"x"}]}]}`, nil, "user123"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &stubUseCase{out: message.ProcessOutput{Response: model.TextResponse("ok")}}
			w := serve(t, uc, tc.body, tc.header)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.want, uc.input.UserID)
		})
	}
}

func TestMessage_UIAndCompleted(t *testing.T) {
	ui := model.NewUI(model.UIComponent{Kind: model.ComponentDatePicker, Label: "Date", Field: "date", Required: true})
	uc := &stubUseCase{out: message.ProcessOutput{Response: model.AgentResponse{Text: "Pick a date", UI: ui}}}

	w := serve(t, uc, `{"contents":[{"role":"user","parts":[{"text":"regularize"}]}]}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	uiJSON, ok := got["ui"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, uiJSON["hasComponents"])
	assert.Contains(t, uiJSON, "date")

	uc.out = message.ProcessOutput{Response: model.CompletedResponse("done")}
	w = serve(t, uc, `{"contents":[{"role":"user","parts":[{"text":"reason:forgot"}]}]}`, nil)
	got = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotContains(t, got, "ui")
	assert.Equal(t, true, got["completed"])
}

func TestMessage_Validation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		msg   string
	}{
		{"not an object", `[1,2]`, "body", msgBodyInvalid},
		{"missing contents", `{}`, "contents", msgContentsArray},
		{"contents not array", `{"contents":"hi"}`, "contents", msgContentsArray},
		{"empty contents", `{"contents":[]}`, "contents", msgContentsEmpty},
		{"bad role", `{"contents":[{"role":"assistant","parts":[{"text":"x"}]}]}`, "contents[0].role", msgRoleInvalid},
		{"missing role", `{"contents":[{"parts":[{"text":"x"}]}]}`, "contents[0].role", msgRoleInvalid},
		{"parts not array", `{"contents":[{"role":"user","parts":{"text":"x"}}]}`, "contents[0].parts", msgPartsArray},
		{"empty parts", `{"contents":[{"role":"user","parts":[]}]}`, "contents[0].parts", msgPartsEmpty},
		{"text not string", `{"contents":[{"role":"user","parts":[{"text":5}]}]}`, "contents[0].parts[0].text", msgTextNotString},
		{"empty text", `{"contents":[{"role":"user","parts":[{"text":""}]}]}`, "contents[0].parts[0].text", msgTextEmpty},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &stubUseCase{}
			w := serve(t, uc, tc.body, nil)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp response.Resp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, response.ValidationErrorCode, resp.ErrorCode)
			assert.Equal(t, response.MessageValidationFailed, resp.Message)
			assert.Contains(t, w.Body.String(), `"field":"`+tc.field+`"`)
			assert.Contains(t, w.Body.String(), tc.msg)
			assert.Zero(t, uc.calls)
		})
	}
}

func TestMessage_ReportsEveryBadField(t *testing.T) {
	body := `{"contents":[
		{"role":"bot","parts":[{"text":""}]},
		{"role":"user","parts":[]}
	]}`
	w := serve(t, &stubUseCase{}, body, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors []response.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Errors, 3)
}

func TestMessage_UseCaseError(t *testing.T) {
	uc := &stubUseCase{err: errors.New("boom")}
	w := serve(t, uc, `{"contents":[{"role":"user","parts":[{"text":"x"}]}]}`, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}
