package http

import (
	"encoding/json"

	"hr-assistant/internal/message"
	"hr-assistant/internal/model"
)

// --- Request DTOs ---

// messageReq keeps contents raw so every element can be type-checked and
// reported separately.
type messageReq struct {
	UserID   string          `json:"user_id"`
	Contents json.RawMessage `json:"contents" swaggertype:"array,object"`
}

type contentReq struct {
	Role  json.RawMessage `json:"role"`
	Parts json.RawMessage `json:"parts"`
}

type partReq struct {
	Text json.RawMessage `json:"text"`
}

// parsedReq is a request that passed validation.
type parsedReq struct {
	UserID string
	Turns  []model.Turn
}

func (r parsedReq) toInput(userID string) message.ProcessInput {
	return message.ProcessInput{
		UserID:   userID,
		Contents: r.Turns,
	}
}

// --- Response DTOs ---

type partResp struct {
	Text string `json:"text"`
}

type contentResp struct {
	Parts []partResp `json:"parts"`
}

type candidateResp struct {
	Content contentResp `json:"content"`
}

type messageResp struct {
	Candidates []candidateResp `json:"candidates"`
	UI         *model.UI       `json:"ui,omitempty" swaggertype:"object"`
	Completed  bool            `json:"completed"`
}

func (h *handler) newMessageResp(o message.ProcessOutput) messageResp {
	resp := messageResp{
		Candidates: []candidateResp{{
			Content: contentResp{Parts: []partResp{{Text: o.Response.Text}}},
		}},
		Completed: o.Response.Completed,
	}
	if o.Response.UI.HasComponents {
		ui := o.Response.UI
		resp.UI = &ui
	}
	return resp
}
