package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"hr-assistant/internal/model"
	"hr-assistant/pkg/response"
)

// HeaderUserID names the user when the body does not.
const HeaderUserID = "X-User-ID"

const (
	msgBodyInvalid   = "request body must be a JSON object"
	msgContentsArray = "contents must be an array"
	msgContentsEmpty = "contents array cannot be empty"
	msgContentObject = "content must be an object"
	msgRoleInvalid   = "role must be one of: user, model, system"
	msgPartsArray    = "parts must be an array"
	msgPartsEmpty    = "parts array cannot be empty"
	msgPartObject    = "part must be an object"
	msgTextNotString = "text must be a string"
	msgTextEmpty     = "text cannot be empty"
	partsSeparator   = "\n"
)

func (h *handler) processMessageReq(c *gin.Context) (parsedReq, []response.FieldError) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return parsedReq{}, []response.FieldError{{Field: "body", Message: msgBodyInvalid}}
	}

	turns, details := parseContents(req.Contents)
	if len(details) > 0 {
		return parsedReq{}, details
	}
	return parsedReq{UserID: req.UserID, Turns: turns}, nil
}

// resolveUserID prefers the body, then the header, then the default.
func (h *handler) resolveUserID(c *gin.Context, fromBody string) string {
	if id := strings.TrimSpace(fromBody); id != "" {
		return id
	}
	if id := strings.TrimSpace(c.GetHeader(HeaderUserID)); id != "" {
		return id
	}
	return h.defaultUserID
}

func parseContents(raw json.RawMessage) ([]model.Turn, []response.FieldError) {
	var items []json.RawMessage
	if !isArray(raw) || json.Unmarshal(raw, &items) != nil {
		return nil, []response.FieldError{{Field: "contents", Message: msgContentsArray}}
	}
	if len(items) == 0 {
		return nil, []response.FieldError{{Field: "contents", Message: msgContentsEmpty}}
	}

	var details []response.FieldError
	turns := make([]model.Turn, 0, len(items))
	for i, item := range items {
		field := fmt.Sprintf("contents[%d]", i)
		var content contentReq
		if !isObject(item) || json.Unmarshal(item, &content) != nil {
			details = append(details, response.FieldError{Field: field, Message: msgContentObject})
			continue
		}

		var role model.Role
		if json.Unmarshal(content.Role, &role) != nil || !role.Valid() {
			details = append(details, response.FieldError{Field: field + ".role", Message: msgRoleInvalid})
		}

		texts, partErrs := parseParts(field, content.Parts)
		details = append(details, partErrs...)
		turns = append(turns, model.Turn{Role: role, Text: strings.Join(texts, partsSeparator)})
	}
	if len(details) > 0 {
		return nil, details
	}
	return turns, nil
}

func parseParts(prefix string, raw json.RawMessage) ([]string, []response.FieldError) {
	field := prefix + ".parts"
	var items []json.RawMessage
	if !isArray(raw) || json.Unmarshal(raw, &items) != nil {
		return nil, []response.FieldError{{Field: field, Message: msgPartsArray}}
	}
	if len(items) == 0 {
		return nil, []response.FieldError{{Field: field, Message: msgPartsEmpty}}
	}

	var details []response.FieldError
	texts := make([]string, 0, len(items))
	for j, item := range items {
		partField := fmt.Sprintf("%s[%d]", field, j)
		var part partReq
		if !isObject(item) || json.Unmarshal(item, &part) != nil {
			details = append(details, response.FieldError{Field: partField, Message: msgPartObject})
			continue
		}
		var text string
		if json.Unmarshal(part.Text, &text) != nil {
			details = append(details, response.FieldError{Field: partField + ".text", Message: msgTextNotString})
			continue
		}
		if text == "" {
			details = append(details, response.FieldError{Field: partField + ".text", Message: msgTextEmpty})
			continue
		}
		texts = append(texts, text)
	}
	return texts, details
}

func isArray(raw json.RawMessage) bool {
	return bytes.HasPrefix(bytes.TrimSpace(raw), []byte("["))
}

func isObject(raw json.RawMessage) bool {
	return bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{"))
}
