package openaichat

import "context"

// IChat is a chat completion client for an OpenAI-compatible API.
type IChat interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
	Provider() string
	Model() string
}

// New validates cfg and builds a client.
func New(cfg Config) (IChat, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
