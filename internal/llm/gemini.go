package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// geminiModels maps short names to Gemini model IDs.
var geminiModels = map[string]string{
	"gemini-flash": "gemini-2.5-flash",
	"gemini-lite":  "gemini-2.5-flash-lite",
	"gemini-pro":   "gemini-2.5-pro",
}

// GeminiProvider implements Provider using the Google Gemini SDK.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a provider on the Gemini Developer API.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &GeminiProvider{client: client, model: resolveModel(cfg.Model, geminiModels)}, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	result, err := p.client.Models.GenerateContent(ctx, p.model, geminiContents(req.Messages), geminiConfig(req))
	if err != nil {
		return nil, mapGeminiError(err)
	}
	if err := geminiBlocked(result); err != nil {
		return nil, err
	}

	stop := stopEnd
	if len(result.Candidates) > 0 && result.Candidates[0].FinishReason == genai.FinishReasonMaxTokens {
		stop = stopMaxTokens
	}
	content, err := finalize(req, result.Text(), stop)
	if err != nil {
		return nil, err
	}

	resp := &Response{Content: content, Model: p.model, StopReason: stop}
	if result.ModelVersion != "" {
		resp.Model = result.ModelVersion
	}
	if u := result.UsageMetadata; u != nil {
		resp.Usage = Usage{
			InputTokens:  int(u.PromptTokenCount),
			OutputTokens: int(u.CandidatesTokenCount),
			TotalTokens:  int(u.TotalTokenCount),
		}
	}
	return resp, nil
}

func (p *GeminiProvider) ModelID() string {
	return p.model
}

func geminiConfig(req Request) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{MaxOutputTokens: int32(req.MaxTokens)}
	if req.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = buildGeminiSchema(req.Schema.Definition)
	}
	return config
}

func geminiContents(msgs []Message) []*genai.Content {
	out := make([]*genai.Content, len(msgs))
	for i, m := range msgs {
		var role genai.Role = genai.RoleUser
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		out[i] = genai.NewContentFromText(m.Content, role)
	}
	return out
}

// geminiBlocked reports a prompt the API refused to answer. Such responses
// arrive with HTTP 200 and no candidates.
func geminiBlocked(result *genai.GenerateContentResponse) error {
	fb := result.PromptFeedback
	if fb == nil || fb.BlockReason == "" {
		return nil
	}
	msg := string(fb.BlockReason)
	if fb.BlockReasonMessage != "" {
		msg += ": " + fb.BlockReasonMessage
	}
	return &ErrRequestRejected{Err: fmt.Errorf("prompt blocked (%s)", msg)}
}

// buildGeminiSchema converts the JSON Schema subset used by request schemas
// into a genai.Schema. Keywords Gemini has no field for, such as
// additionalProperties, are dropped; finalize still enforces them.
func buildGeminiSchema(def map[string]any) *genai.Schema {
	schema := &genai.Schema{
		Type:      geminiType(def["type"]),
		Required:  stringList(def["required"]),
		Enum:      stringList(def["enum"]),
		MinItems:  schemaInt(def["minItems"]),
		MaxItems:  schemaInt(def["maxItems"]),
		MinLength: schemaInt(def["minLength"]),
		MaxLength: schemaInt(def["maxLength"]),
	}
	if desc, ok := def["description"].(string); ok {
		schema.Description = desc
	}

	if props, ok := def["properties"].(map[string]any); ok {
		schema.Properties = make(map[string]*genai.Schema, len(props))
		for name, v := range props {
			if sub, ok := v.(map[string]any); ok {
				schema.Properties[name] = buildGeminiSchema(sub)
			}
		}
	}
	if items, ok := def["items"].(map[string]any); ok {
		schema.Items = buildGeminiSchema(items)
	}
	return schema
}

func stringList(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, e := range list {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// schemaInt reads a numeric keyword from a schema map built in Go (int) or
// decoded from JSON (float64).
func schemaInt(v any) *int64 {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int64:
		n = x
	case float64:
		n = int64(x)
	default:
		return nil
	}
	return &n
}

func geminiType(v any) genai.Type {
	t, ok := v.(string)
	if !ok {
		return ""
	}
	switch t {
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

func mapGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.Code, 0, err)
	}
	return &ErrProviderUnavailable{Err: err}
}
