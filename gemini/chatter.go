package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/dealscope"
	"google.golang.org/genai"
)

// DefaultChatModel is the model used for the chat relay.
const DefaultChatModel = "gemini-2.0-flash"

// Ensure Chatter implements dealscope.Chatter at compile time.
var _ dealscope.Chatter = (*Chatter)(nil)

// Chatter implements dealscope.Chatter using Google Gemini. The system
// instruction embeds the entire company directory so the model can answer
// with grounded facts.
type Chatter struct {
	client    *genai.Client
	model     string
	companies dealscope.CompanyService
}

// NewChatter creates a new Chatter. An empty model selects
// DefaultChatModel.
func NewChatter(client *genai.Client, companies dealscope.CompanyService, model string) *Chatter {
	if model == "" {
		model = DefaultChatModel
	}
	return &Chatter{client: client, model: model, companies: companies}
}

// Chat forwards the transcript to the model and invokes onDelta for each
// response chunk as it arrives.
func (c *Chatter) Chat(ctx context.Context, messages []dealscope.Message, onDelta func(delta string) error) error {
	if len(messages) == 0 {
		return dealscope.Errorf(dealscope.EINVALID, "messages required")
	}

	companies, err := c.companies.FindCompanies(ctx, dealscope.CompanyFilter{})
	if err != nil {
		return err
	}

	system, err := BuildChatSystemPrompt(companies)
	if err != nil {
		return err
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
	}

	contents, err := BuildContents(messages)
	if err != nil {
		return err
	}

	for chunk, err := range c.client.Models.GenerateContentStream(ctx, c.model, contents, config) {
		if err != nil {
			return dealscope.Errorf(dealscope.EUNAVAILABLE, "model stream failed: %v", err)
		}
		if text := chunk.Text(); text != "" {
			if err := onDelta(text); err != nil {
				return err
			}
		}
	}

	return nil
}

// BuildContents converts a chat transcript into genai contents. The
// assistant role maps to Gemini's model role.
func BuildContents(messages []dealscope.Message) ([]*genai.Content, error) {
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		var role string
		switch m.Role {
		case dealscope.RoleUser:
			role = string(genai.RoleUser)
		case dealscope.RoleAssistant:
			role = string(genai.RoleModel)
		default:
			return nil, dealscope.Errorf(dealscope.EINVALID, "unknown message role %q", m.Role)
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}
	return contents, nil
}

// BuildChatSystemPrompt builds the system instruction with the full company
// directory embedded as inline reference data.
func BuildChatSystemPrompt(companies []*dealscope.Company) (string, error) {
	data, err := json.MarshalIndent(companies, "", "  ")
	if err != nil {
		return "", dealscope.Errorf(dealscope.EINTERNAL, "failed to encode directory: %v", err)
	}

	return fmt.Sprintf(`You are the Dealscope Intelligence Engine, an elite AI assistant for Venture Capitalists.
Your tone is professional, sharp, and highly analytical.
You are embedded in a VC discovery platform and help investors discover startups, analyze market trends, and navigate the global startup ecosystem.

IMPORTANT RULES:
1. Here is the exact data in our proprietary directory. If the user asks about startups we track, answer ONLY using this data:
%s
2. If the user asks a general market query, use your general knowledge, but try to tie it back to startups in our directory if relevant.
3. Keep your answers relatively concise as they are being displayed in a small chat widget. Use markdown formatting (links, bold) where appropriate.
4. Do not answer questions completely unrelated to startups, business, technology, or venture capital.
`, data), nil
}
