package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"

	"antenna-workshop/internal/core"
)

type AgentService interface {
	InterpretCommand(ctx context.Context, naturalLanguage string, products, materials []string) (*core.StockCommand, error)
}

type Agent struct {
	client *openai.Client
}

func NewAgent(apiKey string) *Agent {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Agent{client: &client}
}

func (a *Agent) InterpretCommand(ctx context.Context, naturalLanguage string, products, materials []string) (*core.StockCommand, error) {
	prompt := fmt.Sprintf(`You are the stock assistant for an antenna assembly workshop.
Interpret a floor instruction written in natural language and propose ONE stock command.
Rules:
1. "produce" targets a product from the product list; "restock" and "set_stock" target a material from the material list.
2. Use ONLY names from the lists below, spelled exactly.
3. Quantities are whole units. "set_stock" means an absolute count, not a delta.
4. Provide a confidence score (0.0-1.0).
5. Explain your reasoning briefly.

Products:
%s

Materials:
%s

Instruction: %s`,
		strings.Join(products, "\n"), strings.Join(materials, "\n"), naturalLanguage)

	// Dynamically generate the JSON schema from the Go struct
	schemaStruct := generateSchema()
	schemaJSON, err := json.Marshal(schemaStruct)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(schemaJSON, &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema to map: %w", err)
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(shared.ChatModelGPT4o),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Type:        constant.JSONSchema("json_schema"),
					Name:        "stock_command",
					Strict:      param.NewOpt(true),
					Schema:      schemaMap,
					Description: param.NewOpt("A proposed stock operation for the workshop ledger"),
				},
			},
		},
	}

	resp, err := a.client.Responses.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai responses error: %w", err)
	}

	content := resp.OutputText()
	if content == "" {
		return nil, fmt.Errorf("empty response content")
	}

	var cmd core.StockCommand
	if err := json.Unmarshal([]byte(content), &cmd); err != nil {
		return nil, fmt.Errorf("failed to parse completion: %w", err)
	}

	cmd.Normalize()
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("command validation failed: %w", err)
	}

	return &cmd, nil
}

func generateSchema() interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v core.StockCommand
	return reflector.Reflect(v)
}
