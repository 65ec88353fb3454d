package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dumbwm/internal/application/port"
)

// GetConfigSchemaUseCase retrieves the JSON schema of the configuration file.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// GetConfigSchemaOutput contains the schema document.
type GetConfigSchemaOutput struct {
	Schema []byte
}

// Execute generates the configuration schema.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context) (*GetConfigSchemaOutput, error) {
	schema, err := uc.provider.Schema()
	if err != nil {
		return nil, fmt.Errorf("generate config schema: %w", err)
	}
	return &GetConfigSchemaOutput{
		Schema: schema,
	}, nil
}
