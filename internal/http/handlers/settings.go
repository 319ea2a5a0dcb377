package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/tooldeck/tooldeck-api/internal/models"
	"github.com/tooldeck/tooldeck-api/internal/repository"
)

// SettingsHandler serves the opaque key-value site settings. Payloads are
// stored as-is; the admin front-end owns their shape.
type SettingsHandler struct {
	settings repository.SettingsRepository
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(settings repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetSettingInput names one settings key.
type GetSettingInput struct {
	Key string `path:"key" minLength:"1" doc:"Settings key"`
}

// GetSettingOutput is the stored payload.
type GetSettingOutput struct {
	Body models.Settings
}

// GetSetting returns the payload stored under a key.
func (h *SettingsHandler) GetSetting(ctx context.Context, input *GetSettingInput) (*GetSettingOutput, error) {
	value, err := h.settings.Get(ctx, input.Key)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to load setting: " + err.Error())
	}
	if value == nil {
		return nil, huma.Error404NotFound("setting not found: " + input.Key)
	}
	return &GetSettingOutput{Body: value}, nil
}

// PutSettingInput replaces the payload under a key.
type PutSettingInput struct {
	Key  string          `path:"key" minLength:"1" doc:"Settings key"`
	Body models.Settings `doc:"Opaque settings payload"`
}

// PutSettingOutput echoes the stored payload.
type PutSettingOutput struct {
	Body models.Settings
}

// PutSetting stores a payload under a key, replacing any previous value.
func (h *SettingsHandler) PutSetting(ctx context.Context, input *PutSettingInput) (*PutSettingOutput, error) {
	if err := h.settings.Put(ctx, input.Key, input.Body); err != nil {
		return nil, huma.Error500InternalServerError("failed to store setting: " + err.Error())
	}
	return &PutSettingOutput{Body: input.Body}, nil
}
