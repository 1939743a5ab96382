package queue

import (
	"github.com/google/uuid"

	"github.com/RhNu/nai-codex/nai"
	"github.com/RhNu/nai-codex/prompt"
)

// CharacterSlot extends the prompt-level slot with a canvas position, which
// only matters at generation time.
type CharacterSlot struct {
	Prompt   string     `json:"prompt"`
	UC       string     `json:"uc"`
	Enabled  bool       `json:"enabled"`
	PresetID *uuid.UUID `json:"preset_id,omitempty"`
	Center   nai.Center `json:"center"`
}

func (s CharacterSlot) promptSlot() prompt.CharacterSlot {
	return prompt.CharacterSlot{
		Prompt:   s.Prompt,
		UC:       s.UC,
		Enabled:  s.Enabled,
		PresetID: s.PresetID,
	}
}

// GenerationParams are the knobs of one generation, minus the prompts.
type GenerationParams struct {
	Model       nai.Model   `json:"model"`
	Width       uint32      `json:"width"`
	Height      uint32      `json:"height"`
	Steps       uint32      `json:"steps"`
	Scale       float32     `json:"scale"`
	Sampler     nai.Sampler `json:"sampler"`
	Noise       nai.Noise   `json:"noise"`
	CFGRescale  float32     `json:"cfg_rescale"`
	VarietyPlus bool        `json:"variety_plus"`

	// Seed fixes every image of the task; nil or negative means a fresh
	// random seed per image.
	Seed *int64 `json:"seed,omitempty"`

	AddQualityTags         bool   `json:"add_quality_tags"`
	UndesiredContentPreset *uint8 `json:"undesired_content_preset,omitempty"`
}

// DefaultGenerationParams mirrors the editor's initial form.
func DefaultGenerationParams() GenerationParams {
	return GenerationParams{
		Model:          nai.DefaultModel,
		Width:          1024,
		Height:         1024,
		Steps:          28,
		Scale:          5.0,
		Sampler:        nai.DefaultSampler,
		Noise:          nai.DefaultNoise,
		AddQualityTags: true,
	}
}

// Task is one queued generation request.
type Task struct {
	ID             uuid.UUID             `json:"id"`
	RawPrompt      string                `json:"raw_prompt"`
	NegativePrompt string                `json:"negative_prompt"`
	Count          uint32                `json:"count"`
	Params         GenerationParams      `json:"params"`
	MainPreset     prompt.PresetSettings `json:"main_preset"`
	CharacterSlots []CharacterSlot       `json:"character_slots"`
}
