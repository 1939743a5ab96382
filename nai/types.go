// Package nai is a minimal NovelAI image generation client: request types,
// the v4 payload layout and zip response unpacking.
package nai

// Model selects the diffusion model.
type Model string

const (
	ModelV45Full    Model = "nai-diffusion-4-5-full"
	ModelV45Curated Model = "nai-diffusion-4-5-curated"

	DefaultModel = ModelV45Full
)

// QualityTags returns the suffix appended to the positive prompt when quality
// tags are enabled. The curated model additionally de-emphasizes feet and
// pins the rating.
func (m Model) QualityTags() string {
	switch m {
	case ModelV45Curated:
		return ", very aesthetic, masterpiece, no text, -0.8::feet::, rating:general"
	default:
		return ", very aesthetic, masterpiece, no text"
	}
}

// SkipCFGAboveSigma is the model's Variety+ threshold.
func (m Model) SkipCFGAboveSigma() float64 {
	switch m {
	case ModelV45Curated:
		return 36.158893609242725
	default:
		return 58.0
	}
}

// maxUCPreset is the id of the model's "None" preset, which is also the
// highest valid value.
func (m Model) maxUCPreset() uint8 {
	if m == ModelV45Curated {
		return 3
	}
	return 4
}

// Sampler selects the diffusion sampler.
type Sampler string

const (
	SamplerEuler          Sampler = "k_euler"
	SamplerEulerAncestral Sampler = "k_euler_ancestral"
	SamplerDpm2sAncestral Sampler = "k_dpmpp_2s_ancestral"
	SamplerDpm2m          Sampler = "k_dpmpp_2m"
	SamplerDpmSde         Sampler = "k_dpmpp_sde"
	SamplerDpm2mSde       Sampler = "k_dpmpp_2m_sde"
	SamplerDdimV3         Sampler = "ddim_v3"

	DefaultSampler = SamplerEulerAncestral
)

// Noise selects the noise schedule.
type Noise string

const (
	NoiseNative          Noise = "native"
	NoiseKarras          Noise = "karras"
	NoiseExponential     Noise = "exponential"
	NoisePolyExponential Noise = "polyexponential"

	DefaultNoise = NoiseKarras
)

// Center positions a character on the canvas, both axes in [0, 1].
type Center struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// DefaultCenter is the canvas midpoint, NovelAI's "auto" position.
func DefaultCenter() Center {
	return Center{X: 0.5, Y: 0.5}
}

// CharacterPrompt is one character entry of a v4 request.
type CharacterPrompt struct {
	Prompt  string `json:"prompt"`
	UC      string `json:"uc"`
	Center  Center `json:"center"`
	Enabled bool   `json:"enabled"`
}

// ImageGenerationRequest describes one image. Prompts are expected to be
// fully expanded; the client only appends quality tags.
type ImageGenerationRequest struct {
	Model          Model   `json:"model"`
	PromptPositive string  `json:"prompt_positive"`
	PromptNegative string  `json:"prompt_negative"`
	Width          uint32  `json:"width"`
	Height         uint32  `json:"height"`
	Steps          uint32  `json:"steps"`
	Scale          float32 `json:"scale"`
	Sampler        Sampler `json:"sampler"`
	Noise          Noise   `json:"noise"`
	VarietyPlus    bool    `json:"variety_plus"`
	CFGRescale     float32 `json:"cfg_rescale"`

	// Seed; nil or negative means random.
	Seed *int64 `json:"seed,omitempty"`

	CharacterPrompts []CharacterPrompt `json:"character_prompts,omitempty"`

	AddQualityTags bool `json:"add_quality_tags"`
	// UndesiredContentPreset is clamped to the model's valid range;
	// nil means the model's "None" preset.
	UndesiredContentPreset *uint8 `json:"undesired_content_preset,omitempty"`
}

// UCPresetID resolves the undesired content preset for the wire payload.
func (r *ImageGenerationRequest) UCPresetID() uint8 {
	max := r.Model.maxUCPreset()
	if r.UndesiredContentPreset == nil {
		return max
	}
	if *r.UndesiredContentPreset > max {
		return max
	}
	return *r.UndesiredContentPreset
}

// NeedUseCoords reports whether any enabled character was moved off the
// default center, which requires coordinate mode.
func (r *ImageGenerationRequest) NeedUseCoords() bool {
	for _, c := range r.CharacterPrompts {
		if c.Enabled && (c.Center.X != 0.5 || c.Center.Y != 0.5) {
			return true
		}
	}
	return false
}
