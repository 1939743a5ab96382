package nai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	generateImageURL = "https://image.novelai.net/ai/generate-image"
	subscriptionURL  = "https://api.novelai.net/user/subscription"

	imageFileName = "image_0.png"
)

// BadStatusError reports a non-2xx answer from the NovelAI API.
type BadStatusError struct {
	Status int
	Body   string
}

func (e *BadStatusError) Error() string {
	return fmt.Sprintf("novelai returned status %d: %s", e.Status, e.Body)
}

// Client talks to the NovelAI image API with a persistent token.
// Generation can take minutes, so cancellation comes from the caller's
// context rather than a client timeout.
type Client struct {
	http  *http.Client
	token string
}

// NewClient builds a client. The token is normalized: surrounding
// whitespace, quotes and a "Bearer " prefix are tolerated, since it is
// usually pasted straight out of browser devtools.
func NewClient(token string) *Client {
	return &Client{
		http:  &http.Client{},
		token: normalizeToken(token),
	}
}

func normalizeToken(token string) string {
	token = strings.TrimSpace(token)
	token = strings.Trim(token, `"`)
	for _, prefix := range []string{"Bearer ", "bearer "} {
		if rest, ok := strings.CutPrefix(token, prefix); ok {
			token = strings.TrimSpace(rest)
			break
		}
	}
	return token
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://novelai.net")
	req.Header.Set("Referer", "https://novelai.net/")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &BadStatusError{Status: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

func (c *Client) post(ctx context.Context, url string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	return c.do(req)
}

// GenerateImage submits one generation request and returns the PNG bytes of
// the produced image. The API answers with a zip archive; the first image is
// extracted from it.
func (c *Client) GenerateImage(ctx context.Context, req *ImageGenerationRequest) ([]byte, error) {
	body, err := c.post(ctx, generateImageURL, buildGeneratePayload(req))
	if err != nil {
		return nil, err
	}

	image, err := extractFileByName(body, imageFileName)
	if err != nil {
		return nil, fmt.Errorf("unpack generation result: %w", err)
	}

	return image, nil
}

// InquireQuota returns the remaining Anlas balance of the account.
func (c *Client) InquireQuota(ctx context.Context) (uint64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, subscriptionURL, nil)
	if err != nil {
		return 0, err
	}

	body, err := c.do(req)
	if err != nil {
		return 0, err
	}

	var sub struct {
		TrainingStepsLeft struct {
			FixedTrainingStepsLeft uint64 `json:"fixedTrainingStepsLeft"`
			PurchasedTrainingSteps uint64 `json:"purchasedTrainingSteps"`
		} `json:"trainingStepsLeft"`
	}
	if err := json.Unmarshal(body, &sub); err != nil {
		return 0, fmt.Errorf("parse subscription response: %w", err)
	}

	return sub.TrainingStepsLeft.FixedTrainingStepsLeft + sub.TrainingStepsLeft.PurchasedTrainingSteps, nil
}

// buildGeneratePayload lays out the v4 wire format. The duplicated prompt
// and character captions inside v4_prompt are what the endpoint actually
// reads; the flat fields are kept for compatibility.
func buildGeneratePayload(req *ImageGenerationRequest) map[string]any {
	seed := normalizeSeed(req.Seed)
	useCoords := req.NeedUseCoords()

	prompt := req.PromptPositive
	if req.AddQualityTags {
		prompt += req.Model.QualityTags()
	}

	var enabledChars []CharacterPrompt
	for _, ch := range req.CharacterPrompts {
		if ch.Enabled {
			enabledChars = append(enabledChars, ch)
		}
	}

	charCaption := func(text string, center Center) map[string]any {
		return map[string]any{
			"char_caption": text,
			"centers":      []map[string]any{{"x": center.X, "y": center.Y}},
		}
	}
	charPositive := make([]map[string]any, 0, len(enabledChars))
	charNegative := make([]map[string]any, 0, len(enabledChars))
	for _, ch := range enabledChars {
		charPositive = append(charPositive, charCaption(ch.Prompt, ch.Center))
		charNegative = append(charNegative, charCaption(ch.UC, ch.Center))
	}

	parameters := map[string]any{
		"params_version":       3,
		"width":                req.Width,
		"height":               req.Height,
		"scale":                req.Scale,
		"sampler":              req.Sampler,
		"steps":                req.Steps,
		"n_samples":            1,
		"ucPreset":             req.UCPresetID(),
		"qualityToggle":        req.AddQualityTags,
		"autoSmea":             false,
		"dynamic_thresholding": false,
		"legacy":               false,
		"legacy_v3_extend":     false,
		"add_original_image":   true,
		"seed":                 seed,
		"negative_prompt":      req.PromptNegative,
		"cfg_rescale":          req.CFGRescale,
		"noise_schedule":       req.Noise,
		"stream":               "msgpack",
		"use_coords":           useCoords,
		"characterPrompts":     enabledChars,
		"v4_prompt": map[string]any{
			"caption": map[string]any{
				"base_caption":  prompt,
				"char_captions": charPositive,
			},
			"use_coords": useCoords,
			"use_order":  true,
		},
		"v4_negative_prompt": map[string]any{
			"caption": map[string]any{
				"base_caption":  req.PromptNegative,
				"char_captions": charNegative,
			},
			"legacy_uc": false,
		},
	}

	if req.Sampler == SamplerEulerAncestral {
		parameters["deliberate_euler_ancestral_bug"] = false
		parameters["prefer_brownian"] = true
	}
	if req.VarietyPlus {
		parameters["skip_cfg_above_sigma"] = req.Model.SkipCFGAboveSigma()
	}

	return map[string]any{
		"input":                prompt,
		"model":                req.Model,
		"action":               "generate",
		"parameters":           parameters,
		"use_new_shared_trial": true,
	}
}
