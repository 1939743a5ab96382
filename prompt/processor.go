package prompt

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Storage is the read-only lookup surface the processor needs. The database
// layer satisfies it via a thin adapter.
type Storage interface {
	// SnippetContent returns the content of the named snippet. The bool
	// reports existence; the error is for storage failures only.
	SnippetContent(ctx context.Context, name string) (string, bool, error)
	// CharacterRules returns the rewrite rules of a stored character preset.
	// A missing preset is (nil, false, nil), not an error.
	CharacterRules(ctx context.Context, id uuid.UUID) (*CharacterRules, bool, error)
}

// CharacterSlot is one character prompt as the user configured it.
type CharacterSlot struct {
	Prompt   string     `json:"prompt"`
	UC       string     `json:"uc"`
	Enabled  bool       `json:"enabled"`
	PresetID *uuid.UUID `json:"preset_id,omitempty"`
}

// Active reports whether the slot takes part in generation: it must be
// enabled and either carry a non-blank prompt or have a preset attached.
func (s CharacterSlot) Active() bool {
	return s.Enabled && (strings.TrimSpace(s.Prompt) != "" || s.PresetID != nil)
}

// ProcessedCharacterPrompt shows one character slot after each pipeline stage.
type ProcessedCharacterPrompt struct {
	AfterPreset   string `json:"after_preset"`
	FinalPrompt   string `json:"final_prompt"`
	UCAfterPreset string `json:"uc_after_preset"`
	FinalUC       string `json:"final_uc"`
	Enabled       bool   `json:"enabled"`
}

// DryRunResult exposes every intermediate stage of the pipeline so the
// editor can preview exactly what would be sent.
type DryRunResult struct {
	RawPositive         string                     `json:"raw_positive"`
	PositiveAfterPreset string                     `json:"positive_after_preset"`
	FinalPositive       string                     `json:"final_positive"`
	RawNegative         string                     `json:"raw_negative"`
	NegativeAfterPreset string                     `json:"negative_after_preset"`
	FinalNegative       string                     `json:"final_negative"`
	CharacterPrompts    []ProcessedCharacterPrompt `json:"character_prompts"`
}

// ProcessResult is the final output of the pipeline, ready for generation.
type ProcessResult struct {
	Positive         string
	Negative         string
	CharacterPrompts []ProcessedCharacterPrompt
}

// Processor runs the full prompt pipeline: main preset rewrite, character
// preset rewrite, then snippet expansion.
type Processor struct {
	storage Storage
}

func NewProcessor(storage Storage) *Processor {
	return &Processor{storage: storage}
}

func (p *Processor) lookup(ctx context.Context) SnippetLookup {
	return func(name string) (string, bool, error) {
		return p.storage.SnippetContent(ctx, name)
	}
}

// DryRun runs the pipeline without side effects and reports every stage.
func (p *Processor) DryRun(
	ctx context.Context,
	rawPositive, rawNegative string,
	main PresetSettings,
	slots []CharacterSlot,
) (*DryRunResult, error) {
	lookup := p.lookup(ctx)

	positiveAfterPreset := main.ApplyPositive(rawPositive)
	negativeAfterPreset := main.ApplyNegative(rawNegative)

	finalPositive, err := ExpandSnippets(positiveAfterPreset, lookup)
	if err != nil {
		return nil, err
	}
	finalNegative, err := ExpandSnippets(negativeAfterPreset, lookup)
	if err != nil {
		return nil, err
	}

	characters, err := p.processSlots(ctx, slots)
	if err != nil {
		return nil, err
	}

	return &DryRunResult{
		RawPositive:         rawPositive,
		PositiveAfterPreset: positiveAfterPreset,
		FinalPositive:       finalPositive,
		RawNegative:         rawNegative,
		NegativeAfterPreset: negativeAfterPreset,
		FinalNegative:       finalNegative,
		CharacterPrompts:    characters,
	}, nil
}

// Process runs the pipeline for real generation. The character results are
// returned in the order of the active slots.
func (p *Processor) Process(
	ctx context.Context,
	rawPositive, rawNegative string,
	main PresetSettings,
	slots []CharacterSlot,
) (*ProcessResult, error) {
	lookup := p.lookup(ctx)

	positive, err := ExpandSnippets(main.ApplyPositive(rawPositive), lookup)
	if err != nil {
		return nil, err
	}
	negative, err := ExpandSnippets(main.ApplyNegative(rawNegative), lookup)
	if err != nil {
		return nil, err
	}

	characters, err := p.processSlots(ctx, slots)
	if err != nil {
		return nil, err
	}

	return &ProcessResult{
		Positive:         positive,
		Negative:         negative,
		CharacterPrompts: characters,
	}, nil
}

// processSlots rewrites and expands every active slot. A slot whose preset id
// no longer resolves keeps its prompt unrewritten; stale ids are not errors.
func (p *Processor) processSlots(ctx context.Context, slots []CharacterSlot) ([]ProcessedCharacterPrompt, error) {
	lookup := p.lookup(ctx)
	var out []ProcessedCharacterPrompt

	for _, slot := range slots {
		if !slot.Active() {
			continue
		}

		positive := slot.Prompt
		negative := slot.UC

		if slot.PresetID != nil {
			rules, ok, err := p.storage.CharacterRules(ctx, *slot.PresetID)
			if err != nil {
				return nil, err
			}
			if ok {
				positive = rules.Apply(positive)
				negative = rules.ApplyUC(negative)
			}
		}

		finalPositive, err := ExpandSnippets(positive, lookup)
		if err != nil {
			return nil, err
		}
		finalNegative, err := ExpandSnippets(negative, lookup)
		if err != nil {
			return nil, err
		}

		out = append(out, ProcessedCharacterPrompt{
			AfterPreset:   positive,
			FinalPrompt:   finalPositive,
			UCAfterPreset: negative,
			FinalUC:       finalNegative,
			Enabled:       true,
		})
	}

	return out, nil
}
