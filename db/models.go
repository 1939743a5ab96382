package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/RhNu/nai-codex/prompt"
	"github.com/RhNu/nai-codex/util"
)

// Snippet is a named, reusable prompt fragment referenced as "<snippet:NAME>".
type Snippet struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Tags        []string    `json:"tags"`
	Description pgtype.Text `json:"description"`
	Content     string      `json:"content"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// CharacterPreset stores rewrite rules for one character slot.
type CharacterPreset struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description pgtype.Text `json:"description"`
	Before      pgtype.Text `json:"before"`
	After       pgtype.Text `json:"after"`
	Replace     pgtype.Text `json:"replace"`
	UCBefore    pgtype.Text `json:"uc_before"`
	UCAfter     pgtype.Text `json:"uc_after"`
	UCReplace   pgtype.Text `json:"uc_replace"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Rules converts the stored columns into the processor's rewrite rules.
func (p CharacterPreset) Rules() prompt.CharacterRules {
	return prompt.CharacterRules{
		Before:    util.PgxTextToString(p.Before),
		After:     util.PgxTextToString(p.After),
		Replace:   util.PgxTextToString(p.Replace),
		UCBefore:  util.PgxTextToString(p.UCBefore),
		UCAfter:   util.PgxTextToString(p.UCAfter),
		UCReplace: util.PgxTextToString(p.UCReplace),
	}
}

// MainPreset stores rewrite rules for the main prompt pair.
type MainPreset struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description pgtype.Text `json:"description"`
	Before      pgtype.Text `json:"before"`
	After       pgtype.Text `json:"after"`
	Replace     pgtype.Text `json:"replace"`
	UCBefore    pgtype.Text `json:"uc_before"`
	UCAfter     pgtype.Text `json:"uc_after"`
	UCReplace   pgtype.Text `json:"uc_replace"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Settings converts the stored columns into the processor's settings form.
func (p MainPreset) Settings() prompt.PresetSettings {
	return prompt.PresetSettings{
		Before:    util.PgxTextToString(p.Before),
		After:     util.PgxTextToString(p.After),
		Replace:   util.PgxTextToString(p.Replace),
		UCBefore:  util.PgxTextToString(p.UCBefore),
		UCAfter:   util.PgxTextToString(p.UCAfter),
		UCReplace: util.PgxTextToString(p.UCReplace),
	}
}

// GalleryImage is one produced file of a generation run.
type GalleryImage struct {
	Path   string `json:"path"`
	Seed   uint64 `json:"seed"`
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// GenerationRecord is the history entry of one completed task.
type GenerationRecord struct {
	ID             uuid.UUID      `json:"id"`
	TaskID         uuid.UUID      `json:"task_id"`
	RawPrompt      string         `json:"raw_prompt"`
	ExpandedPrompt string         `json:"expanded_prompt"`
	NegativePrompt string         `json:"negative_prompt"`
	Images         []GalleryImage `json:"images"`
	CreatedAt      time.Time      `json:"created_at"`
}

// GenerationSettings is the last submitted generation form, persisted as a
// single snapshot so the editor can restore itself.
type GenerationSettings struct {
	Prompt         string                 `json:"prompt"`
	NegativePrompt string                 `json:"negative_prompt"`
	Count          uint32                 `json:"count"`
	Params         json.RawMessage        `json:"params,omitempty"`
	CharacterSlots []prompt.CharacterSlot `json:"character_slots,omitempty"`
	MainPresetID   *uuid.UUID             `json:"main_preset_id,omitempty"`
}
