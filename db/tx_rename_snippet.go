package db

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/RhNu/nai-codex/prompt"
)

type RenameSnippetTxParams struct {
	ID      uuid.UUID `json:"id"`
	NewName string    `json:"new_name"`
}

type RenameSnippetTxResult struct {
	Snippet                 Snippet `json:"snippet"`
	CharacterPresetsUpdated int64   `json:"character_presets_updated"`
	MainPresetsUpdated      int64   `json:"main_presets_updated"`
	SettingsUpdated         bool    `json:"settings_updated"`
}

// snippetRef renders the reference form of a snippet name.
func snippetRef(name string) string {
	return "<snippet:" + name + ">"
}

// RenameSnippetTx renames a snippet and rewrites every stored
// "<snippet:OLD>" reference to the new name in the same transaction:
// character presets, main presets and the saved generation settings.
func (s *SQLStore) RenameSnippetTx(ctx context.Context, arg RenameSnippetTxParams) (RenameSnippetTxResult, error) {
	if err := prompt.ValidateSnippetName(arg.NewName); err != nil {
		return RenameSnippetTxResult{}, err
	}

	var result RenameSnippetTxResult

	err := s.execTx(ctx, func(q *Queries) error {
		snippet, err := q.GetSnippet(ctx, arg.ID)
		if err != nil {
			return err
		}

		if snippet.Name == arg.NewName {
			result.Snippet = snippet
			return nil
		}

		renamed, err := q.renameSnippet(ctx, arg.ID, arg.NewName)
		if err != nil {
			return err
		}
		result.Snippet = renamed

		oldRef := snippetRef(snippet.Name)
		newRef := snippetRef(arg.NewName)

		result.CharacterPresetsUpdated, err = q.replaceSnippetRefsInCharacterPresets(ctx, oldRef, newRef)
		if err != nil {
			return err
		}
		result.MainPresetsUpdated, err = q.replaceSnippetRefsInMainPresets(ctx, oldRef, newRef)
		if err != nil {
			return err
		}

		result.SettingsUpdated, err = rewriteSettingsRefs(ctx, q, oldRef, newRef)
		return err
	})
	if err != nil {
		return RenameSnippetTxResult{}, err
	}

	return result, nil
}

// rewriteSettingsRefs rewrites snippet references inside the saved
// generation settings snapshot, if one exists and actually changes.
func rewriteSettingsRefs(ctx context.Context, q *Queries, oldRef, newRef string) (bool, error) {
	settings, ok, err := q.LoadGenerationSettings(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	changed := false
	swap := func(s string) string {
		if strings.Contains(s, oldRef) {
			changed = true
			return strings.ReplaceAll(s, oldRef, newRef)
		}
		return s
	}

	settings.Prompt = swap(settings.Prompt)
	settings.NegativePrompt = swap(settings.NegativePrompt)
	for i := range settings.CharacterSlots {
		settings.CharacterSlots[i].Prompt = swap(settings.CharacterSlots[i].Prompt)
		settings.CharacterSlots[i].UC = swap(settings.CharacterSlots[i].UC)
	}

	if !changed {
		return false, nil
	}

	return true, q.SaveGenerationSettings(ctx, settings)
}
