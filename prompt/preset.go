package prompt

import "strings"

// PresetSettings rewrites the main prompt pair. Replace wins outright when
// non-blank; otherwise Before is prepended and After appended, joined with
// ", " unless the accumulated text already ends with a comma. Blank fields
// (nil or whitespace-only) are ignored.
type PresetSettings struct {
	Before  *string `json:"before,omitempty"`
	After   *string `json:"after,omitempty"`
	Replace *string `json:"replace,omitempty"`

	UCBefore  *string `json:"uc_before,omitempty"`
	UCAfter   *string `json:"uc_after,omitempty"`
	UCReplace *string `json:"uc_replace,omitempty"`
}

// IsEmpty reports whether the settings would leave any input unchanged.
func (p PresetSettings) IsEmpty() bool {
	return isBlank(p.Before) && isBlank(p.After) && isBlank(p.Replace) &&
		isBlank(p.UCBefore) && isBlank(p.UCAfter) && isBlank(p.UCReplace)
}

// ApplyPositive rewrites the positive prompt.
func (p PresetSettings) ApplyPositive(raw string) string {
	return applyMain(p.Before, p.After, p.Replace, raw)
}

// ApplyNegative rewrites the undesired content prompt.
func (p PresetSettings) ApplyNegative(raw string) string {
	return applyMain(p.UCBefore, p.UCAfter, p.UCReplace, raw)
}

func applyMain(before, after, replace *string, raw string) string {
	if !isBlank(replace) {
		return *replace
	}

	var b strings.Builder

	if !isBlank(before) {
		b.WriteString(strings.TrimSpace(*before))
		if needsComma(b.String()) {
			b.WriteString(", ")
		}
	}

	b.WriteString(raw)

	if !isBlank(after) {
		if needsComma(b.String()) {
			b.WriteString(", ")
		}
		b.WriteString(strings.TrimSpace(*after))
	}

	return b.String()
}

func needsComma(s string) bool {
	return s != "" && !strings.HasSuffix(strings.TrimSpace(s), ",")
}

// CharacterRules rewrites one character slot. Same replace-wins semantics as
// PresetSettings. The positive side is joined with a plain space because
// character prompts are usually tag runs; the UC side joins with ", ".
type CharacterRules struct {
	Before  *string `json:"before,omitempty"`
	After   *string `json:"after,omitempty"`
	Replace *string `json:"replace,omitempty"`

	UCBefore  *string `json:"uc_before,omitempty"`
	UCAfter   *string `json:"uc_after,omitempty"`
	UCReplace *string `json:"uc_replace,omitempty"`
}

// Apply rewrites the character's positive prompt.
func (r CharacterRules) Apply(raw string) string {
	if !isBlank(r.Replace) {
		return *r.Replace
	}

	var b strings.Builder

	if !isBlank(r.Before) {
		b.WriteString(strings.TrimSpace(*r.Before))
		if s := b.String(); s != "" && !strings.HasSuffix(s, " ") {
			b.WriteByte(' ')
		}
	}

	b.WriteString(raw)

	if !isBlank(r.After) {
		if s := b.String(); s != "" && !strings.HasSuffix(s, " ") {
			b.WriteByte(' ')
		}
		b.WriteString(strings.TrimSpace(*r.After))
	}

	return b.String()
}

// ApplyUC rewrites the character's undesired content prompt.
func (r CharacterRules) ApplyUC(raw string) string {
	if !isBlank(r.UCReplace) {
		return *r.UCReplace
	}

	var b strings.Builder

	if !isBlank(r.UCBefore) {
		b.WriteString(strings.TrimSpace(*r.UCBefore))
		if s := b.String(); s != "" && !strings.HasSuffix(s, " ") && !strings.HasSuffix(s, ",") {
			b.WriteString(", ")
		}
	}

	b.WriteString(raw)

	if !isBlank(r.UCAfter) {
		if s := b.String(); s != "" && !strings.HasSuffix(s, " ") && !strings.HasSuffix(s, ",") {
			b.WriteString(", ")
		}
		b.WriteString(strings.TrimSpace(*r.UCAfter))
	}

	return b.String()
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
