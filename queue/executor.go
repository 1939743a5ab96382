package queue

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/RhNu/nai-codex/db"
	"github.com/RhNu/nai-codex/gallery"
	"github.com/RhNu/nai-codex/nai"
	"github.com/RhNu/nai-codex/prompt"
)

// ImageGenerator is the client-side surface the executor needs.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req *nai.ImageGenerationRequest) ([]byte, error)
}

// RecordStore persists the history entry of a finished task.
type RecordStore interface {
	AppendGenerationRecord(ctx context.Context, arg db.AppendGenerationRecordParams) (db.GenerationRecord, error)
}

// Executor turns one task into images: it runs the prompt pipeline, calls
// the generation API once per image, writes the files and appends a record.
type Executor struct {
	processor *prompt.Processor
	client    ImageGenerator
	records   RecordStore
	gallery   gallery.Paths
}

func NewExecutor(processor *prompt.Processor, client ImageGenerator, records RecordStore, gallery gallery.Paths) *Executor {
	return &Executor{
		processor: processor,
		client:    client,
		records:   records,
		gallery:   gallery,
	}
}

// Execute runs the whole task. Images are generated sequentially: the API
// serves one request at a time per account anyway, and a mid-task failure
// keeps the images produced so far on disk.
func (e *Executor) Execute(ctx context.Context, task Task) (db.GenerationRecord, error) {
	log.Info().Str("task_id", task.ID.String()).Uint32("count", task.Count).Msg("task started")

	// slots are filtered here so positions line up with the processed output
	active := make([]CharacterSlot, 0, len(task.CharacterSlots))
	promptSlots := make([]prompt.CharacterSlot, 0, len(task.CharacterSlots))
	for _, slot := range task.CharacterSlots {
		ps := slot.promptSlot()
		if ps.Active() {
			active = append(active, slot)
			promptSlots = append(promptSlots, ps)
		}
	}

	result, err := e.processor.Process(ctx, task.RawPrompt, task.NegativePrompt, task.MainPreset, promptSlots)
	if err != nil {
		return db.GenerationRecord{}, fmt.Errorf("process prompts: %w", err)
	}

	characters := make([]nai.CharacterPrompt, len(result.CharacterPrompts))
	for i, ch := range result.CharacterPrompts {
		characters[i] = nai.CharacterPrompt{
			Prompt:  ch.FinalPrompt,
			UC:      ch.FinalUC,
			Center:  active[i].Center,
			Enabled: true,
		}
	}

	count := task.Count
	if count == 0 {
		count = 1
	}

	images := make([]db.GalleryImage, 0, count)
	for i := uint32(0); i < count; i++ {
		seed := e.pickSeed(task.Params.Seed)
		seedInt := int64(seed)

		req := &nai.ImageGenerationRequest{
			Model:                  task.Params.Model,
			PromptPositive:         result.Positive,
			PromptNegative:         result.Negative,
			Width:                  task.Params.Width,
			Height:                 task.Params.Height,
			Steps:                  task.Params.Steps,
			Scale:                  task.Params.Scale,
			Sampler:                task.Params.Sampler,
			Noise:                  task.Params.Noise,
			CFGRescale:             task.Params.CFGRescale,
			VarietyPlus:            task.Params.VarietyPlus,
			Seed:                   &seedInt,
			CharacterPrompts:       characters,
			AddQualityTags:         task.Params.AddQualityTags,
			UndesiredContentPreset: task.Params.UndesiredContentPreset,
		}

		data, err := e.client.GenerateImage(ctx, req)
		if err != nil {
			return db.GenerationRecord{}, fmt.Errorf("generate image %d of %d: %w", i+1, count, err)
		}

		path, err := e.gallery.WriteImage(i, seed, data)
		if err != nil {
			return db.GenerationRecord{}, err
		}

		images = append(images, db.GalleryImage{
			Path:   path,
			Seed:   seed,
			Width:  task.Params.Width,
			Height: task.Params.Height,
		})

		log.Info().Str("task_id", task.ID.String()).Str("path", path).Msg("image saved")
	}

	record, err := e.records.AppendGenerationRecord(ctx, db.AppendGenerationRecordParams{
		TaskID:         task.ID,
		RawPrompt:      task.RawPrompt,
		ExpandedPrompt: result.Positive,
		NegativePrompt: result.Negative,
		Images:         images,
	})
	if err != nil {
		return db.GenerationRecord{}, fmt.Errorf("append record: %w", err)
	}

	return record, nil
}

func (e *Executor) pickSeed(fixed *int64) uint64 {
	if fixed != nil && *fixed > 0 {
		return uint64(*fixed)
	}
	return nai.RandomSeed()
}
