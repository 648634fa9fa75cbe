package repository

import (
	"context"

	"resq/internal/domain/entity"
)

// SkillRepository defines operations on the skill catalog and rescuer skill links.
type SkillRepository interface {
	// LinkSkills resolves every name against the catalog and links them to the rescuer
	// in a single batch. Any unresolved name aborts the whole operation with
	// domainerrors.ErrUnknownSkill and nothing is written.
	LinkSkills(ctx context.Context, rescuerID string, names []string) error

	// ListByRescuer returns the skills linked to a rescuer, ordered by name.
	ListByRescuer(ctx context.Context, rescuerID string) ([]*entity.Skill, error)
}
