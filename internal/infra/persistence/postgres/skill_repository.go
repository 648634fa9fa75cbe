package postgres

import (
	"context"

	"resq/internal/domain/entity"
	domainerrors "resq/internal/domain/errors"
	"resq/internal/domain/repository"
	"resq/internal/infra/persistence/model"
	"resq/internal/infra/persistence/postgres/query"

	"gorm.io/gorm"
)

// skillRepository implements the domain.SkillRepository interface.
type skillRepository struct {
	q *query.Query
}

// NewSkillRepository is the constructor for skillRepository.
func NewSkillRepository(db *gorm.DB) repository.SkillRepository {
	return &skillRepository{
		q: query.Use(db),
	}
}

// LinkSkills resolves all names with one query and inserts every link with one statement.
// Callers run it inside the registration transaction so a failure leaves no account behind.
func (repo *skillRepository) LinkSkills(ctx context.Context, rescuerID string, names []string) error {
	if len(names) == 0 {
		return nil
	}

	s := repo.q.SkillModel
	catalog, err := s.WithContext(ctx).
		Where(s.Skill.In(names...)).
		Find()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to resolve skills")
	}

	idByName := make(map[string]int, len(catalog))
	for _, row := range catalog {
		idByName[row.Skill] = row.ID
	}

	links := make([]*model.RescuerSkillModel, 0, len(names))
	var missing []string
	seen := make(map[int]struct{}, len(names))
	for _, name := range names {
		id, ok := idByName[name]
		if !ok {
			missing = append(missing, name)

			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		links = append(links, &model.RescuerSkillModel{RescuerID: rescuerID, SkillID: id})
	}

	if len(missing) > 0 {
		return domainerrors.NewUnknownSkillError(missing)
	}

	if err := repo.q.RescuerSkillModel.WithContext(ctx).Create(links...); err != nil {
		if isForeignKeyConstraintViolation(err) {
			// The rescuer row is not visible to this connection.
			return domainerrors.ErrAccountCreationFailed.WrapMessage("skill link references unknown rescuer")
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("skill already linked to rescuer")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link rescuer skills")
	}

	return nil
}

// ListByRescuer returns the skills linked to a rescuer, ordered by name.
func (repo *skillRepository) ListByRescuer(ctx context.Context, rescuerID string) ([]*entity.Skill, error) {
	s, rs := repo.q.SkillModel, repo.q.RescuerSkillModel
	rows, err := s.WithContext(ctx).
		Join(rs, rs.SkillID.EqCol(s.ID)).
		Where(rs.RescuerID.Eq(rescuerID)).
		Order(s.Skill).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list rescuer skills")
	}

	skills := make([]*entity.Skill, 0, len(rows))
	for _, row := range rows {
		skills = append(skills, toSkillDomain(row))
	}

	return skills, nil
}

// toSkillDomain converts a GORM SkillModel to a domain Skill entity.
func toSkillDomain(data *model.SkillModel) *entity.Skill {
	if data == nil {
		return nil
	}

	return &entity.Skill{
		ID:   data.ID,
		Name: data.Skill,
	}
}
