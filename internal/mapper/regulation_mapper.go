package mapper

import (
	"compliance-audit-be/internal/entity"
	"compliance-audit-be/internal/model"
)

type RegulationMapper struct{}

func NewRegulationMapper() *RegulationMapper {
	return &RegulationMapper{}
}

func (m *RegulationMapper) ToEntity(r *model.Regulation) *entity.Regulation {
	if r == nil {
		return nil
	}
	return &entity.Regulation{
		Id:         r.Id,
		Title:      r.Title,
		SourceFile: r.SourceFile,
		CreatedAt:  r.CreatedAt,
	}
}

func (m *RegulationMapper) ToModel(r *entity.Regulation) *model.Regulation {
	if r == nil {
		return nil
	}
	return &model.Regulation{
		Id:         r.Id,
		Title:      r.Title,
		SourceFile: r.SourceFile,
		CreatedAt:  r.CreatedAt,
	}
}

func (m *RegulationMapper) ToEntities(regulations []*model.Regulation) []*entity.Regulation {
	entities := make([]*entity.Regulation, len(regulations))
	for i, r := range regulations {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
