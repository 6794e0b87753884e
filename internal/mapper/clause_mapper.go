package mapper

import (
	"compliance-audit-be/internal/entity"
	"compliance-audit-be/internal/model"
)

type ClauseMapper struct{}

func NewClauseMapper() *ClauseMapper {
	return &ClauseMapper{}
}

func (m *ClauseMapper) ToEntity(c *model.Clause) *entity.Clause {
	if c == nil {
		return nil
	}
	return &entity.Clause{
		Id:           c.Id,
		RegulationId: c.RegulationId,
		ClauseNumber: c.ClauseNumber,
		Content:      c.Content,
		Position:     c.Position,
		CreatedAt:    c.CreatedAt,
	}
}

func (m *ClauseMapper) ToModel(c *entity.Clause) *model.Clause {
	if c == nil {
		return nil
	}
	return &model.Clause{
		Id:           c.Id,
		RegulationId: c.RegulationId,
		ClauseNumber: c.ClauseNumber,
		Content:      c.Content,
		Position:     c.Position,
		CreatedAt:    c.CreatedAt,
	}
}

func (m *ClauseMapper) ToEntities(clauses []*model.Clause) []*entity.Clause {
	entities := make([]*entity.Clause, len(clauses))
	for i, c := range clauses {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *ClauseMapper) ToModels(clauses []*entity.Clause) []*model.Clause {
	models := make([]*model.Clause, len(clauses))
	for i, c := range clauses {
		models[i] = m.ToModel(c)
	}
	return models
}
