package mapper

import (
	"compliance-audit-be/internal/entity"
	"compliance-audit-be/internal/model"
)

type AuditRuleMapper struct{}

func NewAuditRuleMapper() *AuditRuleMapper {
	return &AuditRuleMapper{}
}

func (m *AuditRuleMapper) ToEntity(r *model.AuditRule) *entity.AuditRule {
	if r == nil {
		return nil
	}
	return &entity.AuditRule{
		Id:             r.Id,
		RoleId:         r.RoleId,
		DocumentTypeId: r.DocumentTypeId,
		ClauseId:       r.ClauseId,
		Source:         r.Source,
		Priority:       r.Priority,
		CreatedAt:      r.CreatedAt,
	}
}

func (m *AuditRuleMapper) ToModel(r *entity.AuditRule) *model.AuditRule {
	if r == nil {
		return nil
	}
	return &model.AuditRule{
		Id:             r.Id,
		RoleId:         r.RoleId,
		DocumentTypeId: r.DocumentTypeId,
		ClauseId:       r.ClauseId,
		Source:         r.Source,
		Priority:       r.Priority,
		CreatedAt:      r.CreatedAt,
	}
}

func (m *AuditRuleMapper) ToEntities(rules []*model.AuditRule) []*entity.AuditRule {
	entities := make([]*entity.AuditRule, len(rules))
	for i, r := range rules {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
