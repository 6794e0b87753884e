package mapper

import (
	"compliance-audit-be/internal/entity"
	"compliance-audit-be/internal/model"
)

type AuditorRoleMapper struct{}

func NewAuditorRoleMapper() *AuditorRoleMapper {
	return &AuditorRoleMapper{}
}

func (m *AuditorRoleMapper) ToEntity(r *model.AuditorRole) *entity.AuditorRole {
	if r == nil {
		return nil
	}
	return &entity.AuditorRole{
		Id:               r.Id,
		RoleName:         r.RoleName,
		Responsibilities: r.Responsibilities,
		CreatedAt:        r.CreatedAt,
	}
}

func (m *AuditorRoleMapper) ToModel(r *entity.AuditorRole) *model.AuditorRole {
	if r == nil {
		return nil
	}
	return &model.AuditorRole{
		Id:               r.Id,
		RoleName:         r.RoleName,
		Responsibilities: r.Responsibilities,
		CreatedAt:        r.CreatedAt,
	}
}

func (m *AuditorRoleMapper) ToEntities(roles []*model.AuditorRole) []*entity.AuditorRole {
	entities := make([]*entity.AuditorRole, len(roles))
	for i, r := range roles {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
