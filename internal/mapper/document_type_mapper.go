package mapper

import (
	"compliance-audit-be/internal/entity"
	"compliance-audit-be/internal/model"
)

type DocumentTypeMapper struct{}

func NewDocumentTypeMapper() *DocumentTypeMapper {
	return &DocumentTypeMapper{}
}

func (m *DocumentTypeMapper) ToEntity(d *model.DocumentType) *entity.DocumentType {
	if d == nil {
		return nil
	}
	return &entity.DocumentType{
		Id:          d.Id,
		TypeName:    d.TypeName,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

func (m *DocumentTypeMapper) ToModel(d *entity.DocumentType) *model.DocumentType {
	if d == nil {
		return nil
	}
	return &model.DocumentType{
		Id:          d.Id,
		TypeName:    d.TypeName,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

func (m *DocumentTypeMapper) ToEntities(types []*model.DocumentType) []*entity.DocumentType {
	entities := make([]*entity.DocumentType, len(types))
	for i, d := range types {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
