package service

import (
	"context"

	"compliance-audit-be/internal/dto"
	"compliance-audit-be/internal/entity"
	"compliance-audit-be/internal/pkg/apperror"
	"compliance-audit-be/internal/repository/specification"
	"compliance-audit-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IMatcherService interface {
	Match(ctx context.Context, roleName, documentType string) (*dto.MatchResponse, error)
	Search(ctx context.Context, keyword string, limit int) (*dto.SearchResponse, error)
	ListRoles(ctx context.Context) ([]*dto.RoleResponse, error)
	ListDocumentTypes(ctx context.Context) ([]*dto.DocumentTypeResponse, error)
	ListRegulations(ctx context.Context) ([]*dto.RegulationSummary, error)
	ListAuditRules(ctx context.Context) ([]*dto.AuditRuleView, error)
}

type matcherService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMatcherService(uowFactory unitofwork.RepositoryFactory) IMatcherService {
	return &matcherService{
		uowFactory: uowFactory,
	}
}

// Match resolves a role and document type by exact name and returns the
// clauses their audit rules point at, highest priority first. An unknown
// name is NotFound; a known pair with no rules is an empty result.
func (s *matcherService) Match(ctx context.Context, roleName, documentType string) (*dto.MatchResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	role, err := uow.AuditorRoleRepository().FindOne(ctx, specification.ByRoleName{RoleName: roleName})
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, apperror.NotFound("auditor role %q not found", roleName)
	}

	docType, err := uow.DocumentTypeRepository().FindOne(ctx, specification.ByTypeName{TypeName: documentType})
	if err != nil {
		return nil, err
	}
	if docType == nil {
		return nil, apperror.NotFound("document type %q not found", documentType)
	}

	// Priority DESC only. Ties keep the store's insertion order; no
	// secondary sort key is applied.
	rules, err := uow.AuditRuleRepository().FindAll(ctx,
		specification.ByRoleID{RoleID: role.Id},
		specification.ByDocumentTypeID{DocumentTypeID: docType.Id},
		specification.OrderBy{Field: "priority", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := &dto.MatchResponse{
		Role:           roleName,
		DocumentType:   documentType,
		MatchedClauses: make([]dto.MatchedClause, 0, len(rules)),
	}
	if len(rules) == 0 {
		return response, nil
	}

	clauseIds := make([]uuid.UUID, 0, len(rules))
	for _, rule := range rules {
		clauseIds = append(clauseIds, rule.ClauseId)
	}

	clausesById, regulationsById, err := s.loadClauseJoin(ctx, uow, clauseIds)
	if err != nil {
		return nil, err
	}

	for _, rule := range rules {
		clause, ok := clausesById[rule.ClauseId]
		if !ok {
			// Rule points at a clause removed underneath it; skip
			// rather than fail the whole match.
			continue
		}
		regulation := regulationsById[clause.RegulationId]
		matched := dto.MatchedClause{
			ClauseId:     clause.Id,
			RegulationId: clause.RegulationId,
			ClauseNumber: clause.ClauseNumber,
			Content:      clause.Content,
			Source:       rule.Source,
			Priority:     rule.Priority,
		}
		if regulation != nil {
			matched.RegulationTitle = regulation.Title
		}
		response.MatchedClauses = append(response.MatchedClauses, matched)
	}

	response.Total = len(response.MatchedClauses)
	return response, nil
}

// Search performs a case-sensitive substring search over clause content,
// capped at limit results in store iteration order.
func (s *matcherService) Search(ctx context.Context, keyword string, limit int) (*dto.SearchResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	clauses, err := uow.ClauseRepository().FindAll(ctx,
		specification.ContentContains{Keyword: keyword},
		specification.Limit{N: limit},
	)
	if err != nil {
		return nil, err
	}

	regulationIds := make([]uuid.UUID, 0, len(clauses))
	for _, clause := range clauses {
		regulationIds = append(regulationIds, clause.RegulationId)
	}

	regulationsById := make(map[uuid.UUID]*entity.Regulation)
	if len(regulationIds) > 0 {
		regulations, err := uow.RegulationRepository().FindAll(ctx, specification.ByIDs{IDs: regulationIds})
		if err != nil {
			return nil, err
		}
		for _, regulation := range regulations {
			regulationsById[regulation.Id] = regulation
		}
	}

	response := &dto.SearchResponse{
		Keyword: keyword,
		Results: make([]dto.SearchResult, 0, len(clauses)),
	}
	for _, clause := range clauses {
		result := dto.SearchResult{
			ClauseId:     clause.Id,
			ClauseNumber: clause.ClauseNumber,
			Content:      clause.Content,
		}
		if regulation, ok := regulationsById[clause.RegulationId]; ok {
			result.RegulationTitle = regulation.Title
		}
		response.Results = append(response.Results, result)
	}
	response.Total = len(response.Results)
	return response, nil
}

func (s *matcherService) ListRoles(ctx context.Context) ([]*dto.RoleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	roles, err := uow.AuditorRoleRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.RoleResponse, 0, len(roles))
	for _, role := range roles {
		result = append(result, &dto.RoleResponse{
			Id:               role.Id,
			RoleName:         role.RoleName,
			Responsibilities: role.Responsibilities,
		})
	}
	return result, nil
}

func (s *matcherService) ListDocumentTypes(ctx context.Context) ([]*dto.DocumentTypeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	docTypes, err := uow.DocumentTypeRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DocumentTypeResponse, 0, len(docTypes))
	for _, docType := range docTypes {
		result = append(result, &dto.DocumentTypeResponse{
			Id:          docType.Id,
			TypeName:    docType.TypeName,
			Description: docType.Description,
		})
	}
	return result, nil
}

// ListRegulations returns every regulation with its clause count. The count
// is a live query per regulation, not a cached column.
func (s *matcherService) ListRegulations(ctx context.Context) ([]*dto.RegulationSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	regulations, err := uow.RegulationRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.RegulationSummary, 0, len(regulations))
	for _, regulation := range regulations {
		count, err := uow.ClauseRepository().Count(ctx, specification.ByRegulationID{RegulationID: regulation.Id})
		if err != nil {
			return nil, err
		}
		result = append(result, &dto.RegulationSummary{
			Id:          regulation.Id,
			Title:       regulation.Title,
			SourceFile:  regulation.SourceFile,
			ClauseCount: count,
		})
	}
	return result, nil
}

func (s *matcherService) ListAuditRules(ctx context.Context) ([]*dto.AuditRuleView, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rules, err := uow.AuditRuleRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return []*dto.AuditRuleView{}, nil
	}

	roles, err := uow.AuditorRoleRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	rolesById := make(map[uuid.UUID]*entity.AuditorRole, len(roles))
	for _, role := range roles {
		rolesById[role.Id] = role
	}

	docTypes, err := uow.DocumentTypeRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	docTypesById := make(map[uuid.UUID]*entity.DocumentType, len(docTypes))
	for _, docType := range docTypes {
		docTypesById[docType.Id] = docType
	}

	clauseIds := make([]uuid.UUID, 0, len(rules))
	for _, rule := range rules {
		clauseIds = append(clauseIds, rule.ClauseId)
	}
	clausesById, regulationsById, err := s.loadClauseJoin(ctx, uow, clauseIds)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AuditRuleView, 0, len(rules))
	for _, rule := range rules {
		clause, ok := clausesById[rule.ClauseId]
		if !ok {
			continue
		}
		view := &dto.AuditRuleView{
			Id:       rule.Id,
			Source:   rule.Source,
			Priority: rule.Priority,
			Clause: dto.RuleClauseRef{
				Id:           clause.Id,
				ClauseNumber: clause.ClauseNumber,
				Content:      clause.Content,
			},
		}
		if role, ok := rolesById[rule.RoleId]; ok {
			view.Role = dto.RuleRoleRef{Id: role.Id, RoleName: role.RoleName}
		}
		if docType, ok := docTypesById[rule.DocumentTypeId]; ok {
			view.DocumentType = dto.RuleDocumentTypeRef{Id: docType.Id, TypeName: docType.TypeName}
		}
		if regulation, ok := regulationsById[clause.RegulationId]; ok {
			view.Clause.Regulation = dto.RuleRegulationRef{Id: regulation.Id, Title: regulation.Title}
		}
		result = append(result, view)
	}
	return result, nil
}

// loadClauseJoin fetches clauses by id plus their owning regulations, keyed
// for in-memory joining.
func (s *matcherService) loadClauseJoin(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	clauseIds []uuid.UUID,
) (map[uuid.UUID]*entity.Clause, map[uuid.UUID]*entity.Regulation, error) {
	clauses, err := uow.ClauseRepository().FindAll(ctx, specification.ByIDs{IDs: clauseIds})
	if err != nil {
		return nil, nil, err
	}

	clausesById := make(map[uuid.UUID]*entity.Clause, len(clauses))
	regulationIds := make([]uuid.UUID, 0, len(clauses))
	for _, clause := range clauses {
		clausesById[clause.Id] = clause
		regulationIds = append(regulationIds, clause.RegulationId)
	}

	regulationsById := make(map[uuid.UUID]*entity.Regulation)
	if len(regulationIds) > 0 {
		regulations, err := uow.RegulationRepository().FindAll(ctx, specification.ByIDs{IDs: regulationIds})
		if err != nil {
			return nil, nil, err
		}
		for _, regulation := range regulations {
			regulationsById[regulation.Id] = regulation
		}
	}

	return clausesById, regulationsById, nil
}
