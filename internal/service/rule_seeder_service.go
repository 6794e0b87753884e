package service

import (
	"context"

	"compliance-audit-be/internal/entity"
	"compliance-audit-be/internal/pkg/apperror"
	"compliance-audit-be/internal/pkg/logger"
	"compliance-audit-be/internal/repository/specification"
	"compliance-audit-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type RoleSeed struct {
	RoleName         string
	Responsibilities string
}

type DocumentTypeSeed struct {
	TypeName    string
	Description string
}

// RuleMapping binds a role/document-type pair to clauses located by exemplar
// keyword substrings.
type RuleMapping struct {
	Role           string
	DocumentType   string
	ClauseKeywords []string
}

type SeedOptions struct {
	// KeywordPrefixLength is how many runes of each keyword are used for
	// the substring search. The checklist data was curated against a
	// 20-rune prefix; keep it unless the exemplars change.
	KeywordPrefixLength int
	Source              string
	Priority            int
}

func DefaultSeedOptions() SeedOptions {
	return SeedOptions{
		KeywordPrefixLength: 20,
		Source:              entity.RuleSourceExample,
		Priority:            10,
	}
}

// AutoLinkOptions is the seed profile used by the ingestion-time consumer:
// same prefix search, tagged "auto" at a lower priority tier.
func AutoLinkOptions() SeedOptions {
	return SeedOptions{
		KeywordPrefixLength: 20,
		Source:              entity.RuleSourceAuto,
		Priority:            5,
	}
}

type IRuleSeederService interface {
	SeedRoles(ctx context.Context, roles []RoleSeed) error
	SeedDocumentTypes(ctx context.Context, documentTypes []DocumentTypeSeed) error
	SeedRules(ctx context.Context, mappings []RuleMapping, opts SeedOptions) (int, error)
	LinkRegulation(ctx context.Context, regulationId uuid.UUID, mappings []RuleMapping, opts SeedOptions) (int, error)
}

type ruleSeederService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewRuleSeederService(uowFactory unitofwork.RepositoryFactory, sysLogger logger.ILogger) IRuleSeederService {
	return &ruleSeederService{
		uowFactory: uowFactory,
		logger:     sysLogger,
	}
}

// SeedRoles creates any missing auditor roles. Existing names are left
// untouched, so re-running is safe.
func (s *ruleSeederService) SeedRoles(ctx context.Context, roles []RoleSeed) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	for _, seed := range roles {
		existing, err := uow.AuditorRoleRepository().FindOne(ctx, specification.ByRoleName{RoleName: seed.RoleName})
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		role := &entity.AuditorRole{
			Id:               uuid.New(),
			RoleName:         seed.RoleName,
			Responsibilities: seed.Responsibilities,
		}
		if err := uow.AuditorRoleRepository().Create(ctx, role); err != nil {
			return err
		}
		s.logger.Info("seeder", "created auditor role", map[string]interface{}{"role_name": seed.RoleName})
	}
	return nil
}

func (s *ruleSeederService) SeedDocumentTypes(ctx context.Context, documentTypes []DocumentTypeSeed) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	for _, seed := range documentTypes {
		existing, err := uow.DocumentTypeRepository().FindOne(ctx, specification.ByTypeName{TypeName: seed.TypeName})
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		docType := &entity.DocumentType{
			Id:          uuid.New(),
			TypeName:    seed.TypeName,
			Description: seed.Description,
		}
		if err := uow.DocumentTypeRepository().Create(ctx, docType); err != nil {
			return err
		}
		s.logger.Info("seeder", "created document type", map[string]interface{}{"type_name": seed.TypeName})
	}
	return nil
}

// SeedRules links each keyword's first matching clause to its role and
// document type. The triple existence check makes re-runs no-ops. Returns
// the number of rules actually created.
func (s *ruleSeederService) SeedRules(ctx context.Context, mappings []RuleMapping, opts SeedOptions) (int, error) {
	return s.linkClauses(ctx, mappings, opts, nil)
}

// LinkRegulation is the ingestion-time variant: the clause search is
// restricted to one regulation so only new clauses can be linked.
func (s *ruleSeederService) LinkRegulation(ctx context.Context, regulationId uuid.UUID, mappings []RuleMapping, opts SeedOptions) (int, error) {
	return s.linkClauses(ctx, mappings, opts, &regulationId)
}

func (s *ruleSeederService) linkClauses(
	ctx context.Context,
	mappings []RuleMapping,
	opts SeedOptions,
	regulationId *uuid.UUID,
) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	created := 0
	for _, mapping := range mappings {
		role, err := uow.AuditorRoleRepository().FindOne(ctx, specification.ByRoleName{RoleName: mapping.Role})
		if err != nil {
			return created, err
		}
		if role == nil {
			return created, apperror.NotFound("auditor role %q not found", mapping.Role)
		}

		docType, err := uow.DocumentTypeRepository().FindOne(ctx, specification.ByTypeName{TypeName: mapping.DocumentType})
		if err != nil {
			return created, err
		}
		if docType == nil {
			return created, apperror.NotFound("document type %q not found", mapping.DocumentType)
		}

		for _, keyword := range mapping.ClauseKeywords {
			prefix := truncateRunes(keyword, opts.KeywordPrefixLength)

			specs := []specification.Specification{specification.ContentContains{Keyword: prefix}}
			if regulationId != nil {
				specs = append(specs, specification.ByRegulationID{RegulationID: *regulationId})
			}

			// First match in store insertion order. Primary keys are
			// random UUIDs, so the lookup orders by ingestion time and
			// document position instead of relying on the default
			// primary-key ordering.
			specs = append(specs,
				specification.OrderBy{Field: "created_at"},
				specification.OrderBy{Field: "position"},
			)
			clause, err := uow.ClauseRepository().FindOne(ctx, specs...)
			if err != nil {
				return created, err
			}
			if clause == nil {
				continue
			}

			existing, err := uow.AuditRuleRepository().FindOne(ctx,
				specification.ByRoleID{RoleID: role.Id},
				specification.ByDocumentTypeID{DocumentTypeID: docType.Id},
				specification.ByClauseID{ClauseID: clause.Id},
			)
			if err != nil {
				return created, err
			}
			if existing != nil {
				continue
			}

			rule := &entity.AuditRule{
				Id:             uuid.New(),
				RoleId:         role.Id,
				DocumentTypeId: docType.Id,
				ClauseId:       clause.Id,
				Source:         opts.Source,
				Priority:       opts.Priority,
			}
			if err := uow.AuditRuleRepository().Create(ctx, rule); err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
