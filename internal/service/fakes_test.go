package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"compliance-audit-be/internal/entity"
	"compliance-audit-be/internal/repository/contract"
	"compliance-audit-be/internal/repository/specification"
	"compliance-audit-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repository doubles. Specifications are interpreted by type
// switch so the services run against the same query vocabulary as the
// GORM implementations.

type fakeStore struct {
	regulations []*entity.Regulation
	clauses     []*entity.Clause
	roles       []*entity.AuditorRole
	docTypes    []*entity.DocumentType
	rules       []*entity.AuditRule

	failClauseBatch bool
}

type fakeUnitOfWork struct {
	store *fakeStore

	inTx      bool
	pending   []func(*fakeStore)
	commits   int
	rollbacks int
}

func (u *fakeUnitOfWork) apply(op func(*fakeStore)) {
	if u.inTx {
		u.pending = append(u.pending, op)
		return
	}
	op(u.store)
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	u.inTx = true
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	for _, op := range u.pending {
		op(u.store)
	}
	u.pending = nil
	u.inTx = false
	u.commits++
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	if !u.inTx {
		return nil
	}
	u.pending = nil
	u.inTx = false
	u.rollbacks++
	return nil
}

func (u *fakeUnitOfWork) RegulationRepository() contract.RegulationRepository {
	return &fakeRegulationRepo{uow: u}
}

func (u *fakeUnitOfWork) ClauseRepository() contract.ClauseRepository {
	return &fakeClauseRepo{uow: u}
}

func (u *fakeUnitOfWork) AuditorRoleRepository() contract.AuditorRoleRepository {
	return &fakeAuditorRoleRepo{uow: u}
}

func (u *fakeUnitOfWork) DocumentTypeRepository() contract.DocumentTypeRepository {
	return &fakeDocumentTypeRepo{uow: u}
}

func (u *fakeUnitOfWork) AuditRuleRepository() contract.AuditRuleRepository {
	return &fakeAuditRuleRepo{uow: u}
}

type fakeFactory struct {
	store *fakeStore
	uows  []*fakeUnitOfWork
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{store: &fakeStore{}}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	u := &fakeUnitOfWork{store: f.store}
	f.uows = append(f.uows, u)
	return u
}

func (f *fakeFactory) rollbacks() int {
	total := 0
	for _, u := range f.uows {
		total += u.rollbacks
	}
	return total
}

func containsUUID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// Regulations

type fakeRegulationRepo struct{ uow *fakeUnitOfWork }

func (r *fakeRegulationRepo) Create(ctx context.Context, regulation *entity.Regulation) error {
	record := *regulation
	r.uow.apply(func(s *fakeStore) { s.regulations = append(s.regulations, &record) })
	return nil
}

func (r *fakeRegulationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.uow.apply(func(s *fakeStore) {
		kept := s.regulations[:0]
		for _, regulation := range s.regulations {
			if regulation.Id != id {
				kept = append(kept, regulation)
			}
		}
		s.regulations = kept
	})
	return nil
}

func (r *fakeRegulationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Regulation, error) {
	matches := r.filter(specs)
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

func (r *fakeRegulationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Regulation, error) {
	return r.filter(specs), nil
}

func (r *fakeRegulationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.filter(specs))), nil
}

func (r *fakeRegulationRepo) filter(specs []specification.Specification) []*entity.Regulation {
	out := make([]*entity.Regulation, 0)
	for _, regulation := range r.uow.store.regulations {
		keep := true
		for _, sp := range specs {
			switch s := sp.(type) {
			case specification.ByID:
				keep = keep && regulation.Id == s.ID
			case specification.ByIDs:
				keep = keep && containsUUID(s.IDs, regulation.Id)
			case specification.ByTitle:
				keep = keep && regulation.Title == s.Title
			}
		}
		if keep {
			out = append(out, regulation)
		}
	}
	return out
}

// Clauses

type fakeClauseRepo struct{ uow *fakeUnitOfWork }

func (r *fakeClauseRepo) CreateBatch(ctx context.Context, clauses []*entity.Clause) error {
	if r.uow.store.failClauseBatch {
		return errors.New("clause batch insert failed")
	}
	copies := make([]*entity.Clause, 0, len(clauses))
	for _, clause := range clauses {
		c := *clause
		copies = append(copies, &c)
	}
	r.uow.apply(func(s *fakeStore) { s.clauses = append(s.clauses, copies...) })
	return nil
}

func (r *fakeClauseRepo) DeleteByRegulationId(ctx context.Context, regulationId uuid.UUID) error {
	r.uow.apply(func(s *fakeStore) {
		kept := s.clauses[:0]
		for _, clause := range s.clauses {
			if clause.RegulationId != regulationId {
				kept = append(kept, clause)
			}
		}
		s.clauses = kept
	})
	return nil
}

func (r *fakeClauseRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Clause, error) {
	matches := r.filter(specs)
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

func (r *fakeClauseRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Clause, error) {
	return r.filter(specs), nil
}

func (r *fakeClauseRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.filter(specs))), nil
}

func (r *fakeClauseRepo) filter(specs []specification.Specification) []*entity.Clause {
	limit := -1
	out := make([]*entity.Clause, 0)
	for _, clause := range r.uow.store.clauses {
		keep := true
		for _, sp := range specs {
			switch s := sp.(type) {
			case specification.ByID:
				keep = keep && clause.Id == s.ID
			case specification.ByIDs:
				keep = keep && containsUUID(s.IDs, clause.Id)
			case specification.ByRegulationID:
				keep = keep && clause.RegulationId == s.RegulationID
			case specification.ContentContains:
				keep = keep && strings.Contains(clause.Content, s.Keyword)
			case specification.Limit:
				limit = s.N
			}
		}
		if keep {
			out = append(out, clause)
		}
	}
	if orders := clauseOrders(specs); len(orders) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			return clauseLess(out[i], out[j], orders)
		})
	}
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func clauseOrders(specs []specification.Specification) []specification.OrderBy {
	orders := make([]specification.OrderBy, 0)
	for _, sp := range specs {
		if s, ok := sp.(specification.OrderBy); ok {
			orders = append(orders, s)
		}
	}
	return orders
}

func clauseLess(a, b *entity.Clause, orders []specification.OrderBy) bool {
	for _, order := range orders {
		var cmp int
		switch order.Field {
		case "created_at":
			switch {
			case a.CreatedAt.Before(b.CreatedAt):
				cmp = -1
			case a.CreatedAt.After(b.CreatedAt):
				cmp = 1
			}
		case "position":
			switch {
			case a.Position < b.Position:
				cmp = -1
			case a.Position > b.Position:
				cmp = 1
			}
		}
		if cmp == 0 {
			continue
		}
		if order.Desc {
			return cmp > 0
		}
		return cmp < 0
	}
	return false
}

// Auditor roles

type fakeAuditorRoleRepo struct{ uow *fakeUnitOfWork }

func (r *fakeAuditorRoleRepo) Create(ctx context.Context, role *entity.AuditorRole) error {
	record := *role
	r.uow.apply(func(s *fakeStore) { s.roles = append(s.roles, &record) })
	return nil
}

func (r *fakeAuditorRoleRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AuditorRole, error) {
	matches := r.filter(specs)
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

func (r *fakeAuditorRoleRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AuditorRole, error) {
	return r.filter(specs), nil
}

func (r *fakeAuditorRoleRepo) filter(specs []specification.Specification) []*entity.AuditorRole {
	out := make([]*entity.AuditorRole, 0)
	for _, role := range r.uow.store.roles {
		keep := true
		for _, sp := range specs {
			switch s := sp.(type) {
			case specification.ByID:
				keep = keep && role.Id == s.ID
			case specification.ByRoleName:
				keep = keep && role.RoleName == s.RoleName
			}
		}
		if keep {
			out = append(out, role)
		}
	}
	return out
}

// Document types

type fakeDocumentTypeRepo struct{ uow *fakeUnitOfWork }

func (r *fakeDocumentTypeRepo) Create(ctx context.Context, documentType *entity.DocumentType) error {
	record := *documentType
	r.uow.apply(func(s *fakeStore) { s.docTypes = append(s.docTypes, &record) })
	return nil
}

func (r *fakeDocumentTypeRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DocumentType, error) {
	matches := r.filter(specs)
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

func (r *fakeDocumentTypeRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentType, error) {
	return r.filter(specs), nil
}

func (r *fakeDocumentTypeRepo) filter(specs []specification.Specification) []*entity.DocumentType {
	out := make([]*entity.DocumentType, 0)
	for _, docType := range r.uow.store.docTypes {
		keep := true
		for _, sp := range specs {
			switch s := sp.(type) {
			case specification.ByID:
				keep = keep && docType.Id == s.ID
			case specification.ByTypeName:
				keep = keep && docType.TypeName == s.TypeName
			}
		}
		if keep {
			out = append(out, docType)
		}
	}
	return out
}

// Audit rules

type fakeAuditRuleRepo struct{ uow *fakeUnitOfWork }

func (r *fakeAuditRuleRepo) Create(ctx context.Context, rule *entity.AuditRule) error {
	record := *rule
	r.uow.apply(func(s *fakeStore) { s.rules = append(s.rules, &record) })
	return nil
}

func (r *fakeAuditRuleRepo) DeleteAll(ctx context.Context, specs ...specification.Specification) error {
	doomed := make(map[uuid.UUID]bool)
	for _, rule := range r.filter(specs) {
		doomed[rule.Id] = true
	}
	r.uow.apply(func(s *fakeStore) {
		kept := s.rules[:0]
		for _, rule := range s.rules {
			if !doomed[rule.Id] {
				kept = append(kept, rule)
			}
		}
		s.rules = kept
	})
	return nil
}

func (r *fakeAuditRuleRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AuditRule, error) {
	matches := r.filter(specs)
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

func (r *fakeAuditRuleRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AuditRule, error) {
	return r.filter(specs), nil
}

func (r *fakeAuditRuleRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.filter(specs))), nil
}

func (r *fakeAuditRuleRepo) filter(specs []specification.Specification) []*entity.AuditRule {
	var order *specification.OrderBy
	out := make([]*entity.AuditRule, 0)
	for _, rule := range r.uow.store.rules {
		keep := true
		for _, sp := range specs {
			switch s := sp.(type) {
			case specification.ByID:
				keep = keep && rule.Id == s.ID
			case specification.ByRoleID:
				keep = keep && rule.RoleId == s.RoleID
			case specification.ByDocumentTypeID:
				keep = keep && rule.DocumentTypeId == s.DocumentTypeID
			case specification.ByClauseID:
				keep = keep && rule.ClauseId == s.ClauseID
			case specification.ByClauseIDs:
				keep = keep && containsUUID(s.ClauseIDs, rule.ClauseId)
			case specification.OrderBy:
				order = &s
			}
		}
		if keep {
			out = append(out, rule)
		}
	}
	if order != nil && order.Field == "priority" {
		sort.SliceStable(out, func(i, j int) bool {
			if order.Desc {
				return out[i].Priority > out[j].Priority
			}
			return out[i].Priority < out[j].Priority
		})
	}
	return out
}

// noopLogger satisfies logger.ILogger without output.

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
