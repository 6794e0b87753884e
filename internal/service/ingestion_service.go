package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"compliance-audit-be/internal/dto"
	"compliance-audit-be/internal/entity"
	"compliance-audit-be/internal/pkg/apperror"
	"compliance-audit-be/internal/pkg/logger"
	"compliance-audit-be/internal/repository/specification"
	"compliance-audit-be/internal/repository/unitofwork"
	"compliance-audit-be/pkg/extractor"
	"compliance-audit-be/pkg/segmenter"

	"github.com/google/uuid"
)

// TextExtractor reads the whole text of a document file. Injected so tests
// can bypass real parsers.
type TextExtractor func(path string) (string, error)

type IIngestionService interface {
	IngestUpload(ctx context.Context, path, originalName string) (*dto.UploadRegulationResponse, error)
	ImportDirectory(ctx context.Context, dir string) (*dto.ImportReport, error)
	DeleteRegulation(ctx context.Context, id uuid.UUID) error
}

type ingestionService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	extract          TextExtractor
	logger           logger.ILogger
}

func NewIngestionService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	extract TextExtractor,
	sysLogger logger.ILogger,
) IIngestionService {
	return &ingestionService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		extract:          extract,
		logger:           sysLogger,
	}
}

// IngestUpload parses one uploaded document and persists the regulation with
// its clauses as a single transaction. All validations run before the first
// write, so a rejected upload leaves no trace.
func (s *ingestionService) IngestUpload(ctx context.Context, path, originalName string) (*dto.UploadRegulationResponse, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !extractor.IsUploadSupported(ext) {
		return nil, apperror.UnsupportedFormat(ext, extractor.UploadExtensions())
	}

	text, err := s.extract(path)
	if err != nil {
		return nil, apperror.ExtractionFailure(originalName, err)
	}

	clauses := segmenter.ExtractClauses(text)
	if len(clauses) == 0 {
		return nil, apperror.EmptyExtraction(originalName)
	}

	title := segmenter.DeriveTitle(originalName)

	regulation, err := s.persistRegulation(ctx, title, originalName, clauses)
	if err != nil {
		return nil, err
	}

	s.publishIngested(ctx, regulation.Id)
	s.logger.Info("ingestion", "regulation ingested", map[string]interface{}{
		"title":        title,
		"clause_count": len(clauses),
	})

	return &dto.UploadRegulationResponse{
		RegulationId:    regulation.Id,
		RegulationTitle: regulation.Title,
		ClauseCount:     len(clauses),
	}, nil
}

// ImportDirectory walks dir and imports every markdown regulation, recording
// a per-file outcome. A failed or duplicate file never stops the batch.
func (s *ingestionService) ImportDirectory(ctx context.Context, dir string) (*dto.ImportReport, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	report := &dto.ImportReport{Results: make([]dto.ImportFileResult, 0, len(entries))}
	for _, entry := range entries {
		if entry.IsDir() || !extractor.IsImportSupported(filepath.Ext(entry.Name())) {
			continue
		}

		result := s.importFile(ctx, filepath.Join(dir, entry.Name()), entry.Name())
		switch result.Status {
		case dto.ImportStatusImported:
			report.Imported++
		case dto.ImportStatusSkipped:
			report.Skipped++
		default:
			report.Failed++
		}
		report.Results = append(report.Results, result)
	}
	return report, nil
}

func (s *ingestionService) importFile(ctx context.Context, path, filename string) dto.ImportFileResult {
	result := dto.ImportFileResult{File: filename}

	text, err := s.extract(path)
	if err != nil {
		result.Status = dto.ImportStatusFailed
		result.Reason = apperror.ExtractionFailure(filename, err).Error()
		return result
	}

	clauses := segmenter.ExtractClauses(text)
	title := segmenter.DeriveTitle(filename)
	result.Title = title

	if len(clauses) == 0 {
		result.Status = dto.ImportStatusFailed
		result.Reason = apperror.EmptyExtraction(filename).Error()
		return result
	}

	regulation, err := s.persistRegulation(ctx, title, path, clauses)
	if err != nil {
		if errors.Is(err, apperror.ErrDuplicateTitle) {
			result.Status = dto.ImportStatusSkipped
			result.Reason = err.Error()
			s.logger.Warn("ingestion", "skipped existing regulation", map[string]interface{}{"title": title})
		} else {
			result.Status = dto.ImportStatusFailed
			result.Reason = err.Error()
			s.logger.Error("ingestion", "failed to import regulation", map[string]interface{}{
				"file":  filename,
				"error": err.Error(),
			})
		}
		return result
	}

	s.publishIngested(ctx, regulation.Id)

	result.Status = dto.ImportStatusImported
	result.ClauseCount = len(clauses)
	return result
}

// DeleteRegulation removes a regulation, its clauses and any audit rules
// left pointing at them, in one transaction.
func (s *ingestionService) DeleteRegulation(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	regulation, err := uow.RegulationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if regulation == nil {
		return apperror.NotFound("regulation %s not found", id)
	}

	clauses, err := uow.ClauseRepository().FindAll(ctx, specification.ByRegulationID{RegulationID: id})
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if len(clauses) > 0 {
		clauseIds := make([]uuid.UUID, 0, len(clauses))
		for _, clause := range clauses {
			clauseIds = append(clauseIds, clause.Id)
		}
		if err := uow.AuditRuleRepository().DeleteAll(ctx, specification.ByClauseIDs{ClauseIDs: clauseIds}); err != nil {
			return err
		}
	}

	if err := uow.ClauseRepository().DeleteByRegulationId(ctx, id); err != nil {
		return err
	}
	if err := uow.RegulationRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.logger.Info("ingestion", "regulation deleted", map[string]interface{}{"title": regulation.Title})
	return nil
}

// persistRegulation writes the regulation and its clauses atomically after a
// duplicate-title check.
func (s *ingestionService) persistRegulation(
	ctx context.Context,
	title, sourceFile string,
	clauses []segmenter.Clause,
) (*entity.Regulation, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.RegulationRepository().FindOne(ctx, specification.ByTitle{Title: title})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.DuplicateTitle(title)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	regulation := &entity.Regulation{
		Id:         uuid.New(),
		Title:      title,
		SourceFile: sourceFile,
	}
	if err := uow.RegulationRepository().Create(ctx, regulation); err != nil {
		return nil, err
	}

	records := make([]*entity.Clause, 0, len(clauses))
	for i, clause := range clauses {
		number := clause.Number
		records = append(records, &entity.Clause{
			Id:           uuid.New(),
			RegulationId: regulation.Id,
			ClauseNumber: &number,
			Content:      clause.Content,
			Position:     i,
		})
	}
	if err := uow.ClauseRepository().CreateBatch(ctx, records); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return regulation, nil
}

// publishIngested notifies the auto-link consumer. Publish failures are
// logged, not surfaced: the regulation is already committed.
func (s *ingestionService) publishIngested(ctx context.Context, regulationId uuid.UUID) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(dto.RegulationIngestedMessage{RegulationId: regulationId})
	if err != nil {
		s.logger.Warn("ingestion", "failed to encode ingested event", map[string]interface{}{
			"regulation_id": regulationId.String(),
			"error":         err.Error(),
		})
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("ingestion", "failed to publish ingested event", map[string]interface{}{
			"regulation_id": regulationId.String(),
			"error":         err.Error(),
		})
	}
}
