package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"compliance-audit-be/internal/dto"
	"compliance-audit-be/internal/entity"
	"compliance-audit-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const sampleRegulationText = "第一条 内容一。\n第二条 内容二，字数足够长。"

func fixedExtractor(text string) TextExtractor {
	return func(path string) (string, error) {
		return text, nil
	}
}

func fileExtractor(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func TestIngestUploadPersistsRegulationAndClauses(t *testing.T) {
	f := newFakeFactory()
	svc := NewIngestionService(f, nil, fixedExtractor(sampleRegulationText), noopLogger{})

	res, err := svc.IngestUpload(context.Background(), "/tmp/upload", "采购管理办法_20240101.pdf")
	assert.NoError(t, err)
	assert.Equal(t, "采购管理办法", res.RegulationTitle)
	assert.Equal(t, 1, res.ClauseCount)

	assert.Len(t, f.store.regulations, 1)
	assert.Len(t, f.store.clauses, 1)
	assert.Equal(t, "第二条", *f.store.clauses[0].ClauseNumber)
	assert.Equal(t, res.RegulationId, f.store.clauses[0].RegulationId)
}

type capturePublisher struct {
	payloads [][]byte
}

func (p *capturePublisher) Publish(_ context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

func TestIngestUploadPublishesIngestedEvent(t *testing.T) {
	f := newFakeFactory()
	pub := &capturePublisher{}
	svc := NewIngestionService(f, pub, fixedExtractor(sampleRegulationText), noopLogger{})

	res, err := svc.IngestUpload(context.Background(), "/tmp/upload", "采购管理办法.pdf")
	assert.NoError(t, err)

	assert.Len(t, pub.payloads, 1)
	var msg dto.RegulationIngestedMessage
	assert.NoError(t, json.Unmarshal(pub.payloads[0], &msg))
	assert.Equal(t, res.RegulationId, msg.RegulationId)
}

func TestIngestUploadAssignsClausePositions(t *testing.T) {
	text := "第一条 为了规范采购行为，维护采购秩序，制定本办法。\n" +
		"第二条 本办法适用于各类采购项目的全过程监督管理。"

	f := newFakeFactory()
	svc := NewIngestionService(f, nil, fixedExtractor(text), noopLogger{})

	_, err := svc.IngestUpload(context.Background(), "/tmp/upload", "采购管理办法.pdf")
	assert.NoError(t, err)

	assert.Len(t, f.store.clauses, 2)
	assert.Equal(t, 0, f.store.clauses[0].Position)
	assert.Equal(t, "第一条", *f.store.clauses[0].ClauseNumber)
	assert.Equal(t, 1, f.store.clauses[1].Position)
	assert.Equal(t, "第二条", *f.store.clauses[1].ClauseNumber)
}

func TestIngestUploadRejectsUnsupportedFormat(t *testing.T) {
	f := newFakeFactory()
	extractCalled := false
	svc := NewIngestionService(f, nil, func(path string) (string, error) {
		extractCalled = true
		return "", nil
	}, noopLogger{})

	_, err := svc.IngestUpload(context.Background(), "/tmp/upload", "notes.txt")
	assert.True(t, errors.Is(err, apperror.ErrUnsupportedFormat))
	assert.False(t, extractCalled)
	assert.Empty(t, f.store.regulations)
}

func TestIngestUploadRejectsEmptyExtraction(t *testing.T) {
	f := newFakeFactory()
	svc := NewIngestionService(f, nil, fixedExtractor("这段文字没有条款标记。"), noopLogger{})

	_, err := svc.IngestUpload(context.Background(), "/tmp/upload", "空白文档.pdf")
	assert.True(t, errors.Is(err, apperror.ErrEmptyExtraction))
	assert.Empty(t, f.store.regulations)
	assert.Empty(t, f.store.clauses)
}

func TestIngestUploadRejectsDuplicateTitle(t *testing.T) {
	f := newFakeFactory()
	f.store.regulations = append(f.store.regulations, &entity.Regulation{
		Id:    uuid.New(),
		Title: "采购管理办法",
	})

	svc := NewIngestionService(f, nil, fixedExtractor(sampleRegulationText), noopLogger{})

	_, err := svc.IngestUpload(context.Background(), "/tmp/upload", "采购管理办法.docx")
	assert.True(t, errors.Is(err, apperror.ErrDuplicateTitle))
	assert.Len(t, f.store.regulations, 1)
	assert.Empty(t, f.store.clauses)
}

func TestIngestUploadRollsBackOnClauseFailure(t *testing.T) {
	f := newFakeFactory()
	f.store.failClauseBatch = true

	svc := NewIngestionService(f, nil, fixedExtractor(sampleRegulationText), noopLogger{})

	_, err := svc.IngestUpload(context.Background(), "/tmp/upload", "采购管理办法.pdf")
	assert.Error(t, err)
	assert.Empty(t, f.store.regulations, "failed ingest must leave no regulation behind")
	assert.Empty(t, f.store.clauses)
	assert.GreaterOrEqual(t, f.rollbacks(), 1)
}

func TestImportDirectoryBatchIsolation(t *testing.T) {
	dir := t.TempDir()
	valid := "第一条 为了规范政府采购行为，维护国家利益，制定本法。"
	writeImportFile(t, dir, "政府采购法.md", valid)
	writeImportFile(t, dir, "政府采购法_20220101.md", valid)
	writeImportFile(t, dir, "空白.md", "没有条款标记的内容")
	writeImportFile(t, dir, "notes.txt", "ignored")

	f := newFakeFactory()
	svc := NewIngestionService(f, nil, fileExtractor, noopLogger{})

	report, err := svc.ImportDirectory(context.Background(), dir)
	assert.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Failed)
	assert.Len(t, report.Results, 3)

	byStatus := map[string]dto.ImportFileResult{}
	for _, result := range report.Results {
		byStatus[result.Status] = result
	}
	assert.Equal(t, "政府采购法", byStatus[dto.ImportStatusImported].Title)
	assert.Equal(t, "政府采购法_20220101.md", byStatus[dto.ImportStatusSkipped].File)
	assert.Equal(t, "空白.md", byStatus[dto.ImportStatusFailed].File)

	assert.Len(t, f.store.regulations, 1)
}

func TestImportDirectoryMissingDir(t *testing.T) {
	f := newFakeFactory()
	svc := NewIngestionService(f, nil, fileExtractor, noopLogger{})

	_, err := svc.ImportDirectory(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestDeleteRegulationCascades(t *testing.T) {
	f := newFakeFactory()
	regulation := &entity.Regulation{Id: uuid.New(), Title: "政府采购法"}
	clause := &entity.Clause{Id: uuid.New(), RegulationId: regulation.Id, Content: "第一条 条款内容。"}
	rule := &entity.AuditRule{Id: uuid.New(), ClauseId: clause.Id, Source: entity.RuleSourceExample}

	f.store.regulations = append(f.store.regulations, regulation)
	f.store.clauses = append(f.store.clauses, clause)
	f.store.rules = append(f.store.rules, rule)

	svc := NewIngestionService(f, nil, fileExtractor, noopLogger{})

	err := svc.DeleteRegulation(context.Background(), regulation.Id)
	assert.NoError(t, err)
	assert.Empty(t, f.store.regulations)
	assert.Empty(t, f.store.clauses)
	assert.Empty(t, f.store.rules)
}

func TestDeleteRegulationNotFound(t *testing.T) {
	f := newFakeFactory()
	svc := NewIngestionService(f, nil, fileExtractor, noopLogger{})

	err := svc.DeleteRegulation(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func writeImportFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
