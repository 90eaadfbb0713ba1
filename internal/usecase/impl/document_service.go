package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"dreamcrm/internal/domain/entity"
	domainerrors "dreamcrm/internal/domain/errors"
	"dreamcrm/internal/domain/repository"
	"dreamcrm/internal/usecase"

	"github.com/pkg/errors"
)

// documentService implements the DocumentUsecase interface.
type documentService struct {
	documents  repository.DocumentRepository
	users      repository.UserRepository
	properties repository.PropertyRepository
	logger     *slog.Logger
}

// NewDocumentService is the constructor for documentService.
func NewDocumentService(
	documents repository.DocumentRepository,
	users repository.UserRepository,
	properties repository.PropertyRepository,
	logger *slog.Logger,
) usecase.DocumentUsecase {
	return &documentService{
		documents:  documents,
		users:      users,
		properties: properties,
		logger:     logger,
	}
}

func (srv *documentService) List(ctx context.Context) ([]usecase.DocumentView, error) {
	documents, err := srv.documents.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}

	names, err := userNamesByID(ctx, srv.users)
	if err != nil {
		return nil, err
	}

	titles, err := propertyTitlesByID(ctx, srv.properties)
	if err != nil {
		return nil, err
	}

	views := make([]usecase.DocumentView, 0, len(documents))
	for _, d := range documents {
		// Documents may relate to deals as well as properties; anything
		// outside the property index keeps its raw id.
		relatedTo := d.RelatedToID
		if title, ok := titles[d.RelatedToID]; ok {
			relatedTo = title
		}

		views = append(views, usecase.DocumentView{
			ID:         d.ID,
			Name:       d.Name,
			Type:       d.Type,
			SizeKB:     d.SizeKB,
			UploadDate: d.UploadDate,
			UploadedBy: names.lookup(d.UploadedByID),
			RelatedTo:  relatedTo,
		})
	}

	return views, nil
}

// Upload records document metadata. A missing file name is the
// no-file-selected case and rejects the submission.
func (srv *documentService) Upload(ctx context.Context, actor *entity.User, input *usecase.UploadDocumentInput) (*entity.Document, error) {
	if input.Name == "" || input.RelatedToID == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("select a file and link it to a property or deal"))
	}

	now := time.Now()
	document := &entity.Document{
		ID:          newID("doc", now),
		Name:        input.Name,
		Type:        documentTypeFromName(input.Name),
		SizeKB:      input.SizeKB,
		UploadDate:  now,
		RelatedToID: input.RelatedToID,
	}
	if actor != nil {
		document.UploadedByID = actor.ID
	}

	if err := srv.documents.Create(ctx, document); err != nil {
		return nil, errors.Wrap(err, "failed to store document")
	}

	srv.logger.Info("Document uploaded", "documentID", document.ID, "name", document.Name)

	return document, nil
}

func (srv *documentService) Delete(ctx context.Context, id string) error {
	if err := srv.documents.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return errors.WithStack(domainerrors.ErrNotFound)
		}

		return errors.Wrap(err, "failed to delete document")
	}

	srv.logger.Info("Document deleted", "documentID", id)

	return nil
}

// documentTypeFromName derives the type from the file extension;
// unrecognized extensions fall back to PDF.
func documentTypeFromName(name string) entity.DocumentType {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return entity.DocumentPDF
	}

	switch strings.ToUpper(name[idx+1:]) {
	case "PDF":
		return entity.DocumentPDF
	case "DOCX":
		return entity.DocumentDOCX
	case "JPG", "JPEG":
		return entity.DocumentJPG
	case "PNG":
		return entity.DocumentPNG
	default:
		return entity.DocumentPDF
	}
}
