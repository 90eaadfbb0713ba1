package impl

import (
	"context"
	"testing"

	"dreamcrm/internal/domain/entity"
	domainerrors "dreamcrm/internal/domain/errors"
	"dreamcrm/internal/infra/persistence/memory"
	"dreamcrm/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocumentFixture() usecase.DocumentUsecase {
	store := memory.NewSeededStore()

	return NewDocumentService(
		memory.NewDocumentRepository(store),
		memory.NewUserRepository(store),
		memory.NewPropertyRepository(store),
		testLogger(),
	)
}

func TestDocumentService_List_EnrichesNames(t *testing.T) {
	svc := newDocumentFixture()

	views, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 4)

	byID := make(map[string]usecase.DocumentView)
	for _, v := range views {
		byID[v.ID] = v
	}

	assert.Equal(t, "Agent Ahmed", byID["doc-1"].UploadedBy)
	assert.Equal(t, "Luxury Marina Apartment", byID["doc-1"].RelatedTo)

	// Deal references are not in the property index and keep the raw id.
	assert.Equal(t, "deal-1", byID["doc-2"].RelatedTo)
}

func TestDocumentService_Upload(t *testing.T) {
	svc := newDocumentFixture()
	actor := &entity.User{ID: "user-3", Name: "Agent Fatima"}

	doc, err := svc.Upload(context.Background(), actor, &usecase.UploadDocumentInput{
		Name:        "Reservation_Form.docx",
		SizeKB:      320,
		RelatedToID: "prop-4",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DocumentDOCX, doc.Type)
	assert.Equal(t, "user-3", doc.UploadedByID)

	views, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, views, 5)
}

func TestDocumentService_Upload_MissingFields(t *testing.T) {
	svc := newDocumentFixture()

	_, err := svc.Upload(context.Background(), nil, &usecase.UploadDocumentInput{Name: "orphan.pdf"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDocumentService_Delete(t *testing.T) {
	svc := newDocumentFixture()
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "doc-1"))

	views, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, views, 3)

	err = svc.Delete(ctx, "doc-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestDocumentTypeFromName(t *testing.T) {
	tests := []struct {
		name string
		want entity.DocumentType
	}{
		{name: "TitleDeed.pdf", want: entity.DocumentPDF},
		{name: "MOU.docx", want: entity.DocumentDOCX},
		{name: "passport.jpg", want: entity.DocumentJPG},
		{name: "passport.JPEG", want: entity.DocumentJPG},
		{name: "floorplan.png", want: entity.DocumentPNG},
		{name: "notes.txt", want: entity.DocumentPDF},
		{name: "noextension", want: entity.DocumentPDF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, documentTypeFromName(tt.name))
		})
	}
}
