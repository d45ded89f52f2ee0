package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docbridge/docview/internal/domain"
)

func fullDocument() *domain.Document {
	return &domain.Document{
		Details: domain.Details{
			Name:             "Приказ о командировке",
			Number:           "ПР-2024/117",
			RegistrationDate: "14.06.2024",
			RegisteredBy:     "Иванова А.П.",
			PreparedBy:       "Сидоров К.Н.",
		},
		Signature: &domain.Signature{
			SignedBy:  "Петров В.В.",
			SignedAt:  "15.06.2024 10:42:11",
			ValidFrom: "01.01.2024",
			ValidTo:   "01.01.2025",
			Issuer:    "УЦ Компании",
			IssuedTo:  "Петров Василий Васильевич",
			PublicKey: "MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8A",
		},
		Files: map[string]domain.AttachedFile{
			"f-1": {
				Name:       "prikaz.pdf",
				SignedAt:   "15.06.2024",
				SignedBy:   "Петров В.В.",
				AttachedBy: "Сидоров К.Н.",
			},
		},
		Approvals: []domain.Approval{
			{Role: "Начальник отдела", Name: "Кузнецов Д.И.", CompletedAt: "14.06.2024", Outcome: "Согласовано", Comment: ""},
			{Role: "Директор", Name: "Смирнов О.Л.", CompletedAt: "15.06.2024", Outcome: "Утверждено", Comment: "Без замечаний"},
		},
		QR: &domain.QRCode{
			Image: "iVBORw0KGgoAAAANSUhEUg+base64/payload==",
			Link:  "https://edms.example.com/doc/117",
		},
	}
}

func TestNewDocumentView_AllSections(t *testing.T) {
	view := NewDocumentView(fullDocument(), LocaleRU)

	assert.Equal(t, LocaleRU, view.Lang)
	assert.Equal(t, "Данные документа", view.Labels.DocumentDetails)

	assert.Equal(t, "Приказ о командировке", view.DocumentData.DocumentName)
	assert.Equal(t, "ПР-2024/117", view.DocumentData.DocumentNumber)
	assert.Equal(t, "14.06.2024", view.DocumentData.RegistrationDate)
	assert.Equal(t, "Иванова А.П.", view.DocumentData.RegisteredBy)
	assert.Equal(t, "Сидоров К.Н.", view.DocumentData.PreparedBy)

	require.NotNil(t, view.SignData)
	assert.Equal(t, "Петров В.В.", view.SignData.SignedBy)
	assert.Equal(t, "15.06.2024 10:42:11", view.SignData.SignDate)
	assert.Equal(t, "01.01.2024", view.SignData.StartTime)
	assert.Equal(t, "01.01.2025", view.SignData.EndTime)
	assert.Equal(t, "УЦ Компании", view.SignData.Provider)
	assert.Equal(t, "Петров Василий Васильевич", view.SignData.Receiver)
	assert.Equal(t, "MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8A", view.SignData.OpenKey)

	require.Len(t, view.AttachedFiles, 1)
	file, ok := view.AttachedFiles["f-1"]
	require.True(t, ok, "upstream file key must be preserved")
	assert.Equal(t, "prikaz.pdf", file.Name)
	assert.Equal(t, "Сидоров К.Н.", file.AttachedBy)

	require.Len(t, view.ApprovementData, 2)
	assert.Equal(t, "Начальник отдела", view.ApprovementData[0].Role)
	assert.Equal(t, "Директор", view.ApprovementData[1].Role)
	assert.Equal(t, "Без замечаний", view.ApprovementData[1].Comment)

	require.NotNil(t, view.QRData)
	assert.Equal(t, "https://edms.example.com/doc/117", view.QRData.QRLink)
}

func TestNewDocumentView_DetailsOnly(t *testing.T) {
	doc := &domain.Document{
		Details: domain.Details{
			Name:             "Invoice",
			Number:           "123",
			RegistrationDate: "01.02.2024",
			RegisteredBy:     "Clerk",
		},
	}

	view := NewDocumentView(doc, LocaleEN)

	assert.Equal(t, "Invoice", view.DocumentData.DocumentName)
	assert.Empty(t, view.DocumentData.PreparedBy)

	assert.Nil(t, view.SignData)
	assert.Nil(t, view.AttachedFiles)
	assert.Nil(t, view.ApprovementData)
	assert.Nil(t, view.QRData)
}

func TestNewDocumentView_ApprovalOrderPreserved(t *testing.T) {
	doc := &domain.Document{
		Approvals: []domain.Approval{
			{Name: "first"},
			{Name: "second"},
			{Name: "third"},
		},
	}

	view := NewDocumentView(doc, LocaleEN)

	require.Len(t, view.ApprovementData, 3)
	for i, want := range []string{"first", "second", "third"} {
		assert.Equal(t, want, view.ApprovementData[i].Name)
	}
}

func TestNewDocumentView_UnsupportedLocaleUsesEnglishLabels(t *testing.T) {
	view := NewDocumentView(&domain.Document{}, Locale("fr"))

	assert.Equal(t, Locale("fr"), view.Lang)
	assert.Equal(t, "Document details", view.Labels.DocumentDetails)
}

func TestNewErrorView(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		locale      Locale
		wantMessage string
	}{
		{
			name:        "not found english",
			status:      404,
			locale:      LocaleEN,
			wantMessage: "Document not found",
		},
		{
			name:        "conflict russian",
			status:      409,
			locale:      LocaleRU,
			wantMessage: "Документ не подписан",
		},
		{
			name:        "unknown status keeps its code",
			status:      418,
			locale:      LocaleEN,
			wantMessage: "Service is unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewErrorView(tt.status, tt.locale)

			assert.Equal(t, tt.status, view.Code)
			assert.Equal(t, tt.wantMessage, view.Message)
			assert.Equal(t, tt.locale, view.Lang)
		})
	}
}

func TestQRData_DataURI(t *testing.T) {
	qr := QRData{QRBinary: "aGVsbG8+d29ybGQ/cXI="}

	uri := string(qr.DataURI())

	assert.Equal(t, "data:image/png;base64,aGVsbG8+d29ybGQ/cXI=", uri)
}
