package render

import (
	"html/template"

	"github.com/docbridge/docview/internal/domain"
)

// DocumentView is the flat view-model handed to the document template.
// DocumentData is always present; the remaining sections are nil exactly
// when the upstream payload omitted them, so the template renders nothing
// for a section the upstream never sent.
type DocumentView struct {
	// Lang is the resolved response locale, echoed into the html lang
	// attribute.
	Lang Locale

	// Labels holds the static page strings for Lang.
	Labels PageLabels

	// DocumentData holds the registration details.
	DocumentData DocumentData

	// SignData holds the signature block, nil for unsigned payload variants.
	SignData *SignData

	// AttachedFiles maps upstream file identifiers to file rows. Keys are
	// preserved verbatim; templates iterate them in sorted order.
	AttachedFiles map[string]FileData

	// ApprovementData lists approval rows re-indexed 0..N-1 in the order
	// the upstream sent them.
	ApprovementData []ApprovalData

	// QRData holds the verification QR block.
	QRData *QRData
}

// DocumentData is the registration details section.
type DocumentData struct {
	DocumentName     string
	DocumentNumber   string
	RegistrationDate string
	RegisteredBy     string
	PreparedBy       string
}

// SignData is the electronic signature section.
type SignData struct {
	SignedBy  string
	SignDate  string
	StartTime string
	EndTime   string
	Provider  string
	Receiver  string
	OpenKey   string
}

// FileData is one attached-file row.
type FileData struct {
	Name       string
	SignDate   string
	SignedBy   string
	AttachedBy string
}

// ApprovalData is one approval-sheet row.
type ApprovalData struct {
	Role            string
	Name            string
	SignDate        string
	ApprovementMark string
	Comment         string
}

// QRData is the verification QR section.
type QRData struct {
	// QRBinary is the base64-encoded QR PNG exactly as the upstream sent it.
	QRBinary string

	// QRLink is the original link the QR code encodes.
	QRLink string
}

// DataURI assembles the inline image source for the QR PNG. The result is
// marked safe for the URL attribute context: it is a fixed prefix plus the
// base64 payload, which the default escaper would otherwise mangle.
func (q QRData) DataURI() template.URL {
	return template.URL("data:image/png;base64," + q.QRBinary) //nolint:gosec // Fixed data scheme, base64 payload
}

// NewDocumentView maps a domain document onto the template model. Section
// presence mirrors the domain aggregate one-to-one.
func NewDocumentView(doc *domain.Document, loc Locale) DocumentView {
	view := DocumentView{
		Lang:   loc,
		Labels: labelsFor(loc),
		DocumentData: DocumentData{
			DocumentName:     doc.Details.Name,
			DocumentNumber:   doc.Details.Number,
			RegistrationDate: doc.Details.RegistrationDate,
			RegisteredBy:     doc.Details.RegisteredBy,
			PreparedBy:       doc.Details.PreparedBy,
		},
	}

	if doc.Signature != nil {
		view.SignData = &SignData{
			SignedBy:  doc.Signature.SignedBy,
			SignDate:  doc.Signature.SignedAt,
			StartTime: doc.Signature.ValidFrom,
			EndTime:   doc.Signature.ValidTo,
			Provider:  doc.Signature.Issuer,
			Receiver:  doc.Signature.IssuedTo,
			OpenKey:   doc.Signature.PublicKey,
		}
	}

	if doc.Files != nil {
		files := make(map[string]FileData, len(doc.Files))
		for id, f := range doc.Files {
			files[id] = FileData{
				Name:       f.Name,
				SignDate:   f.SignedAt,
				SignedBy:   f.SignedBy,
				AttachedBy: f.AttachedBy,
			}
		}
		view.AttachedFiles = files
	}

	if doc.Approvals != nil {
		approvals := make([]ApprovalData, 0, len(doc.Approvals))
		for _, a := range doc.Approvals {
			approvals = append(approvals, ApprovalData{
				Role:            a.Role,
				Name:            a.Name,
				SignDate:        a.CompletedAt,
				ApprovementMark: a.Outcome,
				Comment:         a.Comment,
			})
		}
		view.ApprovementData = approvals
	}

	if doc.QR != nil {
		view.QRData = &QRData{
			QRBinary: doc.QR.Image,
			QRLink:   doc.QR.Link,
		}
	}

	return view
}

// ErrorView is the model for the localized error page.
type ErrorView struct {
	// Code is the HTTP status the page is served with. It survives even
	// when the message fell back to the service-unavailable row.
	Code int

	// Message is the localized error text.
	Message string

	// Lang is the resolved locale, echoed into the html lang attribute.
	Lang Locale
}

// NewErrorView builds the error page model for a status code and locale.
func NewErrorView(status int, loc Locale) ErrorView {
	return ErrorView{
		Code:    status,
		Message: Message(status, loc),
		Lang:    loc,
	}
}
