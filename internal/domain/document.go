// Package domain contains core business entities and rules.
package domain

// Document is a signed document fetched from the upstream
// document-management system. Details is always populated; the remaining
// sections mirror the optional upstream payload sections and are nil when
// the upstream omitted them. Readers must nil-check each optional section.
type Document struct {
	// Details holds the core registration metadata.
	Details Details

	// Signature describes the electronic signature, if the document is signed.
	Signature *Signature

	// Files maps upstream file identifiers to attached-file metadata.
	// Keys are preserved exactly as the upstream sent them.
	Files map[string]AttachedFile

	// Approvals lists approval entries in upstream order.
	Approvals []Approval

	// QR carries the verification QR code, if the upstream produced one.
	QR *QRCode
}

// Details holds the document registration metadata.
type Details struct {
	// Name is the document title.
	Name string

	// Number is the registration number.
	Number string

	// RegistrationDate is the upstream-formatted registration date.
	RegistrationDate string

	// RegisteredBy is the person who registered the document.
	RegisteredBy string

	// PreparedBy is the person who prepared the document. The upstream may
	// omit it, in which case it stays empty.
	PreparedBy string
}

// Signature describes the electronic signature applied to a document.
type Signature struct {
	// SignedBy is the person who applied the signature.
	SignedBy string

	// SignedAt is the upstream-formatted signing date.
	SignedAt string

	// ValidFrom and ValidTo bound the certificate validity period.
	ValidFrom string
	ValidTo   string

	// Issuer is the certificate authority that issued the certificate.
	Issuer string

	// IssuedTo is the certificate subject.
	IssuedTo string

	// PublicKey is the certificate public key material.
	PublicKey string
}

// AttachedFile describes a file attached to a document.
type AttachedFile struct {
	// Name is the attached file name.
	Name string

	// SignedAt is when the file was signed.
	SignedAt string

	// SignedBy is who signed the file.
	SignedBy string

	// AttachedBy is who attached the file to the document.
	AttachedBy string
}

// Approval is a single entry of the document approval sheet.
type Approval struct {
	// Role is the approver's position.
	Role string

	// Name is the approver's name.
	Name string

	// CompletedAt is when the approval action was completed.
	CompletedAt string

	// Outcome is the approval result.
	Outcome string

	// Comment is the free-form result comment.
	Comment string
}

// QRCode is the verification QR code attached to a document.
type QRCode struct {
	// Image is the QR code PNG as delivered by the upstream (base64).
	Image string

	// Link is the original link the QR code encodes.
	Link string
}
