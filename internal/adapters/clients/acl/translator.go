package acl

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/docbridge/docview/internal/domain"
)

// documentPayload is the external DTO of the upstream document API. Section
// keys and leaf names are the upstream's verbatim wire contract; pointers
// mark the optional sections so their absence survives decoding. This type
// never leaves the ACL.
type documentPayload struct {
	Details   *detailsSection        `json:"ДанныеДокумента"`
	Signature *signatureSection      `json:"ДанныеПодписи"`
	Files     map[string]fileSection `json:"ДанныеФайлов"`
	Approvals []approvalSection      `json:"ДанныеВизСогласования"`
	QR        *qrSection             `json:"ДанныеQR"`
}

type detailsSection struct {
	Name             string `json:"Наименование"`
	Number           string `json:"НомерДокумента"`
	RegistrationDate string `json:"ДатаРегистрации"`
	RegisteredBy     string `json:"Зарегистрировал"`
	PreparedBy       string `json:"Подготовил"`
}

type signatureSection struct {
	SignedBy  string `json:"УстановившийПодпись"`
	SignedAt  string `json:"ДатаПодписи"`
	ValidFrom string `json:"ДатаНачала"`
	ValidTo   string `json:"ДатаОкончания"`
	Issuer    string `json:"КемВыдан"`
	IssuedTo  string `json:"КомуВыдан"`
	PublicKey string `json:"ОткрытыйКлюч"`
}

type fileSection struct {
	Name       string `json:"ПрикреплённыйФайл"`
	SignedAt   string `json:"ДатаПодписи"`
	SignedBy   string `json:"УстановившийПодпись"`
	AttachedBy string `json:"ПрикрепившийФайл"`
}

type approvalSection struct {
	Role        string `json:"Должность"`
	Name        string `json:"Исполнитель"`
	CompletedAt string `json:"ДатаИсполнения"`
	Outcome     string `json:"РезультатСогласования"`
	Comment     string `json:"РезультатВыполнения"`
}

type qrSection struct {
	Image string `json:"ДвоичныеДанныеQRКода"`
	Link  string `json:"ОригиналСсылки"`
}

// translateDocument converts the upstream payload to a domain Document.
//
// A 200 answer without the details section violates the upstream contract
// (the API signals a missing document with HTTP 404, never with an empty
// body) and is reported as an unavailable upstream. Every other section is
// genuinely optional: absent sections stay nil on the aggregate, and absent
// leaves inside present sections decode to empty strings.
func translateDocument(ext *documentPayload) (*domain.Document, error) {
	if ext.Details == nil {
		return nil, domain.NewUnavailableError(serviceName,
			"upstream answered 200 without document details")
	}

	doc := &domain.Document{
		Details: domain.Details{
			Name:             ext.Details.Name,
			Number:           ext.Details.Number,
			RegistrationDate: ext.Details.RegistrationDate,
			RegisteredBy:     ext.Details.RegisteredBy,
			PreparedBy:       ext.Details.PreparedBy,
		},
	}

	if ext.Signature != nil {
		doc.Signature = &domain.Signature{
			SignedBy:  ext.Signature.SignedBy,
			SignedAt:  ext.Signature.SignedAt,
			ValidFrom: ext.Signature.ValidFrom,
			ValidTo:   ext.Signature.ValidTo,
			Issuer:    ext.Signature.Issuer,
			IssuedTo:  ext.Signature.IssuedTo,
			PublicKey: ext.Signature.PublicKey,
		}
	}

	if ext.Files != nil {
		doc.Files = TranslateMap(ext.Files, translateFile)
	}

	if ext.Approvals != nil {
		doc.Approvals = TranslateSlice(ext.Approvals, translateApproval)
	}

	if ext.QR != nil {
		doc.QR = &domain.QRCode{
			Image: ext.QR.Image,
			Link:  ext.QR.Link,
		}
	}

	return doc, nil
}

func translateFile(ext *fileSection) domain.AttachedFile {
	return domain.AttachedFile{
		Name:       ext.Name,
		SignedAt:   ext.SignedAt,
		SignedBy:   ext.SignedBy,
		AttachedBy: ext.AttachedBy,
	}
}

func translateApproval(ext *approvalSection) domain.Approval {
	return domain.Approval{
		Role:        ext.Role,
		Name:        ext.Name,
		CompletedAt: ext.CompletedAt,
		Outcome:     ext.Outcome,
		Comment:     ext.Comment,
	}
}

// DecodeResponse reads and decodes a JSON response body into the target type.
// Closes the body after reading.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, fmt.Errorf("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var result T
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// Translator is a function type that translates one external DTO to its
// domain counterpart.
type Translator[External any, Domain any] func(ext *External) Domain

// TranslateSlice applies a translator to a slice of external DTOs,
// preserving order.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) []D {
	result := make([]D, 0, len(items))

	for i := range items {
		result = append(result, translate(&items[i]))
	}

	return result
}

// TranslateMap applies a translator to a map of external DTOs, preserving
// keys.
func TranslateMap[E any, D any](items map[string]E, translate Translator[E, D]) map[string]D {
	result := make(map[string]D, len(items))

	for key := range items {
		item := items[key]
		result[key] = translate(&item)
	}

	return result
}
