package render

// PageLabels holds the static strings of the document page for one locale.
type PageLabels struct {
	Title            string
	DocumentDetails  string
	DocumentName     string
	DocumentNumber   string
	RegistrationDate string
	RegisteredBy     string
	PreparedBy       string

	Signature string
	SignedBy  string
	SignDate  string
	ValidFrom string
	ValidTo   string
	Issuer    string
	IssuedTo  string
	PublicKey string

	AttachedFiles string
	FileName      string
	AttachedBy    string

	Approvals string
	Role      string
	Approver  string
	Outcome   string
	Comment   string

	QRCode       string
	OriginalLink string
}

var pageLabels = map[Locale]PageLabels{
	LocaleEN: {
		Title:            "Document",
		DocumentDetails:  "Document details",
		DocumentName:     "Name",
		DocumentNumber:   "Number",
		RegistrationDate: "Registration date",
		RegisteredBy:     "Registered by",
		PreparedBy:       "Prepared by",

		Signature: "Electronic signature",
		SignedBy:  "Signed by",
		SignDate:  "Sign date",
		ValidFrom: "Valid from",
		ValidTo:   "Valid to",
		Issuer:    "Issued by",
		IssuedTo:  "Issued to",
		PublicKey: "Public key",

		AttachedFiles: "Attached files",
		FileName:      "File",
		AttachedBy:    "Attached by",

		Approvals: "Approval sheet",
		Role:      "Role",
		Approver:  "Name",
		Outcome:   "Result",
		Comment:   "Comment",

		QRCode:       "Verification QR code",
		OriginalLink: "Original link",
	},
	LocaleRU: {
		Title:            "Документ",
		DocumentDetails:  "Данные документа",
		DocumentName:     "Наименование",
		DocumentNumber:   "Номер",
		RegistrationDate: "Дата регистрации",
		RegisteredBy:     "Зарегистрировал",
		PreparedBy:       "Подготовил",

		Signature: "Электронная подпись",
		SignedBy:  "Установивший подпись",
		SignDate:  "Дата подписи",
		ValidFrom: "Дата начала",
		ValidTo:   "Дата окончания",
		Issuer:    "Кем выдан",
		IssuedTo:  "Кому выдан",
		PublicKey: "Открытый ключ",

		AttachedFiles: "Прикреплённые файлы",
		FileName:      "Файл",
		AttachedBy:    "Прикрепил",

		Approvals: "Лист согласования",
		Role:      "Должность",
		Approver:  "Исполнитель",
		Outcome:   "Результат",
		Comment:   "Комментарий",

		QRCode:       "QR-код для проверки",
		OriginalLink: "Оригинал ссылки",
	},
}

// labelsFor returns the page labels for a locale, falling back to English
// for any locale outside the table.
func labelsFor(loc Locale) PageLabels {
	if labels, ok := pageLabels[loc]; ok {
		return labels
	}

	return pageLabels[LocaleEN]
}
