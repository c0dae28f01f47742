package core

// InstructionKind discriminates the annotation instruction variants.
type InstructionKind string

const (
	KindText    InstructionKind = "text"
	KindImage   InstructionKind = "image"
	KindDrawing InstructionKind = "drawing"
)

// Metadata represents the flexible key-value pairs attached to an instruction.
type Metadata map[string]any

// EditInstruction is one atomic annotation operation targeted at a specific
// page and position. An instruction is immutable once appended to a session;
// corrections are modeled as remove + re-add, never in-place mutation.
//
// The JSON shape is the wire contract of the backend /process endpoint.
type EditInstruction struct {
	Type     InstructionKind `json:"type" yaml:"type"`
	Page     int             `json:"page" yaml:"page"`
	X        float64         `json:"x" yaml:"x"`
	Y        float64         `json:"y" yaml:"y"`
	Width    *float64        `json:"width,omitempty" yaml:"width,omitempty"`
	Height   *float64        `json:"height,omitempty" yaml:"height,omitempty"`
	Content  string          `json:"content,omitempty" yaml:"content,omitempty"`
	FontSize *float64        `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	Metadata Metadata        `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// ProcessRequest is the batch submitted to the mutation endpoint.
// Instruction order is the order in which the backend applies them.
type ProcessRequest struct {
	Instructions []EditInstruction `json:"instructions" yaml:"instructions"`
}

// Float returns a pointer to v, for the optional numeric fields above.
func Float(v float64) *float64 {
	return &v
}

// DocumentStatus is the backend-owned lifecycle state of a document.
type DocumentStatus string

const (
	StatusUploaded   DocumentStatus = "uploaded"
	StatusProcessing DocumentStatus = "processing"
	StatusProcessed  DocumentStatus = "processed"
	StatusError      DocumentStatus = "error"
)

// Document mirrors the backend entity. The annotation core only reads
// PageCount, Status and Version; every write happens server-side as a side
// effect of the /process endpoint.
type Document struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	FilePath  string         `json:"file_path"`
	FileURL   string         `json:"file_url"`
	Checksum  string         `json:"checksum"`
	Version   int            `json:"version"`
	Status    DocumentStatus `json:"status"`
	PageCount int            `json:"page_count"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
}

// DocumentList is one page of the document listing.
type DocumentList struct {
	Documents []Document `json:"documents"`
	Total     int        `json:"total"`
	Limit     int        `json:"limit"`
	Offset    int        `json:"offset"`
}

// UploadResult carries the created document and the backend notice.
type UploadResult struct {
	Document Document `json:"document"`
	Message  string   `json:"message"`
}

// ProcessResult carries the updated document and the backend notice.
type ProcessResult struct {
	Document Document `json:"document"`
	Message  string   `json:"message"`
}
