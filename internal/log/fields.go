package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldError      = "error"
	FieldOperation  = "operation"

	FieldMovementID  = "movement_id"
	FieldSubject     = "subject"
	FieldKind        = "kind"
	FieldAmount      = "amount"
	FieldDate        = "date"
	FieldCount       = "movement_count"
	FieldBackend     = "backend"
	FieldSnapshotLen = "snapshot_bytes"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentLedger  = "ledger"
	ComponentStorage = "storage"
	ComponentBackend = "backend"
)

// Operations defines standard operation names
const (
	OpLoad   = "load"
	OpSave   = "save"
	OpAdd    = "add"
	OpUpdate = "update"
	OpRemove = "remove"
	OpExport = "export"
	OpImport = "import"
)
