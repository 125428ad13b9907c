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
	FieldError      = "error"
	FieldOperation  = "operation"

	FieldBackend       = "backend"
	FieldCustomerID    = "customer_id"
	FieldTransactionID = "transaction_id"
	FieldNameTerm      = "name_term"
	FieldAmountTerm    = "amount_term"
	FieldCustomers     = "customers"
	FieldTransactions  = "transactions"
	FieldVisible       = "visible"
	FieldLabels        = "labels"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentDashboard = "dashboard"
	ComponentSource    = "source"
	ComponentStorage   = "storage"
	ComponentAMQP      = "amqp"
	ComponentWorker    = "worker"
	ComponentSheets    = "sheets"
	ComponentExport    = "export"
	ComponentCache     = "cache"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpReload   = "reload"
	OpFilter   = "filter"
	OpSummary  = "summary"
	OpExport   = "export"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
