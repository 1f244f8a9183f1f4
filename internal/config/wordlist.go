package config

// CommonParams is the built-in list of parameter names that tend to carry
// object references, roles, debug switches or business values.
var CommonParams = []string{
	// Identification / object references
	"id", "user_id", "uid", "account", "account_id", "profile_id",
	"order_id", "item_id", "product_id", "invoice_id", "payment_id",
	"transaction_id", "file_id", "document_id", "record_id",

	// Authentication / session
	"token", "access_token", "auth_token", "refresh_token",
	"session", "session_id", "session_key", "sid", "jwt",
	"csrf", "csrf_token", "xsrf", "xsrf_token",

	// Authorization / roles
	"role", "roles", "permission", "permissions",
	"isAdmin", "admin", "is_admin", "isStaff", "staff",
	"isManager", "manager", "privilege", "access_level",

	// User information
	"username", "user", "email", "phone", "mobile",
	"firstname", "lastname", "fullname", "display_name",
	"password", "old_password", "new_password",

	// Application logic
	"status", "state", "type", "category", "level",
	"mode", "action", "step", "stage", "flow",
	"enabled", "disabled", "active", "inactive",

	// Debug / dev
	"debug", "test", "testing", "dev", "development",
	"verbose", "trace", "error", "stacktrace",

	// Pagination / filtering
	"page", "page_id", "page_no", "limit", "offset",
	"sort", "order", "order_by", "filter", "search", "q",

	// Feature flags
	"feature", "feature_flag", "flag", "beta",
	"preview", "experimental",

	// Redirects
	"redirect", "redirect_url", "return", "return_url",
	"next", "next_url", "callback", "callback_url",

	// Files / uploads
	"file", "filename", "filepath", "path", "upload",
	"download", "attachment",

	// Business values / state flags
	"amount", "price", "total", "balance", "discount",
	"currency", "quantity", "count",
	"verified", "confirmed", "approved", "deleted",
}
