package contextkeys

type contextKey string

const (
	EmployeeIDKey contextKey = "EmployeeID"
	EmployeeRole  contextKey = "EmployeeRole"
	CompanyIDKey  contextKey = "CompanyID"
	RequestIDKey  contextKey = "RequestID"
)
