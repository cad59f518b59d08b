package globals

// Context keys
type ContextKey string

const (
	RoleKey   ContextKey = "role"
	UserIDKey ContextKey = "userId"
)

// Live update room for admin dashboards.
const AdminRoom = "admin"
