package entities

// User is a staff member from the usuarios table. Authentication is a plain
// credential lookup (username + PIN); anything richer is out of scope.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"nombre"`
	Username string `json:"usuario"`
	PIN      string `json:"-"`
	Role     string `json:"rol,omitempty"`
}
