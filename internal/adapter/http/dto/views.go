package dto

type CategoryItem struct {
	ID         uint64
	Name       string
	Color      string
	CreatedAt  string
	ModifiedAt string
}

type TodoItem struct {
	ID          uint64
	Title       string
	Description string
	Done        bool
	DueAt       string
	CreatedAt   string
	ModifiedAt  string
	Category    *CategoryItem
}

type UserItem struct {
	ID        uint64
	LastName  string
	FirstName string
	Email     string
	Role      string
	CreatedAt string
}

type RoleItem struct {
	ID   uint64
	Name string
}

// TableCount is one line of the development database console.
type TableCount struct {
	Table string
	Rows  int64
}

// FieldMessages maps a form field to its translated error messages.
type FieldMessages map[string][]string
