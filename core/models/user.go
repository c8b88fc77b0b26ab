package models

const AdminID = "admin"

// Workplaces are the fixed locations an employee can be assigned to.
var Workplaces = []string{"논산", "대전", "수원"}

const (
	DefaultWorkplace  = "논산"
	UnknownDepartment = "미등록"
)

// User is one row of users.csv. Columns are positional and there is no header.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Password     string `json:"-"`
	Department   string `json:"department"`
	Workplace    string `json:"workplace"`
	Position     string `json:"position"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registeredAt"`
}

func (u User) IsAdmin() bool {
	return u.ID == AdminID
}

func (u User) Row() []string {
	return []string{u.ID, u.Name, u.Password, u.Department, u.Workplace, u.Position, u.Email, u.RegisteredAt}
}

func UserFromRow(row []string) User {
	get := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return User{
		ID:           get(0),
		Name:         get(1),
		Password:     get(2),
		Department:   get(3),
		Workplace:    get(4),
		Position:     get(5),
		Email:        get(6),
		RegisteredAt: get(7),
	}
}
