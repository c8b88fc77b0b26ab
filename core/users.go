package core

import (
	"fmt"

	"hrdesk.co.kr/hrdesk/core/models"
	"hrdesk.co.kr/hrdesk/utils"
)

const UsersFile = "users.csv"

// Directory is the user table. Every lookup rereads users.csv.
type Directory struct {
	store *FileStore
}

func NewDirectory(store *FileStore) *Directory {
	return &Directory{store: store}
}

func (d *Directory) List() ([]models.User, error) {
	rows, err := d.store.ReadRows(UsersFile)
	if err != nil {
		return nil, err
	}
	return utils.Map(rows, models.UserFromRow), nil
}

// Find returns the first user with the id, or nil.
func (d *Directory) Find(id string) (*models.User, error) {
	users, err := d.List()
	if err != nil {
		return nil, err
	}
	return utils.Find(users, func(u models.User) bool { return u.ID == id }), nil
}

// Authenticate matches id and plaintext password.
func (d *Directory) Authenticate(id, password string) (*models.User, error) {
	users, err := d.List()
	if err != nil {
		return nil, err
	}
	return utils.Find(users, func(u models.User) bool { return u.ID == id && u.Password == password }), nil
}

// Upsert replaces the first row with the same id, or appends. The registration
// time is always refreshed.
func (d *Directory) Upsert(u models.User) error {
	users, err := d.List()
	if err != nil {
		return err
	}
	u.RegisteredAt = utils.SeoulNow().Format(utils.DateTimeLayout)

	if existing := utils.Find(users, func(x models.User) bool { return x.ID == u.ID }); existing != nil {
		*existing = u
	} else {
		users = append(users, u)
	}

	if err := d.store.WriteRows(UsersFile, utils.Map(users, models.User.Row)); err != nil {
		return fmt.Errorf("save user %s: %w", u.ID, err)
	}
	return nil
}

// Delete removes every row with the id.
func (d *Directory) Delete(id string) error {
	if !d.store.Exists(UsersFile) {
		return nil
	}
	users, err := d.List()
	if err != nil {
		return err
	}
	kept := utils.Filter(users, func(u models.User) bool { return u.ID != id })
	return d.store.WriteRows(UsersFile, utils.Map(kept, models.User.Row))
}

// Index loads the table once for repeated lookups.
func (d *Directory) Index() (*UserIndex, error) {
	users, err := d.List()
	if err != nil {
		return nil, err
	}
	idx := &UserIndex{byID: make(map[string]models.User, len(users))}
	for i := len(users) - 1; i >= 0; i-- {
		idx.byID[users[i].ID] = users[i]
	}
	return idx, nil
}

// NameOf falls back to the id itself when the user is unknown.
func (d *Directory) NameOf(id string) string {
	idx, err := d.Index()
	if err != nil {
		return id
	}
	return idx.NameOf(id)
}

func (d *Directory) DepartmentOf(id string) string {
	idx, err := d.Index()
	if err != nil {
		return models.UnknownDepartment
	}
	return idx.DepartmentOf(id)
}

func (d *Directory) WorkplaceOf(id string) string {
	idx, err := d.Index()
	if err != nil {
		return models.DefaultWorkplace
	}
	return idx.WorkplaceOf(id)
}

// UserIndex is a point-in-time view of users.csv keyed by id. The first row
// for an id wins, matching a top-down scan of the file.
type UserIndex struct {
	byID map[string]models.User
}

func (idx *UserIndex) Get(id string) (models.User, bool) {
	u, ok := idx.byID[id]
	return u, ok
}

func (idx *UserIndex) NameOf(id string) string {
	if u, ok := idx.byID[id]; ok {
		return u.Name
	}
	return id
}

func (idx *UserIndex) DepartmentOf(id string) string {
	if u, ok := idx.byID[id]; ok {
		return u.Department
	}
	return models.UnknownDepartment
}

// WorkplaceOf returns the registered workplace, or the default location when the
// user is unknown or the stored value is not one of the fixed locations.
func (idx *UserIndex) WorkplaceOf(id string) string {
	u, ok := idx.byID[id]
	if !ok {
		return models.DefaultWorkplace
	}
	if !utils.Contains(models.Workplaces, u.Workplace) {
		return models.DefaultWorkplace
	}
	return u.Workplace
}
