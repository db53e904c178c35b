package models

// User is an admin console account. Registration is restricted by an
// admin code; passwords are stored scrypt-hashed.
type User struct {
	ID       string `gorm:"primary_key" json:"id"`
	Username string `gorm:"unique_index;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
}

// TableName sets the table name for User
func (User) TableName() string {
	return "users"
}
