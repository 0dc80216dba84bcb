package models

// User is a staff account. Students live in their own table.
type User struct {
	ID          string  `gorm:"primaryKey;column:id" json:"id"`
	Username    string  `gorm:"column:username;unique" json:"username"`
	Password    string  `gorm:"column:password" json:"-"`
	Role        Role    `gorm:"column:role;type:varchar(16)" json:"role"`
	DisplayName string  `gorm:"column:displayName" json:"display_name"`
	Email       *string `gorm:"column:email" json:"email,omitempty"`
}

func (User) TableName() string {
	return "users"
}
