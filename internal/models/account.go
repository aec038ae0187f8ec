package models

// Role classifies an account. Worker and Admin accounts carry an extension
// record (WorkerRecord / AdminRecord) alongside the role tag.
type Role string

const (
	RoleUser   Role = "User"
	RoleWorker Role = "Worker"
	RoleAdmin  Role = "Admin"
)

// Account is the root identity entity. Profile, WorkerRecord and
// AdminRecord hang off it and are removed with it.
type Account struct {
	BaseModel
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string  `gorm:"type:varchar(17);uniqueIndex;not null" json:"phone"`
	Handle       string  `gorm:"type:varchar(80);uniqueIndex;not null" json:"handle"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	PasswordHash string  `json:"-"`
	Role         Role    `gorm:"type:varchar(10);not null;default:'User';index" json:"role"`
	ProfileImage *string `json:"profile_image,omitempty"`
	IsVerified   bool    `gorm:"not null;default:false" json:"is_verified"`

	Profile *Profile      `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	Worker  *WorkerRecord `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"worker,omitempty"`
	Admin   *AdminRecord  `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"admin,omitempty"`
}
