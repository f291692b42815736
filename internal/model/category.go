package model

type CategoryStatus string

const (
	CategoryActive   CategoryStatus = "ACTIVE"
	CategoryInactive CategoryStatus = "INACTIVE"
)

type Category struct {
	BaseModel
	Slug        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug" validate:"required"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Description string         `gorm:"type:text" json:"description"`
	Status      CategoryStatus `gorm:"type:varchar(20);default:'ACTIVE'" json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// UpdateCategoryRequest carries a partial category edit. Nil fields keep
// their stored values.
type UpdateCategoryRequest struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Status      *CategoryStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	Path        string          `json:"path,omitempty"` // view path to revalidate, optional
}
