package dto

type CreateBrandDTO struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateBrandDTO struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=100"`
}

type BrandDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ShortBrandDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
