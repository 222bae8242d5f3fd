package http

import (
	"time"

	accountdomain "github.com/light-bringer/machinery-catalog/internal/app/account/domain"
	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
)

// ProductDTO is the JSON shape of a product.
type ProductDTO struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	Price          *string           `json:"price"`
	OriginalPrice  *string           `json:"originalPrice"`
	Image          *string           `json:"image"`
	MediaType      string            `json:"mediaType,omitempty"`
	MediaAssetID   string            `json:"mediaAssetId,omitempty"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	Featured       bool              `json:"featured"`
	InStock        bool              `json:"inStock"`
	Discount       int               `json:"discount"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

func toProductDTO(p *domain.Product) ProductDTO {
	dto := ProductDTO{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Category:       p.Category,
		Price:          p.Price,
		OriginalPrice:  p.OriginalPrice,
		Features:       p.Features,
		Specifications: p.Specifications,
		Featured:       p.Featured,
		InStock:        p.InStock,
		Discount:       p.Discount,
		Rating:         p.Rating,
		Reviews:        p.Reviews,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if dto.Features == nil {
		dto.Features = []string{}
	}
	if dto.Specifications == nil {
		dto.Specifications = map[string]string{}
	}
	if !p.Media.IsEmpty() {
		url := p.Media.URL
		dto.Image = &url
		dto.MediaType = string(p.Media.Kind)
		dto.MediaAssetID = p.Media.AssetID
	}
	return dto
}

func toProductDTOs(ps []*domain.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductDTO(p))
	}
	return out
}

// CategoryDTO is a category with its product count.
type CategoryDTO struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func toCategoryDTOs(cs []domain.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, CategoryDTO{Name: c.Name, Count: c.Count})
	}
	return out
}

// UserDTO never carries the password hash.
type UserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserDTO(u *accountdomain.User) UserDTO {
	return UserDTO{ID: u.ID, Name: u.Name, Email: u.Email}
}
