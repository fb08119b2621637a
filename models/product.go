package models

import (
	"strings"
	"time"
)

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"not null" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"size:50;not null" json:"category"`
	Subcategory string  `gorm:"size:50" json:"subcategory"`
	Stock       int     `gorm:"default:0" json:"stock"`
	// Comma-delimited option lists, e.g. "Red, Blue". Empty means no variants.
	Colors   string `json:"colors"`
	Sizes    string `json:"sizes"`
	ImageURL string `gorm:"size:200" json:"image_url"`

	Images    []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ProductImage is one gallery entry. Rows go away with their product.
type ProductImage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	Path      string    `gorm:"size:200;not null" json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

// ParseOptionList splits a comma-delimited option string, trimming whitespace
// and dropping empty tokens.
func ParseOptionList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// JoinOptionList is the inverse of ParseOptionList, used when storing form input.
func JoinOptionList(opts []string) string {
	return strings.Join(opts, ",")
}

func (p *Product) ColorList() []string { return ParseOptionList(p.Colors) }
func (p *Product) SizeList() []string  { return ParseOptionList(p.Sizes) }

// HasVariants reports whether the product declares any color or size options,
// in which case add-to-cart requires a selection.
func (p *Product) HasVariants() bool {
	return len(p.ColorList()) > 0 || len(p.SizeList()) > 0
}
