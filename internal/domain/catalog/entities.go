// Package catalog holds the admin lookup tables and product master data.
package catalog

import (
	"time"

	"tender-crm-backend/pkg/id"
)

// Record is embedded by every catalog entity.
type Record struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	PublicID  string    `gorm:"column:public_id;size:64;not null;uniqueIndex" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null;uniqueIndex" json:"name" validate:"required,max=255"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (r *Record) Base() *Record { return r }

type OEM struct {
	Record       `gorm:"embedded"`
	Website      string `gorm:"column:website;size:255" json:"website,omitempty" validate:"omitempty,url"`
	ContactEmail string `gorm:"column:contact_email;size:255" json:"contactEmail,omitempty" validate:"omitempty,email"`
}

func (OEM) TableName() string { return "oems" }
func (*OEM) Prefix() string   { return id.PrefixOEM }
func (*OEM) Kind() string     { return "oem" }
func (o *OEM) Apply(p *OEM) {
	o.Name, o.Website, o.ContactEmail = p.Name, p.Website, p.ContactEmail
}

type Product struct {
	Record      `gorm:"embedded"`
	OEMID       string  `gorm:"column:oem_id;size:64;index" json:"oemId,omitempty"`
	Category    string  `gorm:"column:category;size:128" json:"category,omitempty"`
	UnitPrice   float64 `gorm:"column:unit_price" json:"unitPrice" validate:"gte=0"`
	Description string  `gorm:"column:description" json:"description,omitempty"`
}

func (Product) TableName() string { return "products" }
func (*Product) Prefix() string   { return id.PrefixProduct }
func (*Product) Kind() string     { return "product" }
func (p *Product) Apply(n *Product) {
	p.Name, p.OEMID, p.Category, p.UnitPrice, p.Description = n.Name, n.OEMID, n.Category, n.UnitPrice, n.Description
}

type Department struct {
	Record      `gorm:"embedded"`
	Description string `gorm:"column:description" json:"description,omitempty"`
}

func (Department) TableName() string { return "departments" }
func (*Department) Prefix() string   { return id.PrefixDepartment }
func (*Department) Kind() string     { return "department" }
func (d *Department) Apply(n *Department) {
	d.Name, d.Description = n.Name, n.Description
}

type Designation struct {
	Record `gorm:"embedded"`
	Level  int `gorm:"column:level" json:"level" validate:"gte=0"`
}

func (Designation) TableName() string { return "designations" }
func (*Designation) Prefix() string   { return id.PrefixDesignation }
func (*Designation) Kind() string     { return "designation" }
func (d *Designation) Apply(n *Designation) {
	d.Name, d.Level = n.Name, n.Level
}

type BidTemplate struct {
	Record   `gorm:"embedded"`
	Category string `gorm:"column:category;size:128" json:"category,omitempty"`
	Content  string `gorm:"column:content" json:"content"`
}

func (BidTemplate) TableName() string { return "bid_templates" }
func (*BidTemplate) Prefix() string   { return id.PrefixBidTemplate }
func (*BidTemplate) Kind() string     { return "bid template" }
func (b *BidTemplate) Apply(n *BidTemplate) {
	b.Name, b.Category, b.Content = n.Name, n.Category, n.Content
}
