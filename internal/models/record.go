package models

import "time"

// Hierarchy is a sales-hierarchy node (region/branch) that business records
// hang off. Ledger entries keep a copy of the link at creation time.
type Hierarchy struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Package is a product package / category reference.
type Package struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Prelead and Lead carry their hierarchy context under a project link;
// Opportunity links the hierarchy directly. Both feed the same slot on
// the ledger entry.

type Prelead struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	ProjectID *int64 `gorm:"index"`
	PackageID *int64 `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Project *Hierarchy `gorm:"foreignKey:ProjectID"`
	Package *Package   `gorm:"foreignKey:PackageID"`
}

type Lead struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	ProjectID *int64 `gorm:"index"`
	PackageID *int64 `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Project *Hierarchy `gorm:"foreignKey:ProjectID"`
	Package *Package   `gorm:"foreignKey:PackageID"`
}

type Opportunity struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"size:200;not null"`
	HierarchyID *int64 `gorm:"index"`
	PackageID   *int64 `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Hierarchy *Hierarchy `gorm:"foreignKey:HierarchyID"`
	Package   *Package   `gorm:"foreignKey:PackageID"`
}
