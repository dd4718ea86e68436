package models

// Category represents one row of the Categories sheet. Names are not
// required to be unique.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name" binding:"required"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToRow serializes the category into a sheet row.
func (c Category) ToRow() map[string]string {
	return map[string]string{
		"id":        c.ID,
		"name":      c.Name,
		"createdAt": c.CreatedAt,
		"updatedAt": c.UpdatedAt,
	}
}

// CategoryFromRow parses a sheet row into a Category.
func CategoryFromRow(row map[string]string) Category {
	return Category{
		ID:        row["id"],
		Name:      row["name"],
		CreatedAt: row["createdAt"],
		UpdatedAt: row["updatedAt"],
	}
}
