package models

// StorageLocation represents one row of the Storage sheet. Location is a
// free-text address.
type StorageLocation struct {
	ID        string `json:"id"`
	Name      string `json:"name" binding:"required"`
	Location  string `json:"location"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToRow serializes the storage location into a sheet row.
func (s StorageLocation) ToRow() map[string]string {
	return map[string]string{
		"id":        s.ID,
		"name":      s.Name,
		"location":  s.Location,
		"createdAt": s.CreatedAt,
		"updatedAt": s.UpdatedAt,
	}
}

// StorageLocationFromRow parses a sheet row into a StorageLocation.
func StorageLocationFromRow(row map[string]string) StorageLocation {
	return StorageLocation{
		ID:        row["id"],
		Name:      row["name"],
		Location:  row["location"],
		CreatedAt: row["createdAt"],
		UpdatedAt: row["updatedAt"],
	}
}
