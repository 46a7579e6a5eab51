package models

// Address is an embedded value type shared by members and deliveries.
// #DATA_ASSUMPTION: An address is immutable once written; changing a member's
// address never rewrites addresses captured on past deliveries.
type Address struct {
	City    string `gorm:"column:city" json:"city"`
	Street  string `gorm:"column:street" json:"street"`
	ZipCode string `gorm:"column:zip_code" json:"zip_code"`
}

// IsZero returns true when no address component has been set
func (a Address) IsZero() bool {
	return a.City == "" && a.Street == "" && a.ZipCode == ""
}
