package models

// Metadata keys maintained by the session store.
const (
	MetaLastModified = "last_modified"
	MetaModifiedBy   = "modified_by"
	MetaVersion      = "version"
)

// MetadataModel is the GORM database model for the store's key-value
// metadata table (last modification time, acting identity, config schema
// version).
type MetadataModel struct {
	Key   string `gorm:"primaryKey;column:key;type:varchar(64)"`
	Value string `gorm:"not null;type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (MetadataModel) TableName() string {
	return "metadata"
}
