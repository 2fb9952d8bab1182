package sqldb

// ColumnType is an engine-neutral column type.
type ColumnType int

const (
	TypeText ColumnType = iota
	TypePK
	TypeInt
	TypeRef
	TypeBool
	TypeTime
)

type Column struct {
	Name       string
	Type       ColumnType
	NotNull    bool
	Unique     bool
	Default    string
	References string
}

type Table struct {
	Name    string
	Columns []Column
}

// Schema lists every entity table in foreign-key order.
var Schema = []Table{
	{
		Name: "users",
		Columns: []Column{
			{Name: "id", Type: TypePK},
			{Name: "name", Type: TypeText, NotNull: true},
			{Name: "email", Type: TypeText, NotNull: true, Unique: true},
			{Name: "password_hash", Type: TypeText, NotNull: true},
			{Name: "role", Type: TypeText, NotNull: true, Default: "'staff'"},
			{Name: "birth", Type: TypeInt},
			{Name: "active", Type: TypeBool, NotNull: true, Default: "TRUE"},
		},
	},
	{
		Name: "clients",
		Columns: []Column{
			{Name: "id", Type: TypePK},
			{Name: "name", Type: TypeText, NotNull: true},
			{Name: "phone", Type: TypeText},
			{Name: "address", Type: TypeText},
			{Name: "allergies", Type: TypeText},
			{Name: "medical_info", Type: TypeText},
			{Name: "qr_id", Type: TypeText, Unique: true},
		},
	},
	{
		Name: "artists",
		Columns: []Column{
			{Name: "id", Type: TypePK},
			{Name: "name", Type: TypeText, NotNull: true},
			{Name: "phone", Type: TypeText},
			{Name: "email", Type: TypeText, Unique: true},
			{Name: "bio", Type: TypeText},
			{Name: "portfolio", Type: TypeText},
		},
	},
	{
		Name: "sessions",
		Columns: []Column{
			{Name: "id", Type: TypePK},
			{Name: "client_id", Type: TypeRef, NotNull: true, References: "clients(id)"},
			{Name: "artist_id", Type: TypeRef, NotNull: true, References: "artists(id)"},
			{Name: "date", Type: TypeTime, NotNull: true},
			{Name: "status", Type: TypeText, NotNull: true, Default: "'planned'"},
			{Name: "notes", Type: TypeText},
		},
	},
}

// TableNames returns the names in Schema, in order.
func TableNames() []string {
	names := make([]string, len(Schema))
	for i, t := range Schema {
		names[i] = t.Name
	}
	return names
}
