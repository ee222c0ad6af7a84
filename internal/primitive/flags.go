package primitive

// SystemDefined marks metadata rows managed by the engine itself rather
// than declared by users. System-defined rows survive metadata clears.
type SystemDefined bool

// IsSystemDefined reports the flag as a plain bool.
func (s SystemDefined) IsSystemDefined() bool { return bool(s) }

// OID is an opaque backend object identifier. Objects keep their OID across
// renames, so OIDs disambiguate constraints whose names have changed.
type OID uint32
