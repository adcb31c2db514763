package constants

// Redis key formats
const (
	KeyCabLocation = "cab:location:%s" // Format: cab:location:{cab_id}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lon"
	FieldGeohash   = "geohash"
	FieldTimestamp = "ts"
)
