package constants

// NSQ topics
const (
	TopicTripAssigned  = "trip.assigned"
	TopicTripCompleted = "trip.completed"
	TopicCabLocation   = "cab.location_changed"
)

// NSQ channels
const (
	ChannelAutoComplete = "autocomplete"
)
