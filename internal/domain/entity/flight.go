package entity

// Flight is a single logged UAV flight.
//
// StartTime and EndTime come in two representations: full RFC 3339 datetimes,
// and a legacy clock-only "HH:mm" form assumed to be same-day (an end before
// the start means the flight crossed midnight). Both are kept verbatim as
// entered; duration is derived at report time.
type Flight struct {
	Meta         `bson:",inline"`
	FlightFields `bson:",inline"`
}

// FlightFields are the domain fields supplied by callers on create/update.
// No bson omitempty: updates replace the whole block, so cleared fields must
// still marshal.
type FlightFields struct {
	UserID       string `bson:"userId" json:"userId"`
	UserEmail    string `bson:"userEmail" json:"userEmail"`
	DroneID      string `bson:"droneId" json:"droneId"`
	Date         string `bson:"date" json:"date"` // YYYY-MM-DD
	Location     string `bson:"location" json:"location"`
	Category     string `bson:"category" json:"category"`
	ActivityType string `bson:"activityType" json:"activityType"`
	StartTime    string `bson:"startTime" json:"startTime"`
	EndTime      string `bson:"endTime" json:"endTime"`
	Comments     string `bson:"comments" json:"comments,omitempty"`
}

// OwnedBy reports whether the flight belongs to the given user.
func (f *Flight) OwnedBy(userID string) bool {
	return f.UserID == userID
}
