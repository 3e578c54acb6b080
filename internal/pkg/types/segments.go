package types

// SegmentMember is one phone number returned by a user-segment query.
type SegmentMember struct {
	PhoneNumber string `json:"phone_number"`
}

// Segment is an ordered list of members selected by a segment query.
// Segments only pre-populate the initiate flow; they carry no other state.
type Segment struct {
	PhoneNumbers []SegmentMember `json:"phone_numbers"`
}

// Numbers flattens the segment into a []string, preserving order.
func (s Segment) Numbers() []string {
	out := make([]string, 0, len(s.PhoneNumbers))
	for _, m := range s.PhoneNumbers {
		out = append(out, m.PhoneNumber)
	}
	return out
}
