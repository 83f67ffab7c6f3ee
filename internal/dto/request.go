package dto

// VenueFields carries already-parsed venue form values. SeekingTalent is the
// raw checkbox value; the repository converts it with models.ParseSeekingFlag.
type VenueFields struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingTalent      string
	SeekingDescription string
}

type ArtistFields struct {
	Name               string
	City               string
	State              string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingVenue       string
	SeekingDescription string
}
