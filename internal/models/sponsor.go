package models

// SponsorStatusActive is the only status under which a sponsor is
// offered for selection on raffle and prize forms.
const SponsorStatusActive = "Active"

// Sponsor as stored in the "sponsors" collection. GamesCreation and
// PrizesCreation are reference sets: ids of raffles and prizes this
// sponsor is linked to, mutated via array union and array remove.
// Referential integrity is maintained by the caller, not the store —
// deleting a raffle or prize strips its id from every sponsor.
type Sponsor struct {
	ID             string   `json:"id"`
	SponsorName    string   `json:"sponsorName" validate:"required"`
	Logo           []string `json:"logo,omitempty" validate:"max=2,dive,url"`
	GamesCreation  []string `json:"gamesCreation,omitempty"`
	PrizesCreation []string `json:"prizesCreation,omitempty"`
	Status         string   `json:"status,omitempty"`
}

// Prize as stored in the "prizes" collection. Read-mostly; joined into
// raffle and sponsor views by id lookup.
type Prize struct {
	ID             string  `json:"id"`
	PrizeName      string  `json:"prizeName" validate:"required"`
	RetailValueUSD float64 `json:"retailValueUSD" validate:"gte=0"`
	Thumbnail      string  `json:"thumbnail,omitempty" validate:"omitempty,url"`
	SponsorID      string  `json:"sponsorId,omitempty"`
	Status         string  `json:"status,omitempty"`
}
