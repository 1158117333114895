package models

import "time"

// Raffle is a single raffle as stored in the "raffles" collection.
// CreatedAt is the intended start time and may be in the future;
// ExpiryDate is expected to be after CreatedAt but the store does not
// enforce it.
type Raffle struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description,omitempty"`
	PictureURL  string    `json:"pictureUrl,omitempty" validate:"omitempty,url"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiryDate  time.Time `json:"expiryDate"`
	// Status is an optional override. "refunded", "end early" and
	// "inactive" (case-insensitive) force the raffle to Ended.
	Status      string  `json:"status,omitempty"`
	PrizeID     string  `json:"prizeId,omitempty"`
	SponsorID   string  `json:"sponsorId,omitempty"`
	TicketPrice float64 `json:"ticketPrice" validate:"gte=0"`
}

// TicketSale is a single record from the "raffle_tickets" collection.
// Immutable once created; only ever read in aggregate.
type TicketSale struct {
	ID        string    `json:"id"`
	RaffleID  string    `json:"raffleId,omitempty"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}
