package models

// CardKind discriminates the three card variants a player can hold.
type CardKind string

const (
	CardUnassigned CardKind = "unassigned"
	CardSpy        CardKind = "spy"
	CardLocation   CardKind = "location"
)

// Card is the role card dealt to a player. It is a tagged variant rather than a
// bare string so a location named "spy" can never collide with the spy role.
type Card struct {
	Kind     CardKind `json:"kind"`
	Location string   `json:"location,omitempty"`
}

// UnassignedCard is the card every player holds while the room is waiting.
func UnassignedCard() Card {
	return Card{Kind: CardUnassigned}
}

// SpyCard returns the spy role card.
func SpyCard() Card {
	return Card{Kind: CardSpy}
}

// LocationCard returns a card revealing the round's secret location.
func LocationCard(location string) Card {
	return Card{Kind: CardLocation, Location: location}
}

// IsSpy reports whether this card marks its holder as the spy.
func (c Card) IsSpy() bool {
	return c.Kind == CardSpy
}
