package deck

// Source supplies the randomness for shuffling. *rand.Rand from math/rand/v2
// satisfies it; tests can pass a scripted sequence.
type Source interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// Deck is an ordered sequence of cards dealt from the front
type Deck struct {
	cards []Card
	next  int
}

// Standard returns the 52 cards of a standard deck in suit-major order
func Standard() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// NewDeck creates a standard 52-card deck shuffled with src
func NewDeck(src Source) *Deck {
	d := &Deck{cards: Standard()}
	d.Shuffle(src)
	return d
}

// NewStackedDeck returns a deck that deals the given cards first, in order,
// followed by the remaining standard cards in suit-major order. Duplicates in
// top are ignored after their first occurrence.
func NewStackedDeck(top ...Card) *Deck {
	seen := make(map[Card]bool, 52)
	cards := make([]Card, 0, 52)
	for _, c := range top {
		if seen[c] || !c.Valid() {
			continue
		}
		seen[c] = true
		cards = append(cards, c)
	}
	for _, c := range Standard() {
		if !seen[c] {
			cards = append(cards, c)
		}
	}
	return &Deck{cards: cards}
}

// Shuffle randomizes the undealt cards with a Fisher-Yates shuffle
func (d *Deck) Shuffle(src Source) {
	rest := d.cards[d.next:]
	for i := len(rest) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		rest[i], rest[j] = rest[j], rest[i]
	}
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, bool) {
	if d.next >= len(d.cards) {
		return Card{}, false
	}
	card := d.cards[d.next]
	d.next++
	return card, true
}

// DealN deals up to n cards from the deck
func (d *Deck) DealN(n int) []Card {
	n = min(n, d.CardsRemaining())
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// Burn discards the top card
func (d *Deck) Burn() {
	if d.next < len(d.cards) {
		d.next++
	}
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

// Remaining returns a copy of the undealt cards
func (d *Deck) Remaining() []Card {
	out := make([]Card, d.CardsRemaining())
	copy(out, d.cards[d.next:])
	return out
}
