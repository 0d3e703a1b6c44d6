package game

import (
	"fmt"

	rand "math/rand/v2"

	"github.com/cardroomlabs/holdem/internal/deck"
	"github.com/cardroomlabs/holdem/internal/gameid"
)

// NewHand creates the initial snapshot of a hand: validates the
// configuration, seats the players, posts blinds and deals hole cards.
// The returned events record the blind posts; a fresh GameState is required
// for every hand (new button, reshuffled deck, carried-over stacks).
func NewHand(rng *rand.Rand, cfg Config, opts ...HandOption) (GameState, []Event, error) {
	if err := cfg.Validate(); err != nil {
		return GameState{}, nil, err
	}

	hc := &handConfig{}
	for _, opt := range opts {
		opt(hc)
	}

	if hc.playerIDs != nil && len(hc.playerIDs) != cfg.NumPlayers {
		return GameState{}, nil, fmt.Errorf("player ids: got %d, want %d", len(hc.playerIDs), cfg.NumPlayers)
	}
	if hc.chips != nil && len(hc.chips) != cfg.NumPlayers {
		return GameState{}, nil, fmt.Errorf("chip counts: got %d, want %d", len(hc.chips), cfg.NumPlayers)
	}
	if hc.button < 0 || hc.button >= cfg.NumPlayers {
		return GameState{}, nil, fmt.Errorf("button seat %d out of range", hc.button)
	}

	players := make([]Player, cfg.NumPlayers)
	for i := range players {
		id := fmt.Sprintf("p%d", i+1)
		if hc.playerIDs != nil {
			id = hc.playerIDs[i]
		}
		chips := cfg.StartingStack
		if hc.chips != nil {
			chips = hc.chips[i]
		}
		if chips <= 0 {
			return GameState{}, nil, fmt.Errorf("player %s: stack must be positive, got %d", id, chips)
		}
		players[i] = Player{ID: id, Stack: chips, Status: StatusActive}
	}

	handID := hc.handID
	if handID == "" {
		handID = gameid.New()
	}

	var d deck.Deck
	if hc.deck != nil {
		d = *hc.deck
	} else {
		if rng == nil {
			return GameState{}, nil, fmt.Errorf("rng is required unless a deck is supplied")
		}
		d = deck.New(rng)
	}

	s := GameState{
		HandID:     handID,
		Version:    1,
		Players:    players,
		Button:     hc.button,
		SmallBlind: cfg.SmallBlind,
		BigBlind:   cfg.BigBlind,
		Street:     Preflop,
		deck:       d,
		acted:      make([]bool, cfg.NumPlayers),
	}
	for i := range players {
		s.buyIn += players[i].Stack
	}

	events := []Event{HandStartEvent{
		HandID:     handID,
		PlayerIDs:  playerIDs(players),
		SmallBlind: cfg.SmallBlind,
		BigBlind:   cfg.BigBlind,
	}}

	events = append(events, s.postBlinds()...)

	if err := s.dealHoleCards(); err != nil {
		return GameState{}, nil, err
	}

	// First to act: heads-up the button (small blind) opens; otherwise the
	// seat left of the big blind.
	if cfg.NumPlayers == 2 {
		s.Actor = s.nextActive(s.Button)
	} else {
		s.Actor = s.nextActive(s.Button + 3)
	}

	// The blinds can consume every stack. With nobody left to act the hand
	// runs out to showdown immediately.
	if s.Actor < 0 {
		for !s.Terminal && s.roundClosed() {
			streetEvents, err := s.advanceStreet()
			if err != nil {
				return GameState{}, nil, err
			}
			events = append(events, streetEvents...)
		}
	}

	if err := s.checkConservation(); err != nil {
		return GameState{}, nil, err
	}

	return s, events, nil
}

// postBlinds posts the forced bets. A short stack posts what it can and is
// all-in; the street's bet level is still the full big blind.
func (s *GameState) postBlinds() []Event {
	n := len(s.Players)
	var sbSeat, bbSeat int
	if n == 2 {
		// Heads-up: the button posts the small blind
		sbSeat = s.Button
		bbSeat = (s.Button + 1) % n
	} else {
		sbSeat = (s.Button + 1) % n
		bbSeat = (s.Button + 2) % n
	}

	sbPosted := s.Players[sbSeat].wager(s.SmallBlind)
	bbPosted := s.Players[bbSeat].wager(s.BigBlind)

	s.CurrentBet = s.BigBlind
	s.LastRaise = s.BigBlind

	return []Event{
		BlindPostedEvent{PlayerID: s.Players[sbSeat].ID, Blind: "small blind", Amount: sbPosted},
		BlindPostedEvent{PlayerID: s.Players[bbSeat].ID, Blind: "big blind", Amount: bbPosted},
	}
}

// dealHoleCards deals two cards per player, starting left of the button
func (s *GameState) dealHoleCards() error {
	n := len(s.Players)
	for i := 1; i <= n; i++ {
		seat := (s.Button + i) % n
		cards, err := s.deck.Deal(2)
		if err != nil {
			return err
		}
		s.Players[seat].HoleCards = cards
	}
	return nil
}

func playerIDs(players []Player) []string {
	ids := make([]string, len(players))
	for i := range players {
		ids[i] = players[i].ID
	}
	return ids
}
