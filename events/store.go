package events

import (
	"sort"
	"sync"
)

// Store is an in-memory backing store for the example API.  It is
// safe for concurrent use, so two requests with different nest
// directives can build their responses at the same time.
type Store struct {
	mutex  sync.RWMutex
	nextId int
	gamers map[int]*Gamer
	games  map[int]*Game
	events map[int]*Event
}

// NewStore returns a store seeded with a couple of gamers, games and
// events, enough to exercise every endpoint of the example API.
func NewStore() *Store {
	store := &Store{
		nextId: 1,
		gamers: make(map[int]*Gamer),
		games:  make(map[int]*Game),
		events: make(map[int]*Event),
	}

	mel := store.AddGamer(&Gamer{Handle: "mel", Bio: "Will trade food for meeples"})
	ryan := store.AddGamer(&Gamer{Handle: "ryan", Bio: "Dice goblin"})

	catan := store.AddGame(&Game{
		Title:           "Settlers of Catan",
		Maker:           "Kosmos",
		NumberOfPlayers: 4,
		SkillLevel:      2,
		GameType:        "strategy",
		Gamer:           mel,
	})
	welter := store.AddGame(&Game{
		Title:           "Welter",
		Maker:           "Half-Pint Games",
		NumberOfPlayers: 2,
		SkillLevel:      4,
		GameType:        "card",
		Gamer:           ryan,
	})

	store.AddEvent(&Event{
		Game:        catan,
		Description: "Friday night Catan at the brewery",
		Date:        "2023-05-12",
		Time:        "19:00",
		Organizer:   mel,
		Joined:      true,
	})
	store.AddEvent(&Event{
		Game:        welter,
		Description: "Welter teaching table",
		Date:        "2023-05-20",
		Time:        "13:30",
		Organizer:   ryan,
	})

	return store
}

func (store *Store) allocateId() int {
	id := store.nextId
	store.nextId++
	return id
}

// AddGamer stores a gamer, assigning it an id, and returns it.
func (store *Store) AddGamer(gamer *Gamer) *Gamer {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	gamer.Id = store.allocateId()
	store.gamers[gamer.Id] = gamer
	return gamer
}

// AddGame stores a game, assigning it an id, and returns it.
func (store *Store) AddGame(game *Game) *Game {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	game.Id = store.allocateId()
	store.games[game.Id] = game
	return game
}

// AddEvent stores an event, assigning it an id, and returns it.
func (store *Store) AddEvent(event *Event) *Event {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	event.Id = store.allocateId()
	store.events[event.Id] = event
	return event
}

// Gamer looks a gamer up by id.
func (store *Store) Gamer(id int) (*Gamer, bool) {
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	gamer, ok := store.gamers[id]
	return gamer, ok
}

// Game looks a game up by id.
func (store *Store) Game(id int) (*Game, bool) {
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	game, ok := store.games[id]
	return game, ok
}

// Event looks an event up by id.
func (store *Store) Event(id int) (*Event, bool) {
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	event, ok := store.events[id]
	return event, ok
}

// Games returns all games, ordered by id.
func (store *Store) Games() []*Game {
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	games := make([]*Game, 0, len(store.games))
	for _, game := range store.games {
		games = append(games, game)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].Id < games[j].Id })
	return games
}

// Events returns all events, ordered by id.
func (store *Store) Events() []*Event {
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	events := make([]*Event, 0, len(store.events))
	for _, event := range store.events {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Id < events[j].Id })
	return events
}
