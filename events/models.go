// The events package is a small example API built on top of
// web_serializers: gamers organize events to play their games, and
// every read endpoint understands the fields, exclude and nest query
// parameters.
package events

import "fmt"

// A Gamer is someone who owns games and organizes or joins events.
type Gamer struct {
	Id     int    `response:"id"`
	Handle string `response:"handle" validate:"required"`
	Bio    string `response:"bio"`
}

// ReferenceValue collapses a gamer to its id when it appears as a
// related entity in another response.
func (gamer *Gamer) ReferenceValue() interface{} {
	return gamer.Id
}

func (gamer *Gamer) Location() string {
	return fmt.Sprintf("/gamers/%d", gamer.Id)
}

// A Game is a tabletop game that events can be organized around.
type Game struct {
	Id              int    `response:"id"`
	Title           string `response:"title" validate:"required"`
	Maker           string `response:"maker"`
	NumberOfPlayers int    `response:"number_of_players" validate:"omitempty,min=1"`
	SkillLevel      int    `response:"skill_level" validate:"omitempty,min=1,max=5"`
	GameType        string `response:"game_type"`
	Gamer           *Gamer `response:"gamer"`
}

// ReferenceValue collapses a game to its id when it appears as a
// related entity in another response.
func (game *Game) ReferenceValue() interface{} {
	return game.Id
}

func (game *Game) Location() string {
	return fmt.Sprintf("/games/%d", game.Id)
}

// An Event is a gathering to play one game, put together by one
// organizer.  Game and Organizer render as bare ids in the default
// representation and as full mappings when nesting is requested.
type Event struct {
	Id          int    `response:"id"`
	Game        *Game  `response:"game"`
	Description string `response:"description" validate:"required"`
	Date        string `response:"date" validate:"required"`
	Time        string `response:"time"`
	Organizer   *Gamer `response:"organizer"`
	Joined      bool   `response:"joined"`
}

func (event *Event) Location() string {
	return fmt.Sprintf("/events/%d", event.Id)
}

// RelatedLinks points clients at the event's game and organizer, for
// the Link header.
func (event *Event) RelatedLinks() map[string]string {
	links := make(map[string]string, 2)
	if event.Game != nil {
		links["game"] = event.Game.Location()
	}
	if event.Organizer != nil {
		links["organizer"] = event.Organizer.Location()
	}
	return links
}
