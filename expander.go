package web_serializers

// An Expander is a type that defers loading its related entities
// until a response actually asks for them.  Expand is called before
// the response walk whenever the remaining expansion depth is
// greater than zero, so the type can populate nested structs that
// would otherwise render as bare references.  A simple example:
//
//	type Event struct {
//	    Id   int
//	    Game *Game
//	}
//
//	func (event *Event) Expand(depth int) {
//	    if event.Game == nil {
//	        // query populates event.Game from the database.
//	        event.Game = queryGame(event.GameId)
//	    }
//	}
//
// Expand is never called for flat responses, so types that load
// relations eagerly don't need it.
type Expander interface {

	// Expand should populate any related entities needed to render
	// the type at the given expansion depth.
	Expand(depth int)
}
