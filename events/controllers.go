package events

import (
	"net/http"
	"strconv"

	"github.com/Justin-Ferwerda/web_serializers"
	"github.com/Radiobox/web_request_readers"
	"github.com/stretchr/goweb"
	"github.com/stretchr/goweb/context"
	"github.com/stretchr/objx"
)

// EventsController serves /events.  Read responses honor the fields,
// exclude and nest query parameters, which are handled entirely by
// web_serializers.Respond.
type EventsController struct {
	web_serializers.BaseRestController
	Store *Store
}

func (controller *EventsController) Path() string {
	return "/events"
}

func (controller *EventsController) ReadMany(ctx context.Context) error {
	return web_serializers.Respond(ctx, http.StatusOK, web_serializers.NewMessageMap(), controller.Store.Events())
}

func (controller *EventsController) Read(id string, ctx context.Context) error {
	eventId, err := strconv.Atoi(id)
	if err != nil {
		return goweb.API.RespondWithError(ctx, http.StatusBadRequest, "event ids are numeric")
	}
	event, ok := controller.Store.Event(eventId)
	if !ok {
		notifications := web_serializers.NewMessageMap()
		notifications.AddErrorMessage("No event with id", id)
		return web_serializers.Respond(ctx, http.StatusNotFound, notifications, notifications)
	}
	return web_serializers.Respond(ctx, http.StatusOK, web_serializers.NewMessageMap(), event)
}

func (controller *EventsController) Create(ctx context.Context) error {
	params, err := web_request_readers.ParseParams(ctx)
	if err != nil {
		return goweb.API.RespondWithError(ctx, http.StatusBadRequest, err.Error())
	}

	event := &Event{
		Description: params.Get("description").Str(),
		Date:        params.Get("date").Str(),
		Time:        params.Get("time").Str(),
	}
	if game, ok := controller.lookupGame(params); ok {
		event.Game = game
	}
	if id, ok := relationId(params, "organizer"); ok {
		event.Organizer, _ = controller.Store.Gamer(id)
	}

	if !web_serializers.IsValid(event) {
		return web_serializers.RespondWithInputErrors(ctx, web_serializers.NewMessageMap(), event, true)
	}
	controller.Store.AddEvent(event)
	return web_serializers.Respond(ctx, http.StatusCreated, web_serializers.NewMessageMap(), event)
}

func (controller *EventsController) lookupGame(params objx.Map) (*Game, bool) {
	id, ok := relationId(params, "game")
	if !ok {
		return nil, false
	}
	return controller.Store.Game(id)
}

// relationId reads a related-entity id parameter, which arrives as a
// string from forms and as a number from json bodies.
func relationId(params objx.Map, key string) (int, bool) {
	if !params.Has(key) {
		return 0, false
	}
	switch value := params.Get(key).Data().(type) {
	case string:
		id, err := strconv.Atoi(value)
		return id, err == nil
	case float64:
		return int(value), true
	case int:
		return value, true
	default:
		return 0, false
	}
}

// GamesController serves /games with the same directive handling as
// /events.
type GamesController struct {
	web_serializers.BaseRestController
	Store *Store
}

func (controller *GamesController) Path() string {
	return "/games"
}

func (controller *GamesController) ReadMany(ctx context.Context) error {
	return web_serializers.Respond(ctx, http.StatusOK, web_serializers.NewMessageMap(), controller.Store.Games())
}

func (controller *GamesController) Read(id string, ctx context.Context) error {
	gameId, err := strconv.Atoi(id)
	if err != nil {
		return goweb.API.RespondWithError(ctx, http.StatusBadRequest, "game ids are numeric")
	}
	game, ok := controller.Store.Game(gameId)
	if !ok {
		notifications := web_serializers.NewMessageMap()
		notifications.AddErrorMessage("No game with id", id)
		return web_serializers.Respond(ctx, http.StatusNotFound, notifications, notifications)
	}
	return web_serializers.Respond(ctx, http.StatusOK, web_serializers.NewMessageMap(), game)
}
