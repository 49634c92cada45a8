// Command example_webapp runs the example events API.  Try:
//
//	curl 'localhost:9090/events'
//	curl 'localhost:9090/events/5?exclude=id'
//	curl 'localhost:9090/events/5?fields=id&fields=game&nest=True'
package main

import (
	"log"
	"net/http"

	"github.com/Justin-Ferwerda/web_serializers/codecs"
	"github.com/Justin-Ferwerda/web_serializers/events"
	"github.com/stretchr/goweb"
	"go.uber.org/zap"
)

const address = ":9090"

func main() {
	logger := zap.Must(zap.NewDevelopment())
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	codecs.AddCodecs()

	store := events.NewStore()
	eventsController := &events.EventsController{Store: store}
	if err := goweb.MapController(eventsController.Path(), eventsController); err != nil {
		logger.Sugar().Fatalw("Failed to map events controller", "err", err)
	}
	gamesController := &events.GamesController{Store: store}
	if err := goweb.MapController(gamesController.Path(), gamesController); err != nil {
		logger.Sugar().Fatalw("Failed to map games controller", "err", err)
	}

	logger.Sugar().Infow("Listening", "address", address)
	log.Fatal(http.ListenAndServe(address, goweb.DefaultHttpHandler()))
}
