package events

import (
	"testing"

	"github.com/Justin-Ferwerda/web_serializers"
	"github.com/stretchr/objx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type SerializationTestSuite struct {
	suite.Suite
	store *Store
	event *Event
}

func TestRunSerializationTestSuite(t *testing.T) {
	suite.Run(t, new(SerializationTestSuite))
}

func (suite *SerializationTestSuite) SetupTest() {
	suite.store = NewStore()
	events := suite.store.Events()
	assert.NotEmpty(suite.T(), events)
	suite.event = events[0]
}

func (suite *SerializationTestSuite) keys(record objx.Map) []string {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	return keys
}

func (suite *SerializationTestSuite) TestDefaultEventRepresentation() {
	record := web_serializers.CreateResponse(suite.event, web_serializers.FieldSelection{}).(objx.Map)
	assert.ElementsMatch(suite.T(),
		[]string{"id", "game", "description", "date", "time", "organizer", "joined"},
		suite.keys(record))
	// Related entities render as bare ids without nesting.
	assert.Equal(suite.T(), suite.event.Game.Id, record["game"])
	assert.Equal(suite.T(), suite.event.Organizer.Id, record["organizer"])
}

func (suite *SerializationTestSuite) TestExcludeId() {
	selection := web_serializers.ParseFieldSelection(objx.Map{"exclude": []string{"id"}})
	record := web_serializers.CreateResponse(suite.event, selection).(objx.Map)
	assert.ElementsMatch(suite.T(),
		[]string{"game", "description", "date", "time", "organizer", "joined"},
		suite.keys(record))
}

func (suite *SerializationTestSuite) TestFieldsWithNest() {
	selection := web_serializers.ParseFieldSelection(objx.Map{
		"fields": []string{"id", "game"},
		"nest":   "True",
	})
	record := web_serializers.CreateResponse(suite.event, selection).(objx.Map)
	assert.ElementsMatch(suite.T(), []string{"id", "game"}, suite.keys(record))

	game, ok := record["game"].(objx.Map)
	assert.True(suite.T(), ok)
	assert.ElementsMatch(suite.T(),
		[]string{"id", "title", "maker", "number_of_players", "skill_level", "game_type", "gamer"},
		suite.keys(game))
	// One level of nesting only: the game's gamer stays a bare id.
	assert.Equal(suite.T(), suite.event.Game.Gamer.Id, game["gamer"])
}

func (suite *SerializationTestSuite) TestUnknownDirectiveNames() {
	selection := web_serializers.ParseFieldSelection(objx.Map{
		"fields":  []string{"id", "flux_capacitor"},
		"exclude": []string{"warp_core"},
	})
	record := web_serializers.CreateResponse(suite.event, selection).(objx.Map)
	assert.ElementsMatch(suite.T(), []string{"id"}, suite.keys(record))
}

func (suite *SerializationTestSuite) TestCollectionHonorsDirectives() {
	selection := web_serializers.ParseFieldSelection(objx.Map{
		"fields": []string{"description", "date"},
	})
	response := web_serializers.CreateResponse(suite.store.Events(), selection)
	elements := response.([]interface{})
	assert.Len(suite.T(), elements, 2)
	for _, element := range elements {
		assert.ElementsMatch(suite.T(), []string{"description", "date"},
			suite.keys(element.(objx.Map)))
	}
}

func (suite *SerializationTestSuite) TestDeclaredEventFields() {
	assert.ElementsMatch(suite.T(),
		[]string{"id", "game", "description", "date", "time", "organizer", "joined"},
		web_serializers.DeclaredFields(&Event{}))
	assert.ElementsMatch(suite.T(),
		[]string{"id", "title", "maker", "number_of_players", "skill_level", "game_type", "gamer"},
		web_serializers.DeclaredFields(&Game{}))
}
