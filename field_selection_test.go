package web_serializers

import (
	"testing"

	"github.com/stretchr/objx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type FieldSelectionTestSuite struct {
	suite.Suite
}

func TestRunFieldSelectionTestSuite(t *testing.T) {
	suite.Run(t, new(FieldSelectionTestSuite))
}

func (suite *FieldSelectionTestSuite) record() objx.Map {
	return objx.Map{
		"id":          5,
		"game":        2,
		"description": "Friday night Catan",
		"date":        "2023-05-12",
		"time":        "19:00",
		"organizer":   1,
		"joined":      true,
	}
}

func (suite *FieldSelectionTestSuite) keys(record objx.Map) []string {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	return keys
}

func (suite *FieldSelectionTestSuite) TestApplyIdentity() {
	record := suite.record()
	applied := FieldSelection{}.Apply(record)
	assert.Equal(suite.T(), record, applied)

	// With no directives the record passes through untouched, not
	// rebuilt.
	applied["probe"] = true
	assert.Contains(suite.T(), record, "probe")
}

func (suite *FieldSelectionTestSuite) TestApplyInclusion() {
	selection := FieldSelection{Fields: []string{"id", "game"}}
	applied := selection.Apply(suite.record())
	assert.ElementsMatch(suite.T(), []string{"id", "game"}, suite.keys(applied))
	assert.Equal(suite.T(), 5, applied["id"])
	assert.Equal(suite.T(), 2, applied["game"])
}

func (suite *FieldSelectionTestSuite) TestApplyExclusion() {
	selection := FieldSelection{Exclude: []string{"id"}}
	applied := selection.Apply(suite.record())
	assert.ElementsMatch(suite.T(),
		[]string{"game", "description", "date", "time", "organizer", "joined"},
		suite.keys(applied))
}

func (suite *FieldSelectionTestSuite) TestApplyComposition() {
	// exclude wins over fields for names present in both.
	selection := FieldSelection{
		Fields:  []string{"id", "game", "date"},
		Exclude: []string{"date", "organizer"},
	}
	applied := selection.Apply(suite.record())
	assert.ElementsMatch(suite.T(), []string{"id", "game"}, suite.keys(applied))
}

func (suite *FieldSelectionTestSuite) TestApplyUnknownNames() {
	selection := FieldSelection{
		Fields:  []string{"id", "flavor"},
		Exclude: []string{"aroma"},
	}
	applied := selection.Apply(suite.record())
	assert.ElementsMatch(suite.T(), []string{"id"}, suite.keys(applied))
	assert.NotContains(suite.T(), applied, "flavor")
}

func (suite *FieldSelectionTestSuite) TestApplyNeverWidens() {
	record := objx.Map{"id": 1}
	applied := FieldSelection{Fields: []string{"id", "game"}}.Apply(record)
	assert.ElementsMatch(suite.T(), []string{"id"}, suite.keys(applied))
}

func (suite *FieldSelectionTestSuite) TestDepth() {
	assert.Equal(suite.T(), 0, FieldSelection{}.Depth())
	assert.Equal(suite.T(), 1, FieldSelection{Nest: true}.Depth())
}

func (suite *FieldSelectionTestSuite) TestParseRepeatedParameters() {
	selection := ParseFieldSelection(objx.Map{
		"fields":  []string{"id", "game"},
		"exclude": []string{"date"},
	})
	assert.Equal(suite.T(), []string{"id", "game"}, selection.Fields)
	assert.Equal(suite.T(), []string{"date"}, selection.Exclude)
	assert.False(suite.T(), selection.Nest)
}

func (suite *FieldSelectionTestSuite) TestParseSingleParameters() {
	selection := ParseFieldSelection(objx.Map{
		"fields":  "id",
		"exclude": "organizer",
	})
	assert.Equal(suite.T(), []string{"id"}, selection.Fields)
	assert.Equal(suite.T(), []string{"organizer"}, selection.Exclude)
}

func (suite *FieldSelectionTestSuite) TestParseInterfaceSlices() {
	selection := ParseFieldSelection(objx.Map{
		"fields": []interface{}{"id", "game"},
	})
	assert.Equal(suite.T(), []string{"id", "game"}, selection.Fields)
}

func (suite *FieldSelectionTestSuite) TestParseEmptyCollections() {
	// An empty collected list means "not requested."
	selection := ParseFieldSelection(objx.Map{
		"fields":  []string{},
		"exclude": "",
	})
	assert.Nil(suite.T(), selection.Fields)
	assert.Nil(suite.T(), selection.Exclude)
}

func (suite *FieldSelectionTestSuite) TestParseNest() {
	assert.False(suite.T(), ParseFieldSelection(objx.Map{}).Nest)
	assert.True(suite.T(), ParseFieldSelection(objx.Map{"nest": "True"}).Nest)
	// nest is a presence flag, so even "False" enables it.
	assert.True(suite.T(), ParseFieldSelection(objx.Map{"nest": "False"}).Nest)
	assert.True(suite.T(), ParseFieldSelection(objx.Map{"nest": []string{"True"}}).Nest)
	assert.True(suite.T(), ParseFieldSelection(objx.Map{"nest": true}).Nest)
	// A present-but-empty value does not.
	assert.False(suite.T(), ParseFieldSelection(objx.Map{"nest": ""}).Nest)
	assert.False(suite.T(), ParseFieldSelection(objx.Map{"nest": nil}).Nest)
}
