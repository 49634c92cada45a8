package web_serializers

import (
	"testing"

	"github.com/stretchr/objx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ParsersTestSuite struct {
	suite.Suite
}

func TestRunParsersTestSuite(t *testing.T) {
	suite.Run(t, new(ParsersTestSuite))
}

func (suite *ParsersTestSuite) TestParsePageDefaults() {
	offset, limit, err := ParsePage(objx.Map{}, 25)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, offset)
	assert.Equal(suite.T(), 25, limit)

	// Both parameters are needed for paging to take effect.
	offset, limit, err = ParsePage(objx.Map{"page": "3"}, 25)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, offset)
	assert.Equal(suite.T(), 25, limit)
}

func (suite *ParsersTestSuite) TestParsePageStrings() {
	offset, limit, err := ParsePage(objx.Map{"page": "3", "page_size": "10"}, 25)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 20, offset)
	assert.Equal(suite.T(), 10, limit)
}

func (suite *ParsersTestSuite) TestParsePageNumbers() {
	offset, limit, err := ParsePage(objx.Map{"page": 2, "page_size": float64(5)}, 25)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5, offset)
	assert.Equal(suite.T(), 5, limit)
}

func (suite *ParsersTestSuite) TestParsePageBadInput() {
	_, _, err := ParsePage(objx.Map{"page": "x", "page_size": "10"}, 25)
	assert.Error(suite.T(), err)
}
