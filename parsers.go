package web_serializers

import (
	"strconv"

	"github.com/stretchr/objx"
)

// ParsePage reads "page" and "page_size" from a set of parameters
// and parses them into offset and limit values.  Both parameters
// must be present for paging to take effect; otherwise the default
// page size is returned as the limit with a zero offset.
func ParsePage(params objx.Map, defaultPageSize int) (offset, limit int, err error) {
	limit = defaultPageSize

	if !params.Has("page") || !params.Has("page_size") {
		return
	}

	var page, pageSize int
	if pageSize, err = intParam(params.Get("page_size").Data()); err != nil {
		return
	}
	if page, err = intParam(params.Get("page").Data()); err != nil {
		return
	}

	offset = (page - 1) * pageSize
	limit = pageSize
	return
}

// intParam converts a single parameter value to an int.  Parameter
// maps hand us strings from query parameters and json.Number-style
// numerics from bodies, so several shapes are accepted.
func intParam(value interface{}) (int, error) {
	switch value := value.(type) {
	case string:
		return strconv.Atoi(value)
	case []string:
		if len(value) == 0 {
			return 0, nil
		}
		return strconv.Atoi(value[0])
	case int:
		return value, nil
	case int32:
		return int(value), nil
	case int64:
		return int(value), nil
	case float64:
		return int(value), nil
	default:
		return 0, nil
	}
}
