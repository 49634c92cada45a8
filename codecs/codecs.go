// The codecs package defines the codec that is used to ensure certain
// format restrictions when creating responses from our API.  Every
// response is wrapped in an envelope carrying the status code, the
// input parameters that were understood, and any notifications
// generated while handling the request, next to the response data
// itself.  Because of restrictions within the stretchr/goweb and
// stretchr/codecs packages, the envelope is only ever marshalled to
// json; the codec checks the requested base type and delegates the
// actual encoding to it.
package codecs

import (
	"errors"
	"strings"

	"github.com/stretchr/goweb"
)

const (
	typeCategory    = "application"
	typeName        = "vnd.gamerater.encapsulated"
	BasicMimeType   = typeCategory + "/" + typeName
	defaultBaseType = "application/json"
)

type ApiCodec struct {
}

// Marshal encapsulates the passed in object with our encapsulation
// format.
func (codec *ApiCodec) Marshal(object interface{}, options map[string]interface{}) ([]byte, error) {
	response := map[string]interface{}{
		"meta": map[string]interface{}{
			"code":         options["status"],
			"input_params": options["input_params"],
		},
		"notifications": options["notifications"],
		"response":      object,
	}

	matchedType, ok := options["matched_type"].(string)
	var baseType string
	if ok && strings.ContainsRune(matchedType, '+') {
		baseType = typeCategory + "/" + matchedType[len(codec.ContentType())+1:]
	} else {
		baseType = defaultBaseType
	}
	baseCodec, err := goweb.CodecService.GetCodec(baseType)
	if err != nil {
		return nil, err
	}

	return baseCodec.Marshal(response, options)
}

// Unmarshal returns an error, because unmarshaling is currently
// unsupported with this codec.
func (codec *ApiCodec) Unmarshal(data []byte, obj interface{}) error {
	return errors.New("Unmarshal not supported")
}

func (codec *ApiCodec) ContentType() string {
	return BasicMimeType
}

// ContentTypeSupported checks a mime type string to see if this codec
// can support responses in that format.
func (codec *ApiCodec) ContentTypeSupported(contentType string) bool {
	if index := strings.IndexRune(contentType, '+'); index != -1 {
		contentType = contentType[:index]
	}
	return contentType == codec.ContentType()
}

func (codec *ApiCodec) FileExtension() string {
	return ".gmr"
}

func (codec *ApiCodec) CanMarshalWithCallback() bool {
	return true
}

// AddCodecs registers the encapsulating codec with goweb's default
// codec service.
func AddCodecs() {
	goweb.CodecService.AddCodec(new(ApiCodec))
}
