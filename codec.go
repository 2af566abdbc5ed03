package httpkit

import "encoding/json"

// Codec encodes request bodies and decodes response bodies. The default is
// JSON via encoding/json; [WithCodec] swaps it for the whole client.
// Failures are surfaced to callers wrapped in [SerializationError].
type Codec interface {
	// Encode turns v into a body and the matching Content-Type value.
	Encode(v any) (body []byte, contentType string, err error)
	// Decode fills out from data.
	Decode(data []byte, out any) error
}

type jsonCodec struct{}

func (jsonCodec) Encode(v any) ([]byte, string, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, "", err
	}
	return body, "application/json", nil
}

func (jsonCodec) Decode(data []byte, out any) error {
	return json.Unmarshal(data, out)
}
